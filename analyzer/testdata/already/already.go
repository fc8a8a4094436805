package already

import (
	"fmt"
	"strings"
	"sync/atomic"
)

//calltrace:trace
func foo(x int) {
	__traceIndent := strings.Repeat(" ", int(atomic.LoadUint32(&DEPTH)))
	fmt.Printf("%s[+] Entering foo(x: %v)\n", __traceIndent, x)
	atomic.AddUint32(&DEPTH, 1)
	defer func() {
		atomic.AddUint32(&DEPTH, ^uint32(0))
		fmt.Printf("%s[-] Exiting foo = ()\n", __traceIndent)
	}()
}

var DEPTH uint32
