package depthvalid

import (
	"fmt"
	"strings"
	"sync/atomic"
)

//calltrace:trace
func greet(name string) { // want "Instrument function 'greet' with call tracing"
	fmt.Println("hello", strings.TrimSpace(name))
	_ = atomic.LoadUint32(&DEPTH)
}
