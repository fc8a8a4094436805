package options // want "Add DEPTH counter declaration"

import (
	"os"
	str "strings"
)

//calltrace:trace prefix_enter="->", prefix_exit=`<-`
func arrows(a int) { // want "Instrument function 'arrows' with call tracing"
	_ = a
}

//calltrace:trace enable(b, c)
func filtered(a, b, c int) { // want "Instrument function 'filtered' with call tracing"
	_, _, _ = a, b, c
}

//calltrace:trace disable(secret)
func login(user, secret string) { // want "Instrument function 'login' with call tracing"
	_, _ = user, secret
}

//calltrace:trace pause, prefix_enter="100%"
func paused() { // want "Instrument function 'paused' with call tracing"
	_ = str.ToUpper("x")
	_ = os.Args
}
