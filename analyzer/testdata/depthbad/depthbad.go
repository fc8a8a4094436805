package depthbad

var DEPTH int // want "Malformed DEPTH declaration: has type int, must have type uint32"

//calltrace:trace
func f() { // want "Instrument function 'f' with call tracing"
	DEPTH++
}
