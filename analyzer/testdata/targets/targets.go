package targets // want "Add DEPTH counter declaration"

//calltrace:trace // want "trace is only permissible on functions, methods, types or files"
var v int

//calltrace:trace // want "trace is not applicable to interface types"
type I interface {
	//calltrace:trace // want "trace is not applicable to interface methods"
	M()
}

func f() {
	//calltrace:trace // want "trace is not applicable to statements"
	_ = v
}

//calltrace:trace enable(a), disable(b) // want "Cannot use both enable and disable options with trace"
func both(a, b int) {}

//calltrace:trace prefix_enter=1, colour // want "Option prefix_enter expects a string literal, got 1" "Invalid option colour"
func warned() {} // want "Instrument function 'warned' with call tracing"

//calltrace:trace
func shadow(fmt string) {} // want "Name fmt in shadow shadows an identifier used by call tracing"
