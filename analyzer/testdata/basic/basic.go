package basic // want "Add DEPTH counter declaration"

//calltrace:trace
func foo(x int) { // want "Instrument function 'foo' with call tracing"
	bar()
}

//calltrace:trace
func bar() { // want "Instrument function 'bar' with call tracing"
}
