package trace

//calltrace:trace prefix_enter=">>"
func Greet(name string) string {
	return "Hello, " + name
}
