// Code generated by hand. DO NOT EDIT.

package generated

//calltrace:trace
func f() {}
