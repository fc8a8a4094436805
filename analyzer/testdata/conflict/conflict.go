package conflict // want "Add DEPTH counter declaration"

import "test/lib/atomic"

var hits atomic.Counter

//calltrace:trace
func count(n int) { // want "Instrument function 'count' with call tracing"
	hits.Add(n)
}
