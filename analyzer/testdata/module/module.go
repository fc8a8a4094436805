//calltrace:trace disable(skipped)
package module // want "Add DEPTH counter declaration"

import "fmt"

func helper(n int) int { // want "Instrument function 'helper' with call tracing"
	return n + 1
}

func skipped() {}

//calltrace:trace enable(n)
func direct(n, m int) { // want "Instrument function 'direct' with call tracing"
	fmt.Println(n, m)
}

//calltrace:trace enable(Len)
type List struct{ items []int }

func (l *List) Len() int { return len(l.items) } // want "Instrument method 'List.Len' with call tracing"

func (l *List) Cap() int { return cap(l.items) }

type Other struct{}

func (Other) Name() string { return "other" } // want "Instrument method 'Other.Name' with call tracing"

//nolint:calltrace
func quiet() {}
