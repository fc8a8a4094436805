package results // want "Add DEPTH counter declaration"

import "errors"

//calltrace:trace
func div(a, b int) (int, error) { // want "Instrument function 'div' with call tracing"
	if b == 0 {
		return 0, errors.New("division by zero")
	}

	return a / b, nil
}

//calltrace:trace
func double(x int) (y int) { return x * 2 } // want "Instrument function 'double' with call tracing"

type counter struct{ n int }

//calltrace:trace
func (c *counter) inc(_ int, delta int) (_ int) { // want "Instrument method 'counter.inc' with call tracing"
	c.n += delta

	return c.n
}

//calltrace:trace
func recovered() (err error) { // want "Instrument function 'recovered' with call tracing"
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("recovered")
		}
	}()

	panic("fail")
}
