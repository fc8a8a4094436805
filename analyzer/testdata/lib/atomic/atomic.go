package atomic

type Counter struct{ n int }

func (c *Counter) Add(n int) { c.n += n }
