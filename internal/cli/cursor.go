package cli

// cursor tracks the highlighted row of a list screen.
type cursor struct {
	pos int
	n   int
}

func (c *cursor) up() {
	if c.pos > 0 {
		c.pos--
	}
}

func (c *cursor) down() {
	if c.pos < c.n-1 {
		c.pos++
	}
}

func (c cursor) valid() bool { return c.pos >= 0 && c.pos < c.n }
