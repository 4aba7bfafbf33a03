package lexer

import "github.com/zenith-lang/zenith/token"

// Cursor walks a rune buffer while tracking line and column. It remembers
// the position before the most recent advance, so exactly one advance can
// be undone with Retreat.
type Cursor struct {
	buf        []rune
	idx        int
	pos        token.Position
	prev       token.Position
	canRetreat bool
}

// NewCursor returns a cursor positioned on the first rune of input.
func NewCursor(input string) *Cursor {
	return &Cursor{
		buf:  []rune(input),
		pos:  token.StartPosition,
		prev: token.StartPosition,
	}
}

// Position returns the position of the current rune.
func (c *Cursor) Position() token.Position {
	return c.pos
}

// Index returns the offset of the current rune in the buffer.
func (c *Cursor) Index() int {
	return c.idx
}

// Current returns the rune under the cursor, or false past the end.
func (c *Cursor) Current() (rune, bool) {
	if c.idx >= len(c.buf) {
		return 0, false
	}
	return c.buf[c.idx], true
}

// PeekNext returns the rune after the current one without moving.
func (c *Cursor) PeekNext() (rune, bool) {
	if c.idx+1 >= len(c.buf) {
		return 0, false
	}
	return c.buf[c.idx+1], true
}

// Advance consumes the current rune. It does nothing past the end.
func (c *Cursor) Advance() {
	ch, ok := c.Current()
	if !ok {
		return
	}
	c.prev = c.pos
	c.pos = c.pos.Next(ch)
	c.idx++
	c.canRetreat = true
}

// Retreat undoes the most recent Advance. Only one step is remembered: a
// second Retreat without an intervening Advance is refused and returns
// false.
func (c *Cursor) Retreat() bool {
	if !c.canRetreat || c.idx == 0 {
		return false
	}
	c.pos = c.prev
	c.idx--
	c.canRetreat = false
	return true
}

// CollectWhileNot consumes runes until stop returns true or the input ends
// and returns the consumed text. It then retreats once, leaving the cursor
// on the last rune consumed.
func (c *Cursor) CollectWhileNot(stop func(rune) bool) string {
	start := c.idx
	c.scan(stop)
	text := string(c.buf[start:c.idx])
	c.Retreat()
	return text
}

// SkipWhileNot is CollectWhileNot without the text. It returns the number
// of runes consumed.
func (c *Cursor) SkipWhileNot(stop func(rune) bool) int {
	start := c.idx
	c.scan(stop)
	n := c.idx - start
	c.Retreat()
	return n
}

func (c *Cursor) scan(stop func(rune) bool) {
	for {
		ch, ok := c.Current()
		if !ok || stop(ch) {
			return
		}
		c.Advance()
	}
}
