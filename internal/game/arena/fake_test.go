package arena

import (
	"fmt"
	"image/color"
	"sync"
)

type sentMsg struct {
	typ string
	v   any
}

type fakeBridge struct {
	mu   sync.Mutex
	sent []sentMsg
	err  error
}

func (f *fakeBridge) Send(typ string, v any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMsg{typ, v})
	return nil
}

func (f *fakeBridge) count(typ string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, m := range f.sent {
		if m.typ == typ {
			n++
		}
	}
	return n
}

// recCanvas records every call as a short string.
type recCanvas struct {
	w, h    float64
	calls   []string
	depth   int
	panicOn string
}

func newRecCanvas(w, h float64) *recCanvas { return &recCanvas{w: w, h: h} }

func (c *recCanvas) rec(s string) {
	if c.panicOn != "" && s == c.panicOn {
		panic("boom")
	}
	c.calls = append(c.calls, s)
}

func (c *recCanvas) Size() (float64, float64) { return c.w, c.h }
func (c *recCanvas) Clear()                   { c.rec("clear") }
func (c *recCanvas) Scale(s float64)          { c.rec(fmt.Sprintf("scale %g", s)) }
func (c *recCanvas) Translate(x, y float64)   { c.rec(fmt.Sprintf("translate %g %g", x, y)) }

func (c *recCanvas) Save() {
	c.depth++
	c.rec("save")
}

func (c *recCanvas) Restore() {
	c.depth--
	c.rec("restore")
}

func (c *recCanvas) FillCircle(x, y, r float64, _ color.Color) {
	c.rec(fmt.Sprintf("fill %g %g %g", x, y, r))
}

func (c *recCanvas) StrokeCircle(x, y, r, _ float64, _ color.Color) {
	c.rec(fmt.Sprintf("ring %g %g %g", x, y, r))
}

func (c *recCanvas) StrokeRect(x, y, w, h, _ float64, _ color.Color) {
	c.rec(fmt.Sprintf("rect %g %g %g %g", x, y, w, h))
}

func (c *recCanvas) Text(s string, x, y float64, _ Align, _ color.Color) {
	c.rec(fmt.Sprintf("text %q %g %g", s, x, y))
}

func (c *recCanvas) index(call string) int {
	for i, s := range c.calls {
		if s == call {
			return i
		}
	}
	return -1
}
