package term

import (
	"image/color"
	"math"

	"orbs/internal/game/arena"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// One terminal cell in canvas pixels. Cells are roughly twice as tall as
// wide, so circles stay round.
const (
	cellW = 8
	cellH = 16
)

type affine struct {
	s, ox, oy float64
}

func (a affine) apply(x, y float64) (float64, float64) {
	return a.s*x + a.ox, a.s*y + a.oy
}

// Canvas implements arena.Canvas on a tcell screen at cell resolution.
type Canvas struct {
	screen tcell.Screen
	cur    affine
	stack  []affine
}

func NewCanvas(s tcell.Screen) *Canvas {
	return &Canvas{screen: s, cur: affine{s: 1}}
}

func (c *Canvas) Size() (float64, float64) {
	w, h := c.screen.Size()
	return float64(w * cellW), float64(h * cellH)
}

func (c *Canvas) Clear() {
	c.screen.Clear()
	c.cur = affine{s: 1}
	c.stack = c.stack[:0]
}

func (c *Canvas) Save() { c.stack = append(c.stack, c.cur) }

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Scale(s float64) { c.cur.s *= s }

func (c *Canvas) Translate(x, y float64) {
	c.cur.ox += c.cur.s * x
	c.cur.oy += c.cur.s * y
}

func style(clr color.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.FromImageColor(clr)).Background(tcell.ColorBlack)
}

// cell maps a canvas pixel to the cell containing it.
func cell(px, py float64) (int, int) {
	return int(math.Floor(px / cellW)), int(math.Floor(py / cellH))
}

func (c *Canvas) set(col, row int, r rune, st tcell.Style) {
	w, h := c.screen.Size()
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	c.screen.SetContent(col, row, r, nil, st)
}

// eachCell visits cells whose centres fall inside the pixel box.
func (c *Canvas) eachCell(x0, y0, x1, y1 float64, fn func(col, row int, cx, cy float64)) {
	w, h := c.screen.Size()
	c0, r0 := cell(x0, y0)
	c1, r1 := cell(x1, y1)
	c0, r0 = max(c0, 0), max(r0, 0)
	c1, r1 = min(c1, w-1), min(r1, h-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			fn(col, row, (float64(col)+0.5)*cellW, (float64(row)+0.5)*cellH)
		}
	}
}

func (c *Canvas) FillCircle(x, y, r float64, clr color.Color) {
	sx, sy := c.cur.apply(x, y)
	sr := r * c.cur.s
	st := style(clr)
	hit := false
	c.eachCell(sx-sr, sy-sr, sx+sr, sy+sr, func(col, row int, cx, cy float64) {
		if math.Hypot(cx-sx, cy-sy) <= sr {
			c.set(col, row, '█', st)
			hit = true
		}
	})
	if !hit {
		// smaller than a cell: still show something
		col, row := cell(sx, sy)
		c.set(col, row, '•', st)
	}
}

func (c *Canvas) StrokeCircle(x, y, r, width float64, clr color.Color) {
	sx, sy := c.cur.apply(x, y)
	sr := r * c.cur.s
	band := math.Max(width*c.cur.s, cellW) / 2
	st := style(clr)
	c.eachCell(sx-sr-band, sy-sr-band, sx+sr+band, sy+sr+band, func(col, row int, cx, cy float64) {
		if math.Abs(math.Hypot(cx-sx, cy-sy)-sr) <= band {
			c.set(col, row, '·', st)
		}
	})
}

func (c *Canvas) StrokeRect(x, y, w, h, _ float64, clr color.Color) {
	x0, y0 := c.cur.apply(x, y)
	x1, y1 := c.cur.apply(x+w, y+h)
	c0, r0 := cell(x0, y0)
	c1, r1 := cell(x1, y1)
	st := style(clr)
	for col := c0 + 1; col < c1; col++ {
		c.set(col, r0, '─', st)
		c.set(col, r1, '─', st)
	}
	for row := r0 + 1; row < r1; row++ {
		c.set(c0, row, '│', st)
		c.set(c1, row, '│', st)
	}
	c.set(c0, r0, '┌', st)
	c.set(c1, r0, '┐', st)
	c.set(c0, r1, '└', st)
	c.set(c1, r1, '┘', st)
}

func (c *Canvas) Text(s string, x, y float64, align arena.Align, clr color.Color) {
	sx, sy := c.cur.apply(x, y)
	col, row := cell(sx, sy)
	if align == arena.AlignCenter {
		col -= runewidth.StringWidth(s) / 2
	}
	st := style(clr)
	for _, r := range s {
		c.set(col, row, r, st)
		col += runewidth.RuneWidth(r)
	}
}
