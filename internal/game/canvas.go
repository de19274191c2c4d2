package game

import (
	"image/color"

	"orbs/internal/game/arena"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var clearColor = color.Black

// canvas implements arena.Canvas on an ebiten image. Scale/Translate
// compose like a 2D context: the newest op applies to points first.
type canvas struct {
	dst   *ebiten.Image
	geo   ebiten.GeoM
	stack []ebiten.GeoM
	face  font.Face
}

func newCanvas(dst *ebiten.Image) *canvas {
	return &canvas{dst: dst, face: basicfont.Face7x13}
}

func (c *canvas) Size() (float64, float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *canvas) Clear() { c.dst.Fill(clearColor) }

func (c *canvas) Save() { c.stack = append(c.stack, c.geo) }

func (c *canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.geo = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *canvas) Scale(s float64) {
	var m ebiten.GeoM
	m.Scale(s, s)
	c.prepend(m)
}

func (c *canvas) Translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	c.prepend(m)
}

func (c *canvas) prepend(m ebiten.GeoM) {
	m.Concat(c.geo)
	c.geo = m
}

// scale is the uniform scale factor of the current transform.
func (c *canvas) scale() float64 { return c.geo.Element(0, 0) }

func (c *canvas) FillCircle(x, y, r float64, clr color.Color) {
	sx, sy := c.geo.Apply(x, y)
	vector.DrawFilledCircle(c.dst, float32(sx), float32(sy), float32(r*c.scale()), clr, true)
}

func (c *canvas) StrokeCircle(x, y, r, width float64, clr color.Color) {
	sx, sy := c.geo.Apply(x, y)
	s := c.scale()
	vector.StrokeCircle(c.dst, float32(sx), float32(sy), float32(r*s), float32(width*s), clr, true)
}

func (c *canvas) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	sx, sy := c.geo.Apply(x, y)
	s := c.scale()
	vector.StrokeRect(c.dst, float32(sx), float32(sy), float32(w*s), float32(h*s), float32(width*s), clr, true)
}

// Text keeps the font at its native size; only the anchor is transformed.
func (c *canvas) Text(s string, x, y float64, align arena.Align, clr color.Color) {
	sx, sy := c.geo.Apply(x, y)
	if align == arena.AlignCenter {
		sx -= float64(font.MeasureString(c.face, s).Round()) / 2
	}
	text.Draw(c.dst, s, c.face, int(sx), int(sy), clr)
}
