package arena

import "math"

// Intent is the movement direction for one tick: a unit vector or exactly zero.
type Intent struct {
	DX, DY float64
}

func (i Intent) IsZero() bool { return i.DX == 0 && i.DY == 0 }

// RawIntent sums the held WASD keys; an active drag replaces that sum
// with its raw displacement.
func RawIntent(in *InputState) (dx, dy float64) {
	if in.Pressed("w") {
		dy--
	}
	if in.Pressed("s") {
		dy++
	}
	if in.Pressed("a") {
		dx--
	}
	if in.Pressed("d") {
		dx++
	}
	if d, ok := in.Drag(); ok {
		dx = d.CurrentX - d.OriginX
		dy = d.CurrentY - d.OriginY
	}
	return dx, dy
}

func ComputeIntent(in *InputState) Intent {
	return normalize(RawIntent(in))
}

func normalize(dx, dy float64) Intent {
	m := math.Hypot(dx, dy)
	if m == 0 {
		return Intent{}
	}
	return Intent{DX: dx / m, DY: dy / m}
}
