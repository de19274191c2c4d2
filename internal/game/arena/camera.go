package arena

import (
	"math"

	"orbs/shared/protocol"
)

type CameraMode int

const (
	Follow CameraMode = iota
	Free
)

func (m CameraMode) String() string {
	if m == Free {
		return "free"
	}
	return "follow"
}

const (
	MinZoom = 0.1
	MaxZoom = 1.0

	// zoom change per unit of DOM wheel delta
	zoomPerScroll = 0.001

	freeStartZoom = 0.2
)

// CameraState's mode is fixed for the session; only zoom changes, and
// only in Free mode.
type CameraState struct {
	Mode CameraMode
	Zoom float64
}

func NewCamera(spectator bool) CameraState {
	if spectator {
		return CameraState{Mode: Free, Zoom: freeStartZoom}
	}
	return CameraState{Mode: Follow, Zoom: 1}
}

// Scroll applies a wheel delta. Scrolling up (negative DeltaY) zooms in.
func (c *CameraState) Scroll(deltaY float64) {
	if c.Mode != Free {
		return
	}
	c.Zoom = clamp(c.Zoom-deltaY*zoomPerScroll, MinZoom, MaxZoom)
}

// Transform maps world coordinates to screen: screen = Scale * (world + Translate).
type Transform struct {
	Scale                  float64
	TranslateX, TranslateY float64
}

func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.Scale * (x + t.TranslateX), t.Scale * (y + t.TranslateY)
}

// ComputeTransform returns ok=false in Follow mode when self is nil; the
// caller must then skip the world draw for this frame.
func ComputeTransform(cam CameraState, self *protocol.PlayerView, viewportW, viewportH float64) (Transform, bool) {
	if cam.Mode == Free {
		z := cam.Zoom
		return Transform{Scale: z, TranslateX: viewportW / 2 / z, TranslateY: viewportH / 2 / z}, true
	}
	if self == nil {
		return Transform{}, false
	}
	return Transform{Scale: 1, TranslateX: viewportW/2 - self.X, TranslateY: viewportH/2 - self.Y}, true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
