package arena

import (
	"fmt"
	"image/color"
	"sort"

	"orbs/shared/protocol"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Canvas is the drawing surface a backend provides. Save/Restore bracket
// Scale/Translate the way a 2D context does.
type Canvas interface {
	Size() (w, h float64)
	Clear()
	Save()
	Restore()
	Scale(s float64)
	Translate(x, y float64)
	FillCircle(x, y, r float64, clr color.Color)
	StrokeCircle(x, y, r, width float64, clr color.Color)
	StrokeRect(x, y, w, h, width float64, clr color.Color)
	Text(s string, x, y float64, align Align, clr color.Color)
}

const (
	borderWidth   = 4
	labelGap      = 8
	stickRadius   = 40
	stickDot      = 10
	hudX, hudY    = 10, 20
	joystickWidth = 2
)

// FrameView is everything one frame reads. Snapshot is read exactly once
// per frame by whoever builds the view.
type FrameView struct {
	Camera   CameraState
	SelfID   string
	Snapshot *protocol.State
	Drag     *Drag
}

func (v FrameView) self() *protocol.PlayerView {
	if v.Snapshot == nil {
		return nil
	}
	p, ok := v.Snapshot.Players[v.SelfID]
	if !ok {
		return nil
	}
	return &p
}

// Renderer draws frames. It holds no state between frames.
type Renderer struct{}

// Frame clears the canvas and draws world, overlay and joystick. A
// follow-mode frame without the local player only clears. A panic inside
// the world draw is returned as an error after the transform is restored;
// overlay and joystick are still drawn.
func (Renderer) Frame(c Canvas, v FrameView) error {
	c.Clear()

	w, h := c.Size()
	self := v.self()
	tr, ok := ComputeTransform(v.Camera, self, w, h)
	if !ok {
		return nil
	}

	err := drawWorld(c, tr, v.Snapshot)

	switch {
	case v.Camera.Mode == Free:
		c.Text(fmt.Sprintf("Camera | Zoom %.2f", v.Camera.Zoom), hudX, hudY, AlignLeft, colorLabel)
	case self != nil:
		c.Text(fmt.Sprintf("Score: %d", self.Score), hudX, hudY, AlignLeft, colorLabel)
	}

	if v.Drag != nil {
		c.StrokeCircle(v.Drag.OriginX, v.Drag.OriginY, stickRadius, joystickWidth, color.White)
		c.FillCircle(v.Drag.CurrentX, v.Drag.CurrentY, stickDot, color.White)
	}
	return err
}

func drawWorld(c Canvas, tr Transform, s *protocol.State) (err error) {
	c.Save()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("draw world: %v", r)
		}
		c.Restore()
	}()
	c.Scale(tr.Scale)
	c.Translate(tr.TranslateX, tr.TranslateY)

	const e = protocol.WorldHalfExtent
	c.StrokeRect(-e, -e, 2*e, 2*e, borderWidth, colorBorder)

	if s == nil {
		return nil
	}
	for _, f := range s.Food {
		c.FillCircle(f.X, f.Y, f.R, colorFood)
	}
	for _, id := range sortedIDs(s.Players) {
		p := s.Players[id]
		c.FillCircle(p.X, p.Y, p.R, ParseColor(p.Color))
		c.Text(p.Name, p.X, p.Y-p.R-labelGap, AlignCenter, colorLabel)
	}
	return nil
}

func sortedIDs(m map[string]protocol.PlayerView) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
