package arena

import "strings"

// Event is one discrete input signal. Device adapters translate raw
// keyboard/touch/wheel input into these and feed them to Session.Apply.
type Event interface{ isEvent() }

type KeyDown struct{ Key string }
type KeyUp struct{ Key string }
type TouchStart struct{ X, Y float64 }
type TouchMove struct{ X, Y float64 }
type TouchEnd struct{}

// Scroll uses the DOM wheel convention: positive DeltaY scrolls down.
type Scroll struct{ DeltaY float64 }

func (KeyDown) isEvent()    {}
func (KeyUp) isEvent()      {}
func (TouchStart) isEvent() {}
func (TouchMove) isEvent()  {}
func (TouchEnd) isEvent()   {}
func (Scroll) isEvent()     {}

// Drag is the active virtual-joystick gesture.
type Drag struct {
	OriginX, OriginY   float64
	CurrentX, CurrentY float64
}

// InputState is overwritten in place by events and read once per tick.
type InputState struct {
	keys map[string]bool
	drag *Drag
}

func NewInputState() *InputState {
	return &InputState{keys: make(map[string]bool)}
}

// Apply folds one event into the state. Scroll is not input state and is
// ignored here.
func (in *InputState) Apply(ev Event) {
	switch e := ev.(type) {
	case KeyDown:
		in.keys[strings.ToLower(e.Key)] = true
	case KeyUp:
		in.keys[strings.ToLower(e.Key)] = false
	case TouchStart:
		// only the first touch drives the joystick
		if in.drag != nil {
			return
		}
		in.drag = &Drag{OriginX: e.X, OriginY: e.Y, CurrentX: e.X, CurrentY: e.Y}
	case TouchMove:
		if in.drag == nil {
			return
		}
		in.drag.CurrentX, in.drag.CurrentY = e.X, e.Y
	case TouchEnd:
		in.drag = nil
	}
}

func (in *InputState) Pressed(key string) bool {
	return in.keys[strings.ToLower(key)]
}

// Drag returns a copy of the active gesture.
func (in *InputState) Drag() (Drag, bool) {
	if in.drag == nil {
		return Drag{}, false
	}
	return *in.drag, true
}
