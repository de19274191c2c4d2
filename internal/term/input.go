package term

import (
	"strings"
	"time"

	"orbs/internal/game/arena"

	"github.com/gdamore/tcell/v2"
)

// Terminals report key presses and auto-repeat but never releases. A key
// counts as held until no repeat has arrived for holdExpiry.
const holdExpiry = 600 * time.Millisecond

// One wheel notch in DOM wheel pixels.
const wheelStep = 100

type action int

const (
	actNone action = iota
	actQuit
	actAck
	actResize
)

type inputAdapter struct {
	held     map[string]time.Time
	dragging bool
}

func newInputAdapter() *inputAdapter {
	return &inputAdapter{held: make(map[string]time.Time)}
}

// cellCenter returns the canvas pixel at the middle of a cell.
func cellCenter(col, row int) (float64, float64) {
	return float64(col)*cellW + cellW/2, float64(row)*cellH + cellH/2
}

func (a *inputAdapter) handle(ev tcell.Event, now time.Time, emit func(arena.Event)) action {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return actResize
	case *tcell.EventKey:
		return a.key(ev, now, emit)
	case *tcell.EventMouse:
		a.mouse(ev, emit)
	}
	return actNone
}

func (a *inputAdapter) key(ev *tcell.EventKey, now time.Time, emit func(arena.Event)) action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit
	case tcell.KeyEnter:
		return actAck
	case tcell.KeyRune:
		k := strings.ToLower(string(ev.Rune()))
		if _, ok := a.held[k]; !ok {
			emit(arena.KeyDown{Key: k})
		}
		a.held[k] = now
	}
	return actNone
}

func (a *inputAdapter) mouse(ev *tcell.EventMouse, emit func(arena.Event)) {
	btn := ev.Buttons()
	switch {
	case btn&tcell.WheelUp != 0:
		emit(arena.Scroll{DeltaY: -wheelStep})
		return
	case btn&tcell.WheelDown != 0:
		emit(arena.Scroll{DeltaY: wheelStep})
		return
	}

	x, y := cellCenter(ev.Position())
	down := btn&tcell.Button1 != 0
	switch {
	case down && !a.dragging:
		a.dragging = true
		emit(arena.TouchStart{X: x, Y: y})
	case down:
		emit(arena.TouchMove{X: x, Y: y})
	case a.dragging:
		a.dragging = false
		emit(arena.TouchEnd{})
	}
}

// expire releases keys whose last repeat is older than holdExpiry.
func (a *inputAdapter) expire(now time.Time, emit func(arena.Event)) {
	for k, at := range a.held {
		if now.Sub(at) >= holdExpiry {
			delete(a.held, k)
			emit(arena.KeyUp{Key: k})
		}
	}
}
