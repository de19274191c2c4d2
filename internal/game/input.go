package game

import (
	"strings"

	"orbs/internal/game/arena"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// One ebiten wheel notch in DOM wheel pixels.
const wheelLineHeight = 100

// inputAdapter turns polled ebiten input into arena events. It tracks one
// touch at a time; further touches are ignored until it lifts.
type inputAdapter struct {
	keys    []ebiten.Key
	touches []ebiten.TouchID
	touchID ebiten.TouchID
	lastX   int
	lastY   int
}

func newInputAdapter() inputAdapter {
	return inputAdapter{touchID: -1}
}

func keyName(k ebiten.Key) string {
	return strings.ToLower(k.String())
}

func (a *inputAdapter) poll(emit func(arena.Event)) {
	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	for _, k := range a.keys {
		emit(arena.KeyDown{Key: keyName(k)})
	}
	a.keys = inpututil.AppendJustReleasedKeys(a.keys[:0])
	for _, k := range a.keys {
		emit(arena.KeyUp{Key: keyName(k)})
	}

	if a.touchID == -1 {
		a.touches = inpututil.AppendJustPressedTouchIDs(a.touches[:0])
		if len(a.touches) > 0 {
			a.touchID = a.touches[0]
			a.lastX, a.lastY = ebiten.TouchPosition(a.touchID)
			emit(arena.TouchStart{X: float64(a.lastX), Y: float64(a.lastY)})
		}
	} else if inpututil.IsTouchJustReleased(a.touchID) {
		a.touchID = -1
		emit(arena.TouchEnd{})
	} else {
		x, y := ebiten.TouchPosition(a.touchID)
		if x != a.lastX || y != a.lastY {
			a.lastX, a.lastY = x, y
			emit(arena.TouchMove{X: float64(x), Y: float64(y)})
		}
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		emit(arena.Scroll{DeltaY: wheelDelta(wy)})
	}
}

// wheelDelta converts ebiten wheel notches (positive = up) to a DOM wheel
// deltaY (positive = down).
func wheelDelta(wy float64) float64 {
	return -wy * wheelLineHeight
}
