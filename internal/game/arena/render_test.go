package arena

import (
	"strings"
	"testing"

	"orbs/shared/protocol"
)

func testSnapshot() *protocol.State {
	return &protocol.State{
		Players: map[string]protocol.PlayerView{
			"me":  {X: 100, Y: 200, R: 20, Color: "red", Name: "me", Score: 7},
			"bob": {X: -50, Y: 0, R: 30, Color: "#00ff00", Name: "bob"},
		},
		Food: []protocol.FoodView{{X: 5, Y: 5, R: 6}, {X: -5, Y: 9, R: 6}},
	}
}

func TestFrameFollowOrder(t *testing.T) {
	c := newRecCanvas(800, 600)
	err := Renderer{}.Frame(c, FrameView{Camera: NewCamera(false), SelfID: "me", Snapshot: testSnapshot()})
	if err != nil {
		t.Fatalf("frame: %v", err)
	}
	want := []string{
		"clear",
		"save",
		"scale 1",
		"translate 300 100",
		"rect -1000 -1000 2000 2000",
		"fill 5 5 6",
		"fill -5 9 6",
		"fill -50 0 30",
		`text "bob" -50 -38`,
		"fill 100 200 20",
		`text "me" 100 172`,
		"restore",
		`text "Score: 7" 10 20`,
	}
	if strings.Join(c.calls, "\n") != strings.Join(want, "\n") {
		t.Fatalf("draw calls:\n%s\nwant:\n%s", strings.Join(c.calls, "\n"), strings.Join(want, "\n"))
	}
}

func TestFrameWithoutSelfOnlyClears(t *testing.T) {
	s := testSnapshot()
	delete(s.Players, "me")
	c := newRecCanvas(800, 600)
	d := &Drag{OriginX: 1, OriginY: 1, CurrentX: 5, CurrentY: 5}
	if err := (Renderer{}).Frame(c, FrameView{Camera: NewCamera(false), SelfID: "me", Snapshot: s, Drag: d}); err != nil {
		t.Fatalf("missing self is not an error: %v", err)
	}
	if len(c.calls) != 1 || c.calls[0] != "clear" {
		t.Fatalf("want only clear, got %v", c.calls)
	}

	c = newRecCanvas(800, 600)
	if err := (Renderer{}).Frame(c, FrameView{Camera: NewCamera(false), SelfID: "me"}); err != nil {
		t.Fatalf("nil snapshot: %v", err)
	}
	if len(c.calls) != 1 {
		t.Fatalf("want only clear before first snapshot, got %v", c.calls)
	}
}

func TestFrameSpectatorHUD(t *testing.T) {
	c := newRecCanvas(800, 600)
	err := Renderer{}.Frame(c, FrameView{Camera: NewCamera(true), SelfID: "cam", Snapshot: testSnapshot()})
	if err != nil {
		t.Fatalf("frame: %v", err)
	}
	if c.index("scale 0.2") < 0 || c.index("translate 2000 1500") < 0 {
		t.Fatalf("want free transform, got %v", c.calls)
	}
	if c.index(`text "Camera | Zoom 0.20" 10 20`) < 0 {
		t.Fatalf("want camera HUD, got %v", c.calls)
	}
	for _, s := range c.calls {
		if strings.HasPrefix(s, `text "Score`) {
			t.Fatalf("spectator frame must not show a score")
		}
	}
}

func TestFrameJoystickAfterRestore(t *testing.T) {
	c := newRecCanvas(800, 600)
	d := &Drag{OriginX: 100, OriginY: 100, CurrentX: 130, CurrentY: 140}
	if err := (Renderer{}).Frame(c, FrameView{Camera: NewCamera(false), SelfID: "me", Snapshot: testSnapshot(), Drag: d}); err != nil {
		t.Fatalf("frame: %v", err)
	}
	ring, dot, restore := c.index("ring 100 100 40"), c.index("fill 130 140 10"), c.index("restore")
	if ring < 0 || dot < 0 {
		t.Fatalf("want joystick drawn, got %v", c.calls)
	}
	if ring < restore || dot < restore {
		t.Fatalf("joystick must be drawn in screen space after restore")
	}
}

func TestFrameRecoversWorldPanic(t *testing.T) {
	c := newRecCanvas(800, 600)
	c.panicOn = "fill 5 5 6"
	err := Renderer{}.Frame(c, FrameView{Camera: NewCamera(false), SelfID: "me", Snapshot: testSnapshot()})
	if err == nil {
		t.Fatalf("want error from panicking draw")
	}
	if c.depth != 0 {
		t.Fatalf("transform must be restored, depth=%d", c.depth)
	}
	if c.index(`text "Score: 7" 10 20`) < c.index("restore") {
		t.Fatalf("overlay must still be drawn after restore: %v", c.calls)
	}
}
