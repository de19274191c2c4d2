package arena

import (
	"fmt"
	"log"
	"time"

	"orbs/shared/protocol"

	"golang.org/x/time/rate"
)

// Bridge is the outbound half of the server connection.
type Bridge interface {
	Send(typ string, v any) error
}

// Session owns all client state: identity, input, camera and the latest
// snapshot. Input, tick, receive and frame all go through it.
type Session struct {
	id     Identity
	input  *InputState
	camera CameraState
	world  WorldStore
	render Renderer

	bridge   Bridge
	onWinner func(name string)
	sendLog  *rate.Limiter
}

func NewSession(id Identity) *Session {
	return &Session{
		id:      id,
		input:   NewInputState(),
		camera:  NewCamera(id.Spectator),
		sendLog: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

func (s *Session) Identity() Identity { return s.id }

func (s *Session) Camera() CameraState { return s.camera }

func (s *Session) Input() *InputState { return s.input }

func (s *Session) World() *WorldStore { return &s.world }

func (s *Session) Snapshot() *protocol.State { return s.world.Load() }

// OnWinner registers the round-over callback. It is called on the
// receiving goroutine and must not block.
func (s *Session) OnWinner(fn func(name string)) { s.onWinner = fn }

// Join registers the identity on a connection and attaches it. A failed
// join leaves the session detached.
func (s *Session) Join(b Bridge) error {
	s.bridge = nil
	if b == nil {
		return nil
	}
	if err := b.Send(protocol.MsgJoin, s.id.join()); err != nil {
		return fmt.Errorf("join: %w", err)
	}
	s.bridge = b
	log.Printf("GAME: joined as %q (spectator=%v)", s.id.Name, s.id.Spectator)
	return nil
}

// Detach drops the connection; ticks keep computing intents but send nothing.
func (s *Session) Detach() { s.bridge = nil }

func (s *Session) Apply(ev Event) {
	switch e := ev.(type) {
	case Scroll:
		s.camera.Scroll(e.DeltaY)
	case TouchStart:
		if s.id.Spectator {
			return
		}
		s.input.Apply(e)
	default:
		s.input.Apply(e)
	}
}

// Tick computes this tick's intent and sends it when non-zero. Spectators
// never move. Sends are fire-and-forget.
func (s *Session) Tick() Intent {
	if s.id.Spectator {
		return Intent{}
	}
	in := ComputeIntent(s.input)
	if in.IsZero() || s.bridge == nil {
		return in
	}
	err := s.bridge.Send(protocol.MsgMove, protocol.Move{ID: s.id.ID, DX: in.DX, DY: in.DY})
	if err != nil && s.sendLog.Allow() {
		log.Printf("GAME: move dropped: %v", err)
	}
	return in
}

// Receive applies one server message. A malformed state keeps the
// previous snapshot. Unknown types are ignored.
func (s *Session) Receive(env protocol.Envelope) error {
	switch env.Type {
	case protocol.MsgState:
		st, err := protocol.DecodeState(env.Data)
		if err != nil {
			return err
		}
		s.world.Store(st)
	case protocol.MsgWinner:
		w, err := protocol.DecodeWinner(env.Data)
		if err != nil {
			return err
		}
		log.Printf("GAME: round won by %q", string(w))
		if s.onWinner != nil {
			s.onWinner(string(w))
		}
	}
	return nil
}

// Frame draws one frame from a single snapshot read.
func (s *Session) Frame(c Canvas) error {
	v := FrameView{
		Camera:   s.camera,
		SelfID:   s.id.ID,
		Snapshot: s.world.Load(),
	}
	if d, ok := s.input.Drag(); ok {
		v.Drag = &d
	}
	return s.render.Frame(c, v)
}
