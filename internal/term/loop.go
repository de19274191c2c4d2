package term

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"orbs/internal/game/arena"
	"orbs/shared/protocol"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/time/rate"
)

const frameInterval = time.Second / 30

var colorBanner = colornames.Yellow

// ErrDisconnected is returned by Run when the server inbox closes.
var ErrDisconnected = errors.New("term: server connection closed")

// Loop drives one session on a terminal screen. Everything the session
// owns is touched only from the goroutine running Run.
type Loop struct {
	screen tcell.Screen
	canvas *Canvas
	sess   *arena.Session
	input  *inputAdapter
	banner string

	now    func() time.Time
	errLog *rate.Limiter
}

func NewLoop(s tcell.Screen, sess *arena.Session) *Loop {
	l := &Loop{
		screen: s,
		canvas: NewCanvas(s),
		sess:   sess,
		input:  newInputAdapter(),
		now:    time.Now,
		errLog: rate.NewLimiter(rate.Every(time.Second), 1),
	}
	sess.OnWinner(func(name string) {
		log.Printf("TERM: round over, winner %q", name)
		l.banner = fmt.Sprintf("Winner: %s  (Enter to dismiss)", name)
	})
	return l
}

// Run ticks at the protocol rate and draws at ~30 Hz until ctx is
// cancelled, the user quits, or inbox closes.
func (l *Loop) Run(ctx context.Context, inbox <-chan protocol.Envelope) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := l.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	tick := time.NewTicker(time.Second / protocol.TickRate)
	defer tick.Stop()
	frame := time.NewTicker(frameInterval)
	defer frame.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if l.event(ev) {
				return nil
			}
		case env, ok := <-inbox:
			if !ok {
				return ErrDisconnected
			}
			l.receive(env)
		case <-tick.C:
			l.tick()
		case <-frame.C:
			l.draw()
		}
	}
}

// event reports whether the user asked to quit.
func (l *Loop) event(ev tcell.Event) bool {
	switch l.input.handle(ev, l.now(), l.sess.Apply) {
	case actQuit:
		return true
	case actAck:
		l.banner = ""
	case actResize:
		l.screen.Sync()
	}
	return false
}

func (l *Loop) receive(env protocol.Envelope) {
	if err := l.sess.Receive(env); err != nil && l.errLog.Allow() {
		log.Printf("TERM: %v", err)
	}
}

func (l *Loop) tick() {
	l.input.expire(l.now(), l.sess.Apply)
	l.sess.Tick()
}

func (l *Loop) draw() {
	if err := l.sess.Frame(l.canvas); err != nil && l.errLog.Allow() {
		log.Printf("TERM: frame: %v", err)
	}
	if l.banner != "" {
		w, h := l.canvas.Size()
		l.canvas.Text(l.banner, w/2, h/2, arena.AlignCenter, colorBanner)
	}
	l.screen.Show()
}
