package game

import (
	"context"
	"log"
	"time"

	"orbs/internal/game/arena"
	"orbs/internal/netcfg"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/time/rate"
)

const retryDelay = 2 * time.Second

// New creates the game for one session. Cancelling ctx ends the run loop
// on the next tick.
func New(ctx context.Context, cfg *netcfg.Config) *Game {
	id := arena.NewIdentity(cfg.Player.Name, cfg.Player.Color)
	g := &Game{
		ctx:         ctx,
		cfg:         cfg,
		sess:        arena.NewSession(id),
		input:       newInputAdapter(),
		connCh:      make(chan connResult, 4),
		connSt:      stateIdle,
		notifier:    newNotifier(),
		showDebug:   cfg.Debug,
		started:     time.Now(),
		frameErrLog: rate.NewLimiter(rate.Every(time.Second), 1),
		recvErrLog:  rate.NewLimiter(rate.Every(time.Second), 1),
	}
	g.sess.OnWinner(func(name string) { g.notifier.Winner(name) })
	log.Printf("GAME: %s client for %q (spectator=%v)", platform, id.Name, id.Spectator)
	g.retryConnect()
	return g
}

// Run opens the window and blocks until the game stops.
func Run(ctx context.Context, cfg *netcfg.Config) error {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.DefaultTPS)
	return ebiten.RunGame(New(ctx, cfg))
}

// Stop ends the run loop on the next tick.
func (g *Game) Stop() { g.stopped.Store(true) }

// Update is the fixed-rate tick: receive, input, intent.
func (g *Game) Update() error {
	if g.stopped.Load() || g.ctx.Err() != nil {
		g.shutdown()
		return ebiten.Termination
	}

	g.pollConnection()
	g.drainInbox()

	g.input.poll(g.sess.Apply)
	g.hotkeys()

	g.sess.Tick()
	return nil
}

func (g *Game) hotkeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.Stop()
	case inpututil.IsKeyJustPressed(ebiten.KeyF2):
		g.copyInvite()
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		g.showDebug = !g.showDebug
	}
}

// Layout follows the window so the viewport always fills it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (g *Game) shutdown() {
	if g.net != nil {
		_ = g.net.Close()
		g.net = nil
	}
	g.connSt = stateIdle
}
