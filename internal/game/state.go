package game

import (
	"context"
	"sync/atomic"
	"time"

	"orbs/internal/game/arena"
	gnet "orbs/internal/game/net"
	"orbs/internal/netcfg"

	"golang.org/x/time/rate"
)

type Game struct {
	ctx     context.Context
	cfg     *netcfg.Config
	sess    *arena.Session
	input   inputAdapter
	stopped atomic.Bool

	// connection/boot
	net             *gnet.Conn
	connCh          chan connResult
	connSt          connState
	connErrMsg      string
	connRetryAt     time.Time
	connectInFlight bool

	notifier Notifier

	// debug overlay (F3)
	showDebug bool
	started   time.Time

	frameErrLog *rate.Limiter
	recvErrLog  *rate.Limiter
}
