package game

import (
	"errors"
	"log"
	"time"

	gnet "orbs/internal/game/net"
)

var errConnLost = errors.New("connection lost")

func (g *Game) retryConnect() {
	if g.connectInFlight {
		return
	}
	g.connSt = stateConnecting
	g.connErrMsg = ""
	g.connectInFlight = true
	go g.connectAsync()
}

func (g *Game) connectAsync() {
	// Single in-flight dial guarded by connectInFlight
	n, err := gnet.Dial(g.ctx, g.cfg.Server.URL, g.cfg.Server.Token)
	// send result without blocking forever; drop oldest on overflow
	select {
	case g.connCh <- connResult{n: n, err: err}:
	default:
		select {
		case <-g.connCh:
		default:
		}
		g.connCh <- connResult{n: n, err: err}
	}
}

// pollConnection consumes dial results and schedules redials. The session
// itself never retries; a fresh connection simply gets a fresh join.
func (g *Game) pollConnection() {
	if g.connSt == stateFailed && !g.connectInFlight && time.Now().After(g.connRetryAt) {
		g.retryConnect()
	}

	select {
	case res := <-g.connCh:
		g.connectInFlight = false
		if res.err != nil {
			g.fail(res.err)
			return
		}
		if err := g.sess.Join(res.n); err != nil {
			_ = res.n.Close()
			g.fail(err)
			return
		}
		g.net = res.n
		g.connSt = stateConnected
		log.Println("NET: connected")
	default:
	}
}

func (g *Game) fail(err error) {
	g.connSt = stateFailed
	g.connErrMsg = err.Error()
	g.connRetryAt = time.Now().Add(retryDelay)
	log.Printf("NET: %v (retry in %s)", err, retryDelay)
}

// drainInbox applies every message that arrived since the last tick.
func (g *Game) drainInbox() {
	if g.net == nil {
		return
	}
	for {
		select {
		case env, ok := <-g.net.Inbox():
			if !ok {
				_ = g.net.Close()
				g.net = nil
				g.sess.Detach()
				g.fail(errConnLost)
				return
			}
			if err := g.sess.Receive(env); err != nil && g.recvErrLog.Allow() {
				log.Printf("NET: %s: %v", env.Type, err)
			}
		default:
			return
		}
	}
}
