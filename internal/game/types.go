package game

import gnet "orbs/internal/game/net"

// ---- Core enums ----

type connState int

const (
	stateIdle connState = iota
	stateConnecting
	stateConnected
	stateFailed
)

func (s connState) String() string {
	switch s {
	case stateConnecting:
		return "connecting"
	case stateConnected:
		return "connected"
	case stateFailed:
		return "failed"
	}
	return "idle"
}

// Used by async connection
type connResult struct {
	n   *gnet.Conn
	err error
}

// Notifier surfaces the end of a round to the user.
type Notifier interface {
	Winner(name string)
}
