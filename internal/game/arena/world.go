package arena

import (
	"sync/atomic"

	"orbs/shared/protocol"
)

// WorldStore holds the latest snapshot. Store replaces it wholesale, so a
// reader sees either the previous players/food pair or the new one.
type WorldStore struct {
	cur atomic.Pointer[protocol.State]
}

func (w *WorldStore) Load() *protocol.State { return w.cur.Load() }

func (w *WorldStore) Store(s *protocol.State) { w.cur.Store(s) }
