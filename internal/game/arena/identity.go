package arena

import (
	"strings"

	"orbs/shared/protocol"

	"golang.org/x/text/cases"
)

// spectatorColor is what spectators join with; they never get a prompt for it.
const spectatorColor = "#fff"

// Identity is created once per session and never changes.
type Identity struct {
	ID        string
	Name      string
	Color     string
	Spectator bool
}

// NewIdentity builds the local identity. The name "camera" (any case)
// selects spectator mode.
func NewIdentity(name, color string) Identity {
	name = strings.TrimSpace(name)
	id := Identity{
		ID:    protocol.NewID(),
		Name:  name,
		Color: strings.TrimSpace(color),
	}
	if IsSpectatorName(name) {
		id.Spectator = true
		id.Color = spectatorColor
	}
	return id
}

// IsSpectatorName reports whether name selects spectator mode. A Caser
// keeps state, so each call folds with its own.
func IsSpectatorName(name string) bool {
	fold := cases.Fold()
	return fold.String(strings.TrimSpace(name)) == protocol.SpectatorName
}

func (id Identity) join() protocol.Join {
	return protocol.Join{ID: id.ID, Name: id.Name, Color: id.Color}
}
