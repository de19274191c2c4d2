package protocol

const (
	// Client tick cadence; one move per tick at most.
	TickRate = 60

	// World border drawn by clients, in world units.
	WorldHalfExtent = 1000

	// Name that turns a join into a spectator session.
	SpectatorName = "camera"
)

// Message types carried in Envelope.Type.
const (
	MsgJoin   = "join"
	MsgMove   = "move"
	MsgState  = "state"
	MsgWinner = "winner"
)
