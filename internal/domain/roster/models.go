package roster

// Position classifies where a player lines up for the team draw.
type Position string

const (
	PositionDefender   Position = "ZAG"
	PositionMidfielder Position = "MEI"
	PositionForward    Position = "ATA"
	// PositionOther marks players who only ever join the overflow team:
	// goalkeepers and anyone whose sheet position is unrecognized.
	PositionOther Position = "OUT"
)

// Drafted reports whether the position competes for a slot on one of
// the four drawn teams.
func (p Position) Drafted() bool {
	switch p {
	case PositionDefender, PositionMidfielder, PositionForward:
		return true
	}
	return false
}

// Player is the canonical roster entry exposed by the service and
// consumed by the draw engine.
type Player struct {
	Name     string   `json:"name"`
	Position Position `json:"position"`
	Image    string   `json:"image,omitempty"`
}

// ConstraintGroup lists players that must not share one of the four
// drawn teams. Overflow placement is unconstrained.
type ConstraintGroup []string

// Contains reports whether name belongs to the group.
func (g ConstraintGroup) Contains(name string) bool {
	for _, member := range g {
		if member == name {
			return true
		}
	}
	return false
}

// Response is the payload returned by /players.
type Response struct {
	Players []Player `json:"players"`
	Count   int      `json:"count"`
}

// NewResponse builds a /players payload.
func NewResponse(players []Player) Response {
	return Response{
		Players: players,
		Count:   len(players),
	}
}
