package entity

// Marker is the symbol a player places on the board. NoMarker is the zero value and only ever
// marks an empty cell.
type Marker uint8

const (
	NoMarker Marker = iota
	Cross
	Circle
)

// Other returns the opposing marker.
func (m Marker) Other() Marker {
	switch m {
	case Cross:
		return Circle
	case Circle:
		return Cross
	default:
		return NoMarker
	}
}

// String returns the single-character symbol shown on the board.
func (m Marker) String() string {
	switch m {
	case Cross:
		return "X"
	case Circle:
		return "O"
	default:
		return ""
	}
}

// Name returns the player name used when announcing a result.
func (m Marker) Name() string {
	switch m {
	case Cross:
		return "Cross"
	case Circle:
		return "Circle"
	default:
		return "Nobody"
	}
}

func (m Marker) IsPlayer() bool {
	return m == Cross || m == Circle
}
