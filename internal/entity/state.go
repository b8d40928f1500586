package entity

import "fmt"

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusDraw    Status = "draw"
	StatusWon     Status = "won"
)

// GameState classifies a board. It is always derived from the board and never stored.
type GameState struct {
	Status Status
	Winner Marker
}

func Ongoing() GameState {
	return GameState{Status: StatusOngoing}
}

func Draw() GameState {
	return GameState{Status: StatusDraw}
}

func Winner(marker Marker) GameState {
	return GameState{Status: StatusWon, Winner: marker}
}

func (that GameState) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// IsTerminal reports whether no further moves should be played.
func (that GameState) IsTerminal() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that GameState) String() string {
	switch that.Status {
	case StatusWon:
		return fmt.Sprintf("%s wins!", that.Winner.Name())
	case StatusDraw:
		return "Draw!"
	default:
		return "Game in progress"
	}
}
