package entity

// Player is the side whose mark goes on the board next.
type Player int

const (
	PlayerX Player = iota
	PlayerO
)

// Mark returns the cell value the player places.
func (that Player) Mark() Cell {
	if that == PlayerO {
		return MarkO
	}
	return MarkX
}

func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Player) String() string {
	return that.Mark().String()
}

// ParsePlayer accepts "X" or "O".
func ParsePlayer(s string) (Player, bool) {
	switch s {
	case "X":
		return PlayerX, true
	case "O":
		return PlayerO, true
	default:
		return PlayerX, false
	}
}
