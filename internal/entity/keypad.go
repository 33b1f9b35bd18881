package entity

const (
	KeyMin = 1
	KeyMax = 9
)

// keypad follows a numeric keypad: 7 8 9 on the top row, 1 2 3 on the bottom.
var keypad = map[int]Position{
	1: {2, 0},
	2: {2, 1},
	3: {2, 2},
	4: {1, 0},
	5: {1, 1},
	6: {1, 2},
	7: {0, 0},
	8: {0, 1},
	9: {0, 2},
}

// PositionFromKey maps a key in [KeyMin, KeyMax] to its board position.
// Keys outside the range map to the top-left cell.
func PositionFromKey(key int) Position {
	if pos, ok := keypad[key]; ok {
		return pos
	}
	return Position{0, 0}
}
