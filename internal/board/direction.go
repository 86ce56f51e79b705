package board

// Direction is one of the four compass directions on the board
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a fixed order
var Directions = [4]Direction{Up, Down, Left, Right}

// Opposite returns the direction pointing back the way this one came
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Neighbor returns the cell one step from pos in direction dir on a
// width x height torus. Every cell has exactly one neighbor per direction:
// stepping past an edge wraps to the opposite edge of the same row or column.
func Neighbor(pos Pos, dir Direction, width, height int) Pos {
	switch dir {
	case Up:
		if pos.Row == 1 {
			return Pos{Col: pos.Col, Row: height}
		}
		return Pos{Col: pos.Col, Row: pos.Row - 1}
	case Down:
		if pos.Row == height {
			return Pos{Col: pos.Col, Row: 1}
		}
		return Pos{Col: pos.Col, Row: pos.Row + 1}
	case Left:
		if pos.Col == 1 {
			return Pos{Col: width, Row: pos.Row}
		}
		return Pos{Col: pos.Col - 1, Row: pos.Row}
	default:
		if pos.Col == width {
			return Pos{Col: 1, Row: pos.Row}
		}
		return Pos{Col: pos.Col + 1, Row: pos.Row}
	}
}
