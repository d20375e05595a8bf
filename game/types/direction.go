package types

// Direction is one of the four cardinal directions
type Direction int

const (
	NONE  Direction = iota // 0
	UP                     // 1
	DOWN                   // 2
	LEFT                   // 3
	RIGHT                  // 4
)

// ToPoint converts a Direction into a movement vector
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1} // screen Y grows downwards
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	case RIGHT:
		return Point{X: 1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the 180-degree reversal of d.
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	case RIGHT:
		return LEFT
	default:
		return NONE
	}
}

// DirectionOf maps a unit vector back to its Direction. Anything else is NONE.
func DirectionOf(p Point) Direction {
	switch p {
	case Point{X: 0, Y: -1}:
		return UP
	case Point{X: 0, Y: 1}:
		return DOWN
	case Point{X: -1, Y: 0}:
		return LEFT
	case Point{X: 1, Y: 0}:
		return RIGHT
	default:
		return NONE
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	case RIGHT:
		return "right"
	default:
		return "none"
	}
}
