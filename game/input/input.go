package input

import (
	"arcade-snake/game/entity"
	"arcade-snake/game/types"
)

// Key is one of the four directional keys the game listens to.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

// Keys in the order they are checked. Later keys win when several are pressed in one frame.
var Keys = []Key{KeyUp, KeyDown, KeyLeft, KeyRight}

func (k Key) Direction() types.Direction {
	switch k {
	case KeyUp:
		return types.UP
	case KeyDown:
		return types.DOWN
	case KeyLeft:
		return types.LEFT
	case KeyRight:
		return types.RIGHT
	default:
		return types.NONE
	}
}

func (k Key) String() string {
	return k.Direction().String()
}

// KeySource tells whether a key went down during the current frame.
type KeySource interface {
	IsKeyPressed(k Key) bool
}

// Guard is the direction the snake actually travelled on its last move.
// Turning to its opposite would run the head into the neck.
type Guard struct {
	last types.Direction
}

// GuardFor reads the guard from body geometry, never from the queued direction,
// so a turn queued this frame cannot be reversed before it is applied.
func GuardFor(snake *entity.Snake) Guard {
	neck, ok := snake.Neck()
	if !ok {
		return Guard{last: types.NONE}
	}
	return Guard{last: types.DirectionOf(neck)}
}

// Allows reports whether dir may be taken.
func (g Guard) Allows(dir types.Direction) bool {
	if g.last == types.NONE {
		return true
	}
	return dir != g.last.Opposite()
}

// Apply checks each key in order and sets the snake direction for every fresh
// press the guard allows. Returns the direction in effect afterwards.
func Apply(keys KeySource, guard Guard, snake *entity.Snake) types.Direction {
	for _, k := range Keys {
		if keys.IsKeyPressed(k) && guard.Allows(k.Direction()) {
			snake.SetDirection(k.Direction())
		}
	}
	return snake.Direction
}

// NoKeys never reports a press.
type NoKeys struct{}

func (NoKeys) IsKeyPressed(Key) bool { return false }

// Pressed is a fixed set of keys held for one frame.
type Pressed map[Key]bool

func (p Pressed) IsKeyPressed(k Key) bool { return p[k] }
