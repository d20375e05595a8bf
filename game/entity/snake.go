package entity

import (
	"arcade-snake/game/types"
)

// Snake keeps its body head-first: Body[0] is the head, the last element the tail.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: types.RIGHT, // Start moving right
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Step returns the cell the head would move to next. The snake is not changed.
func (s *Snake) Step(grid types.Grid) types.Point {
	return grid.Wrap(s.GetHead().Add(s.Direction.ToPoint()))
}

// Advance puts newHead in front of the body. Unless the snake grew the tail is dropped.
func (s *Snake) Advance(newHead types.Point, grew bool) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead
	if !grew {
		s.RemoveTail()
	}
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// CollidesWith reports whether pos is occupied by any segment of the current body.
func (s *Snake) CollidesWith(pos types.Point) bool {
	for _, part := range s.Body {
		if pos == part {
			return true
		}
	}
	return false
}

// Neck returns the vector of the last move, from the second segment to the head.
// A single segment snake has no neck. A move across a wrapped edge spans the whole
// grid and is folded back into a unit step.
func (s *Snake) Neck() (types.Point, bool) {
	if len(s.Body) < 2 {
		return types.Point{}, false
	}
	d := s.Body[0].Sub(s.Body[1])
	return types.Point{X: unwrap(d.X), Y: unwrap(d.Y)}, true
}

func unwrap(v int) int {
	switch {
	case v > 1:
		return -1
	case v < -1:
		return 1
	default:
		return v
	}
}

func (s *Snake) SetDirection(dir types.Direction) {
	if dir == types.NONE {
		return
	}
	s.Direction = dir
}
