package manager

import (
	"arcade-snake/game/entity"
	"arcade-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	SelfCollision
	FoodCollision
)

func (c CollisionType) String() string {
	switch c {
	case SelfCollision:
		return "self"
	case FoodCollision:
		return "food"
	default:
		return "none"
	}
}

// CollisionManager classifies the cell a snake is about to enter. The grid wraps,
// so there are no walls to hit.
type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision checks pos against the body before the snake moves. Running into
// the body wins over reaching food.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake, food types.Point) CollisionType {
	if snake.CollidesWith(pos) {
		return SelfCollision
	}
	if cm.IsFoodCollision(pos, food) {
		return FoodCollision
	}
	return NoCollision
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// ValidateSpawnPosition checks if a position is free for placing food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, occupied map[types.Point]struct{}) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	_, taken := occupied[pos]
	return !taken
}
