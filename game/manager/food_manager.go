package manager

import (
	"arcade-snake/game/types"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// ErrGridFull is returned when every cell is taken and no food can be placed.
var ErrGridFull = errors.New("no free cell left for food")

type FoodManager struct {
	grid         types.Grid
	food         types.Point
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	return &FoodManager{
		grid: grid,
		// Initial food uses the grid width for both axes
		food:         grid.Wrap(types.Point{X: grid.Width / 2, Y: grid.Width / 2}),
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

// Relocate picks a new random cell for the food that is not in excluded.
// Sampling is retried until a free cell comes up; a full grid is reported as
// ErrGridFull rather than retried forever.
func (fm *FoodManager) Relocate(excluded []types.Point) (types.Point, error) {
	food, err := fm.GenerateFood(excluded)
	if err != nil {
		return fm.food, err
	}
	fm.food = food
	return food, nil
}

func (fm *FoodManager) GenerateFood(excluded []types.Point) (types.Point, error) {
	occupied := make(map[types.Point]struct{}, len(excluded))
	for _, p := range excluded {
		if fm.grid.Contains(p) {
			occupied[p] = struct{}{}
		}
	}
	if len(occupied) >= fm.grid.Cells() {
		return types.Point{}, errors.Wrapf(ErrGridFull, "%dx%d grid", fm.grid.Width, fm.grid.Height)
	}

	for {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}

		if fm.collisionMgr.ValidateSpawnPosition(food, occupied) {
			return food, nil
		}
	}
}
