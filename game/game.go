package game

import (
	"time"

	"arcade-snake/game/entity"
	"arcade-snake/game/input"
	"arcade-snake/game/manager"
	"arcade-snake/game/timer"
	"arcade-snake/game/types"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Status of a session. A session only ever goes from Running to Terminated.
type Status int

const (
	Running Status = iota
	Terminated
)

func (s Status) String() string {
	if s == Terminated {
		return "terminated"
	}
	return "running"
}

// Canvas is what the game draws on. EndFrame presents the frame and waits for the
// next one; it is the only place the loop gives up control.
type Canvas interface {
	BeginFrame()
	Clear(c types.Color)
	DrawCircle(x, y, radius float32, c types.Color)
	EndFrame()
}

// Backend is a window: something to draw on, keys to read, and a close button.
type Backend interface {
	Canvas
	input.KeySource
	ShouldClose() bool
}

type Options struct {
	Grid     types.Grid
	Clock    timer.Clock
	Interval time.Duration
	Policy   timer.Policy
	Seed     uint64
	Start    types.Point
}

// DefaultOptions is the classic 32x32 game driven by the real clock.
func DefaultOptions() Options {
	return Options{
		Grid:     types.GridFromWindow(types.WindowWidth, types.WindowHeight, types.CellSize),
		Clock:    timer.NewMonotonicClock(),
		Interval: timer.MoveInterval,
		Policy:   timer.DropOvershoot,
		Seed:     uint64(time.Now().UnixNano()),
	}
}

// Game owns the whole session state. It is not safe for concurrent use.
type Game struct {
	Grid         types.Grid
	snake        *entity.Snake
	timer        *timer.MoveTimer
	collisionMgr *manager.CollisionManager
	foodManager  *manager.FoodManager
	stateManager *manager.StateManager
	status       Status
}

func NewGame(opts Options) *Game {
	if opts.Clock == nil {
		opts.Clock = timer.NewMonotonicClock()
	}
	if opts.Interval <= 0 {
		opts.Interval = timer.MoveInterval
	}
	collisionMgr := manager.NewCollisionManager(opts.Grid)
	return &Game{
		Grid:         opts.Grid,
		snake:        entity.NewSnake(opts.Grid.Wrap(opts.Start)),
		timer:        timer.NewMoveTimer(opts.Clock, opts.Interval, opts.Policy),
		collisionMgr: collisionMgr,
		foodManager:  manager.NewFoodManager(opts.Grid, collisionMgr, opts.Seed),
		stateManager: manager.NewStateManager(),
		status:       Running,
	}
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

func (g *Game) GetFood() types.Point {
	return g.foodManager.GetFood()
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) Stats() manager.SessionStats {
	return g.stateManager.GetStats()
}

// Frame runs one loop iteration: clear, read input, maybe move, draw, present.
// A collision ends the session but the frame is still drawn.
func (g *Game) Frame(keys input.KeySource, canvas Canvas) error {
	canvas.BeginFrame()
	canvas.Clear(types.BackgroundColor)

	g.timer.Sample()

	// Guard comes from the body before anything moves
	guard := input.GuardFor(g.snake)
	input.Apply(keys, guard, g.snake)

	drawCell(canvas, g.GetFood(), types.FruitColor)

	var err error
	if g.timer.Tick() {
		err = g.Update()
	}

	for _, part := range g.snake.Body {
		drawCell(canvas, part, types.SnakeColor)
	}

	g.stateManager.AddFrame()
	canvas.EndFrame()
	return err
}

// Update moves the snake one cell.
func (g *Game) Update() error {
	if g.status == Terminated {
		return nil
	}

	// Calculate new head position
	newHead := g.snake.Step(g.Grid)

	// Check against the body before it moves
	collisionType := g.collisionMgr.CheckCollision(newHead, g.snake, g.GetFood())
	if collisionType == manager.SelfCollision {
		g.status = Terminated
	}

	grew := g.collisionMgr.IsFoodCollision(newHead, g.GetFood())
	g.snake.Advance(newHead, grew)
	g.stateManager.AddTick(g.snake.Len())

	if grew {
		g.stateManager.UpdateScore(g.snake.Len())
		if _, err := g.foodManager.Relocate(g.snake.Body); err != nil {
			g.status = Terminated
			return errors.Wrap(err, "relocate food")
		}
	}
	return nil
}

// Run drives frames until the snake hits itself or the window is closed.
func (g *Game) Run(backend Backend) error {
	logger := g.stateManager.Logger()
	logger.WithFields(log.Fields{
		"width":  g.Grid.Width,
		"height": g.Grid.Height,
	}).Info("session started")

	for g.status == Running {
		if backend.ShouldClose() {
			g.stateManager.End("window closed")
			return nil
		}
		if err := g.Frame(backend, backend); err != nil {
			g.stateManager.End("grid full")
			logger.WithError(err).Error("session aborted")
			return err
		}
	}

	g.stateManager.End("self collision")
	return nil
}

func drawCell(canvas Canvas, p types.Point, c types.Color) {
	x, y := types.CellCenter(p)
	canvas.DrawCircle(x, y, types.CellSize/2, c)
}
