package types

import "fmt"

// Game constants
const (
	CellSize     = 16 // Pixels per grid cell
	WindowWidth  = 512
	WindowHeight = 512
	WindowTitle  = "snake"
)

// Point is a cell on the grid. Also used for unit direction vectors.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// GridFromWindow converts window pixel dimensions into whole cells.
func GridFromWindow(pixelWidth, pixelHeight, cellSize int) Grid {
	return Grid{
		Width:  pixelWidth / cellSize,
		Height: pixelHeight / cellSize,
	}
}

// Wrap moves a position that left the grid to the opposite edge.
func (g Grid) Wrap(p Point) Point {
	if p.X > g.Width-1 {
		p.X = 0
	} else if p.X < 0 {
		p.X = g.Width - 1
	}
	if p.Y > g.Height-1 {
		p.Y = 0
	} else if p.Y < 0 {
		p.Y = g.Height - 1
	}
	return p
}

func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Cells returns the number of cells on the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// CellCenter returns the pixel center of a cell.
func CellCenter(p Point) (float32, float32) {
	return float32(p.X*CellSize + CellSize/2), float32(p.Y*CellSize + CellSize/2)
}

type Color struct {
	R, G, B, A uint8
}

var (
	BackgroundColor = Color{R: 34, G: 32, B: 52, A: 255}
	FruitColor      = Color{R: 255, G: 0, B: 79, A: 255}
	SnakeColor      = Color{R: 255, G: 253, B: 229, A: 255}
)
