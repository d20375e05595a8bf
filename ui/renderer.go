package ui

import (
	"arcade-snake/game/input"
	"arcade-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var raylibKeys = map[input.Key]int32{
	input.KeyUp:    rl.KeyUp,
	input.KeyDown:  rl.KeyDown,
	input.KeyLeft:  rl.KeyLeft,
	input.KeyRight: rl.KeyRight,
}

// Window draws with raylib into a real window and reads the arrow keys.
type Window struct {
	screenWidth  int32
	screenHeight int32
}

// NewWindow opens the window. Call Close when done.
func NewWindow(width, height int, title string, fps int) *Window {
	rl.InitWindow(int32(width), int32(height), title)
	rl.SetTargetFPS(int32(fps))
	return &Window{
		screenWidth:  int32(rl.GetScreenWidth()),
		screenHeight: int32(rl.GetScreenHeight()),
	}
}

func (w *Window) Close() {
	rl.CloseWindow()
}

func (w *Window) Size() (int, int) {
	return int(w.screenWidth), int(w.screenHeight)
}

func (w *Window) BeginFrame() {
	rl.BeginDrawing()
}

func (w *Window) Clear(c types.Color) {
	rl.ClearBackground(toRaylib(c))
}

func (w *Window) DrawCircle(x, y, radius float32, c types.Color) {
	rl.DrawCircleV(rl.Vector2{X: x, Y: y}, radius, toRaylib(c))
}

// EndFrame presents the frame; raylib waits here for the target frame rate.
func (w *Window) EndFrame() {
	rl.EndDrawing()
}

func (w *Window) IsKeyPressed(k input.Key) bool {
	key, ok := raylibKeys[k]
	return ok && rl.IsKeyPressed(key)
}

func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose()
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
