package ui

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"arcade-snake/game"
	"arcade-snake/game/input"
	"arcade-snake/game/timer"
	"arcade-snake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rgba(c types.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func pixel(c *ImageCanvas, x, y int) color.RGBA {
	r, g, b, a := c.Image().At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestImageCanvasDrawsCircles(t *testing.T) {
	c := NewImageCanvas(64, 64)
	c.BeginFrame()
	c.Clear(types.BackgroundColor)
	x, y := types.CellCenter(types.Point{X: 1, Y: 1})
	c.DrawCircle(x, y, 8, types.FruitColor)
	c.EndFrame()

	assert.Equal(t, rgba(types.FruitColor), pixel(c, 24, 24))
	assert.Equal(t, rgba(types.BackgroundColor), pixel(c, 2, 2))
	assert.Equal(t, rgba(types.BackgroundColor), pixel(c, 60, 60))
	assert.Equal(t, 1, c.Frames())
}

func TestImageCanvasSavePNG(t *testing.T) {
	c := NewImageCanvas(32, 32)
	c.Clear(types.BackgroundColor)

	path := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, c.SavePNG(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.True(t, info.Size() > 0)

	require.Error(t, c.SavePNG(filepath.Join(t.TempDir(), "missing", "frame.png")))
}

func TestParseScript(t *testing.T) {
	script, err := ParseScript(" 3:up, 7:Left,7:down ")
	require.NoError(t, err)
	require.Equal(t, Script{
		3: input.Pressed{input.KeyUp: true},
		7: input.Pressed{input.KeyLeft: true, input.KeyDown: true},
	}, script)

	script, err = ParseScript("")
	require.NoError(t, err)
	require.Empty(t, script)

	for _, bad := range []string{"up", "x:up", "-1:up", "3:jump", "3:"} {
		_, err := ParseScript(bad)
		require.Error(t, err, bad)
	}
}

func TestHeadlessBackend(t *testing.T) {
	clock := timer.NewManualClock()
	h := NewHeadless(64, 64, 50, 3, clock, Script{1: input.Pressed{input.KeyUp: true}})

	require.False(t, h.IsKeyPressed(input.KeyUp))
	h.EndFrame()
	require.True(t, h.IsKeyPressed(input.KeyUp))
	require.False(t, h.ShouldClose())
	h.EndFrame()
	h.EndFrame()
	require.True(t, h.ShouldClose())
	require.Equal(t, 3, h.Frame())
	require.Equal(t, 3, h.Frames())
	require.Equal(t, 60*time.Millisecond, clock.Now())
}

func TestHeadlessGame(t *testing.T) {
	clock := timer.NewManualClock()
	grid := types.GridFromWindow(types.WindowWidth, types.WindowHeight, types.CellSize)
	g := game.NewGame(game.Options{
		Grid:   grid,
		Clock:  clock,
		Policy: timer.DropOvershoot,
		Seed:   3,
	})
	h := NewHeadless(types.WindowWidth, types.WindowHeight, 60, 60, clock, Script{
		0: input.Pressed{input.KeyDown: true},
	})

	require.NoError(t, g.Run(h))
	require.Equal(t, game.Running, g.Status())
	require.Equal(t, 60, g.Stats().Frames)

	// at 60fps the drop policy moves on every sixth frame: nine moves down
	head := g.GetSnake().GetHead()
	require.Equal(t, types.Point{X: 0, Y: 9}, head)
	require.Equal(t, 9, g.Stats().Ticks)

	x, y := types.CellCenter(head)
	require.Equal(t, rgba(types.SnakeColor), pixel(h.ImageCanvas, int(x), int(y)))
	fx, fy := types.CellCenter(g.GetFood())
	require.Equal(t, rgba(types.FruitColor), pixel(h.ImageCanvas, int(fx), int(fy)))
}
