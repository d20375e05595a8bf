package ui

import (
	"strconv"
	"strings"
	"time"

	"arcade-snake/game/input"
	"arcade-snake/game/timer"

	"github.com/pkg/errors"
)

// Script maps a frame number to the keys pressed in that frame.
type Script map[int]input.Pressed

var keyNames = map[string]input.Key{
	"up":    input.KeyUp,
	"down":  input.KeyDown,
	"left":  input.KeyLeft,
	"right": input.KeyRight,
}

// ParseScript reads a list like "12:up,30:left,30:down". Empty input is an empty script.
func ParseScript(s string) (Script, error) {
	script := Script{}
	s = strings.TrimSpace(s)
	if s == "" {
		return script, nil
	}
	for _, entry := range strings.Split(s, ",") {
		parts := strings.SplitN(strings.TrimSpace(entry), ":", 2)
		if len(parts) != 2 {
			return nil, errors.Errorf("bad script entry %q, want frame:key", entry)
		}
		frame, err := strconv.Atoi(parts[0])
		if err != nil || frame < 0 {
			return nil, errors.Errorf("bad frame in script entry %q", entry)
		}
		key, ok := keyNames[strings.ToLower(parts[1])]
		if !ok {
			return nil, errors.Errorf("unknown key in script entry %q", entry)
		}
		if script[frame] == nil {
			script[frame] = input.Pressed{}
		}
		script[frame][key] = true
	}
	return script, nil
}

// Headless is a backend with no window. Every frame advances a manual clock by a
// fixed frame time, and keys come from a script. It closes after MaxFrames.
type Headless struct {
	*ImageCanvas
	clock     *timer.ManualClock
	frameTime time.Duration
	script    Script
	maxFrames int
	frame     int
}

func NewHeadless(width, height, fps, maxFrames int, clock *timer.ManualClock, script Script) *Headless {
	if fps <= 0 {
		fps = 60
	}
	return &Headless{
		ImageCanvas: NewImageCanvas(width, height),
		clock:       clock,
		frameTime:   time.Second / time.Duration(fps),
		script:      script,
		maxFrames:   maxFrames,
	}
}

func (h *Headless) EndFrame() {
	h.ImageCanvas.EndFrame()
	h.frame++
	h.clock.Advance(h.frameTime)
}

func (h *Headless) IsKeyPressed(k input.Key) bool {
	return h.script[h.frame][k]
}

func (h *Headless) ShouldClose() bool {
	return h.maxFrames > 0 && h.frame >= h.maxFrames
}

func (h *Headless) Frame() int {
	return h.frame
}
