// Package input turns SDL2 events into per-frame player controls.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/trailwalk/internal/engine/camera"
)

// Frame is everything the game needs from one round of event polling.
type Frame struct {
	Controls camera.Controls

	Quit         bool
	Screenshot   bool
	ToggleBounds bool
	ToggleMouse  bool
	ToggleGuide  bool

	// Resized asks the caller to re-query the drawable size; event sizes
	// are in screen points, not pixels.
	Resized bool
}

// Input tracks held keys across frames and accumulates mouse motion
// within a frame.
type Input struct {
	held  map[sdl.Scancode]bool
	frame Frame
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		held: make(map[sdl.Scancode]bool),
	}
}

// Update polls all pending SDL events and returns the frame summary.
func (i *Input) Update() Frame {
	i.frame = Frame{}

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		i.handle(event)
	}

	c := &i.frame.Controls
	c.Forward = i.held[sdl.SCANCODE_W] || i.held[sdl.SCANCODE_UP]
	c.Backward = i.held[sdl.SCANCODE_S] || i.held[sdl.SCANCODE_DOWN]
	c.Left = i.held[sdl.SCANCODE_A] || i.held[sdl.SCANCODE_LEFT]
	c.Right = i.held[sdl.SCANCODE_D] || i.held[sdl.SCANCODE_RIGHT]

	return i.frame
}

func (i *Input) handle(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		i.frame.Quit = true

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_RESIZED:
			i.frame.Resized = true
		case sdl.WINDOWEVENT_FOCUS_LOST:
			// Keys released while unfocused never send KEYUP.
			clear(i.held)
		}

	case *sdl.KeyboardEvent:
		down := e.State == sdl.PRESSED
		i.held[e.Keysym.Scancode] = down
		if !down || e.Repeat != 0 {
			return
		}
		switch e.Keysym.Scancode {
		case sdl.SCANCODE_ESCAPE:
			i.frame.Quit = true
		case sdl.SCANCODE_F12:
			i.frame.Screenshot = true
		case sdl.SCANCODE_F3:
			i.frame.ToggleBounds = true
		case sdl.SCANCODE_TAB:
			i.frame.ToggleMouse = true
		case sdl.SCANCODE_G:
			i.frame.ToggleGuide = true
		}

	case *sdl.MouseMotionEvent:
		// SDL y grows downward; controls want up positive.
		i.frame.Controls.LookX += float32(e.XRel)
		i.frame.Controls.LookY -= float32(e.YRel)

	case *sdl.MouseWheelEvent:
		dy := float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dy = -dy
		}
		i.frame.Controls.Scroll += dy
	}
}
