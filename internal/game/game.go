// Package game implements the main loop: input, simulation step, render.
package game

import (
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/trailwalk/internal/config"
	"github.com/Faultbox/trailwalk/internal/engine/debug"
	"github.com/Faultbox/trailwalk/internal/engine/input"
	"github.com/Faultbox/trailwalk/internal/engine/renderer"
	"github.com/Faultbox/trailwalk/internal/engine/scene"
	"github.com/Faultbox/trailwalk/internal/engine/texture"
	"github.com/Faultbox/trailwalk/internal/engine/window"
	"github.com/Faultbox/trailwalk/internal/game/world"
	"github.com/Faultbox/trailwalk/internal/logger"
)

// maxFrameTime caps dt so a stall (window drag, breakpoint) doesn't
// teleport the walker.
const maxFrameTime = 0.25

// Game is the main simulator instance.
type Game struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scene    *scene.Scene
	world    *world.World
	shots    *debug.ScreenshotCapture
}

// New opens the window, loads the world and uploads it to the GPU.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing simulator",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	g := &Game{
		config: cfg,
		input:  input.New(),
		shots:  debug.NewScreenshotCapture(cfg.Screenshots.Dir, "trailwalk"),
	}

	var err error
	g.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer after window: the GL context must exist.
	width, height := g.window.DrawableSize()
	g.renderer, err = renderer.New(renderer.Config{Width: width, Height: height})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.world, err = world.Load(cfg)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to load world: %w", err)
	}

	g.scene, err = scene.New(scene.DefaultConfig(), scene.Assets{
		Terrain: g.world.Terrain,
		Diffuse: loadTexture("terrain", cfg.Assets.TerrainTexture),
		Grass:   loadTexture("grass", cfg.Assets.GrassTexture),
		Sky:     loadTexture("sky", cfg.Assets.SkyTexture),
		Path:    g.world.Path.Points,
	})
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}
	g.scene.UpdateTrail(g.world.Trail.Points())
	g.world.Trail.ClearDirty()

	g.window.CaptureMouse(true)

	logger.Info("simulator initialized")
	return g, nil
}

// loadTexture returns nil when the image can't be read; the scene then
// falls back to a plain white texture.
func loadTexture(name, path string) *image.RGBA {
	img, err := texture.Load(path, true)
	if err != nil {
		logger.Warn("texture unavailable",
			zap.String("texture", name),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil
	}
	logger.Debug("texture loaded",
		zap.String("texture", name),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)
	return img
}

// Run executes the main loop until the window closes or Esc is pressed.
func (g *Game) Run() error {
	g.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for g.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now
		if dt > maxFrameTime {
			dt = maxFrameTime
		}

		frame := g.input.Update()
		g.handle(frame)
		if !g.running {
			break
		}

		controls := frame.Controls
		if !g.window.MouseCaptured() {
			controls.LookX, controls.LookY = 0, 0
		}
		g.world.Step(controls, dt)

		if g.world.Trail.Dirty() {
			g.scene.UpdateTrail(g.world.Trail.Points())
			g.world.Trail.ClearDirty()
		}

		g.render()

		// Read back before the swap so the capture is this frame.
		if frame.Screenshot {
			g.screenshot()
		}

		g.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32("dt_ms", dt*1000),
				zap.Int("trail_points", g.world.Trail.Len()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) handle(f input.Frame) {
	if f.Quit {
		g.running = false
		return
	}
	if f.Resized {
		w, h := g.window.DrawableSize()
		g.renderer.Resize(w, h)
	}
	if f.ToggleMouse {
		g.window.CaptureMouse(!g.window.MouseCaptured())
	}
	if f.ToggleBounds {
		g.scene.ShowBounds = !g.scene.ShowBounds
	}
	if f.ToggleGuide {
		active := g.world.ToggleGuide()
		logger.Info("guide toggled", zap.Bool("active", active))
	}
}

func (g *Game) render() {
	cam := g.world.Walker.Camera
	g.scene.Render(
		cam.ViewMatrix(),
		cam.Projection(g.renderer.Aspect()),
		cam.Position,
		&g.world.Lights,
	)
}

func (g *Game) screenshot() {
	pixels, w, h := g.renderer.ReadPixels()
	path, err := g.shots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources before the context goes away.
func (g *Game) Close() {
	logger.Info("closing simulator")

	if g.scene != nil {
		g.scene.Close()
		g.scene = nil
	}
	if g.window != nil {
		g.window.Close()
		g.window = nil
	}
}
