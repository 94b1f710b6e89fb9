// Package app runs the desktop viewer: an SDL2 window whose mouse wheel
// scrolls a virtual page and morphs the particle field.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/driftfield/internal/animation"
	"github.com/Faultbox/driftfield/internal/config"
	"github.com/Faultbox/driftfield/internal/engine/input"
	"github.com/Faultbox/driftfield/internal/engine/renderer"
	"github.com/Faultbox/driftfield/internal/engine/screenshot"
	"github.com/Faultbox/driftfield/internal/engine/window"
	"github.com/Faultbox/driftfield/internal/logger"
	"github.com/Faultbox/driftfield/internal/morph"
	"github.com/Faultbox/driftfield/internal/scroll"
)

const title = "driftfield"

// App is the desktop viewer.
type App struct {
	config *config.Config
	log    *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	document *scroll.Document
	anim     *animation.Animation
	shots    *screenshot.Capture

	wantSnapshot bool
}

// New creates the window, renderer and animation.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		config: cfg,
		log:    logger.Named("app"),
		input:  input.New(),
		shots:  screenshot.New("screenshots", title),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	fbw, fbh := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:     fbw,
		Height:    fbh,
		Count:     cfg.Field.Count,
		PointSize: cfg.Graphics.PointSize,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	_, h := a.window.Size()
	a.document = scroll.NewDocument(cfg.Scroll.PageHeight*float64(h), float64(h))

	a.anim, err = animation.New(animation.Options{
		Count: cfg.Field.Count,
		Seed:  cfg.Field.Seed,
	}, a.document, a.renderer)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create animation: %w", err)
	}

	if err := a.renderer.SetColors(a.anim.Colors()); err != nil {
		a.Close()
		return nil, err
	}

	a.log.Info("viewer initialized", zap.String("animation", a.anim.ID().String()))
	return a, nil
}

// Run drives one frame per display refresh until the window is closed,
// Escape is pressed or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	start := time.Now()
	frames := 0
	fpsTimer := start
	lastPhase := morph.Phase(-1)

	a.log.Info("starting render loop")

	for {
		select {
		case <-ctx.Done():
			a.log.Info("render loop cancelled", zap.Error(ctx.Err()))
			return nil
		default:
		}

		if a.input.Update() {
			return nil
		}
		if a.handleEvents() {
			return nil
		}

		mx, my := a.input.Mouse()
		w, h := a.window.Size()
		ptr := morph.PointerFromPixels(mx, my, w, h)
		elapsed := time.Since(start).Seconds()

		a.renderer.Begin()
		info, err := a.anim.Frame(elapsed, ptr)
		if err != nil {
			return fmt.Errorf("frame error: %w", err)
		}
		if a.wantSnapshot {
			a.wantSnapshot = false
			a.saveScreenshot(info.Phase)
		}
		a.window.SwapBuffers()

		if info.Phase != lastPhase {
			lastPhase = info.Phase
			a.window.SetTitle(fmt.Sprintf("%s - %s", title, info.Phase))
			a.log.Debug("phase changed",
				zap.Stringer("phase", info.Phase),
				zap.Float64("progress", info.Progress),
			)
		}

		frames++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frames))
			frames = 0
			fpsTimer = time.Now()
		}
	}
}

// handleEvents applies this frame's input. Returns true to quit.
func (a *App) handleEvents() bool {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			fbw, fbh := a.window.DrawableSize()
			a.renderer.Resize(fbw, fbh)
			_, h := a.window.Size()
			a.document.Resize(a.config.Scroll.PageHeight*float64(h), float64(h))

		case input.EventMouseWheel:
			a.document.ScrollBy(float64(event.WheelY) * a.config.Scroll.WheelStep)

		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				return true
			case sdl.SCANCODE_PAGEDOWN, sdl.SCANCODE_SPACE:
				a.document.PageDown()
			case sdl.SCANCODE_PAGEUP:
				a.document.PageUp()
			case sdl.SCANCODE_DOWN:
				a.document.ScrollBy(a.config.Scroll.WheelStep)
			case sdl.SCANCODE_UP:
				a.document.ScrollBy(-a.config.Scroll.WheelStep)
			case sdl.SCANCODE_HOME:
				a.document.Home()
			case sdl.SCANCODE_END:
				a.document.End()
			case sdl.SCANCODE_F12:
				a.wantSnapshot = true
			}
		}
	}
	return false
}

// saveScreenshot reads back the frame just drawn, before the swap.
func (a *App) saveScreenshot(phase morph.Phase) {
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.shots.Save(pixels, w, h, phase.String())
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close tears the viewer down: the animation first, so the scroll
// subscription is gone before the GL objects are released.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.anim != nil {
		a.anim.Close()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
