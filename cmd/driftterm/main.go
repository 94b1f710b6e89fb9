// Package main is the terminal viewer: the particle field drawn with
// characters, scrolled with the mouse wheel or the paging keys.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/Faultbox/driftfield/internal/animation"
	"github.com/Faultbox/driftfield/internal/config"
	"github.com/Faultbox/driftfield/internal/engine/terminal"
	"github.com/Faultbox/driftfield/internal/logger"
	"github.com/Faultbox/driftfield/internal/morph"
	"github.com/Faultbox/driftfield/internal/scroll"
)

const frameInterval = 33 * time.Millisecond

// rowsPerNotch is how far one wheel notch scrolls, in terminal rows.
const rowsPerNotch = 2

type viewer struct {
	cfg      *config.Config
	screen   tcell.Screen
	document *scroll.Document
	anim     *animation.Animation
	sink     *terminal.Sink
	pointer  morph.Pointer
}

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// The screen owns the tty, so logs only go to a file.
	var fileCfg logger.FileConfig
	if cfg.Logging.LogFile != "" {
		fileCfg = logger.DefaultFileConfig(cfg.Logging.LogFile)
	}
	if err := logger.InitWithFileConfig(cfg.Logging.Level, fileCfg, false); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("terminal viewer error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	_, h := screen.Size()
	v := &viewer{
		cfg:      cfg,
		screen:   screen,
		document: scroll.NewDocument(cfg.Scroll.PageHeight*float64(h), float64(h)),
	}

	v.anim, err = animation.New(animation.Options{
		Count: cfg.Field.Count,
		Seed:  cfg.Field.Seed,
	}, v.document, nil)
	if err != nil {
		return err
	}
	defer v.anim.Close()

	v.sink = terminal.New(screen, v.anim.Colors())
	v.anim.Attach(v.sink)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !v.handle(ev) {
				return nil
			}
		case <-ticker.C:
			info, err := v.anim.Frame(time.Since(start).Seconds(), v.pointer)
			if err != nil {
				return err
			}
			v.sink.SetStatus(fmt.Sprintf(" %3.0f%%  %s  (wheel/PgUp/PgDn, q quits)", info.Progress*100, info.Phase))
		}
	}
}

// handle applies one event. Returns false to quit.
func (v *viewer) handle(ev tcell.Event) bool {
	step := float64(rowsPerNotch)

	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyPgDn:
			v.document.PageDown()
		case tcell.KeyPgUp:
			v.document.PageUp()
		case tcell.KeyDown:
			v.document.ScrollBy(step)
		case tcell.KeyUp:
			v.document.ScrollBy(-step)
		case tcell.KeyHome:
			v.document.Home()
		case tcell.KeyEnd:
			v.document.End()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.document.PageDown()
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		w, h := v.screen.Size()
		v.pointer = morph.PointerFromPixels(x, y, w, h)

		buttons := ev.Buttons()
		if buttons&tcell.WheelDown != 0 {
			v.document.ScrollBy(step)
		}
		if buttons&tcell.WheelUp != 0 {
			v.document.ScrollBy(-step)
		}

	case *tcell.EventResize:
		v.screen.Sync()
		_, h := v.screen.Size()
		v.document.Resize(v.cfg.Scroll.PageHeight*float64(h), float64(h))
	}
	return true
}
