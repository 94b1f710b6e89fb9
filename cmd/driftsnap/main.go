// Package main renders PNG snapshots of the particle field at chosen scroll
// positions, without a window or GPU.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/driftfield/internal/animation"
	"github.com/Faultbox/driftfield/internal/config"
	"github.com/Faultbox/driftfield/internal/engine/snapshot"
	"github.com/Faultbox/driftfield/internal/logger"
	"github.com/Faultbox/driftfield/internal/morph"
	"github.com/Faultbox/driftfield/internal/scroll"
)

var (
	flagProgress = flag.String("progress", "0,0.25,0.5,0.6,0.75,1", "Comma-separated scroll progress values")
	flagTime     = flag.Float64("time", 5, "Elapsed seconds for drift, spin and warp flow")
	flagOut      = flag.String("out", ".", "Output directory")
)

// documentHeight is arbitrary: snapshots jump straight to a progress value.
const documentHeight = 1000

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	progress, err := parseProgress(*flagProgress)
	if err != nil {
		logger.Error("bad --progress", zap.Error(err))
		os.Exit(2)
	}

	if err := os.MkdirAll(*flagOut, 0755); err != nil {
		logger.Error("cannot create output directory", zap.Error(err))
		os.Exit(1)
	}

	doc := scroll.NewDocument(documentHeight*cfg.Scroll.PageHeight, documentHeight)
	anim, err := animation.New(animation.Options{
		Count: cfg.Field.Count,
		Seed:  cfg.Field.Seed,
	}, doc, nil)
	if err != nil {
		logger.Error("failed to create animation", zap.Error(err))
		os.Exit(1)
	}
	defer anim.Close()

	sink := snapshot.New(snapshot.Config{
		Width:     cfg.Graphics.Width,
		Height:    cfg.Graphics.Height,
		PointSize: cfg.Graphics.PointSize,
		Dir:       *flagOut,
		Prefix:    "driftfield",
	}, anim.Colors())
	anim.Attach(sink)

	span := documentHeight * (cfg.Scroll.PageHeight - 1)
	for _, p := range progress {
		doc.ScrollTo(p * span)
		sink.SetLabel(fmt.Sprintf("p%03.0f", p*100))

		info, err := anim.Frame(*flagTime, morph.Pointer{})
		if err != nil {
			logger.Error("snapshot failed", zap.Float64("progress", p), zap.Error(err))
			os.Exit(1)
		}
		logger.Info("snapshot",
			zap.String("path", sink.Last()),
			zap.Stringer("phase", info.Phase),
			zap.Float64("progress", info.Progress),
		)
	}
}

func parseProgress(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		p, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("progress %q: %w", part, err)
		}
		out = append(out, scroll.Clamp(p))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no progress values in %q", s)
	}
	return out, nil
}
