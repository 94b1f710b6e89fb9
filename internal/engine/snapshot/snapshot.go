// Package snapshot renders frames of the particle field to PNG files with a
// software rasterizer, for previews and visual regression checks.
package snapshot

import (
	"fmt"
	"path/filepath"

	"github.com/gogpu/gg"
	"go.uber.org/zap"

	"github.com/Faultbox/driftfield/internal/engine/camera"
	"github.com/Faultbox/driftfield/internal/field"
	"github.com/Faultbox/driftfield/internal/logger"
	"github.com/Faultbox/driftfield/internal/morph"
)

// Config controls the output image.
type Config struct {
	Width     int
	Height    int
	PointSize float32 // world units
	Dir       string
	Prefix    string
}

// Sink writes one PNG per presented frame. File names are numbered in the
// order frames arrive unless a label is set with SetLabel.
type Sink struct {
	config Config
	camera *camera.Camera
	colors field.Buffer
	log    *zap.Logger

	frame int
	label string
	last  string
}

// New creates a sink. colors must hold one rgb triple per particle.
func New(cfg Config, colors []float32) *Sink {
	if cfg.Prefix == "" {
		cfg.Prefix = "frame"
	}
	return &Sink{
		config: cfg,
		camera: camera.New(),
		colors: colors,
		log:    logger.Named("snapshot"),
	}
}

// SetLabel names the next file instead of the running frame number.
func (s *Sink) SetLabel(label string) {
	s.label = label
}

// Last returns the path written by the most recent Present.
func (s *Sink) Last() string {
	return s.last
}

// Present implements animation.Sink.
func (s *Sink) Present(positions []float32, rot morph.Rotation) error {
	if len(positions) != len(s.colors) {
		return fmt.Errorf("snapshot: %d positions for %d colors", len(positions), len(s.colors))
	}

	dc := gg.NewContext(s.config.Width, s.config.Height)
	defer dc.Close()
	dc.ClearWithColor(gg.RGBA{R: 0, G: 0, B: 0, A: 1})

	proj := s.camera.Projector(rot, s.config.Width, s.config.Height)
	pos := field.Buffer(positions)
	drawn := 0
	for i := 0; i < pos.Len(); i++ {
		p := pos.At(i)
		x, y, _, ok := proj.Project(p)
		if !ok {
			continue
		}
		r := proj.PointSize(p, s.config.PointSize) / 2
		if r < 0.5 {
			r = 0.5
		}
		c := s.colors.At(i)
		dc.SetRGBA(float64(c[0]), float64(c[1]), float64(c[2]), 0.8)
		dc.DrawCircle(float64(x), float64(y), float64(r))
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("snapshot: fill point %d: %w", i, err)
		}
		drawn++
	}

	name := s.label
	if name == "" {
		name = fmt.Sprintf("%04d", s.frame)
	}
	path := filepath.Join(s.config.Dir, fmt.Sprintf("%s-%s.png", s.config.Prefix, name))
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: save %s: %w", path, err)
	}

	s.log.Debug("snapshot written",
		zap.String("path", path),
		zap.Int("points", drawn),
	)
	s.frame++
	s.label = ""
	s.last = path
	return nil
}
