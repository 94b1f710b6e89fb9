// Package terminal renders the particle field into a character grid with tcell.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/driftfield/internal/engine/camera"
	"github.com/Faultbox/driftfield/internal/field"
	"github.com/Faultbox/driftfield/internal/morph"
)

// ramp maps cell density to a glyph, sparse to dense.
var ramp = []rune{'.', ':', '+', '*', '#', '@'}

// Sink draws each presented frame onto a tcell screen. Points are binned
// into cells; a cell that holds any accent particle is drawn in the accent
// color.
type Sink struct {
	screen tcell.Screen
	camera *camera.Camera
	colors field.Buffer
	status string

	counts []int
	accent []bool
}

// New creates a sink for screen. colors must hold one rgb triple per particle.
func New(screen tcell.Screen, colors []float32) *Sink {
	return &Sink{
		screen: screen,
		camera: camera.New(),
		colors: colors,
	}
}

// SetStatus sets the text drawn on the last row.
func (s *Sink) SetStatus(status string) {
	s.status = status
}

// Present implements animation.Sink.
func (s *Sink) Present(positions []float32, rot morph.Rotation) error {
	if len(positions) != len(s.colors) {
		return fmt.Errorf("terminal: %d positions for %d colors", len(positions), len(s.colors))
	}

	w, h := s.screen.Size()
	if w <= 0 || h <= 1 {
		return nil
	}
	rows := h - 1 // status line

	s.resize(w * rows)

	// Cells are about twice as tall as they are wide, so project onto a grid
	// with doubled rows to keep the sphere round.
	proj := s.camera.Projector(rot, w, rows*2)
	pos := field.Buffer(positions)
	for i := 0; i < pos.Len(); i++ {
		x, y, _, ok := proj.Project(pos.At(i))
		if !ok {
			continue
		}
		cx, cy := int(x), int(y/2)
		if cx < 0 || cx >= w || cy < 0 || cy >= rows {
			continue
		}
		idx := cy*w + cx
		s.counts[idx]++
		if s.colors.At(i) == field.Accent {
			s.accent[idx] = true
		}
	}

	s.screen.Clear()
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < w; cx++ {
			idx := cy*w + cx
			n := s.counts[idx]
			if n == 0 {
				continue
			}
			s.screen.SetContent(cx, cy, glyph(n), nil, style(n, s.accent[idx]))
		}
	}
	drawText(s.screen, 0, h-1, s.status, tcell.StyleDefault.Foreground(tcell.ColorGray))
	s.screen.Show()
	return nil
}

func (s *Sink) resize(cells int) {
	if cap(s.counts) < cells {
		s.counts = make([]int, cells)
		s.accent = make([]bool, cells)
		return
	}
	s.counts = s.counts[:cells]
	s.accent = s.accent[:cells]
	clear(s.counts)
	clear(s.accent)
}

func glyph(n int) rune {
	i := n - 1
	if i >= len(ramp) {
		i = len(ramp) - 1
	}
	return ramp[i]
}

func style(n int, accent bool) tcell.Style {
	// Brighter with density, like additive blending on the GPU.
	level := mgl32.Clamp(0.45+0.1*float32(n), 0, 1)
	c := field.White
	if accent {
		c = field.Accent
	}
	rgb := c.Mul(level * 255)
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(rgb[0]), int32(rgb[1]), int32(rgb[2])))
}

func drawText(screen tcell.Screen, x, y int, text string, st tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, st)
		x++
	}
}
