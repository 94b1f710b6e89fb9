// Package animation ties the generated field, the scroll tracker and the
// morph engine to a render adapter for the lifetime of one viewer.
package animation

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Faultbox/driftfield/internal/field"
	"github.com/Faultbox/driftfield/internal/logger"
	"github.com/Faultbox/driftfield/internal/morph"
	"github.com/Faultbox/driftfield/internal/scroll"
)

// Sink is the render adapter. Present receives the output buffer after
// each successful update; it must upload or copy the data before returning
// because the buffer is rewritten on the next frame. Errors such as a lost
// rendering context are returned to the caller of Frame.
type Sink interface {
	Present(positions []float32, rot morph.Rotation) error
}

// Options controls field generation.
type Options struct {
	Count int
	Seed  uint64 // 0 = unseeded
}

// FrameInfo describes what a call to Frame did.
type FrameInfo struct {
	Progress float64
	Phase    morph.Phase
	Rotation morph.Rotation
	Updated  bool
}

// Animation owns the buffers of one running particle field.
type Animation struct {
	id  uuid.UUID
	log *zap.Logger

	colors    field.Buffer
	positions field.Buffer
	engine    *morph.Engine

	tracker     scroll.Tracker
	unsubscribe func()
	sink        Sink
	closed      bool
}

// New generates the field and its target shapes, then subscribes a single
// progress callback to observer. An invalid count is fatal.
func New(opts Options, observer scroll.Observer, sink Sink) (*Animation, error) {
	a := &Animation{
		id:   uuid.New(),
		sink: sink,
	}
	a.log = logger.Named("animation").With(zap.String("id", a.id.String()))

	rng := field.RandFor(opts.Seed)
	nebula, colors, err := field.Generate(opts.Count, rng)
	if err != nil {
		return nil, fmt.Errorf("generate field: %w", err)
	}
	shapes, err := field.BuildShapes(nebula, rng)
	if err != nil {
		return nil, fmt.Errorf("build shapes: %w", err)
	}

	a.colors = colors
	a.positions = nebula
	a.engine = morph.NewEngine(shapes)

	if observer != nil {
		a.unsubscribe = observer.Subscribe(a.tracker.Set)
	}

	a.log.Info("field generated",
		zap.Int("particles", opts.Count),
		zap.Uint64("seed", opts.Seed),
		zap.Float64("accent", field.AccentFraction(colors)),
	)
	return a, nil
}

// Attach replaces the render adapter. Adapters that need the colors can be
// built after New and attached before the first frame.
func (a *Animation) Attach(sink Sink) {
	a.sink = sink
}

// ID identifies this animation in logs.
func (a *Animation) ID() uuid.UUID {
	return a.id
}

// Colors returns the immutable per-particle colors.
func (a *Animation) Colors() []float32 {
	return a.colors
}

// Positions returns the output buffer as of the last frame.
func (a *Animation) Positions() []float32 {
	return a.positions
}

// Len returns the particle count.
func (a *Animation) Len() int {
	return a.positions.Len()
}

// Progress returns the tracked scroll progress.
func (a *Animation) Progress() float64 {
	return a.tracker.Progress()
}

// Frame advances the field to elapsed time t with the pointer at ptr and
// hands the result to the sink. When the engine is not ready the frame is
// skipped and the sink is not called. After Close it does nothing.
func (a *Animation) Frame(t float64, ptr morph.Pointer) (FrameInfo, error) {
	p := a.tracker.Progress()
	ph, _ := morph.PhaseAt(p)
	info := FrameInfo{
		Progress: p,
		Phase:    ph,
		Rotation: morph.Rotate(ptr, t),
	}
	if a.closed {
		return info, nil
	}

	info.Updated = a.engine.Update(a.positions, p, t)
	if !info.Updated {
		a.log.Debug("frame skipped, shapes not ready")
		return info, nil
	}

	if a.sink != nil {
		if err := a.sink.Present(a.positions, info.Rotation); err != nil {
			return info, fmt.Errorf("present frame: %w", err)
		}
	}
	return info, nil
}

// Close removes the scroll subscription and drops the buffers. It is safe
// to call more than once.
func (a *Animation) Close() {
	if a.closed {
		return
	}
	a.closed = true
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	a.engine = nil
	a.positions = nil
	a.colors = nil
	a.log.Info("animation closed")
}
