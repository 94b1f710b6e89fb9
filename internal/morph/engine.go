package morph

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/driftfield/internal/field"
)

// Drift and flow constants.
const (
	DriftAmplitude = 0.02
	DriftPhaseStep = 0.01
	FlowSpeed      = 2.0  // units per second along z
	FlowPeriod     = 30.0 // z wraps after this many units
)

// Engine morphs between the shapes of a field.Shapes.
//
// Update is the only code that writes the output buffer. The shapes are
// read-only and may be shared.
type Engine struct {
	shapes *field.Shapes
}

// NewEngine creates an engine over shapes. A nil or incomplete Shapes is
// accepted; Update skips frames until it is complete.
func NewEngine(shapes *field.Shapes) *Engine {
	return &Engine{shapes: shapes}
}

// Ready reports whether every shape buffer is available.
func (e *Engine) Ready() bool {
	return e != nil && e.shapes.Ready()
}

// Len returns the particle count, 0 before the shapes are ready.
func (e *Engine) Len() int {
	if !e.Ready() {
		return 0
	}
	return e.shapes.Len()
}

// endpoints maps an interpolating phase to its source and target buffers.
func (e *Engine) endpoints(ph Phase) (from, to field.Buffer) {
	s := e.shapes
	switch ph {
	case NebulaToLogo:
		return s.Nebula, s.Logo
	case LogoToWarp:
		return s.Logo, s.Warp
	case WarpToNetwork:
		return s.Warp, s.Network
	}
	return s.Warp, s.Warp
}

// Target returns the pre-drift position of particle i at progress p and
// time t. It panics if the engine is not ready or i is out of range.
func (e *Engine) Target(i int, p, t float64) mgl32.Vec3 {
	ph, local := PhaseAt(p)
	return e.target(i, ph, local, FlowOffset(t))
}

func (e *Engine) target(i int, ph Phase, local, flow float64) mgl32.Vec3 {
	if ph == WarpFlow {
		w := e.shapes.Warp.At(i)
		return mgl32.Vec3{w[0], w[1], float32(float64(w[2]) + flow)}
	}
	from, to := e.endpoints(ph)
	a, b := from.At(i), to.At(i)
	return mgl32.Vec3{
		lerp(a[0], b[0], local),
		lerp(a[1], b[1], local),
		lerp(a[2], b[2], local),
	}
}

// Update writes every particle's position for progress p and time t into
// out. It returns false without touching out when the shapes are not ready
// or out does not hold exactly one triple per particle.
func (e *Engine) Update(out field.Buffer, p, t float64) bool {
	n := e.Len()
	if n == 0 || out.Len() != n || len(out)%3 != 0 {
		return false
	}

	ph, local := PhaseAt(p)
	flow := FlowOffset(t)

	for i := 0; i < n; i++ {
		tgt := e.target(i, ph, local, flow)
		d := Drift(i, t)
		out[i*3] = float32(float64(tgt[0]) + d)
		out[i*3+1] = float32(float64(tgt[1]) + d)
		out[i*3+2] = tgt[2]
	}
	return true
}

// lerp blends a and b in float64. The a(1-t)+bt form returns a exactly at
// t=0 and b exactly at t=1.
func lerp(a, b float32, t float64) float32 {
	return float32(float64(a)*(1-t) + float64(b)*t)
}

// Drift is the small per-particle wobble added to x and y. Its magnitude
// never exceeds DriftAmplitude.
func Drift(i int, t float64) float64 {
	return math.Sin(t+float64(i)*DriftPhaseStep) * DriftAmplitude
}

// FlowOffset is the z displacement applied during WarpFlow. It moves
// forward at FlowSpeed and wraps every FlowPeriod units, starting at
// -FlowPeriod/2.
func FlowOffset(t float64) float64 {
	m := math.Mod(FlowSpeed*t, FlowPeriod)
	if m < 0 {
		m += FlowPeriod
	}
	return m - FlowPeriod/2
}
