package field

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// Shape parameters.
const (
	LogoTurns       = 6
	LogoBaseRadius  = 1.5
	LogoBandStep    = 0.02
	LogoBands       = 100
	LogoArmAmp      = 0.5
	LogoArms        = 3
	LogoJitter      = 0.25
	WarpInnerRadius = 2.0
	WarpOuterRadius = 5.0
	WarpHalfLength  = 15.0
	NetworkRadius   = 3.0
)

// Shapes holds the four morph endpoints. Index i refers to the same particle
// in every buffer. The buffers are never written after BuildShapes returns.
type Shapes struct {
	Nebula  Buffer
	Logo    Buffer
	Warp    Buffer
	Network Buffer
}

// BuildShapes derives the logo, warp and network targets for a nebula buffer.
// The nebula is copied so callers may keep mutating their own slice.
func BuildShapes(nebula Buffer, rng *rand.Rand) (*Shapes, error) {
	n := nebula.Len()
	if n == 0 || len(nebula)%3 != 0 {
		return nil, fmt.Errorf("%w: nebula buffer holds %d floats", ErrInvalidArgument, len(nebula))
	}
	return &Shapes{
		Nebula:  nebula.Clone(),
		Logo:    Logo(n, rng),
		Warp:    Warp(n, rng),
		Network: Network(n, rng),
	}, nil
}

// Len returns the particle count shared by all shapes, or 0 when not ready.
func (s *Shapes) Len() int {
	if !s.Ready() {
		return 0
	}
	return s.Nebula.Len()
}

// Ready reports whether all four buffers exist with the same particle count.
func (s *Shapes) Ready() bool {
	if s == nil || s.Nebula == nil || s.Logo == nil || s.Warp == nil || s.Network == nil {
		return false
	}
	n := len(s.Nebula)
	return n > 0 && len(s.Logo) == n && len(s.Warp) == n && len(s.Network) == n
}

// Logo lays particles along a six-turn spiral whose radius is banded by index
// and modulated into three arms.
func Logo(n int, rng *rand.Rand) Buffer {
	b := NewBuffer(n)
	for i := 0; i < n; i++ {
		angle := float64(i) / float64(n) * LogoTurns * 2 * math.Pi
		radius := LogoBaseRadius + float64(i%LogoBands)*LogoBandStep
		arm := LogoArmAmp * math.Sin(LogoArms*angle)
		b.Set(i, mgl32.Vec3{
			float32(math.Cos(angle) * (radius + arm)),
			float32(math.Sin(angle) * (radius + arm)),
			float32(uniform(rng, -LogoJitter, LogoJitter)),
		})
	}
	return b
}

// Warp fills a hollow cylinder along the z axis.
func Warp(n int, rng *rand.Rand) Buffer {
	b := NewBuffer(n)
	for i := 0; i < n; i++ {
		theta := rng.Float64() * 2 * math.Pi
		z := uniform(rng, -WarpHalfLength, WarpHalfLength)
		r := uniform(rng, WarpInnerRadius, WarpOuterRadius)
		b.Set(i, mgl32.Vec3{
			float32(math.Cos(theta) * r),
			float32(math.Sin(theta) * r),
			float32(z),
		})
	}
	return b
}

// Network puts every particle on a sphere of radius NetworkRadius.
func Network(n int, rng *rand.Rand) Buffer {
	b := NewBuffer(n)
	for i := 0; i < n; i++ {
		b.Set(i, spherePoint(rng, NetworkRadius))
	}
	return b
}
