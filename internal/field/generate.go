package field

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

// Nebula shell bounds.
const (
	NebulaInnerRadius = 3.0
	NebulaOuterRadius = 8.0
)

// AccentProbability is the chance a particle gets the accent color.
const AccentProbability = 0.2

var (
	// White is the primary particle color.
	White = mgl32.Vec3{1, 1, 1}
	// Accent is the red-pink highlight color.
	Accent = mgl32.Vec3{1, 0, 0.2}
)

// Generate produces the initial nebula positions and the per-particle colors
// for n particles.
func Generate(n int, rng *rand.Rand) (positions, colors Buffer, err error) {
	if n <= 0 {
		return nil, nil, fmt.Errorf("%w: particle count must be positive, got %d", ErrInvalidArgument, n)
	}

	positions = NewBuffer(n)
	colors = NewBuffer(n)

	for i := 0; i < n; i++ {
		r := uniform(rng, NebulaInnerRadius, NebulaOuterRadius)
		positions.Set(i, spherePoint(rng, r))

		if rng.Float64() > AccentProbability {
			colors.Set(i, White)
		} else {
			colors.Set(i, Accent)
		}
	}
	return positions, colors, nil
}

// spherePoint samples a direction uniformly over the sphere and scales it by r.
// The polar angle comes from arccos(2u-1) so points do not bunch at the poles.
func spherePoint(rng *rand.Rand, r float64) mgl32.Vec3 {
	theta := rng.Float64() * 2 * math.Pi
	phi := math.Acos(2*rng.Float64() - 1)

	sinPhi := math.Sin(phi)
	return mgl32.Vec3{
		float32(r * sinPhi * math.Cos(theta)),
		float32(r * sinPhi * math.Sin(theta)),
		float32(r * math.Cos(phi)),
	}
}

// AccentFraction returns the share of particles colored with Accent.
func AccentFraction(colors Buffer) float64 {
	n := colors.Len()
	if n == 0 {
		return 0
	}
	accent := 0
	for i := 0; i < n; i++ {
		if colors.At(i) == Accent {
			accent++
		}
	}
	return float64(accent) / float64(n)
}
