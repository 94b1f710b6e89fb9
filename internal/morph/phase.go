// Package morph computes the per-frame particle positions from scroll
// progress, elapsed time and pointer location.
package morph

import "github.com/Faultbox/driftfield/internal/scroll"

// Phase is one of the four progress intervals of the morph timeline.
type Phase int

const (
	NebulaToLogo  Phase = iota // [0.00, 0.25)
	LogoToWarp                 // [0.25, 0.50)
	WarpFlow                   // [0.50, 0.75)
	WarpToNetwork              // [0.75, 1.00]
)

// PhaseWidth is the progress span covered by each phase.
const PhaseWidth = 0.25

var phaseNames = [...]string{
	NebulaToLogo:  "nebula-to-logo",
	LogoToWarp:    "logo-to-warp",
	WarpFlow:      "warp-flow",
	WarpToNetwork: "warp-to-network",
}

func (p Phase) String() string {
	if p < NebulaToLogo || p > WarpToNetwork {
		return "unknown"
	}
	return phaseNames[p]
}

// Start returns the progress value at which the phase begins.
func (p Phase) Start() float64 {
	return float64(p) * PhaseWidth
}

// PhaseAt selects the phase for progress p and the local interpolation
// factor within it. p is clamped to [0,1] first; p == 1 belongs to the
// last phase with a local factor of 1. The local factor is 0 for WarpFlow,
// which does not interpolate.
func PhaseAt(p float64) (Phase, float64) {
	p = scroll.Clamp(p)

	ph := Phase(p / PhaseWidth)
	if ph > WarpToNetwork {
		ph = WarpToNetwork
	}
	if ph == WarpFlow {
		return ph, 0
	}

	local := (p - ph.Start()) / PhaseWidth
	if local > 1 {
		local = 1
	}
	return ph, local
}
