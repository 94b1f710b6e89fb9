// Package scroll tracks how far the viewer has scrolled through the page.
package scroll

import "math"

// Tracker holds the current scroll progress in [0,1].
//
// It has exactly one writer (the observer callback) and is read by the
// morph engine once per frame. Both happen on the render thread, so no
// locking is done.
type Tracker struct {
	progress float64
}

// Set stores p clamped to [0,1]. NaN resets to the top of the page.
func (t *Tracker) Set(p float64) {
	t.progress = Clamp(p)
}

// Progress returns the most recently written value.
func (t *Tracker) Progress() float64 {
	return t.progress
}

// Clamp limits p to [0,1].
func Clamp(p float64) float64 {
	switch {
	case math.IsNaN(p), p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
