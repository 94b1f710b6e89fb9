package scroll

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_Clamps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{0.5, 0.5},
		{1, 1},
		{-0.1, 0},
		{1.7, 1},
		{math.NaN(), 0},
		{math.Inf(1), 1},
		{math.Inf(-1), 0},
	}

	var tr Tracker
	for _, tt := range tests {
		tr.Set(tt.in)
		assert.Equal(t, tt.want, tr.Progress(), "Set(%v)", tt.in)
	}
}

func TestTracker_LastWriteWins(t *testing.T) {
	var tr Tracker
	tr.Set(0.9)
	tr.Set(0.1)
	assert.Equal(t, 0.1, tr.Progress())
}

func TestDocument_Progress(t *testing.T) {
	d := NewDocument(5000, 1000)
	assert.Equal(t, 0.0, d.Progress())

	d.ScrollTo(2000)
	assert.InDelta(t, 0.5, d.Progress(), 1e-12)

	d.ScrollBy(100000)
	assert.Equal(t, 1.0, d.Progress())
	assert.Equal(t, 4000.0, d.Offset())

	d.ScrollBy(-100000)
	assert.Equal(t, 0.0, d.Progress())
}

func TestDocument_FitsViewport(t *testing.T) {
	d := NewDocument(500, 1000)
	d.ScrollBy(300)
	assert.Equal(t, 0.0, d.Progress())
	assert.Equal(t, 0.0, d.Offset())
}

func TestDocument_Keys(t *testing.T) {
	d := NewDocument(3000, 1000)

	d.End()
	assert.Equal(t, 1.0, d.Progress())

	d.Home()
	assert.Equal(t, 0.0, d.Progress())

	d.PageDown()
	assert.InDelta(t, 900.0, d.Offset(), 1e-9)

	d.PageUp()
	assert.Equal(t, 0.0, d.Offset())
}

func TestDocument_ResizeKeepsOffsetInRange(t *testing.T) {
	d := NewDocument(3000, 1000)
	d.End()

	// Taller viewport shrinks the scrollable range.
	d.Resize(0, 2000)
	assert.Equal(t, 1000.0, d.Offset())
	assert.Equal(t, 1.0, d.Progress())

	d.Resize(6000, 2000)
	assert.InDelta(t, 0.25, d.Progress(), 1e-12)
}

func TestDocument_Subscribe(t *testing.T) {
	d := NewDocument(2000, 1000)
	d.ScrollTo(500)

	var tr Tracker
	calls := 0
	unsubscribe := d.Subscribe(func(p float64) {
		calls++
		tr.Set(p)
	})

	// Subscribing delivers the current value right away.
	assert.Equal(t, 1, calls)
	assert.InDelta(t, 0.5, tr.Progress(), 1e-12)
	assert.Equal(t, 1, d.Subscribers())

	d.ScrollTo(1000)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 1.0, tr.Progress())

	d.Resize(0, 500)
	assert.Equal(t, 3, calls)
	assert.InDelta(t, 2.0/3.0, tr.Progress(), 1e-12)

	unsubscribe()
	unsubscribe()
	assert.Equal(t, 0, d.Subscribers())

	d.Home()
	assert.Equal(t, 3, calls)
	assert.InDelta(t, 2.0/3.0, tr.Progress(), 1e-12)
}

var _ Observer = (*Document)(nil)
