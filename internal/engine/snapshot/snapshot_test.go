package snapshot

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/driftfield/internal/morph"
)

func TestPresent_WritesPNG(t *testing.T) {
	dir := t.TempDir()
	sink := New(Config{Width: 64, Height: 48, PointSize: 0.5, Dir: dir}, []float32{1, 0, 0.2})

	require.NoError(t, sink.Present([]float32{0, 0, 0}, morph.Rotation{}))
	assert.Equal(t, filepath.Join(dir, "frame-0000.png"), sink.Last())

	f, err := os.Open(sink.Last())
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())

	// The accent point at the origin lands in the middle of the image.
	r, g, _, _ := img.At(32, 24).RGBA()
	assert.Greater(t, r, g)

	// Corners stay background.
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Zero(t, r+g+b)
}

func TestPresent_LabelsAndNumbering(t *testing.T) {
	dir := t.TempDir()
	sink := New(Config{Width: 16, Height: 16, PointSize: 0.03, Dir: dir, Prefix: "field"}, []float32{1, 1, 1})

	sink.SetLabel("p050")
	require.NoError(t, sink.Present([]float32{0, 0, 0}, morph.Rotation{}))
	assert.Equal(t, filepath.Join(dir, "field-p050.png"), sink.Last())

	require.NoError(t, sink.Present([]float32{0, 0, 0}, morph.Rotation{}))
	assert.Equal(t, filepath.Join(dir, "field-0001.png"), sink.Last())
}

func TestPresent_LengthMismatch(t *testing.T) {
	sink := New(Config{Width: 16, Height: 16, PointSize: 0.03, Dir: t.TempDir()}, []float32{1, 1, 1})
	assert.Error(t, sink.Present(nil, morph.Rotation{}))
}
