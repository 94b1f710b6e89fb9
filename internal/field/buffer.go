// Package field generates the particle positions, colors and the fixed target
// shapes the morph engine interpolates between.
package field

import "github.com/go-gl/mathgl/mgl32"

// Buffer is a flat xyz (or rgb) array, three floats per particle.
// The layout matches what the GPU vertex buffers expect.
type Buffer []float32

// NewBuffer allocates a zeroed buffer for n particles.
func NewBuffer(n int) Buffer {
	return make(Buffer, n*3)
}

// Len returns the number of particles in the buffer.
func (b Buffer) Len() int {
	return len(b) / 3
}

// At returns the triple for particle i.
func (b Buffer) At(i int) mgl32.Vec3 {
	return mgl32.Vec3{b[i*3], b[i*3+1], b[i*3+2]}
}

// Set stores the triple for particle i.
func (b Buffer) Set(i int, v mgl32.Vec3) {
	b[i*3] = v[0]
	b[i*3+1] = v[1]
	b[i*3+2] = v[2]
}

// Clone returns an independent copy.
func (b Buffer) Clone() Buffer {
	if b == nil {
		return nil
	}
	c := make(Buffer, len(b))
	copy(c, b)
	return c
}
