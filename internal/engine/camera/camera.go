// Package camera provides the fixed perspective camera the particle field is viewed through.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/driftfield/internal/morph"
)

// Camera looks from Eye toward Target with a vertical field of view.
type Camera struct {
	Eye    mgl32.Vec3
	Target mgl32.Vec3
	Up     mgl32.Vec3

	FovY float32 // degrees
	Near float32
	Far  float32
}

// New returns the default camera: eight units back on +z, 60° fov.
func New() *Camera {
	return &Camera{
		Eye:    mgl32.Vec3{0, 0, 8},
		Target: mgl32.Vec3{0, 0, 0},
		Up:     mgl32.Vec3{0, 1, 0},
		FovY:   60,
		Near:   0.1,
		Far:    100,
	}
}

// View returns the view matrix.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Eye, c.Target, c.Up)
}

// Projection returns the perspective matrix for a viewport aspect ratio.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), aspect, c.Near, c.Far)
}

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection(aspect float32) mgl32.Mat4 {
	return c.Projection(aspect).Mul4(c.View())
}

// Model builds the field's model matrix from its rotation (Euler XYZ).
func Model(rot morph.Rotation) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(rot.X).Mul4(mgl32.HomogRotate3DY(rot.Y))
}

// Projector maps world points to pixel coordinates for CPU renderers.
type Projector struct {
	mvp           mgl32.Mat4
	focal         float32 // projection y scale, cot(fov/2)
	width, height float32
}

// Projector prepares a projector for one frame.
func (c *Camera) Projector(rot morph.Rotation, width, height int) Projector {
	w, h := float32(width), float32(height)
	aspect := float32(1)
	if h > 0 {
		aspect = w / h
	}
	proj := c.Projection(aspect)
	return Projector{
		mvp:    proj.Mul4(c.View()).Mul4(Model(rot)),
		focal:  proj.At(1, 1),
		width:  w,
		height: h,
	}
}

// Project returns pixel coordinates (origin top-left, y down) and the
// normalized depth in [-1,1]. ok is false for points behind the camera or
// outside the clip volume.
func (p Projector) Project(v mgl32.Vec3) (x, y, depth float32, ok bool) {
	clip := p.mvp.Mul4x1(v.Vec4(1))
	if clip.W() <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	if ndc.X() < -1 || ndc.X() > 1 || ndc.Y() < -1 || ndc.Y() > 1 || ndc.Z() < -1 || ndc.Z() > 1 {
		return 0, 0, 0, false
	}
	x = (ndc.X() + 1) * 0.5 * p.width
	y = (1 - ndc.Y()) * 0.5 * p.height
	return x, y, ndc.Z(), true
}

// PointSize returns the on-screen diameter in pixels of a world-space
// size placed at v, shrinking with distance like a GL point sprite.
func (p Projector) PointSize(v mgl32.Vec3, size float32) float32 {
	clip := p.mvp.Mul4x1(v.Vec4(1))
	if clip.W() <= 0 {
		return 0
	}
	return size * p.focal * p.height * 0.5 / clip.W()
}
