package morph

// Rotation sensitivity and spin.
const (
	PointerTilt = 0.2
	SpinSpeed   = 0.05 // radians per second around y
)

// Pointer is the cursor position in normalized device coordinates, both
// axes in [-1,1] with +y up.
type Pointer struct {
	X, Y float64
}

// Rotation is applied to the rendered field as a whole (Euler XYZ, radians).
// It is never baked into the position buffer.
type Rotation struct {
	X, Y float32
}

// Rotate tilts the field toward the pointer and adds a slow constant spin.
func Rotate(ptr Pointer, t float64) Rotation {
	return Rotation{
		X: float32(ptr.Y * PointerTilt),
		Y: float32(ptr.X*PointerTilt + t*SpinSpeed),
	}
}

// PointerFromPixels converts a window position (origin top-left, y down) to
// normalized device coordinates. Positions outside the window are clamped.
func PointerFromPixels(x, y, width, height int) Pointer {
	if width <= 0 || height <= 0 {
		return Pointer{}
	}
	nx := float64(x)/float64(width)*2 - 1
	ny := 1 - float64(y)/float64(height)*2
	return Pointer{X: clampUnit(nx), Y: clampUnit(ny)}
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
