// Package renderer draws the particle field as OpenGL point sprites.
package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/driftfield/internal/engine/camera"
	"github.com/Faultbox/driftfield/internal/engine/shader"
	"github.com/Faultbox/driftfield/internal/logger"
	"github.com/Faultbox/driftfield/internal/morph"
)

// Config holds renderer configuration.
type Config struct {
	Width     int
	Height    int
	Count     int     // particles; fixes the vertex buffer sizes
	PointSize float32 // world units
}

// ErrBufferSize is returned by Present for a buffer of the wrong length.
var ErrBufferSize = errors.New("position buffer size mismatch")

// Renderer owns the GPU copies of the position and color buffers.
//
// The position VBO is the only GPU state written per frame; the color VBO
// is uploaded once by SetColors.
type Renderer struct {
	config Config
	camera *camera.Camera
	log    *zap.Logger

	program *shader.Program
	vao     uint32
	posVBO  uint32
	colVBO  uint32
}

// New creates a renderer.
// IMPORTANT: Must be called AFTER the OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("renderer: particle count must be positive, got %d", cfg.Count)
	}

	r := &Renderer{
		config: cfg,
		camera: camera.New(),
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	// Additive, unsorted points: depth writes would punch holes in the glow.
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.Disable(gl.DEPTH_TEST)
	gl.DepthMask(false)
	gl.ClearColor(0, 0, 0, 1)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.New(vertexShader, fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create point shader: %w", err)
	}

	r.createBuffers()
	return r, nil
}

func (r *Renderer) createBuffers() {
	size := r.config.Count * 3 * 4

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.posVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.posVBO)
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &r.colVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.colVBO)
	gl.BufferData(gl.ARRAY_BUFFER, size, nil, gl.STATIC_DRAW)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 3*4, nil)
	gl.EnableVertexAttribArray(1)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.log.Debug("point buffers created",
		zap.Uint32("vao", r.vao),
		zap.Int("particles", r.config.Count),
	)
}

// SetColors uploads the per-particle colors.
func (r *Renderer) SetColors(colors []float32) error {
	if len(colors) != r.config.Count*3 {
		return fmt.Errorf("%w: %d colors for %d particles", ErrBufferSize, len(colors), r.config.Count)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, r.colVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(colors)*4, gl.Ptr(colors))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.posVBO != 0 {
		gl.DeleteBuffers(1, &r.posVBO)
	}
	if r.colVBO != 0 {
		gl.DeleteBuffers(1, &r.colVBO)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// Present re-uploads the positions and draws the field with the given
// whole-field rotation. GL errors are reported, not swallowed.
func (r *Renderer) Present(positions []float32, rot morph.Rotation) error {
	if len(positions) != r.config.Count*3 {
		return fmt.Errorf("%w: %d floats for %d particles", ErrBufferSize, len(positions), r.config.Count)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.posVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(positions)*4, gl.Ptr(positions))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	aspect := float32(r.config.Width) / float32(max(r.config.Height, 1))

	r.program.Use()
	r.program.SetMat4("uModel", camera.Model(rot))
	r.program.SetMat4("uView", r.camera.View())
	r.program.SetMat4("uProjection", r.camera.Projection(aspect))
	r.program.SetFloat("uPointSize", r.config.PointSize)
	r.program.SetFloat("uViewportHeight", float32(r.config.Height))

	gl.BindVertexArray(r.vao)
	gl.DrawArrays(gl.POINTS, 0, int32(r.config.Count))
	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("draw points: gl error 0x%04x", code)
	}
	return nil
}
