package gfx

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/kjkrol/glstart/internal/gles"
)

// Perspective returns the projection for a drawing buffer of width x height.
func Perspective(conf SceneConfig, width, height int) mgl32.Mat4 {
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(conf.FieldOfView), aspect, conf.Near, conf.Far)
}

// FrameRenderer draws the triangle and the square. Matrices are rebuilt on
// every frame, nothing carries over between frames.
type FrameRenderer struct {
	dev  gles.Device
	prog *Program
	geom *Geometry
	conf SceneConfig

	stack      TransformStack
	projection mgl32.Mat4
	modelView  mgl32.Mat4
}

func NewFrameRenderer(dev gles.Device, prog *Program, geom *Geometry, conf SceneConfig) *FrameRenderer {
	return &FrameRenderer{
		dev:        dev,
		prog:       prog,
		geom:       geom,
		conf:       conf,
		projection: mgl32.Ident4(),
		modelView:  mgl32.Ident4(),
	}
}

func (r *FrameRenderer) Projection() mgl32.Mat4 { return r.projection }
func (r *FrameRenderer) ModelView() mgl32.Mat4  { return r.modelView }
func (r *FrameRenderer) StackDepth() int        { return r.stack.Depth() }

// Render draws one frame. A zero-sized drawing buffer is cleared and skipped.
func (r *FrameRenderer) Render() error {
	r.dev.Clear(gles.ColorBufferBit | gles.DepthBufferBit)

	width, height := r.dev.DrawingBufferSize()
	if width <= 0 || height <= 0 {
		Logger().Debug("skipping frame, empty drawing buffer", "width", width, "height", height)
		return nil
	}
	r.projection = Perspective(r.conf, width, height)

	r.modelView = mgl32.Ident4()
	r.translate(r.conf.TriangleOffset)
	r.drawMesh(&r.geom.Triangle)

	r.stack.Push(r.modelView)
	r.translate(r.conf.SquareOffset)
	r.drawMesh(&r.geom.Square)
	mv, err := r.stack.Pop()
	if err != nil {
		return err
	}
	r.modelView = mv
	return nil
}

func (r *FrameRenderer) translate(v mgl32.Vec3) {
	r.modelView = r.modelView.Mul4(mgl32.Translate3D(v.X(), v.Y(), v.Z()))
}

func (r *FrameRenderer) drawMesh(m *Mesh) {
	r.dev.BindBuffer(m.Positions.Buffer)
	r.dev.VertexAttribPointer(r.prog.PositionAttrib, m.Positions.ItemSize, false, 0, 0)
	r.dev.BindBuffer(m.Colors.Buffer)
	r.dev.VertexAttribPointer(r.prog.ColorAttrib, m.Colors.ItemSize, false, 0, 0)
	r.setMatrixUniforms()
	r.dev.DrawArrays(m.Mode, 0, m.Count())
}

func (r *FrameRenderer) setMatrixUniforms() {
	r.dev.UniformMatrix4fv(r.prog.ProjectionUniform, r.projection)
	r.dev.UniformMatrix4fv(r.prog.ModelViewUniform, r.modelView)
}
