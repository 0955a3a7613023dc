package gfx

import (
	"fmt"

	"github.com/kjkrol/glstart/internal/gles"
)

const (
	positionSize = 3
	colorSize    = 4
)

// TrianglePositions is an upward-pointing triangle in [-1,1].
func TrianglePositions() []float32 {
	return []float32{
		0.0, 1.0, 0.0,
		-1.0, -1.0, 0.0,
		1.0, -1.0, 0.0,
	}
}

// TriangleColors gives each triangle vertex one primary color.
func TriangleColors() []float32 {
	return []float32{
		1.0, 0.0, 0.0, 1.0,
		0.0, 1.0, 0.0, 1.0,
		0.0, 0.0, 1.0, 1.0,
	}
}

// SquarePositions lists the square in triangle-strip order: top-right,
// top-left, bottom-right, bottom-left. Reordering changes the winding.
func SquarePositions() []float32 {
	return []float32{
		1.0, 1.0, 0.0,
		-1.0, 1.0, 0.0,
		1.0, -1.0, 0.0,
		-1.0, -1.0, 0.0,
	}
}

func SquareColors() []float32 {
	colors := make([]float32, 0, 4*colorSize)
	for i := 0; i < 4; i++ {
		colors = append(colors, 1.0, 0.5, 1.0, 1.0)
	}
	return colors
}

// VertexBuffer is a GPU array buffer of float32 vertex data.
type VertexBuffer struct {
	Buffer   gles.Buffer
	ItemSize int
	NumItems int
}

func newVertexBuffer(dev gles.Device, data []float32, itemSize int) (VertexBuffer, error) {
	if itemSize <= 0 || len(data) == 0 || len(data)%itemSize != 0 {
		return VertexBuffer{}, fmt.Errorf("%w: %d floats in items of %d", ErrInvalidBuffer, len(data), itemSize)
	}
	buf, err := dev.CreateBuffer()
	if err != nil {
		return VertexBuffer{}, fmt.Errorf("create buffer: %w", err)
	}
	dev.BindBuffer(buf)
	dev.BufferData(data, gles.StaticDraw)
	return VertexBuffer{Buffer: buf, ItemSize: itemSize, NumItems: len(data) / itemSize}, nil
}

func (b *VertexBuffer) release(dev gles.Device) {
	if b.Buffer.Valid() {
		dev.DeleteBuffer(b.Buffer)
		b.Buffer = gles.Buffer{}
	}
}

// Mesh pairs position and color buffers with the primitive they draw.
type Mesh struct {
	Name      string
	Mode      gles.DrawMode
	Positions VertexBuffer
	Colors    VertexBuffer
}

func (m *Mesh) Count() int {
	return m.Positions.NumItems
}

func newMesh(dev gles.Device, name string, mode gles.DrawMode, positions, colors []float32) (Mesh, error) {
	mesh := Mesh{Name: name, Mode: mode}
	var err error
	if mesh.Positions, err = newVertexBuffer(dev, positions, positionSize); err != nil {
		return Mesh{}, fmt.Errorf("%s positions: %w", name, err)
	}
	if mesh.Colors, err = newVertexBuffer(dev, colors, colorSize); err != nil {
		mesh.release(dev)
		return Mesh{}, fmt.Errorf("%s colors: %w", name, err)
	}
	if mesh.Positions.NumItems != mesh.Colors.NumItems {
		mesh.release(dev)
		return Mesh{}, fmt.Errorf("%w: %s has %d positions and %d colors",
			ErrInvalidBuffer, name, mesh.Positions.NumItems, mesh.Colors.NumItems)
	}
	return mesh, nil
}

func (m *Mesh) release(dev gles.Device) {
	m.Positions.release(dev)
	m.Colors.release(dev)
}

// Geometry holds the two static meshes. It is uploaded once and never
// mutated.
type Geometry struct {
	Triangle Mesh
	Square   Mesh
}

func UploadGeometry(dev gles.Device) (*Geometry, error) {
	triangle, err := newMesh(dev, "triangle", gles.Triangles, TrianglePositions(), TriangleColors())
	if err != nil {
		return nil, err
	}
	square, err := newMesh(dev, "square", gles.TriangleStrip, SquarePositions(), SquareColors())
	if err != nil {
		triangle.release(dev)
		return nil, err
	}
	return &Geometry{Triangle: triangle, Square: square}, nil
}

// Release deletes all four buffers.
func (g *Geometry) Release(dev gles.Device) {
	if g == nil {
		return
	}
	g.Triangle.release(dev)
	g.Square.release(dev)
}
