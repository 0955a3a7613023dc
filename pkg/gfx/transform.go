package gfx

import "github.com/go-gl/mathgl/mgl32"

// TransformStack saves and restores model-view matrices. Matrices are values,
// so Push stores a copy.
type TransformStack struct {
	items []mgl32.Mat4
}

func (s *TransformStack) Push(m mgl32.Mat4) {
	s.items = append(s.items, m)
}

// Pop removes and returns the top matrix.
func (s *TransformStack) Pop() (mgl32.Mat4, error) {
	n := len(s.items)
	if n == 0 {
		return mgl32.Mat4{}, ErrTransformStackUnderflow
	}
	m := s.items[n-1]
	s.items = s.items[:n-1]
	return m, nil
}

func (s *TransformStack) Depth() int {
	return len(s.items)
}
