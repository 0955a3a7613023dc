package gfx

import "github.com/go-gl/mathgl/mgl32"

// SceneConfig describes the static camera and where the two meshes sit.
// FieldOfView is the vertical angle in degrees.
type SceneConfig struct {
	FieldOfView    float32
	Near           float32
	Far            float32
	TriangleOffset mgl32.Vec3
	// SquareOffset is applied on top of TriangleOffset.
	SquareOffset mgl32.Vec3
	ClearColor   [4]float32
}

func DefaultScene() SceneConfig {
	return SceneConfig{
		FieldOfView:    45,
		Near:           0.1,
		Far:            100,
		TriangleOffset: mgl32.Vec3{-1.5, 0, -7},
		SquareOffset:   mgl32.Vec3{3, 0, 0},
		ClearColor:     [4]float32{0, 0, 0, 1},
	}
}
