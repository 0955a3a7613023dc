package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/kjkrol/glstart/pkg/gfx"
	"github.com/tdewolff/test"
)

func TestDefault(t *testing.T) {
	conf := Default()
	test.Error(t, conf.Validate())
	test.String(t, conf.Document.Canvas, "qml-canvas")
	test.String(t, conf.Document.VertexShader, "shader-vs")
	test.String(t, conf.Document.FragmentShader, "shader-fs")
	test.That(t, !conf.Context.Alpha)
	test.T(t, conf.SceneConfig(), gfx.DefaultScene())
}

func TestParseEmpty(t *testing.T) {
	conf, err := Parse(nil)
	test.Error(t, err)
	test.T(t, conf, Default())

	conf, err = Parse([]byte("  \n"))
	test.Error(t, err)
	test.T(t, conf, Default())
}

func TestParseOverrides(t *testing.T) {
	conf, err := Parse([]byte(`
document:
  canvas: main-canvas
context:
  tiers: [webgl]
camera:
  fov: 60
scene:
  clear_color: [0.1, 0.2, 0.3, 1]
log_level: debug
`))
	test.Error(t, err)
	test.String(t, conf.Document.Canvas, "main-canvas")
	test.String(t, conf.Document.VertexShader, "shader-vs")
	test.T(t, conf.Tiers([]string{"webgl", "experimental-webgl"}), []string{"webgl"})
	test.T(t, conf.Camera.FieldOfView, float32(60))
	test.T(t, conf.Camera.Near, float32(0.1))

	scene := conf.SceneConfig()
	test.T(t, scene.ClearColor, [4]float32{0.1, 0.2, 0.3, 1})
	test.T(t, scene.TriangleOffset, mgl32.Vec3{-1.5, 0, -7})

	level, err := conf.Level()
	test.Error(t, err)
	test.T(t, level, slog.LevelDebug)
}

func TestParseInvalid(t *testing.T) {
	var tests = []struct {
		yaml string
		err  string
	}{
		{"camera: {fov: 0}", "camera.fov"},
		{"camera: {near: 10, far: 1}", "near < far"},
		{"scene: {clear_color: [2, 0, 0, 1]}", "clear_color[0]"},
		{"document: {canvas: ''}", "document.canvas"},
		{"context: {tiers: ['']}", "context.tiers"},
		{"window: {width: -1}", "window size"},
		{"log_level: loud", "log_level"},
		{"camera: [1, 2]", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.yaml, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			test.That(t, err != nil)
			test.That(t, strings.Contains(err.Error(), tt.err), err.Error())
		})
	}
}

func TestTiersFallback(t *testing.T) {
	fallback := []string{"gl-3.3-core", "gl-3.2-core"}
	test.T(t, Default().Tiers(fallback), fallback)
}

func TestLoad(t *testing.T) {
	conf, err := Load("")
	test.Error(t, err)
	test.T(t, conf, Default())

	path := filepath.Join(t.TempDir(), "demo.yml")
	test.Error(t, os.WriteFile(path, []byte("window: {width: 1024, height: 768}\n"), 0o644))
	conf, err = Load(path)
	test.Error(t, err)
	test.T(t, conf.Window.Width, 1024)
	test.T(t, conf.Window.Height, 768)
	test.String(t, conf.Window.Title, "glstart")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	test.That(t, errors.Is(err, fs.ErrNotExist))
}
