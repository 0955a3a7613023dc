// Package config holds the demo's startup settings. Every field has a working
// default, so an empty or missing file is a valid configuration.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/kjkrol/glstart/pkg/gfx"
	"gopkg.in/yaml.v3"
)

// maxConfigSize bounds what Load reads.
const maxConfigSize = 1 << 20

// DocumentConfig names the host page elements the demo reads.
type DocumentConfig struct {
	Canvas         string `yaml:"canvas"`
	VertexShader   string `yaml:"vertex_shader"`
	FragmentShader string `yaml:"fragment_shader"`
}

type ContextConfig struct {
	// Tiers overrides the platform's tier list when set.
	Tiers []string `yaml:"tiers"`
	Alpha bool     `yaml:"alpha"`
}

type CameraConfig struct {
	FieldOfView float32 `yaml:"fov"` // degrees
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
}

type SceneConfig struct {
	TriangleOffset [3]float32 `yaml:"triangle_offset"`
	SquareOffset   [3]float32 `yaml:"square_offset"`
	ClearColor     [4]float32 `yaml:"clear_color"`
}

// WindowConfig only applies to the desktop build.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type Config struct {
	Document DocumentConfig `yaml:"document"`
	Context  ContextConfig  `yaml:"context"`
	Camera   CameraConfig   `yaml:"camera"`
	Scene    SceneConfig    `yaml:"scene"`
	Window   WindowConfig   `yaml:"window"`
	LogLevel string         `yaml:"log_level"`
}

func Default() Config {
	scene := gfx.DefaultScene()
	return Config{
		Document: DocumentConfig{
			Canvas:         "qml-canvas",
			VertexShader:   "shader-vs",
			FragmentShader: "shader-fs",
		},
		Camera: CameraConfig{
			FieldOfView: scene.FieldOfView,
			Near:        scene.Near,
			Far:         scene.Far,
		},
		Scene: SceneConfig{
			TriangleOffset: scene.TriangleOffset,
			SquareOffset:   scene.SquareOffset,
			ClearColor:     scene.ClearColor,
		},
		Window: WindowConfig{
			Width:  640,
			Height: 480,
			Title:  "glstart",
		},
		LogLevel: "info",
	}
}

// Parse reads YAML on top of the defaults and validates the result. Keys
// absent from data keep their default value.
func Parse(data []byte) (Config, error) {
	conf := Default()
	if len(strings.TrimSpace(string(data))) == 0 {
		return conf, nil
	}
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// Load parses the file at path. An empty path yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if info.Size() > maxConfigSize {
		return Config{}, fmt.Errorf("load config: %s is %d bytes, limit is %d", path, info.Size(), maxConfigSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	conf, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("config loaded", "path", path)
	return conf, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Document.Canvas == "" {
		errs = append(errs, errors.New("document.canvas is empty"))
	}
	if c.Document.VertexShader == "" || c.Document.FragmentShader == "" {
		errs = append(errs, errors.New("document shader ids must be set"))
	}
	for _, tier := range c.Context.Tiers {
		if tier == "" {
			errs = append(errs, errors.New("context.tiers has an empty entry"))
			break
		}
	}
	if c.Camera.FieldOfView <= 0 || c.Camera.FieldOfView >= 180 {
		errs = append(errs, fmt.Errorf("camera.fov %v out of range (0, 180)", c.Camera.FieldOfView))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera planes need 0 < near < far, got %v and %v", c.Camera.Near, c.Camera.Far))
	}
	for i, v := range c.Scene.ClearColor {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("scene.clear_color[%d] = %v out of range [0, 1]", i, v))
		}
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Level is the slog level named by LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

// Tiers returns the configured tier list, or fallback when none is set.
func (c Config) Tiers(fallback []string) []string {
	if len(c.Context.Tiers) > 0 {
		return c.Context.Tiers
	}
	return fallback
}

// SceneConfig converts the camera and scene sections for the renderer.
func (c Config) SceneConfig() gfx.SceneConfig {
	return gfx.SceneConfig{
		FieldOfView:    c.Camera.FieldOfView,
		Near:           c.Camera.Near,
		Far:            c.Camera.Far,
		TriangleOffset: mgl32.Vec3(c.Scene.TriangleOffset),
		SquareOffset:   mgl32.Vec3(c.Scene.SquareOffset),
		ClearColor:     c.Scene.ClearColor,
	}
}
