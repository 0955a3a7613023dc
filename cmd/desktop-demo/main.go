//go:build !js && cgo

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/kjkrol/glstart/internal/config"
	"github.com/kjkrol/glstart/internal/gles"
	"github.com/kjkrol/glstart/internal/platform"
	"github.com/kjkrol/glstart/pkg/gfx"
	"github.com/kjkrol/glstart/web"
	"github.com/tdewolff/argp"
)

func init() {
	// GLFW and the GL context must stay on the main OS thread.
	runtime.LockOSThread()
}

// Desktop renders the demo page's scene in a native window.
type Desktop struct {
	Config   string `short:"c" desc:"YAML configuration file"`
	Document string `short:"d" desc:"HTML page holding the shader blocks, defaults to the embedded page"`
	Width    int    `desc:"Window width, overrides the configuration"`
	Height   int    `desc:"Window height, overrides the configuration"`
	LogLevel string `short:"l" name:"log-level" desc:"Log level (debug, info, warn, error)"`
}

func main() {
	root := argp.NewCmd(&Desktop{}, "Native OpenGL build of the WebGL demo")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Desktop) Run() error {
	conf, err := cmd.config()
	if err != nil {
		return err
	}
	level, _ := conf.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gfx.SetLogger(logger)

	doc, err := cmd.document()
	if err != nil {
		return err
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	win := platform.NewWindow(platform.WindowConfig{
		Width:  conf.Window.Width,
		Height: conf.Window.Height,
		Title:  conf.Window.Title,
	})
	defer win.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	demo, err := gfx.Start(ctx, gfx.Options{
		Canvas:           win,
		Document:         doc,
		Scheduler:        win,
		Notifier:         win,
		Tiers:            conf.Tiers(platform.DesktopTiers),
		Attributes:       gles.ContextAttributes{Alpha: conf.Context.Alpha},
		VertexShaderID:   conf.Document.VertexShader,
		FragmentShaderID: conf.Document.FragmentShader,
		Scene:            conf.SceneConfig(),
	})
	if err != nil {
		return err
	}
	defer demo.Close()

	win.OnRefresh(demo.RequestRedraw)
	win.Run(ctx)

	if err := demo.Loop().Err(); err != nil {
		return err
	}
	slog.Info("window closed")
	return nil
}

// config loads the configuration file and applies the flag overrides.
func (cmd *Desktop) config() (config.Config, error) {
	conf, err := config.Load(cmd.Config)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Width != 0 {
		conf.Window.Width = cmd.Width
	}
	if cmd.Height != 0 {
		conf.Window.Height = cmd.Height
	}
	if cmd.LogLevel != "" {
		conf.LogLevel = cmd.LogLevel
	}
	if err := conf.Validate(); err != nil {
		return config.Config{}, errors.Join(errors.New("invalid configuration"), err)
	}
	return conf, nil
}

func (cmd *Desktop) document() (platform.Document, error) {
	if cmd.Document == "" {
		return platform.ParseHTMLBytes(web.IndexHTML)
	}
	return platform.LoadHTML(cmd.Document)
}
