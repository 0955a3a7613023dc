//go:build js && wasm

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/kjkrol/glstart/internal/config"
	"github.com/kjkrol/glstart/internal/gles"
	"github.com/kjkrol/glstart/internal/platform"
	"github.com/kjkrol/glstart/pkg/gfx"
	"github.com/kjkrol/glstart/web"
)

func main() {
	doc := platform.NewBrowserDocument()
	conf := pageConfig(doc)

	level, _ := conf.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gfx.SetLogger(logger)

	canvas, err := doc.Canvas(conf.Document.Canvas)
	if err != nil {
		slog.Error("no canvas", "id", conf.Document.Canvas, "error", err)
		return
	}

	scheduler := platform.NewFrameScheduler()
	demo, err := gfx.Start(context.Background(), gfx.Options{
		Canvas:           canvas,
		Document:         doc,
		Scheduler:        scheduler,
		Notifier:         platform.AlertNotifier{},
		Tiers:            conf.Tiers(platform.BrowserTiers),
		Attributes:       gles.ContextAttributes{Alpha: conf.Context.Alpha},
		VertexShaderID:   conf.Document.VertexShader,
		FragmentShaderID: conf.Document.FragmentShader,
		Scene:            conf.SceneConfig(),
	})
	if err != nil {
		scheduler.Release()
		return
	}

	exports := map[string]func(){
		"drawScene": func() {
			if err := demo.DrawScene(); err != nil {
				slog.Error("drawScene failed", "error", err)
			}
		},
		"requestRedraw": demo.RequestRedraw,
	}
	for name, fn := range exports {
		if _, err := platform.Export(name, fn); err != nil {
			slog.Warn("export failed", "name", name, "error", err)
		}
	}

	// the frame callbacks run on the JS event loop for the life of the page
	select {}
}

// pageConfig reads the optional config block of the page, falling back to
// the defaults when it is absent or invalid.
func pageConfig(doc platform.Document) config.Config {
	block, ok := doc.Element(web.ConfigID)
	if !ok {
		return config.Default()
	}
	conf, err := config.Parse([]byte(block.Text))
	if err != nil {
		slog.Warn("ignoring page config", "error", err)
		return config.Default()
	}
	return conf
}
