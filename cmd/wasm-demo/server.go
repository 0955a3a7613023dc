//go:build !js

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/kjkrol/glstart/web"
	"github.com/pkg/browser"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

const shutdownTimeout = 5 * time.Second

// Serve hosts the demo page next to main.wasm and wasm_exec.js.
type Serve struct {
	Addr   string `short:"a" default:":8080" desc:"Listen address"`
	Dir    string `short:"d" default:"." desc:"Directory holding main.wasm and wasm_exec.js"`
	Minify bool   `short:"m" desc:"Minify HTML and JS responses"`
	Open   bool   `short:"o" desc:"Open the page in the default browser"`
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	root := argp.NewCmd(&Serve{}, "Development server for the WebGL demo")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Serve) Run() error {
	if info, err := os.Stat(cmd.Dir); err != nil {
		return err
	} else if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", cmd.Dir)
	}

	srv := &http.Server{Addr: cmd.Addr, Handler: logRequests(newHandler(cmd.Dir, cmd.Minify))}
	errc := make(chan error, 1)
	go func() {
		slog.Info("serving", "url", cmd.url(), "dir", cmd.Dir, "minify", cmd.Minify)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	if cmd.Open {
		if err := browser.OpenURL(cmd.url()); err != nil {
			slog.Warn("could not open browser", "error", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}

func (cmd *Serve) url() string {
	host := cmd.Addr
	if strings.HasPrefix(host, ":") {
		host = "localhost" + host
	}
	return "http://" + host + "/"
}

// newHandler serves the embedded page at the root and everything else from
// dir.
func newHandler(dir string, minifyResponses bool) http.Handler {
	mux := http.NewServeMux()
	files := http.FileServer(http.Dir(dir))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(web.IndexHTML)
			return
		}
		files.ServeHTTP(w, r)
	})
	if !minifyResponses {
		return mux
	}

	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/javascript", js.Minify)
	m.AddFunc("application/javascript", js.Minify)
	return m.Middleware(mux)
}

func logRequests(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slog.Debug("request", "method", r.Method, "path", r.URL.Path)
		h.ServeHTTP(w, r)
	})
}
