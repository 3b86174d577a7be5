// Package server implements the petal development server: component
// previews, static files, and websocket-driven live reload.
package server

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/petal-dev/petal/internal/config"
	"github.com/petal-dev/petal/internal/logging"
	"github.com/petal-dev/petal/internal/registry"
)

// Server serves one project during development.
type Server struct {
	cfg    *config.ProjectConfig
	reg    *registry.Registry
	root   string
	logger logging.Logger
	hub    *Hub
}

// New creates a dev server for the project at root.
func New(cfg *config.ProjectConfig, reg *registry.Registry, root string, logger logging.Logger) *Server {
	return &Server{
		cfg:    cfg,
		reg:    reg,
		root:   root,
		logger: logger.WithComponent("server"),
		hub:    NewHub(),
	}
}

// NotifyReload tells all connected browsers to refresh.
func (s *Server) NotifyReload() {
	s.hub.Broadcast("reload")
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/preview/{name}", s.handlePreview)
	r.Handle("/ws", s.hub)

	staticDir := filepath.Join(s.root, s.cfg.Path(config.PathStatic))
	r.Handle("/static/*", http.StripPrefix("/static/",
		http.FileServer(http.Dir(staticDir))))

	return r
}

// Start runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "dev server listening", "addr", "http://"+addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	s.writeShell(w, func() {
		fmt.Fprint(w, `<main class="p-8"><h1 class="text-3xl font-bold mb-4">petal components</h1><ul class="menu bg-base-200 rounded-box w-64">`)
		for _, name := range s.reg.Names() {
			def, err := s.reg.Get(name)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, `<li><a href="/preview/%s">%s <span class="badge badge-ghost">%s</span></a></li>`,
				name, name, def.Kind)
		}
		fmt.Fprint(w, `</ul></main>`)
	})
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	def, err := s.reg.Get(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if def.Renderer == nil {
		http.Error(w, "component has no preview", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	s.writeShell(w, func() {
		fmt.Fprintf(w, `<main class="p-8"><h1 class="text-xl font-bold mb-4">%s</h1>`, name)
		if err := def.Renderer().Render(r.Context(), w); err != nil {
			s.logger.Error(r.Context(), err, "preview render failed", "name", name)
		}
		fmt.Fprint(w, `</main>`)
	})
}

// writeShell wraps body in the HTML document frame, including the built
// stylesheet and, when live reload is on, the reload script.
func (s *Server) writeShell(w http.ResponseWriter, body func()) {
	fmt.Fprintf(w, `<!doctype html><html data-theme=%q><head><meta charset="utf-8">`, s.cfg.Theme)
	fmt.Fprint(w, `<link rel="stylesheet" href="/static/css/output.css">`)
	fmt.Fprint(w, `</head><body>`)
	body()
	if s.cfg.Live {
		fmt.Fprint(w, `<script>
new WebSocket("ws://"+location.host+"/ws").onmessage=function(e){if(e.data==="reload"){location.reload()}};
</script>`)
	}
	fmt.Fprint(w, `</body></html>`)
}
