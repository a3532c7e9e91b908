// Package preview implements the development preview server. It parses
// and renders component pages on every request, exposes Prometheus
// metrics, and pushes live reload notifications to connected browsers
// when source pages change.
package preview

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/justinyaodu/htmlcomp/internal/config"
	"github.com/justinyaodu/htmlcomp/internal/watch"
	"github.com/justinyaodu/htmlcomp/pkg/elements"
	"github.com/justinyaodu/htmlcomp/pkg/htmlcomp"
)

const tracerName = "htmlcomp/preview"

// Server serves rendered component pages with live reload.
type Server struct {
	config   *config.Config
	registry *prometheus.Registry
	metrics  *metrics
	reload   *ReloadHub
	tracer   trace.Tracer
	router   chi.Router
	watcher  *watch.Watcher
}

// Option configures the preview server.
type Option func(*Server)

// WithRegistry sets the Prometheus registry. The default is a fresh
// registry private to the server.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(s *Server) {
		s.registry = registry
	}
}

// New creates a preview server for the given project configuration.
func New(cfg *config.Config, opts ...Option) *Server {
	elements.Register()

	s := &Server{
		config: cfg,
		reload: NewReloadHub(),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = prometheus.NewRegistry()
	}
	s.metrics = newMetrics(s.registry)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Get("/_htmlcomp/reload", s.reload.HandleWebSocket)
	r.Get("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}).ServeHTTP)
	r.Get("/", s.servePage)
	r.Get("/{page}", s.servePage)
	s.router = r

	s.watcher = watch.New(watch.Config{
		Path: cfg.SourcePath(),
		Exts: []string{".html"},
	})
	s.watcher.OnChange(func(c watch.Change) {
		rel, err := filepath.Rel(cfg.SourcePath(), c.Path)
		if err != nil {
			rel = c.Path
		}
		s.reload.NotifyReload(rel)
	})

	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server and the source watcher, blocking until
// ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	go s.watcher.Start(ctx)
	defer s.watcher.Stop()
	defer s.reload.Close()

	srv := &http.Server{
		Addr:    s.config.ServeAddress(),
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
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

// servePage parses and renders a single source page.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	page := chi.URLParam(r, "page")
	if page == "" {
		page = "index"
	}
	page = trimHTMLExt(page)

	_, span := s.tracer.Start(r.Context(), "preview.render",
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("htmlcomp.page", page)),
	)
	defer span.End()

	start := time.Now()
	html, err := s.renderPage(page)
	s.metrics.renderDuration.WithLabelValues(page).Observe(time.Since(start).Seconds())

	if err != nil {
		if os.IsNotExist(err) {
			s.metrics.pagesRendered.WithLabelValues(page, "not_found").Inc()
			span.SetStatus(codes.Error, "page not found")
			http.NotFound(w, r)
			return
		}
		s.metrics.pagesRendered.WithLabelValues(page, "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.reload.NotifyError(err.Error())
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.metrics.pagesRendered.WithLabelValues(page, "success").Inc()
	span.SetStatus(codes.Ok, "")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, html)
	fmt.Fprint(w, reloadClientScript)
}

// renderPage reads, parses, and renders a source page by name.
func (s *Server) renderPage(page string) (string, error) {
	path := filepath.Join(s.config.SourcePath(), page+".html")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	root, err := htmlcomp.Parse(string(data))
	if err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}
	html, err := htmlcomp.String(root)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", path, err)
	}
	return html, nil
}

// trimHTMLExt strips a trailing .html so /about and /about.html serve
// the same page.
func trimHTMLExt(page string) string {
	if ext := filepath.Ext(page); ext == ".html" {
		return page[:len(page)-len(ext)]
	}
	return page
}

var errNotDirectory = errors.New("source path is not a directory")

// CheckSource verifies the configured source directory exists.
func (s *Server) CheckSource() error {
	info, err := os.Stat(s.config.SourcePath())
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", s.config.SourcePath(), errNotDirectory)
	}
	return nil
}
