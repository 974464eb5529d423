package server

import (
	"context"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/ziadkadry99/folio/internal/catalog"
	"github.com/ziadkadry99/folio/internal/gallery"
	"github.com/ziadkadry99/folio/internal/livereload"
	"github.com/ziadkadry99/folio/internal/render"
)

// Config holds server configuration.
type Config struct {
	Port        int
	AllowAll    bool // allow all CORS origins
	MaxCardTags int
	Locale      language.Tag
}

// snapshot is one load of the catalog. A failed load keeps an empty
// catalog alongside the error.
type snapshot struct {
	catalog *catalog.Catalog
	err     error
	loaded  time.Time
}

// Server is the live gallery server. Every request renders from the current
// catalog snapshot, which Reload swaps whole.
type Server struct {
	cfg        Config
	source     gallery.Source
	renderer   *render.Renderer
	hub        *livereload.Hub
	logger     *zap.Logger
	current    atomic.Pointer[snapshot]
	router     chi.Router
	httpServer *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger used for requests and reloads.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLiveReload enables the /ws/reload endpoint. Pages reload whenever
// Reload runs.
func WithLiveReload(hub *livereload.Hub) Option {
	return func(s *Server) { s.hub = hub }
}

// New creates a server. The catalog starts empty; call Reload before Start.
func New(cfg Config, source gallery.Source, renderer *render.Renderer, opts ...Option) *Server {
	if cfg.MaxCardTags == 0 {
		cfg.MaxCardTags = render.DefaultMaxCardTags
	}
	if cfg.Locale == language.Und {
		cfg.Locale = language.English
	}
	s := &Server{
		cfg:      cfg,
		source:   source,
		renderer: renderer,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current.Store(&snapshot{catalog: catalog.Empty()})
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Websockets outlive any request timeout.
	if s.hub != nil {
		r.Handle("/ws/reload", s.hub)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/healthz", s.handleHealth)

		r.Get("/", s.handleIndex)
		r.Get("/projects/{slug}", s.handleDetail)
		r.Get("/fragments/gallery", s.handleGridFragment)
		r.Post("/theme", s.handleTheme)

		r.Route("/api", func(r chi.Router) {
			r.Get("/projects", s.handleListProjects)
			r.Get("/projects/{slug}", s.handleGetProject)
			r.Get("/tags", s.handleTags)
		})

		r.Get("/assets/projects.json", s.handleRawCatalog)
		r.Handle("/static/*", http.StripPrefix("/static/", staticHandler()))
	})

	return r
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Reload reads the catalog from the source and swaps it in. A failed load
// is kept as the current state, so pages show the load-error card until a
// later Reload succeeds. Connected pages are told to reload either way.
func (s *Server) Reload(ctx context.Context) error {
	c, err := s.source.Load(ctx)
	snap := &snapshot{catalog: c, err: err, loaded: time.Now()}
	if err != nil {
		snap.catalog = catalog.Empty()
		s.logger.Warn("catalog failed to load", zap.Error(err))
	} else {
		s.logger.Info("catalog loaded", zap.Int("projects", c.Len()))
	}
	s.current.Store(snap)

	if s.hub != nil {
		s.hub.Reload()
	}
	return err
}

// Catalog returns the catalog currently served and its load error, if any.
func (s *Server) Catalog() (*catalog.Catalog, error) {
	snap := s.current.Load()
	return snap.catalog, snap.err
}

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("folio server listening", zap.String("addr", addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown disconnects live reload clients and gracefully shuts down the
// server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.hub != nil {
		s.hub.Close()
	}
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
