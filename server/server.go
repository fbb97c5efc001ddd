// Package server is the HTTP API behind the site: content, portfolio
// lookups, release notes and the contact relay.
package server

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yuin/goldmark"
	"go.uber.org/zap"

	"github.com/cometholdings/comet/config"
	"github.com/cometholdings/comet/content"
)

// Server is the HTTP API server for cometd.
type Server struct {
	router chi.Router
	store  *content.Store
	relay  http.Handler
	md     goldmark.Markdown
	log    *zap.Logger
	cfg    config.Config

	mu        sync.Mutex
	changelog rendered
}

// rendered caches HTML for one content version.
type rendered struct {
	version int
	html    []byte
}

// NewServer creates and configures the HTTP server. relay serves
// POST /api/contact.
func NewServer(store *content.Store, relay http.Handler, log *zap.Logger, cfg config.Config) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		store: store,
		relay: relay,
		md:    goldmark.New(),
		log:   log,
		cfg:   cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", s.handleStatus)
		r.Get("/content", s.handleContent)
		r.Get("/portfolio", s.handleListPortfolio)
		r.Get("/portfolio/{slug}", s.handleGetProject)
		r.Get("/changelog", s.handleChangelog)
		r.Get("/inventory", s.handleInventory)

		r.Method(http.MethodPost, "/contact", s.relay)
		r.Get("/contact/qr.png", s.handleContactQR)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
