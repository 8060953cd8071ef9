// Package server exposes the capture pipeline over HTTP: static marketing
// pages POST their form fields here and get the completion outcome back.
package server

import (
	"net/http"

	"github.com/leadstack/leadform/internal/utils"
	"github.com/leadstack/leadform/pkg/attribution"
	"github.com/leadstack/leadform/pkg/emailcheck"
	"github.com/leadstack/leadform/pkg/geo"
	"github.com/leadstack/leadform/pkg/payload"
	"github.com/leadstack/leadform/pkg/relay"
)

// Config carries the deployment-wide collaborators and relay constants.
type Config struct {
	Store      *attribution.Store
	Geo        *geo.Resolver
	Relay      *relay.Client
	EmailCheck *emailcheck.Checker
	Builder    *payload.Builder

	// Security is the relay request token handed to every session.
	Security string
	Post     string

	// LeadFormat overrides the default lead format when non-empty.
	LeadFormat string

	WidgetHash string
	// WidgetToken is the deployment-wide fallback when the page carries no
	// widget_token of its own.
	WidgetToken string
	PageMarkup  string

	// Username/Password guard the API with basic auth when set.
	Username string
	Password string
}

type Server struct {
	cfg     Config
	tracker *attribution.Tracker
}

func New(cfg Config) *Server {
	return &Server{
		cfg:     cfg,
		tracker: attribution.NewTracker(cfg.Store),
	}
}

func (s *Server) Start(addr string) error {
	utils.Log.Infof("starting capture server on %s", addr)
	return http.ListenAndServe(addr, s.Mux())
}

// Mux builds the route table; split out so tests can drive it directly.
func (s *Server) Mux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /capture/{formID}", s.basicAuth(s.handleCapture))
	mux.HandleFunc("POST /attribution", s.basicAuth(s.handleAttribution))
	mux.HandleFunc("GET /healthz", s.handleHealth)

	return mux
}

func (s *Server) basicAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.Username == "" && s.cfg.Password == "" {
			next(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.cfg.Username || pass != s.cfg.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}
