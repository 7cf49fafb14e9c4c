package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zgpcy/wallclock/internal/clock"
	"github.com/zgpcy/wallclock/internal/config"
	"github.com/zgpcy/wallclock/internal/display"
	"github.com/zgpcy/wallclock/internal/logger"
	"github.com/zgpcy/wallclock/internal/version"
	"github.com/zgpcy/wallclock/internal/wallclock"
)

//go:embed templates/index.html
var indexTemplate string

var indexTmpl = template.Must(template.New("index").Parse(indexTemplate))

// HTTP server timeout constants
const (
	DefaultReadTimeout  = 15 * time.Second // Maximum duration for reading the entire request
	DefaultWriteTimeout = 15 * time.Second // Maximum duration before timing out writes of the response
	DefaultIdleTimeout  = 60 * time.Second // Maximum amount of time to wait for the next request
)

// indexPageData holds template data for the index page
type indexPageData struct {
	TargetID    string
	CurrentTime string
	CurrentDate string
	StatusClass string
	StatusText  string
	Uptime      string
	Renders     uint64
	Version     string
}

// Server represents the HTTP server
type Server struct {
	server      *http.Server
	updater     *wallclock.Updater
	broadcaster *display.Broadcaster
	clock       clock.Clock
	cfg         *config.Config
	logger      *logger.Logger
	startedAt   time.Time

	// streamsCtx is cancelled when Shutdown begins so open event streams return
	streamsCtx    context.Context
	cancelStreams context.CancelFunc
}

// NewServer creates a new HTTP server. gatherer serves /metrics; pass nil to use
// the default Prometheus registry.
func NewServer(cfg *config.Config, updater *wallclock.Updater, broadcaster *display.Broadcaster, clk clock.Clock, gatherer prometheus.Gatherer, log *logger.Logger) *Server {
	mux := http.NewServeMux()
	streamsCtx, cancelStreams := context.WithCancel(context.Background())

	s := &Server{
		server: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      mux,
			ReadTimeout:  DefaultReadTimeout,
			WriteTimeout: DefaultWriteTimeout,
			IdleTimeout:  DefaultIdleTimeout,
		},
		updater:     updater,
		broadcaster: broadcaster,
		clock:       clk,
		cfg:         cfg,
		logger:      log,
		startedAt:   clk.Now(),

		streamsCtx:    streamsCtx,
		cancelStreams: cancelStreams,
	}
	s.server.RegisterOnShutdown(cancelStreams)

	metricsHandler := promhttp.Handler()
	if gatherer != nil {
		metricsHandler = promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
	}

	// Register handlers
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /events", s.handleEvents)
	mux.HandleFunc("GET /api/time", s.handleTime)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /ready", s.handleReady)
	mux.Handle("GET /metrics", metricsHandler)

	return s
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server
func (s *Server) Start() error {
	var err error
	if s.cfg.TLS.Enabled() {
		s.logger.Info("Starting HTTPS server", "address", s.server.Addr)
		err = s.server.ListenAndServeTLS(s.cfg.TLS.CertFile, s.cfg.TLS.KeyFile)
	} else {
		s.logger.Info("Starting HTTP server", "address", s.server.Addr)
		err = s.server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Serve accepts plain HTTP connections on ln
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("Starting HTTP server", "address", ln.Addr().String())
	if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// handleIndex serves the host page
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	now := s.clock.Now()
	stats := s.updater.Stats()

	statusClass := "not-ready"
	statusText := "Not Ready"
	if isReady(stats) {
		statusClass = "ready"
		statusText = "Ready"
	}

	data := indexPageData{
		TargetID:    wallclock.TargetID,
		CurrentTime: wallclock.Format(now),
		CurrentDate: now.Format("2006-01-02"),
		StatusClass: statusClass,
		StatusText:  statusText,
		Uptime:      now.Sub(s.startedAt).Truncate(time.Second).String(),
		Renders:     stats.Renders,
		Version:     version.Version,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		s.logger.Error("Failed to execute index template", "error", err)
	}
}

// handleEvents streams every render as a Server-Sent Event
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	rc := http.NewResponseController(w)
	// The stream outlives the server write timeout
	if err := rc.SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		s.logger.Warn("Failed to clear write deadline for event stream", "error", err)
	}

	updates, cancel := s.broadcaster.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if text := s.broadcaster.Text(); text != "" {
		if err := writeEvent(w, text); err != nil {
			return
		}
	}
	if err := rc.Flush(); err != nil {
		s.logger.Error("Event stream does not support flushing", "error", err)
		return
	}

	s.logger.Debug("Event stream opened", "remote_addr", r.RemoteAddr)
	defer s.logger.Debug("Event stream closed", "remote_addr", r.RemoteAddr)

	for {
		select {
		case <-r.Context().Done():
			return
		case <-s.streamsCtx.Done():
			return
		case text, ok := <-updates:
			if !ok {
				return
			}
			if err := writeEvent(w, text); err != nil {
				return
			}
			if err := rc.Flush(); err != nil {
				return
			}
		}
	}
}

func writeEvent(w http.ResponseWriter, text string) error {
	_, err := fmt.Fprintf(w, "data: %s\n\n", text)
	return err
}

// handleTime returns the current readout as JSON
func (s *Server) handleTime(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"time": s.updater.SampleAndFormat()}); err != nil {
		s.logger.Error("Failed to write time response", "error", err)
	}
}

// handleHealth handles health check requests (always returns 200 for liveness)
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`{"status":"healthy"}`)); err != nil {
		s.logger.Error("Failed to write health response", "error", err)
	}
}

// handleReady handles readiness check requests (returns 200 only when the last render succeeded)
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	stats := s.updater.Stats()
	if stats.Renders == 0 && stats.LastError == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		if _, err := w.Write([]byte(`{"status":"not ready","message":"waiting for first render"}`)); err != nil {
			s.logger.Error("Failed to write ready response", "error", err)
		}
		return
	}

	if stats.LastError != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		body, _ := json.Marshal(map[string]string{"status": "not ready", "error": stats.LastError.Error()})
		if _, err := w.Write(body); err != nil {
			s.logger.Error("Failed to write ready response", "error", err)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`{"status":"ready"}`)); err != nil {
		s.logger.Error("Failed to write ready response", "error", err)
	}
}

func isReady(stats wallclock.Stats) bool {
	return stats.Renders > 0 && stats.LastError == nil
}
