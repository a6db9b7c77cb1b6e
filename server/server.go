// Package server exposes truncation over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/RobbieVerdurme/truncate.js/config"
	"github.com/RobbieVerdurme/truncate.js/coordinator"
	"github.com/RobbieVerdurme/truncate.js/markup"
	"github.com/RobbieVerdurme/truncate.js/measure"
)

// DefaultOracle is used when a request names none.
const DefaultOracle = "estimate"

// DefaultMaxBodyBytes limits request bodies.
const DefaultMaxBodyBytes = 1 << 20

// Request is the body of POST /truncate.
type Request struct {
	HTML         string         `json:"html"`
	Options      config.Options `json:"options"`
	Oracle       string         `json:"oracle,omitempty"`
	Width        int            `json:"width,omitempty"`
	CharsPerLine int            `json:"chars_per_line,omitempty"`
	Expand       bool           `json:"expand,omitempty"`
	Sanitize     bool           `json:"sanitize,omitempty"`
}

// Response is the body returned by POST /truncate.
type Response struct {
	HTML         string       `json:"html"`
	Truncated    bool         `json:"truncated"`
	Collapsed    bool         `json:"collapsed"`
	State        string       `json:"state"`
	Measurements Measurements `json:"measurements"`
}

// Measurements describes how the content was measured.
type Measurements struct {
	Oracle      string  `json:"oracle"`
	Height      float64 `json:"height"`
	MaxHeight   float64 `json:"max_height"`
	OracleCalls int     `json:"oracle_calls"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Server handles truncation requests. Every request gets its own
// coordinator and oracle; nothing is shared between requests except the
// metrics.
type Server struct {
	defaults config.Options
	registry *prometheus.Registry
	metrics  *Metrics
	logger   *slog.Logger
	maxBody  int64
}

// Option configures a Server.
type Option func(*Server)

// WithDefaults sets the options requests are merged onto.
func WithDefaults(opts config.Options) Option {
	return func(s *Server) { s.defaults = opts }
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMaxBodyBytes limits the size of request bodies.
func WithMaxBodyBytes(n int64) Option {
	return func(s *Server) { s.maxBody = n }
}

// New creates a Server with its own metrics registry.
func New(opts ...Option) *Server {
	s := &Server{
		defaults: config.Default(),
		registry: prometheus.NewRegistry(),
		logger:   slog.Default(),
		maxBody:  DefaultMaxBodyBytes,
	}
	for _, o := range opts {
		o(s)
	}
	s.metrics = NewMetrics(s.registry)
	return s
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/truncate", s.handleTruncate)
	r.Get("/oracles", s.handleOracles)
	r.Get("/schema", s.handleSchema)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

// ListenAndServe serves on addr until ctx is done, then shuts down.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleTruncate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() { s.metrics.duration.Observe(time.Since(start).Seconds()) }()

	var req Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, s.maxBody)).Decode(&req); err != nil {
		s.fail(w, r, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	resp, err := s.truncate(req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, config.ErrInvalid) || errors.Is(err, measure.ErrUnknownOracle) || errors.Is(err, markup.ErrParse) {
			status = http.StatusBadRequest
		}
		s.fail(w, r, status, err)
		return
	}

	outcome := "fits"
	switch {
	case resp.Truncated:
		outcome = "truncated"
	case resp.Measurements.Height > resp.Measurements.MaxHeight:
		outcome = "overflow"
	}
	s.metrics.requests.WithLabelValues(outcome).Inc()

	writeJSON(w, http.StatusOK, resp)
}

// truncate runs one request through a fresh coordinator.
func (s *Server) truncate(req Request) (Response, error) {
	opts := s.defaults.Merge(req.Options)
	if err := opts.Validate(); err != nil {
		return Response{}, err
	}
	content := req.HTML
	if req.Sanitize {
		content = markup.Sanitize(content)
		opts.ShowMore = markup.Sanitize(opts.ShowMore)
		opts.ShowLess = markup.Sanitize(opts.ShowLess)
	}

	name := req.Oracle
	if name == "" {
		name = DefaultOracle
	}
	// An explicit line height is the oracle's line unit; 0 leaves the
	// oracle default, which the coordinator then reads back as auto.
	oracle, err := measure.New(name, measure.Config{
		Width:        req.Width,
		CharsPerLine: req.CharsPerLine,
		LineUnits:    opts.LineHeight,
	})
	if err != nil {
		return Response{}, err
	}
	counting := measure.NewCounting(oracle, s.metrics.oracleCalls)

	root := markup.NewElement("div")
	if err := markup.ParseInto(root, content); err != nil {
		return Response{}, err
	}
	c, err := coordinator.New(root, counting, opts, coordinator.WithLogger(s.logger))
	if err != nil {
		return Response{}, err
	}
	if req.Expand {
		c.Expand()
	}

	return Response{
		HTML:      c.HTML(),
		Truncated: c.IsTruncated(),
		Collapsed: c.IsCollapsed(),
		State:     c.State().String(),
		Measurements: Measurements{
			Oracle:      name,
			Height:      c.Height(),
			MaxHeight:   c.MaxHeight(),
			OracleCalls: counting.Calls(),
		},
	}, nil
}

func (s *Server) handleOracles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"oracles": measure.Available()})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	data, err := config.SchemaJSON()
	if err != nil {
		s.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/schema+json")
	_, _ = w.Write(data)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.metrics.requests.WithLabelValues("error").Inc()
	s.logger.Warn("request failed",
		slog.String("path", r.URL.Path),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.Int("status", status),
		slog.Any("error", err))
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
