// Copyright 2026 Pressidio Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pressidio/imagescout/core"
	"github.com/pressidio/imagescout/discovery"
	"github.com/pressidio/imagescout/storage"
)

const (
	defaultAddr           = ":8080"
	defaultRequestTimeout = 120 * time.Second

	defaultJournalLimit = 20
	maxJournalLimit     = 100
)

// ErrEngineRequired is returned when a discovery engine is not provided.
var ErrEngineRequired = errors.New("discovery engine required")

// Discoverer runs image discovery for a single article.
// *discovery.Engine satisfies this interface.
type Discoverer interface {
	Discover(ctx context.Context, req *discovery.Request) (*discovery.Response, error)
}

// Server exposes image discovery over HTTP.
type Server struct {
	engine         Discoverer
	journal        storage.DiscoveryJournal
	metrics        *Metrics
	logger         *slog.Logger
	addr           string
	requestTimeout time.Duration
}

// Option configures a Server.
type Option func(*Server) error

// WithAddr sets the listen address. Default is ":8080".
func WithAddr(addr string) Option {
	return func(s *Server) error {
		if addr != "" {
			s.addr = addr
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithJournal attaches a journal, enabling the recent-discoveries endpoint.
func WithJournal(journal storage.DiscoveryJournal) Option {
	return func(s *Server) error {
		s.journal = journal
		return nil
	}
}

// WithRequestTimeout bounds the time a single discovery request may take.
// Default is 120s: a worst-case request makes three sequential model calls.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(s *Server) error {
		if timeout > 0 {
			s.requestTimeout = timeout
		}
		return nil
	}
}

// NewServer creates an API server on top of a discovery engine.
func NewServer(engine Discoverer, opts ...Option) (*Server, error) {
	if engine == nil {
		return nil, ErrEngineRequired
	}

	s := &Server{
		engine:         engine,
		metrics:        NewMetrics(),
		logger:         slog.Default(),
		addr:           defaultAddr,
		requestTimeout: defaultRequestTimeout,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Post("/v1/discover", s.handleDiscover)
	if s.journal != nil {
		r.Get("/v1/discoveries/recent", s.handleRecentDiscoveries)
	}
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      s.requestTimeout + 10*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("api server starting", "addr", s.addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) handleDiscover(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()

	var req discovery.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "malformed request body: " + err.Error(),
			Code:  "VALIDATION_ERROR",
		})
		return
	}

	start := time.Now()
	resp, err := s.engine.Discover(ctx, &req)
	if err != nil {
		s.metrics.ObserveDiscovery("none", "failed", time.Since(start))
		s.writeDiscoverError(w, err)
		return
	}

	outcome := "found"
	if resp.Metadata.WasGenerated {
		outcome = "generated"
	}
	s.metrics.ObserveDiscovery(resp.Image.SearchLevel, outcome, time.Since(start))

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeDiscoverError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	case errors.Is(err, discovery.ErrNoSuitableImages):
		writeJSON(w, http.StatusBadGateway, errorResponse{
			Error: err.Error(),
			Code:  "NO_SUITABLE_IMAGES",
		})
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		writeJSON(w, http.StatusGatewayTimeout, errorResponse{
			Error: err.Error(),
			Code:  "TIMEOUT",
		})
	default:
		s.logger.Error("discovery failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: "internal error",
			Code:  "INTERNAL_ERROR",
		})
	}
}

func (s *Server) handleRecentDiscoveries(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	limit := defaultJournalLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error: "limit must be a positive integer",
				Code:  "VALIDATION_ERROR",
			})
			return
		}
		limit = parsed
	}
	if limit > maxJournalLimit {
		limit = maxJournalLimit
	}

	records, err := s.journal.RecentRecords(ctx, limit)
	if err != nil {
		s.logger.Error("journal read failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: "internal error",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	entries := make([]journalEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, journalEntry{
			ArticleID:      rec.ArticleID,
			ArticleTitle:   rec.ArticleTitle,
			ImageURL:       rec.ImageURL,
			SourceDomain:   rec.SourceDomain,
			RelevanceScore: rec.RelevanceScore,
			SearchLevel:    rec.Level.String(),
			WasGenerated:   rec.WasGenerated,
			Keywords:       []string(rec.Keywords),
			DiscoveredAt:   rec.InsertedAt,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"discoveries": entries})
}

// journalEntry is the wire shape of one journal record.
type journalEntry struct {
	ArticleID      string    `json:"articleId"`
	ArticleTitle   string    `json:"articleTitle"`
	ImageURL       string    `json:"imageUrl"`
	SourceDomain   string    `json:"sourceDomain"`
	RelevanceScore int       `json:"relevanceScore"`
	SearchLevel    string    `json:"searchLevel"`
	WasGenerated   bool      `json:"wasGenerated"`
	Keywords       []string  `json:"keywords"`
	DiscoveredAt   time.Time `json:"discoveredAt"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("encode response", "err", err)
	}
}
