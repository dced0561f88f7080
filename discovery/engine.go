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


package discovery

import (
	"context"
	"log/slog"

	"github.com/pressidio/imagescout/ai"
	"github.com/pressidio/imagescout/core"
	"github.com/pressidio/imagescout/keywords"
	"github.com/pressidio/imagescout/storage"
)

// Engine runs relevance-scored image discovery for article text.
// Per-request processing is strictly sequential and engines hold no shared
// mutable state, so a single Engine is safe for concurrent use across
// independent requests.
type Engine struct {
	provider        ai.Provider
	journal         storage.DiscoveryJournal
	monitor         EscalationMonitor
	ids             IDGenerator
	clock           Clock
	providerName    string
	searchModelHint string
	logger          *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// WithMonitor sets an escalation monitor receiving per-stage callbacks.
// Default is a no-op monitor.
func WithMonitor(monitor EscalationMonitor) Option {
	return func(e *Engine) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		e.monitor = monitor
		return nil
	}
}

// WithIDGenerator sets the identifier source for assembled images.
// Default generates UUIDs.
func WithIDGenerator(ids IDGenerator) Option {
	return func(e *Engine) error {
		if ids == nil {
			ids = uuidGenerator{}
		}
		e.ids = ids
		return nil
	}
}

// WithClock sets the time source used for filenames and timings.
// Default is the system clock.
func WithClock(clock Clock) Option {
	return func(e *Engine) error {
		if clock == nil {
			clock = systemClock{}
		}
		e.clock = clock
		return nil
	}
}

// WithJournal attaches a discovery journal. Outcomes are recorded after
// assembly; journal failures are logged, never surfaced to the caller.
func WithJournal(journal storage.DiscoveryJournal) Option {
	return func(e *Engine) error {
		e.journal = journal
		return nil
	}
}

// WithProviderName sets the provider label reported in response metadata.
func WithProviderName(name string) Option {
	return func(e *Engine) error {
		e.providerName = name
		return nil
	}
}

// WithSearchModelHint sets the model hint passed on search calls.
func WithSearchModelHint(hint string) Option {
	return func(e *Engine) error {
		e.searchModelHint = hint
		return nil
	}
}

// NewEngine creates a discovery engine backed by the given AI provider.
// A nil provider is a configuration error and is rejected before any
// network activity.
func NewEngine(provider ai.Provider, opts ...Option) (*Engine, error) {
	if provider == nil {
		return nil, ErrProviderRequired
	}

	e := &Engine{
		provider:     provider,
		monitor:      &noopMonitor{},
		ids:          uuidGenerator{},
		clock:        systemClock{},
		providerName: "openai-compatible",
		logger:       slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Discover finds (or generates) a single representative image for the
// article in the request. Exactly one response is produced per request;
// failure is an explicit error, never an empty response.
//
// Validation failures are reported before any provider call. Per-level
// provider failures are absorbed and downgrade the request to the next
// level; only total exhaustion surfaces ErrNoSuitableImages. Cancelling ctx
// mid-flight aborts the in-flight provider call and returns the context
// error rather than a partial result.
func (e *Engine) Discover(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, core.ErrValidation
	}
	if err := core.ValidateDiscoveryInput(req.ArticleID, req.ArticleTitle, req.ArticleContent); err != nil {
		return nil, err
	}

	start := e.clock.Now()
	kw := keywords.Extract(req.ArticleTitle, req.ArticleContent)
	e.monitor.Start(req.ArticleID, req.ArticleTitle)

	searchStart := e.clock.Now()
	outcome, totalFound, err := e.escalate(ctx, req, kw)
	if err != nil {
		e.logger.Warn("discovery failed",
			"articleID", req.ArticleID,
			"err", err)
		return nil, err
	}
	searchTime := e.clock.Now().Sub(searchStart)
	e.monitor.Finish(outcome)

	resp := assemble(req, outcome, kw, timings{
		search: searchTime,
		total:  e.clock.Now().Sub(start),
	}, totalFound, e.providerName, e.ids, e.clock)

	e.recordOutcome(ctx, req, outcome, kw)

	e.logger.Info("discovery complete",
		"articleID", req.ArticleID,
		"level", outcome.Level.String(),
		"score", outcome.Image.RelevanceScore,
		"candidates", outcome.CandidatesEvaluated)

	return resp, nil
}

// recordOutcome writes the outcome to the journal when one is attached.
// Journal failures must not fail a discovery that already succeeded.
func (e *Engine) recordOutcome(ctx context.Context, req *Request, outcome *core.EscalationOutcome, kw core.KeywordSet) {
	if e.journal == nil {
		return
	}

	record := &core.DiscoveryRecord{
		ArticleID:      req.ArticleID,
		ArticleTitle:   req.ArticleTitle,
		ImageURL:       outcome.Image.URL,
		SourceDomain:   outcome.Image.SourceDomain,
		RelevanceScore: outcome.Image.RelevanceScore,
		Level:          outcome.Level,
		CandidatesSeen: outcome.CandidatesEvaluated,
		WasGenerated:   outcome.Level == core.LevelAiGenerated,
		Keywords:       kw,
		ProcessingTime: outcome.ProcessingTime,
		InsertedAt:     e.clock.Now(),
	}
	if err := e.journal.RecordOutcome(ctx, record); err != nil {
		e.logger.Warn("failed to journal discovery outcome",
			"articleID", req.ArticleID,
			"err", err)
	}
}
