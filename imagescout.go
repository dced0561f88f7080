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


package imagescout

import (
	"log/slog"

	"github.com/pressidio/imagescout/ai"
	"github.com/pressidio/imagescout/ai/openai"
	"github.com/pressidio/imagescout/api"
	"github.com/pressidio/imagescout/batch"
	"github.com/pressidio/imagescout/discovery"
	"github.com/pressidio/imagescout/storage"
	"github.com/pressidio/imagescout/storage/badger"
)

// Scout bundles the AI provider, journal and discovery engine behind one
// handle. It is the assembly point used by the CLI and the API server.
type Scout struct {
	provider ai.Provider
	journal  storage.DiscoveryJournal
	engine   *discovery.Engine
	logger   *slog.Logger
}

// ScoutOption configures a Scout.
type ScoutOption func(*scoutOptions)

type scoutOptions struct {
	aiConfig    *ai.Config
	journalPath string
	engineOpts  []discovery.Option
}

// WithAIConfig overrides the default AI provider configuration.
func WithAIConfig(cfg *ai.Config) ScoutOption {
	return func(o *scoutOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithJournalPath enables outcome journaling at the given database path.
// Without it the Scout runs journal-free.
func WithJournalPath(path string) ScoutOption {
	return func(o *scoutOptions) {
		o.journalPath = path
	}
}

// WithEngineOptions forwards extra options to the discovery engine.
func WithEngineOptions(opts ...discovery.Option) ScoutOption {
	return func(o *scoutOptions) {
		o.engineOpts = append(o.engineOpts, opts...)
	}
}

// New assembles a Scout: AI provider, optional journal, discovery engine.
func New(opts ...ScoutOption) (*Scout, error) {
	// Apply options
	options := &scoutOptions{
		aiConfig: ai.DefaultConfig(), // Default if not provided
	}
	for _, opt := range opts {
		opt(options)
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		return nil, err
	}

	var journal storage.DiscoveryJournal
	if options.journalPath != "" {
		journal, err = badger.NewJournal(options.journalPath)
		if err != nil {
			provider.Close()
			return nil, err
		}
	}

	engineOpts := options.engineOpts
	if journal != nil {
		engineOpts = append(engineOpts, discovery.WithJournal(journal))
	}

	engine, err := discovery.NewEngine(provider, engineOpts...)
	if err != nil {
		if journal != nil {
			journal.Close()
		}
		provider.Close()
		return nil, err
	}

	return &Scout{
		provider: provider,
		journal:  journal,
		engine:   engine,
		logger:   slog.Default(),
	}, nil
}

// Close releases the provider and, when present, the journal.
func (s *Scout) Close() error {
	if err := s.provider.Close(); err != nil {
		s.logger.Error("error closing AI provider", "err", err)
	}

	if s.journal != nil {
		if err := s.journal.Close(); err != nil {
			s.logger.Error("error closing journal", "err", err)
			return err
		}
	}
	return nil
}

// Engine returns the discovery engine.
func (s *Scout) Engine() *discovery.Engine {
	return s.engine
}

// Journal returns the journal, or nil when journaling is disabled.
func (s *Scout) Journal() storage.DiscoveryJournal {
	return s.journal
}

// NewBatchRunner creates a batch runner on the Scout's engine.
func (s *Scout) NewBatchRunner(opts ...batch.Option) (*batch.Runner, error) {
	return batch.NewRunner(s.engine, opts...)
}

// NewAPIServer creates an API server on the Scout's engine. The journal, when
// present, is attached so the server can expose recent discoveries.
func (s *Scout) NewAPIServer(opts ...api.Option) (*api.Server, error) {
	if s.journal != nil {
		opts = append([]api.Option{api.WithJournal(s.journal)}, opts...)
	}
	return api.NewServer(s.engine, opts...)
}
