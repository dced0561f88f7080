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


package openai

import (
	"context"
	"errors"
	"log/slog"

	"github.com/pressidio/imagescout/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Searcher implements ai.SearchProvider using OpenAI-compatible chat APIs.
type Searcher struct {
	client  llms.Model
	timeout timeoutFn
	logger  *slog.Logger
}

// timeoutFn wraps the configured per-call timeout so the zero value still
// yields a usable context.
type timeoutFn func(ctx context.Context) (context.Context, context.CancelFunc)

// newSearcher is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newSearcher(config *ai.Config) (*Searcher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.SearchHost),
		openai.WithToken(config.APIToken),
		openai.WithModel(config.SearchModel),
	)
	if err != nil {
		return nil, err
	}

	timeout := config.Timeout
	return &Searcher{
		client: client,
		timeout: func(ctx context.Context) (context.Context, context.CancelFunc) {
			return context.WithTimeout(ctx, timeout)
		},
		logger: slog.Default().With("component", "openai-searcher"),
	}, nil
}

// NewSearcher creates a new search provider using the provided configuration.
//
// Returns ai.SearchProvider interface to enforce abstraction.
func NewSearcher(config *ai.Config) (ai.SearchProvider, error) {
	return newSearcher(config)
}

// Search submits the prompt as a chat completion and returns the raw
// response text. The response is not parsed here; the discovery engine owns
// URL extraction and allow-list filtering.
func (s *Searcher) Search(ctx context.Context, prompt, modelHint string) (string, error) {
	if prompt == "" {
		return "", errors.New("search prompt cannot be empty")
	}

	ctx, cancel := s.timeout(ctx)
	defer cancel()

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(searchSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	opts := []llms.CallOption{llms.WithTemperature(0.2)}
	if modelHint != "" {
		opts = append(opts, llms.WithModel(modelHint))
	}

	response, err := s.client.GenerateContent(ctx, content, opts...)
	if err != nil {
		s.logger.Debug("search call failed", "err", err)
		return "", err
	}

	if len(response.Choices) < 1 {
		s.logger.Debug("no choices returned from model")
		return "", nil
	}

	return response.Choices[0].Content, nil
}
