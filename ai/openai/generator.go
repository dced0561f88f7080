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
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"github.com/pressidio/imagescout/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Generator implements ai.GenerationProvider using OpenAI-compatible chat APIs.
type Generator struct {
	client  llms.Model
	timeout timeoutFn
	logger  *slog.Logger
}

// generated is an internal type used for JSON unmarshaling.
// It matches the structure expected from the model.
type generated struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

// newGenerator is an internal constructor that returns the concrete type.
// Used by Provider to manage the instance.
func newGenerator(config *ai.Config) (*Generator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.GenerationHost),
		openai.WithToken(config.APIToken),
		openai.WithModel(config.GenerationModel),
	)
	if err != nil {
		return nil, err
	}

	timeout := config.Timeout
	return &Generator{
		client: client,
		timeout: func(ctx context.Context) (context.Context, context.CancelFunc) {
			return context.WithTimeout(ctx, timeout)
		},
		logger: slog.Default().With("component", "openai-generator"),
	}, nil
}

// NewGenerator creates a new generation provider using the provided configuration.
//
// Returns ai.GenerationProvider interface to enforce abstraction.
func NewGenerator(config *ai.Config) (ai.GenerationProvider, error) {
	return newGenerator(config)
}

// Generate requests an image for the prompt and parses the model's JSON
// response into a GeneratedImage. Malformed JSON is retried up to 3 times.
func (g *Generator) Generate(ctx context.Context, prompt string) (*ai.GeneratedImage, error) {
	if prompt == "" {
		return nil, errors.New("generation prompt cannot be empty")
	}

	ctx, cancel := g.timeout(ctx)
	defer cancel()

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(generationSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(prompt),
			},
		},
	}

	// Try up to 3 times in case of malformed JSON
	var result generated
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		response, err := g.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
		if err != nil {
			g.logger.Debug("generation call failed", "attempt", attempt+1, "err", err)
			return nil, err
		}

		if len(response.Choices) < 1 {
			return nil, errors.New("no choices returned from generation model")
		}

		// Strip markdown code fences if present
		responseText := strings.TrimSpace(response.Choices[0].Content)
		responseText = strings.TrimPrefix(responseText, "```json")
		responseText = strings.TrimPrefix(responseText, "```")
		responseText = strings.TrimSuffix(responseText, "```")
		responseText = strings.TrimSpace(responseText)

		// Try to repair common JSON issues
		responseText = repairJSON(responseText)

		if err := json.Unmarshal([]byte(responseText), &result); err != nil {
			lastErr = err
			g.logger.Warn("error parsing generation response",
				"attempt", attempt+1,
				"response", responseText,
				"err", err)
			continue
		}

		lastErr = nil
		break
	}

	if lastErr != nil {
		g.logger.Error("failed to parse generation response after retries", "err", lastErr)
		return nil, lastErr
	}

	if result.URL == "" {
		return nil, errors.New("generation response missing image url")
	}

	return &ai.GeneratedImage{
		URL:         result.URL,
		Description: result.Description,
	}, nil
}
