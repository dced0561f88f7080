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


package ai

import (
	"errors"
	"strings"
	"time"
)

// Config holds configuration for AI service providers.
type Config struct {
	// SearchHost is the base URL for the search service API.
	// Example: "http://localhost:11434/v1" for a local OpenAI-compatible server
	SearchHost string

	// GenerationHost is the base URL for the image generation service API.
	// Example: "http://localhost:11434/v1" for a local OpenAI-compatible server
	GenerationHost string

	// SearchModel is the default model identifier for search calls.
	// Example: "qwen2.5:3b", "gpt-4o-mini"
	SearchModel string

	// GenerationModel is the model identifier for generation calls.
	GenerationModel string

	// APIToken authenticates against the provider.
	// Use "none" for local OpenAI-compatible services without authentication.
	APIToken string

	// Timeout bounds a single provider call.
	// Default: 30s
	Timeout time.Duration
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithSearchHost sets the search service host URL.
func WithSearchHost(host string) ConfigOption {
	return func(c *Config) {
		c.SearchHost = host
	}
}

// WithGenerationHost sets the generation service host URL.
func WithGenerationHost(host string) ConfigOption {
	return func(c *Config) {
		c.GenerationHost = host
	}
}

// WithHost sets both search and generation hosts to the same URL.
func WithHost(host string) ConfigOption {
	return func(c *Config) {
		c.SearchHost = host
		c.GenerationHost = host
	}
}

// WithSearchModel sets the default search model identifier.
func WithSearchModel(model string) ConfigOption {
	return func(c *Config) {
		c.SearchModel = model
	}
}

// WithGenerationModel sets the generation model identifier.
func WithGenerationModel(model string) ConfigOption {
	return func(c *Config) {
		c.GenerationModel = model
	}
}

// WithAPIToken sets the provider credential.
func WithAPIToken(token string) ConfigOption {
	return func(c *Config) {
		c.APIToken = token
	}
}

// WithTimeout sets the per-call timeout.
func WithTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// DefaultConfig returns a Config with sensible defaults for local
// OpenAI-compatible services. By default both services share one host.
func DefaultConfig() *Config {
	defaultHost := "http://localhost:11434/v1"
	return &Config{
		SearchHost:      defaultHost,
		GenerationHost:  defaultHost,
		SearchModel:     "qwen2.5:3b",
		GenerationModel: "qwen2.5:3b",
		APIToken:        "none",
		Timeout:         30 * time.Second,
	}
}

// NewConfig creates a Config with the default values and applies the provided
// options. This is the recommended way to create a Config with custom settings.
//
// Example:
//   cfg := ai.NewConfig(
//       ai.WithHost("http://localhost:11434/v1"),
//       ai.WithSearchModel("gpt-4o-mini"),
//   )
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Normalize ensures the configuration is in a canonical form.
// It automatically adds the /v1 suffix to hosts if missing, which is required
// by most OpenAI-compatible APIs (Ollama, LocalAI, vLLM, etc).
func (c *Config) Normalize() {
	if c.SearchHost != "" && !strings.HasSuffix(c.SearchHost, "/v1") {
		c.SearchHost = strings.TrimSuffix(c.SearchHost, "/")
		c.SearchHost = c.SearchHost + "/v1"
	}
	if c.GenerationHost != "" && !strings.HasSuffix(c.GenerationHost, "/v1") {
		c.GenerationHost = strings.TrimSuffix(c.GenerationHost, "/")
		c.GenerationHost = c.GenerationHost + "/v1"
	}
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
// A validation failure here is a configuration error: it is reported before
// any network activity takes place.
func (c *Config) Validate() error {
	c.Normalize()

	if c.SearchHost == "" {
		return errors.New("ai config: SearchHost is required")
	}
	if c.GenerationHost == "" {
		return errors.New("ai config: GenerationHost is required")
	}
	if c.SearchModel == "" {
		return errors.New("ai config: SearchModel is required")
	}
	if c.GenerationModel == "" {
		return errors.New("ai config: GenerationModel is required")
	}
	if c.APIToken == "" {
		return errors.New("ai config: APIToken is required (use \"none\" for local services)")
	}
	if c.Timeout <= 0 {
		return errors.New("ai config: Timeout must be positive")
	}
	return nil
}
