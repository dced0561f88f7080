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


// Package ai provides abstractions for the AI services used by imagescout.
//
// This package defines interfaces for the two provider capabilities the
// discovery engine consumes: free-text image search and image generation.
// It follows the dependency inversion principle, allowing the escalation
// logic to depend on abstractions rather than concrete implementations.
//
// # Design Principles
//
// The package is designed around three key interfaces:
//
//   - SearchProvider: Submits search prompts and returns raw provider text
//   - GenerationProvider: Produces a synthetic image for a prompt
//   - Provider: Aggregates both services for convenient initialization
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible APIs
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// Public constructors (openai.NewProvider) return INTERFACE types to enforce
// abstraction and prevent accidental coupling to concrete implementations.
// Test utility constructors (mock.NewMockSearcher, mock.NewMockGenerator)
// return CONCRETE types to enable behavior injection via function fields and
// assertions on call counts.
//
// # Usage Example
//
//	// Production usage with an OpenAI-compatible provider
//	cfg := ai.NewConfig(ai.WithHost("http://localhost:11434"))
//	provider, err := openai.NewProvider(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	raw, err := provider.Searcher().Search(ctx, "direct image URLs for ...", "")
//	img, err := provider.Generator().Generate(ctx, "a professional photo of ...")
//
//	// Testing usage with mocks
//	mockProvider := mock.NewMockProvider()
//	raw, err := mockProvider.Searcher().Search(ctx, "test prompt", "")
package ai
