package ai

import "context"

// SearchProvider performs a free-text image search against an external model.
// Implementations must be thread-safe for concurrent use.
type SearchProvider interface {
	// Search submits a search prompt and returns the provider's raw text
	// response. The response is unstructured; callers are expected to parse
	// image URLs out of it. modelHint optionally overrides the configured
	// model for this call; an empty hint uses the default.
	// The call is bounded by the caller's context deadline.
	Search(ctx context.Context, prompt, modelHint string) (string, error)
}

// GenerationProvider produces a synthetic image for a generation prompt.
// Implementations must be thread-safe for concurrent use.
type GenerationProvider interface {
	// Generate requests a generated image and returns its URL and a short
	// description. Returns an error if generation fails; there is no partial
	// result.
	Generate(ctx context.Context, prompt string) (*GeneratedImage, error)
}

// Provider aggregates the search and generation services for convenient
// initialization and lifecycle management. A provider creates and manages
// SearchProvider and GenerationProvider instances, ensuring they share
// configuration and resources appropriately.
type Provider interface {
	// Searcher returns the image search service.
	// The returned SearchProvider is safe for concurrent use.
	Searcher() SearchProvider

	// Generator returns the image generation service.
	// The returned GenerationProvider is safe for concurrent use.
	Generator() GenerationProvider

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
