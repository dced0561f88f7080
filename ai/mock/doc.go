// Package mock provides test double implementations of the AI provider
// interfaces.
//
// This package contains mock implementations of ai.SearchProvider,
// ai.GenerationProvider, and ai.Provider for use in unit tests. The mocks
// allow tests to run without external AI services and enable controlled,
// deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	mockProvider := mock.NewMockProvider()
//	raw, err := mockProvider.Searcher().Search(ctx, "test prompt", "")
//
//	// Custom behavior injection
//	searcher := mock.NewMockSearcher()
//	searcher.SearchFunc = func(ctx context.Context, prompt, modelHint string) (string, error) {
//	    return "https://images.unsplash.com/fixed.jpg", nil
//	}
//
//	// Check call counts
//	count := searcher.CallCount()
//
// # Default Behavior
//
// The mock implementations provide sensible defaults:
//
//   - MockSearcher: Returns two allow-listed image URLs derived from a hash
//     of the prompt, so the same prompt always yields the same candidates
//   - MockGenerator: Returns a synthetic image URL and caption derived from
//     the prompt hash
//   - MockProvider: Aggregates mock searcher and generator
package mock
