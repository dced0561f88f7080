package mock

import (
	"context"
	"fmt"
	"hash/fnv"
)

// MockSearcher is a test double for ai.SearchProvider.
// It allows custom behavior injection via function fields.
type MockSearcher struct {
	// SearchFunc is called by Search if set.
	// If nil, uses default deterministic behavior.
	SearchFunc func(ctx context.Context, prompt, modelHint string) (string, error)

	callCount  int
	lastPrompt string
}

// NewMockSearcher creates a mock searcher with default deterministic behavior.
// Note: Returns concrete type to allow test assertions via GetMockSearcher().
func NewMockSearcher() *MockSearcher {
	return &MockSearcher{}
}

// Search returns deterministic provider text derived from the prompt hash.
// Default behavior: two allow-listed image URLs embedded in prose, so the
// candidate parser always has something to extract.
func (m *MockSearcher) Search(ctx context.Context, prompt, modelHint string) (string, error) {
	m.callCount++
	m.lastPrompt = prompt

	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, prompt, modelHint)
	}

	h := fnv.New32a()
	h.Write([]byte(prompt))
	seed := h.Sum32()

	return fmt.Sprintf(
		"Here are some matching images:\nhttps://images.unsplash.com/photo-%d.jpg\nhttps://images.pexels.com/photos/%d/picture.jpg\n",
		seed, seed%100000,
	), nil
}

// CallCount returns the number of times Search was called.
func (m *MockSearcher) CallCount() int {
	return m.callCount
}

// LastPrompt returns the prompt of the most recent Search call.
func (m *MockSearcher) LastPrompt() string {
	return m.lastPrompt
}

// Reset clears the call count and custom functions.
func (m *MockSearcher) Reset() {
	m.callCount = 0
	m.lastPrompt = ""
	m.SearchFunc = nil
}
