package mock

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/pressidio/imagescout/ai"
)

// MockGenerator is a test double for ai.GenerationProvider.
// It allows custom behavior injection via function fields.
type MockGenerator struct {
	// GenerateFunc is called by Generate if set.
	// If nil, uses default deterministic behavior.
	GenerateFunc func(ctx context.Context, prompt string) (*ai.GeneratedImage, error)

	callCount int
}

// NewMockGenerator creates a mock generator with default deterministic behavior.
// Note: Returns concrete type to allow test assertions via GetMockGenerator().
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// Generate returns a deterministic synthetic image derived from the prompt hash.
func (m *MockGenerator) Generate(ctx context.Context, prompt string) (*ai.GeneratedImage, error) {
	m.callCount++

	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, prompt)
	}

	h := fnv.New32a()
	h.Write([]byte(prompt))
	seed := h.Sum32()

	caption := prompt
	if words := strings.Fields(prompt); len(words) > 6 {
		caption = strings.Join(words[:6], " ")
	}

	return &ai.GeneratedImage{
		URL:         fmt.Sprintf("https://images.unsplash.com/generated-%d.png", seed),
		Description: "generated illustration: " + caption,
	}, nil
}

// CallCount returns the number of times Generate was called.
func (m *MockGenerator) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockGenerator) Reset() {
	m.callCount = 0
	m.GenerateFunc = nil
}
