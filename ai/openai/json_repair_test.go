package openai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid JSON untouched",
			input: `{"url": "https://images.unsplash.com/a.jpg", "description": "a photo"}`,
			want:  `{"url": "https://images.unsplash.com/a.jpg", "description": "a photo"}`,
		},
		{
			name:  "missing opening quote on first key",
			input: `{url": "https://images.unsplash.com/a.jpg"}`,
			want:  `{"url": "https://images.unsplash.com/a.jpg"}`,
		},
		{
			name:  "missing opening quote after comma",
			input: `{"url": "https://x.jpg", description": "caption"}`,
			want:  `{"url": "https://x.jpg", "description": "caption"}`,
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repairJSON(tt.input))
		})
	}
}

func TestRepairJSON_ProducesParseableOutput(t *testing.T) {
	repaired := repairJSON(`{url": "https://images.pexels.com/b.png", description": "skyline"}`)

	var out struct {
		URL         string `json:"url"`
		Description string `json:"description"`
	}
	require.NoError(t, json.Unmarshal([]byte(repaired), &out))
	assert.Equal(t, "https://images.pexels.com/b.png", out.URL)
	assert.Equal(t, "skyline", out.Description)
}
