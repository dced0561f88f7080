package discovery

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pressidio/imagescout/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCandidates(t *testing.T) {
	kw := core.KeywordSet{"tecnologia", "italia"}

	t.Run("extracts allow-listed URLs from prose", func(t *testing.T) {
		raw := `Here are some images that match:
1. https://images.unsplash.com/photo-12345.jpg - a city skyline
2. https://images.pexels.com/photos/42/picture.png - office workers
Hope these help!`

		candidates := ParseCandidates(raw, kw)
		require.Len(t, candidates, 2)
		assert.Equal(t, "https://images.unsplash.com/photo-12345.jpg", candidates[0].URL)
		assert.Equal(t, "images.unsplash.com", candidates[0].SourceDomain)
		assert.Equal(t, "image from images.unsplash.com", candidates[0].Description)
		assert.Equal(t, kw, candidates[0].Keywords)
		assert.Equal(t, 0, candidates[0].RelevanceScore)
	})

	t.Run("drops hosts outside the allow-list", func(t *testing.T) {
		raw := `https://evil.example.com/totally-legit.jpg
https://images.unsplash.com/photo-1.jpg
https://cdn.sketchy.io/image.png`

		candidates := ParseCandidates(raw, kw)
		require.Len(t, candidates, 1)
		assert.Equal(t, "images.unsplash.com", candidates[0].SourceDomain)
	})

	t.Run("accepts subdomains of trusted domains", func(t *testing.T) {
		raw := `https://upload.wikimedia.org/wikipedia/commons/a/ab/Example.jpg
https://cdn.pixabay.com/photo/2024/01/photo.webp`

		candidates := ParseCandidates(raw, kw)
		require.Len(t, candidates, 2)
		assert.Equal(t, "upload.wikimedia.org", candidates[0].SourceDomain)
		assert.Equal(t, "cdn.pixabay.com", candidates[1].SourceDomain)
	})

	t.Run("rejects lookalike hosts", func(t *testing.T) {
		raw := `https://notunsplash.com/photo.jpg
https://unsplash.com.evil.net/photo.jpg`

		candidates := ParseCandidates(raw, kw)
		assert.Empty(t, candidates)
	})

	t.Run("deduplicates repeated URLs", func(t *testing.T) {
		url := "https://images.unsplash.com/photo-1.jpg"
		raw := strings.Repeat(url+"\n", 5)

		candidates := ParseCandidates(raw, kw)
		assert.Len(t, candidates, 1)
	})

	t.Run("caps candidates at ten", func(t *testing.T) {
		var sb strings.Builder
		for i := 0; i < 15; i++ {
			fmt.Fprintf(&sb, "https://images.unsplash.com/photo-%d.jpg\n", i)
		}

		candidates := ParseCandidates(sb.String(), kw)
		assert.Len(t, candidates, maxCandidates)
	})

	t.Run("preserves first-seen order", func(t *testing.T) {
		raw := `https://images.pexels.com/photos/2/b.jpg
https://images.unsplash.com/a.jpg
https://pixabay.com/c.png`

		candidates := ParseCandidates(raw, kw)
		require.Len(t, candidates, 3)
		assert.Equal(t, "https://images.pexels.com/photos/2/b.jpg", candidates[0].URL)
		assert.Equal(t, "https://images.unsplash.com/a.jpg", candidates[1].URL)
		assert.Equal(t, "https://pixabay.com/c.png", candidates[2].URL)
	})

	t.Run("ignores non-image URLs", func(t *testing.T) {
		raw := `https://unsplash.com/photos/some-page
https://unsplash.com/license.html
https://unsplash.com/diagram.svg`

		candidates := ParseCandidates(raw, kw)
		assert.Empty(t, candidates)
	})

	t.Run("matches image extensions case-insensitively", func(t *testing.T) {
		raw := "https://images.unsplash.com/PHOTO-1.JPG"

		candidates := ParseCandidates(raw, kw)
		assert.Len(t, candidates, 1)
	})

	t.Run("empty response yields no candidates", func(t *testing.T) {
		assert.Nil(t, ParseCandidates("", kw))
	})

	t.Run("prose without URLs yields no candidates", func(t *testing.T) {
		assert.Nil(t, ParseCandidates("I could not find any suitable images.", kw))
	})
}
