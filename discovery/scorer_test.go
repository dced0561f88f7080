package discovery

import (
	"testing"

	"github.com/pressidio/imagescout/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCandidates(t *testing.T) {
	t.Run("keyword in description scores fifteen", func(t *testing.T) {
		cand := &core.ImageCandidate{
			URL:          "https://example.test/x.jpg",
			SourceDomain: "example.test",
			Description:  "solar energia panels",
		}
		scored := ScoreCandidates([]*core.ImageCandidate{cand}, "", "", core.KeywordSet{"energia"})
		assert.Equal(t, 15, scored[0].RelevanceScore)
	})

	t.Run("keyword in URL scores ten", func(t *testing.T) {
		cand := &core.ImageCandidate{
			URL:          "https://example.test/energia.jpg",
			SourceDomain: "example.test",
			Description:  "a photo",
		}
		scored := ScoreCandidates([]*core.ImageCandidate{cand}, "", "", core.KeywordSet{"energia"})
		assert.Equal(t, 10, scored[0].RelevanceScore)
	})

	t.Run("title words score higher than keywords", func(t *testing.T) {
		inDesc := &core.ImageCandidate{
			URL:          "https://example.test/a.jpg",
			SourceDomain: "example.test",
			Description:  "risparmio guide cover",
		}
		inURL := &core.ImageCandidate{
			URL:          "https://example.test/energetico.jpg",
			SourceDomain: "example.test",
			Description:  "a photo",
		}
		scored := ScoreCandidates([]*core.ImageCandidate{inDesc, inURL}, "Risparmio Energetico", "", nil)
		require.Len(t, scored, 2)
		// 20 for the description match, 15 for the URL match
		assert.Equal(t, 20, scored[0].RelevanceScore)
		assert.Equal(t, 15, scored[1].RelevanceScore)
	})

	t.Run("short title words are ignored", func(t *testing.T) {
		cand := &core.ImageCandidate{
			URL:          "https://example.test/con.jpg",
			SourceDomain: "example.test",
			Description:  "per con del",
		}
		scored := ScoreCandidates([]*core.ImageCandidate{cand}, "Per Con Del", "", nil)
		assert.Equal(t, 0, scored[0].RelevanceScore)
	})

	t.Run("trusted source bonuses", func(t *testing.T) {
		tests := []struct {
			host  string
			bonus int
		}{
			{"images.unsplash.com", 10},
			{"images.pexels.com", 8},
			{"cdn.pixabay.com", 6},
			{"upload.wikimedia.org", 0},
		}
		for _, tt := range tests {
			cand := &core.ImageCandidate{
				URL:          "https://" + tt.host + "/photo.jpg",
				SourceDomain: tt.host,
				Description:  "a photo",
			}
			scored := ScoreCandidates([]*core.ImageCandidate{cand}, "", "", nil)
			assert.Equal(t, tt.bonus, scored[0].RelevanceScore, "host %s", tt.host)
		}
	})

	t.Run("generic terms penalized per occurrence", func(t *testing.T) {
		cand := &core.ImageCandidate{
			URL:          "https://images.unsplash.com/photo.jpg",
			SourceDomain: "images.unsplash.com",
			Description:  "business people in a business meeting",
		}
		// 10 bonus - 2x5 business - 5 people
		scored := ScoreCandidates([]*core.ImageCandidate{cand}, "", "", nil)
		assert.Equal(t, 0, scored[0].RelevanceScore)
	})

	t.Run("score never goes below zero", func(t *testing.T) {
		cand := &core.ImageCandidate{
			URL:          "https://example.test/photo.jpg",
			SourceDomain: "example.test",
			Description:  "abstract background concept business people",
		}
		scored := ScoreCandidates([]*core.ImageCandidate{cand}, "", "", nil)
		assert.Equal(t, core.MinRelevanceScore, scored[0].RelevanceScore)
	})

	t.Run("score never exceeds one hundred", func(t *testing.T) {
		cand := &core.ImageCandidate{
			URL:          "https://example.test/alpha-beta-gamma-delta.jpg",
			SourceDomain: "example.test",
			Description:  "alpha beta gamma delta",
		}
		kw := core.KeywordSet{"alpha", "beta", "gamma", "delta"}
		scored := ScoreCandidates([]*core.ImageCandidate{cand}, "alpha beta gamma delta", "", kw)
		assert.Equal(t, core.MaxRelevanceScore, scored[0].RelevanceScore)
	})

	t.Run("sorts descending by score", func(t *testing.T) {
		weak := &core.ImageCandidate{
			URL:          "https://example.test/photo.jpg",
			SourceDomain: "example.test",
			Description:  "a photo",
		}
		strong := &core.ImageCandidate{
			URL:          "https://images.unsplash.com/energia.jpg",
			SourceDomain: "images.unsplash.com",
			Description:  "energia plant",
		}
		scored := ScoreCandidates([]*core.ImageCandidate{weak, strong}, "", "", core.KeywordSet{"energia"})
		require.Len(t, scored, 2)
		assert.Equal(t, strong, scored[0])
		assert.GreaterOrEqual(t, scored[0].RelevanceScore, scored[1].RelevanceScore)
	})

	t.Run("equal scores keep parse order", func(t *testing.T) {
		first := &core.ImageCandidate{
			URL:          "https://images.unsplash.com/a.jpg",
			SourceDomain: "images.unsplash.com",
			Description:  "a photo",
		}
		second := &core.ImageCandidate{
			URL:          "https://images.unsplash.com/b.jpg",
			SourceDomain: "images.unsplash.com",
			Description:  "a photo",
		}
		scored := ScoreCandidates([]*core.ImageCandidate{first, second}, "", "", nil)
		require.Len(t, scored, 2)
		assert.Equal(t, first, scored[0])
		assert.Equal(t, second, scored[1])
	})

	t.Run("scoring is deterministic", func(t *testing.T) {
		build := func() []*core.ImageCandidate {
			return []*core.ImageCandidate{
				{URL: "https://images.unsplash.com/energia-solare.jpg", SourceDomain: "images.unsplash.com", Description: "solar energia farm"},
				{URL: "https://images.pexels.com/photos/1/picture.jpg", SourceDomain: "images.pexels.com", Description: "business people"},
				{URL: "https://pixabay.com/solare.png", SourceDomain: "pixabay.com", Description: "pannelli solari"},
			}
		}
		kw := core.KeywordSet{"energia", "solare"}

		a := ScoreCandidates(build(), "Energia Solare", "body", kw)
		b := ScoreCandidates(build(), "Energia Solare", "body", kw)
		require.Len(t, b, len(a))
		for i := range a {
			assert.Equal(t, a[i].URL, b[i].URL)
			assert.Equal(t, a[i].RelevanceScore, b[i].RelevanceScore)
		}
	})
}
