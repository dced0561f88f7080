package storage

import (
	"testing"
	"time"

	"github.com/pressidio/imagescout/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshalDiscoveryRecord(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	tests := []struct {
		name   string
		record *core.DiscoveryRecord
	}{
		{
			name: "minimal record",
			record: &core.DiscoveryRecord{
				ArticleID:      "article-1",
				ArticleTitle:   "Minimal",
				ImageURL:       "https://images.unsplash.com/photo-1.jpg",
				SourceDomain:   "unsplash.com",
				RelevanceScore: 90,
				Level:          core.LevelUltraSpecific,
				InsertedAt:     now,
			},
		},
		{
			name: "record with keywords",
			record: &core.DiscoveryRecord{
				ArticleID:      "article-2",
				ArticleTitle:   "Tecnologia AI in Italia",
				ImageURL:       "https://images.pexels.com/photos/42/picture.jpg",
				SourceDomain:   "pexels.com",
				RelevanceScore: 73,
				Level:          core.LevelThematic,
				CandidatesSeen: 7,
				Keywords:       core.KeywordSet{"tecnologia", "italia", "mercato"},
				ProcessingTime: 1342 * time.Millisecond,
				InsertedAt:     now,
			},
		},
		{
			name: "generated image record",
			record: &core.DiscoveryRecord{
				ArticleID:      "article-3",
				ArticleTitle:   "Guida al Risparmio Energetico",
				ImageURL:       "https://images.unsplash.com/generated-9.png",
				SourceDomain:   "unsplash.com",
				RelevanceScore: 95,
				Level:          core.LevelAiGenerated,
				CandidatesSeen: 12,
				WasGenerated:   true,
				Keywords:       core.KeywordSet{"guida", "risparmio", "energetico"},
				ProcessingTime: 4 * time.Second,
				InsertedAt:     now,
			},
		},
		{
			name: "unicode title",
			record: &core.DiscoveryRecord{
				ArticleID:      "article-4",
				ArticleTitle:   "Caffè è più buono così",
				ImageURL:       "https://images.pixabay.com/photo-4.webp",
				SourceDomain:   "pixabay.com",
				RelevanceScore: 71,
				Level:          core.LevelThematic,
				InsertedAt:     now,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := MarshalDiscoveryRecord(tt.record)
			require.NotNil(t, data)
			require.NotEmpty(t, data)

			decoded, err := UnmarshalDiscoveryRecord(data)
			require.NoError(t, err)
			require.NotNil(t, decoded)

			assert.Equal(t, tt.record.ArticleID, decoded.ArticleID)
			assert.Equal(t, tt.record.ArticleTitle, decoded.ArticleTitle)
			assert.Equal(t, tt.record.ImageURL, decoded.ImageURL)
			assert.Equal(t, tt.record.SourceDomain, decoded.SourceDomain)
			assert.Equal(t, tt.record.RelevanceScore, decoded.RelevanceScore)
			assert.Equal(t, tt.record.Level, decoded.Level)
			assert.Equal(t, tt.record.CandidatesSeen, decoded.CandidatesSeen)
			assert.Equal(t, tt.record.WasGenerated, decoded.WasGenerated)
			assert.Equal(t, tt.record.ProcessingTime, decoded.ProcessingTime)
			assert.True(t, tt.record.InsertedAt.Equal(decoded.InsertedAt))
			// Handle nil vs empty slice
			if len(tt.record.Keywords) == 0 {
				assert.Empty(t, decoded.Keywords)
			} else {
				assert.Equal(t, tt.record.Keywords, decoded.Keywords)
			}
		})
	}
}

func TestUnmarshalDiscoveryRecord_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty data", []byte{}},
		{"invalid data", []byte{0xFF, 0xFF, 0xFF}},
		{"partial data", []byte{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalDiscoveryRecord(tt.data)
			assert.Error(t, err)
			assert.ErrorIs(t, err, ErrSerializationFailed)
		})
	}
}

func TestRoundTripConsistency(t *testing.T) {
	t.Run("multiple marshal-unmarshal cycles", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Microsecond)
		original := &core.DiscoveryRecord{
			ArticleID:      "article-999",
			ArticleTitle:   "Testing consistency",
			ImageURL:       "https://images.unsplash.com/photo-999.jpg",
			SourceDomain:   "unsplash.com",
			RelevanceScore: 88,
			Level:          core.LevelUltraSpecific,
			CandidatesSeen: 5,
			Keywords:       core.KeywordSet{"testing", "consistency"},
			ProcessingTime: 250 * time.Millisecond,
			InsertedAt:     now,
		}

		current := original
		for i := 0; i < 3; i++ {
			data := MarshalDiscoveryRecord(current)
			decoded, err := UnmarshalDiscoveryRecord(data)
			require.NoError(t, err)
			current = decoded
		}

		assert.Equal(t, original.ArticleID, current.ArticleID)
		assert.Equal(t, original.ImageURL, current.ImageURL)
		assert.Equal(t, original.RelevanceScore, current.RelevanceScore)
		assert.Equal(t, original.Keywords, current.Keywords)
		assert.True(t, original.InsertedAt.Equal(current.InsertedAt))
	})
}
