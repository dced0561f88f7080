package badger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pressidio/imagescout/core"
	"github.com/pressidio/imagescout/storage"
)

func TestJournalBasics(t *testing.T) {
	journal, err := NewMemoryJournal()
	if err != nil {
		t.Fatalf("Failed to create journal: %v", err)
	}
	defer journal.Close()

	ctx := context.Background()

	record := &core.DiscoveryRecord{
		ArticleID:      "article-42",
		ArticleTitle:   "Tecnologia AI in Italia",
		ImageURL:       "https://images.unsplash.com/photo-42.jpg",
		SourceDomain:   "unsplash.com",
		RelevanceScore: 88,
		Level:          core.LevelUltraSpecific,
		CandidatesSeen: 6,
		Keywords:       core.KeywordSet{"tecnologia", "italia"},
		ProcessingTime: 800 * time.Millisecond,
	}

	if err := journal.RecordOutcome(ctx, record); err != nil {
		t.Fatalf("Failed to record outcome: %v", err)
	}

	if record.InsertedAt.IsZero() {
		t.Fatal("Expected InsertedAt to be set")
	}

	retrieved, err := journal.GetRecord(ctx, "article-42")
	if err != nil {
		t.Fatalf("Failed to get record: %v", err)
	}

	if retrieved.ImageURL != record.ImageURL {
		t.Fatalf("Expected '%s', got '%s'", record.ImageURL, retrieved.ImageURL)
	}
	if retrieved.RelevanceScore != 88 {
		t.Fatalf("Expected score 88, got %d", retrieved.RelevanceScore)
	}
	if retrieved.Level != core.LevelUltraSpecific {
		t.Fatalf("Expected level %v, got %v", core.LevelUltraSpecific, retrieved.Level)
	}
}

func TestJournalNotFound(t *testing.T) {
	journal, err := NewMemoryJournal()
	if err != nil {
		t.Fatalf("Failed to create journal: %v", err)
	}
	defer journal.Close()

	_, err = journal.GetRecord(context.Background(), "missing-article")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestJournalOverwrite(t *testing.T) {
	journal, err := NewMemoryJournal()
	if err != nil {
		t.Fatalf("Failed to create journal: %v", err)
	}
	defer journal.Close()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	first := &core.DiscoveryRecord{
		ArticleID:      "article-7",
		ArticleTitle:   "First pass",
		ImageURL:       "https://images.unsplash.com/photo-1.jpg",
		SourceDomain:   "unsplash.com",
		RelevanceScore: 72,
		Level:          core.LevelThematic,
		InsertedAt:     now.Add(-time.Hour),
	}
	if err := journal.RecordOutcome(ctx, first); err != nil {
		t.Fatalf("Failed to record first outcome: %v", err)
	}

	second := &core.DiscoveryRecord{
		ArticleID:      "article-7",
		ArticleTitle:   "Second pass",
		ImageURL:       "https://images.pexels.com/photos/2/picture.jpg",
		SourceDomain:   "pexels.com",
		RelevanceScore: 91,
		Level:          core.LevelUltraSpecific,
		InsertedAt:     now,
	}
	if err := journal.RecordOutcome(ctx, second); err != nil {
		t.Fatalf("Failed to record second outcome: %v", err)
	}

	retrieved, err := journal.GetRecord(ctx, "article-7")
	if err != nil {
		t.Fatalf("Failed to get record: %v", err)
	}
	if retrieved.ImageURL != second.ImageURL {
		t.Fatalf("Expected overwritten URL '%s', got '%s'", second.ImageURL, retrieved.ImageURL)
	}

	// The stale date index entry must be gone: only one record total
	recent, err := journal.RecentRecords(ctx, 10)
	if err != nil {
		t.Fatalf("Failed to list recent records: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("Expected 1 record after overwrite, got %d", len(recent))
	}
}

func TestJournalRecentRecords(t *testing.T) {
	journal, err := NewMemoryJournal()
	if err != nil {
		t.Fatalf("Failed to create journal: %v", err)
	}
	defer journal.Close()

	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	records := []*core.DiscoveryRecord{
		{ArticleID: "a1", ArticleTitle: "Oldest", ImageURL: "https://images.unsplash.com/1.jpg", SourceDomain: "unsplash.com", RelevanceScore: 70, Level: core.LevelThematic, InsertedAt: now.Add(-2 * time.Hour)},
		{ArticleID: "a2", ArticleTitle: "Middle", ImageURL: "https://images.unsplash.com/2.jpg", SourceDomain: "unsplash.com", RelevanceScore: 80, Level: core.LevelThematic, InsertedAt: now.Add(-1 * time.Hour)},
		{ArticleID: "a3", ArticleTitle: "Newest", ImageURL: "https://images.unsplash.com/3.jpg", SourceDomain: "unsplash.com", RelevanceScore: 90, Level: core.LevelUltraSpecific, InsertedAt: now},
	}
	for _, r := range records {
		if err := journal.RecordOutcome(ctx, r); err != nil {
			t.Fatalf("Failed to record outcome: %v", err)
		}
	}

	recent, err := journal.RecentRecords(ctx, 2)
	if err != nil {
		t.Fatalf("Failed to list recent records: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(recent))
	}
	if recent[0].ArticleID != "a3" {
		t.Fatalf("Expected newest record first, got %s", recent[0].ArticleID)
	}
	if recent[1].ArticleID != "a2" {
		t.Fatalf("Expected middle record second, got %s", recent[1].ArticleID)
	}

	// Limit larger than record count returns everything
	all, err := journal.RecentRecords(ctx, 50)
	if err != nil {
		t.Fatalf("Failed to list recent records: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(all))
	}
}

func TestJournalKeywordsSurviveRoundTrip(t *testing.T) {
	journal, err := NewMemoryJournal()
	if err != nil {
		t.Fatalf("Failed to create journal: %v", err)
	}
	defer journal.Close()

	ctx := context.Background()

	record := &core.DiscoveryRecord{
		ArticleID:      "article-kw",
		ArticleTitle:   "Guida al Risparmio Energetico",
		ImageURL:       "https://images.unsplash.com/photo-kw.jpg",
		SourceDomain:   "unsplash.com",
		RelevanceScore: 95,
		Level:          core.LevelAiGenerated,
		WasGenerated:   true,
		Keywords:       core.KeywordSet{"guida", "risparmio", "energetico", "energia"},
	}
	if err := journal.RecordOutcome(ctx, record); err != nil {
		t.Fatalf("Failed to record outcome: %v", err)
	}

	retrieved, err := journal.GetRecord(ctx, "article-kw")
	if err != nil {
		t.Fatalf("Failed to get record: %v", err)
	}
	if len(retrieved.Keywords) != 4 {
		t.Fatalf("Expected 4 keywords, got %d", len(retrieved.Keywords))
	}
	if retrieved.Keywords[0] != "guida" {
		t.Fatalf("Expected keyword order preserved, got %v", retrieved.Keywords)
	}
	if !retrieved.WasGenerated {
		t.Fatal("Expected WasGenerated to be true")
	}
}
