package storage

import (
	"context"

	"github.com/pressidio/imagescout/core"
)

// DiscoveryJournal records the outcomes of completed discovery requests.
// The discovery engine only writes; reading is for caller tooling (CLI,
// operators). Implementations must be thread-safe and support concurrent
// access.
type DiscoveryJournal interface {
	// RecordOutcome persists the outcome of a discovery request.
	// A repeated article ID overwrites the previous record; re-running
	// discovery for an article supersedes the old choice.
	RecordOutcome(ctx context.Context, record *core.DiscoveryRecord) error

	// GetRecord retrieves the journal record for an article.
	// Returns ErrNotFound if no discovery was recorded for the ID.
	GetRecord(ctx context.Context, articleID string) (*core.DiscoveryRecord, error)

	// RecentRecords retrieves up to limit records, most recent first.
	RecentRecords(ctx context.Context, limit int) ([]*core.DiscoveryRecord, error)

	// Close closes the journal and releases resources.
	Close() error
}
