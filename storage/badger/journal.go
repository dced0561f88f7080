package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/pressidio/imagescout/core"
	"github.com/pressidio/imagescout/storage"
)

// Journal implements storage.DiscoveryJournal for BadgerDB.
type Journal struct {
	backend *Backend
}

var _ storage.DiscoveryJournal = (*Journal)(nil)

// NewJournal opens a discovery journal backed by BadgerDB at the given path.
func NewJournal(filePath string) (storage.DiscoveryJournal, error) {
	backend, err := OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}
	return &Journal{backend: backend}, nil
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	return j.backend.Close()
}

// RecordOutcome stores a discovery record, overwriting any previous record
// for the same article ID.
func (j *Journal) RecordOutcome(ctx context.Context, record *core.DiscoveryRecord) error {
	if record.InsertedAt.IsZero() {
		record.InsertedAt = time.Now().UTC()
	}

	return j.backend.WithTx(func(tx *badger.Txn) error {
		key := makeDiscoveryRecordKey(record.ArticleID)

		// Drop the stale date index entry when overwriting
		old, err := readDiscoveryRecord(tx, key)
		if err != nil {
			return err
		}
		if old != nil && !old.InsertedAt.Equal(record.InsertedAt) {
			oldDateKey := makeDiscoveryDateKey(old.InsertedAt, old.ArticleID)
			if err := tx.Delete(oldDateKey); err != nil {
				return err
			}
		}

		value := storage.MarshalDiscoveryRecord(record)
		if err := tx.Set(key, value); err != nil {
			return err
		}

		dateKey := makeDiscoveryDateKey(record.InsertedAt, record.ArticleID)
		if err := tx.Set(dateKey, []byte(record.ArticleID)); err != nil {
			return err
		}

		return tx.Commit()
	}, true)
}

// GetRecord retrieves the discovery record for an article ID.
func (j *Journal) GetRecord(ctx context.Context, articleID string) (*core.DiscoveryRecord, error) {
	var result *core.DiscoveryRecord
	err := j.backend.WithTx(func(tx *badger.Txn) error {
		key := makeDiscoveryRecordKey(articleID)
		var err error
		result, err = readDiscoveryRecord(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// RecentRecords retrieves the N most recent discovery records, ordered by
// insertion time descending.
func (j *Journal) RecentRecords(ctx context.Context, limit int) ([]*core.DiscoveryRecord, error) {
	var results []*core.DiscoveryRecord
	err := j.backend.WithTx(func(tx *badger.Txn) error {
		// Use reverse iterator to get most recent records first
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the last possible key in the date index
		startKey := makePartialDiscoveryDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))

		prefix := []byte(discoveryRecordDatePrefix + ":")

		count := 0
		for iter.Seek(startKey); iter.Valid() && count < limit; iter.Next() {
			key := iter.Item().Key()

			// Check if we're still in the date index
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			// Read the article ID from the index
			var articleID string
			if err := iter.Item().Value(func(val []byte) error {
				articleID = string(val)
				return nil
			}); err != nil {
				return err
			}

			// Look up the full record
			recordKey := makeDiscoveryRecordKey(articleID)
			record, err := readDiscoveryRecord(tx, recordKey)
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
				count++
			}
		}
		return nil
	}, false)

	return results, err
}

// readDiscoveryRecord reads a discovery record from the transaction.
func readDiscoveryRecord(tx *badger.Txn, key []byte) (*core.DiscoveryRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.DiscoveryRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalDiscoveryRecord(val)
		return unmarshalErr
	})
	return record, err
}
