package badger

import (
	"encoding/binary"
	"fmt"
	"time"
)

// Key prefixes for different data types
const (
	discoveryRecordPrefix     = "disrec"
	discoveryRecordDatePrefix = "disrecd"
)

// makeDiscoveryRecordKey generates a key for a discovery record by article ID.
func makeDiscoveryRecordKey(articleID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", discoveryRecordPrefix, articleID))
}

// makeDiscoveryDateKey generates a composite key for the date index.
// Format: prefix:timestamp:articleID
func makeDiscoveryDateKey(timestamp time.Time, articleID string) []byte {
	prefix := discoveryRecordDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 + len(articleID) // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	copy(buf[offset:], []byte(articleID))
	return buf
}

// makePartialDiscoveryDateKey generates a partial key for date range queries.
// Format: prefix:timestamp
func makePartialDiscoveryDateKey(timestamp time.Time) []byte {
	prefix := discoveryRecordDatePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for timestamp
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	return buf
}
