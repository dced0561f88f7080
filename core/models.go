package core

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// KeywordSet is an ordered, deduplicated list of normalized lowercase tokens
// derived from article text. Title-derived tokens always rank ahead of
// body-frequency tokens, and index order is treated as an implicit relevance
// prior by prompt construction and scoring. A KeywordSet is immutable once
// built for a request; an empty set is a valid, low-signal state.
type KeywordSet []string

// MaxKeywords is the hard cap on KeywordSet length.
const MaxKeywords = 10

// Contains reports whether the set holds the exact token.
func (k KeywordSet) Contains(token string) bool {
	for _, kw := range k {
		if kw == token {
			return true
		}
	}
	return false
}

// Top returns the first n keywords, or the whole set when it is shorter.
func (k KeywordSet) Top(n int) KeywordSet {
	if n < 0 {
		n = 0
	}
	if n > len(k) {
		n = len(k)
	}
	return k[:n]
}

// Join concatenates the keywords with the separator, preserving rank order.
func (k KeywordSet) Join(sep string) string {
	return strings.Join(k, sep)
}

// SearchLevel tags which escalation stage produced a result.
// Levels are tried in this fixed order and never revisited.
type SearchLevel int

const (
	// LevelUltraSpecific is the narrow, precision-first search stage.
	LevelUltraSpecific SearchLevel = iota + 1
	// LevelThematic is the broader, theme-driven search stage.
	LevelThematic
	// LevelAiGenerated is the terminal generative stage.
	LevelAiGenerated
)

// String returns the wire name of the search level.
func (l SearchLevel) String() string {
	switch l {
	case LevelUltraSpecific:
		return "ultra_specific"
	case LevelThematic:
		return "thematic"
	case LevelAiGenerated:
		return "ai_generated"
	default:
		return "unknown"
	}
}

// ValidSearchLevel reports whether l is one of the three defined stages.
func ValidSearchLevel(l SearchLevel) bool {
	return l >= LevelUltraSpecific && l <= LevelAiGenerated
}

// ThemeCategory is a closed thematic classification used as an input hint to
// the thematic search stage. Not persisted.
type ThemeCategory string

const (
	ThemeTechnology   ThemeCategory = "technology"
	ThemeBusiness     ThemeCategory = "business"
	ThemeHealth       ThemeCategory = "health"
	ThemeEnvironment  ThemeCategory = "environment"
	ThemeEducation    ThemeCategory = "education"
	ThemeArts         ThemeCategory = "arts"
	ThemeScience      ThemeCategory = "science"
	ThemeSports       ThemeCategory = "sports"
	ThemeTravel       ThemeCategory = "travel"
	ThemeFood         ThemeCategory = "food"
	ThemeGeneral      ThemeCategory = "general"
	ThemeProfessional ThemeCategory = "professional"
)

// ImageCandidate is a single image URL with provenance and computed relevance.
// Candidates are created with RelevanceScore 0, scored exactly once, and never
// mutated again. A score is only meaningful after both parsing and scoring
// have run; values outside [0,100] are programming errors.
type ImageCandidate struct {
	URL            string
	SourceDomain   string
	Description    string
	Keywords       KeywordSet
	RelevanceScore int
}

// MinRelevanceScore and MaxRelevanceScore bound valid relevance scores.
const (
	MinRelevanceScore = 0
	MaxRelevanceScore = 100
)

// EscalationOutcome is the terminal value of a discovery request.
// Exactly one outcome is produced per request: failure is an explicit error,
// never an empty outcome.
type EscalationOutcome struct {
	Image               *ImageCandidate
	Level               SearchLevel
	CandidatesEvaluated int
	ProcessingTime      time.Duration
}

// DiscoveryRecord is a journal row describing a completed discovery.
// Persistence of outcomes is a caller concern; the engine itself never reads
// the journal.
type DiscoveryRecord struct {
	ArticleID      string
	ArticleTitle   string
	ImageURL       string
	SourceDomain   string
	RelevanceScore int
	Level          SearchLevel
	CandidatesSeen int
	WasGenerated   bool
	Keywords       KeywordSet
	ProcessingTime time.Duration
	InsertedAt     time.Time
}
