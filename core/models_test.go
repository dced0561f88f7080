package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantSame bool
	}{
		{
			name:     "same content produces same ID",
			content:  "https://images.unsplash.com/photo-123.jpg",
			wantSame: true,
		},
		{
			name:     "empty string",
			content:  "",
			wantSame: true,
		},
		{
			name:     "long content",
			content:  "Guida al Risparmio Energetico con un corpo articolo molto lungo che deve comunque produrre un hash stabile",
			wantSame: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if tt.wantSame && id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("https://images.unsplash.com/a.jpg")
	id2 := IDFromContent("https://images.unsplash.com/b.jpg")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestKeywordSet_Contains(t *testing.T) {
	kw := KeywordSet{"tecnologia", "italia", "mercato"}

	if !kw.Contains("italia") {
		t.Errorf("Contains() = false for present token")
	}
	if kw.Contains("ital") {
		t.Errorf("Contains() matched a prefix, want exact token match")
	}
	if (KeywordSet{}).Contains("italia") {
		t.Errorf("Contains() = true on empty set")
	}
}

func TestKeywordSet_Top(t *testing.T) {
	kw := KeywordSet{"a", "b", "c"}

	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "fewer than length", n: 2, want: 2},
		{name: "exact length", n: 3, want: 3},
		{name: "more than length", n: 10, want: 3},
		{name: "zero", n: 0, want: 0},
		{name: "negative clamps to zero", n: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kw.Top(tt.n)
			if len(got) != tt.want {
				t.Errorf("Top(%d) returned %d keywords, want %d", tt.n, len(got), tt.want)
			}
		})
	}

	// Order must be preserved.
	top := kw.Top(2)
	if top[0] != "a" || top[1] != "b" {
		t.Errorf("Top() did not preserve rank order: %v", top)
	}
}

func TestSearchLevel_String(t *testing.T) {
	tests := []struct {
		level SearchLevel
		want  string
	}{
		{LevelUltraSpecific, "ultra_specific"},
		{LevelThematic, "thematic"},
		{LevelAiGenerated, "ai_generated"},
		{SearchLevel(0), "unknown"},
		{SearchLevel(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("SearchLevel(%d).String() = %q, want %q", int(tt.level), got, tt.want)
		}
	}
}

func TestValidSearchLevel(t *testing.T) {
	for _, l := range []SearchLevel{LevelUltraSpecific, LevelThematic, LevelAiGenerated} {
		if !ValidSearchLevel(l) {
			t.Errorf("ValidSearchLevel(%v) = false", l)
		}
	}
	if ValidSearchLevel(0) || ValidSearchLevel(4) {
		t.Errorf("ValidSearchLevel accepted an out-of-range level")
	}
}
