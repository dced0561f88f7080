package keywords

import (
	"testing"

	"github.com/pressidio/imagescout/core"
	"github.com/stretchr/testify/assert"
)

func TestInferThemes(t *testing.T) {
	tests := []struct {
		name string
		kw   core.KeywordSet
		want []core.ThemeCategory
	}{
		{
			name: "technology keywords",
			kw:   core.KeywordSet{"tecnologia", "software"},
			want: []core.ThemeCategory{core.ThemeTechnology},
		},
		{
			name: "energy maps to environment",
			kw:   core.KeywordSet{"risparmio", "energetico"},
			want: []core.ThemeCategory{core.ThemeEnvironment},
		},
		{
			name: "multiple categories in table order",
			kw:   core.KeywordSet{"mercato", "tecnologia", "salute"},
			want: []core.ThemeCategory{core.ThemeTechnology, core.ThemeBusiness, core.ThemeHealth},
		},
		{
			name: "input order does not affect output order",
			kw:   core.KeywordSet{"salute", "mercato", "tecnologia"},
			want: []core.ThemeCategory{core.ThemeTechnology, core.ThemeBusiness, core.ThemeHealth},
		},
		{
			name: "no match falls back to general pair",
			kw:   core.KeywordSet{"zebra", "ornitorinco"},
			want: []core.ThemeCategory{core.ThemeGeneral, core.ThemeProfessional},
		},
		{
			name: "empty set falls back to general pair",
			kw:   core.KeywordSet{},
			want: []core.ThemeCategory{core.ThemeGeneral, core.ThemeProfessional},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InferThemes(tt.kw))
		})
	}
}

func TestInferThemes_SubstringMatch(t *testing.T) {
	// "innovazione" matches the technology marker "innovaz" as a substring.
	themes := InferThemes(core.KeywordSet{"innovazione"})
	assert.Equal(t, []core.ThemeCategory{core.ThemeTechnology}, themes)
}

func TestInferThemes_DoesNotMutateFallback(t *testing.T) {
	themes := InferThemes(core.KeywordSet{"xyzzy"})
	themes[0] = core.ThemeFood

	again := InferThemes(core.KeywordSet{"xyzzy"})
	assert.Equal(t, []core.ThemeCategory{core.ThemeGeneral, core.ThemeProfessional}, again)
}
