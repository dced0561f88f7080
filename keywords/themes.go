package keywords

import (
	"strings"

	"github.com/pressidio/imagescout/core"
)

// themeTable maps each theme category to the substrings that mark it.
// A keyword matches a category when it contains any of the category's
// markers. Declaration order is the output order, independent of input
// order, so theme inference is deterministic.
var themeTable = []struct {
	category core.ThemeCategory
	markers  []string
}{
	{core.ThemeTechnology, []string{"tecnolog", "tech", "digital", "software", "intelligen", "robot", "comput", "innovaz", "cyber"}},
	{core.ThemeBusiness, []string{"business", "mercato", "econom", "finanz", "aziend", "impres", "invest", "startup", "industr"}},
	{core.ThemeHealth, []string{"salute", "health", "medic", "sanit", "benesser", "farmac", "ospedal", "terap", "malatt"}},
	{core.ThemeEnvironment, []string{"ambient", "climat", "energ", "sostenib", "ecolog", "rinnovab", "green", "natura", "inquinam"}},
	{core.ThemeEducation, []string{"scuol", "educaz", "universit", "formaz", "student", "istruz", "corso", "learn"}},
	{core.ThemeArts, []string{"arte", "cultur", "music", "cinema", "teatro", "letteratur", "design", "museo", "fotograf"}},
	{core.ThemeScience, []string{"scienz", "ricerc", "scientif", "spazio", "fisic", "chimic", "biolog", "laborator"}},
	{core.ThemeSports, []string{"sport", "calcio", "tennis", "olimp", "atlet", "campionat", "partita"}},
	{core.ThemeTravel, []string{"viagg", "turism", "travel", "vacanz", "destinaz", "hotel", "volo"}},
	{core.ThemeFood, []string{"cibo", "cucin", "food", "ricett", "ristorant", "gastronom", "vino"}},
}

// fallbackThemes is returned when no category matches, so thematic search
// prompts always have context to work with.
var fallbackThemes = []core.ThemeCategory{core.ThemeGeneral, core.ThemeProfessional}

// InferThemes maps a keyword set onto thematic categories.
// Every category with at least one matching keyword is returned, in
// table-declaration order. An unmatched set yields the fixed fallback
// pair {general, professional} rather than an empty result.
func InferThemes(kw core.KeywordSet) []core.ThemeCategory {
	var themes []core.ThemeCategory
	for _, entry := range themeTable {
		if matchesAny(kw, entry.markers) {
			themes = append(themes, entry.category)
		}
	}
	if len(themes) == 0 {
		return append([]core.ThemeCategory(nil), fallbackThemes...)
	}
	return themes
}

func matchesAny(kw core.KeywordSet, markers []string) bool {
	for _, keyword := range kw {
		for _, marker := range markers {
			if strings.Contains(keyword, marker) {
				return true
			}
		}
	}
	return false
}
