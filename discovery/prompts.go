package discovery

import (
	"fmt"
	"strings"

	"github.com/pressidio/imagescout/core"
)

// bodyExcerptLimit bounds how much article body is quoted in generation
// prompts; models do not need the full text to illustrate it.
const bodyExcerptLimit = 300

// ultraSpecificPrompt builds the narrow, precision-first search prompt from
// the title and the top-ranked keywords.
func ultraSpecificPrompt(title string, kw core.KeywordSet) string {
	prompt := fmt.Sprintf("Find direct image URLs that precisely depict: %s.", title)
	if top := kw.Top(5); len(top) > 0 {
		prompt += " Focus strictly on these subjects: " + top.Join(", ") + "."
	}
	return prompt + " Prefer photographs over illustrations."
}

// thematicPrompt builds the broader stage-two prompt from the inferred
// themes and the full keyword set.
func thematicPrompt(themes []core.ThemeCategory, kw core.KeywordSet) string {
	names := make([]string, len(themes))
	for i, theme := range themes {
		names[i] = string(theme)
	}
	prompt := "Find professional stock image URLs for these themes: " + strings.Join(names, ", ") + "."
	if len(kw) > 0 {
		prompt += " Related keywords: " + kw.Join(", ") + "."
	}
	return prompt
}

// generationPrompt builds the terminal generative prompt from title, body
// and keywords.
func generationPrompt(title, body string, kw core.KeywordSet) string {
	prompt := fmt.Sprintf("A professional editorial photograph illustrating an article titled %q.", title)
	if len(kw) > 0 {
		prompt += " Key subjects: " + kw.Join(", ") + "."
	}
	if excerpt := bodyExcerpt(body); excerpt != "" {
		prompt += " Article context: " + excerpt
	}
	return prompt
}

// bodyExcerpt returns the leading part of the body, cut at a word boundary.
func bodyExcerpt(body string) string {
	body = strings.Join(strings.Fields(body), " ")
	if len(body) <= bodyExcerptLimit {
		return body
	}
	cut := strings.LastIndex(body[:bodyExcerptLimit], " ")
	if cut <= 0 {
		cut = bodyExcerptLimit
	}
	return body[:cut] + "..."
}
