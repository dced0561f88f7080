// Copyright 2026 Pressidio Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package keywords

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pressidio/imagescout/core"
)

// minTokenRunes is the exclusive lower bound on kept token length.
const minTokenRunes = 3

// maxBodyKeywords is how many body tokens survive frequency ranking
// before the title-priority merge.
const maxBodyKeywords = 15

// nonWordPattern matches every character that is not a word character,
// an accented letter, or whitespace. Matches are replaced with a space
// so that token boundaries survive normalization.
var nonWordPattern = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)

// Extract derives a ranked keyword set from an article's title and body.
//
// Title and body are concatenated, lowercased, stripped of punctuation and
// tokenized. Tokens of three runes or fewer, stop words and pure-numeric
// tokens are discarded. The remaining body tokens are ranked by frequency
// (ties broken by first appearance) and capped at 15; title tokens are then
// forced to the front of the set in title order. The merged set is
// deduplicated and truncated to 10 entries.
//
// Index order matters downstream: prompt construction and scoring both treat
// earlier keywords as stronger signals.
//
// Extract never fails. Degenerate input yields an empty set, which callers
// must treat as a valid, low-signal state.
func Extract(title, body string) core.KeywordSet {
	bodyTokens := tokenize(title + " " + body)

	// Rank the combined tokens by frequency, keeping first-appearance order
	// as the tie break.
	type ranked struct {
		token string
		count int
		first int
	}
	counts := make(map[string]*ranked)
	order := make([]*ranked, 0, len(bodyTokens))
	for i, tok := range bodyTokens {
		if r, ok := counts[tok]; ok {
			r.count++
			continue
		}
		r := &ranked{token: tok, count: 1, first: i}
		counts[tok] = r
		order = append(order, r)
	}
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].count != order[j].count {
			return order[i].count > order[j].count
		}
		return order[i].first < order[j].first
	})
	if len(order) > maxBodyKeywords {
		order = order[:maxBodyKeywords]
	}

	// Title tokens are forced-include and always rank first.
	titleTokens := tokenize(title)

	seen := make(map[string]bool, core.MaxKeywords)
	result := make(core.KeywordSet, 0, core.MaxKeywords)
	for _, tok := range titleTokens {
		if seen[tok] {
			continue
		}
		seen[tok] = true
		result = append(result, tok)
	}
	for _, r := range order {
		if seen[r.token] {
			continue
		}
		seen[r.token] = true
		result = append(result, r.token)
	}

	if len(result) > core.MaxKeywords {
		result = result[:core.MaxKeywords]
	}
	return result
}

// tokenize normalizes text and returns the filtered tokens in order.
func tokenize(text string) []string {
	text = strings.ToLower(text)
	text = nonWordPattern.ReplaceAllString(text, " ")

	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if utf8.RuneCountInString(tok) <= minTokenRunes {
			continue
		}
		if isStopWord(tok) {
			continue
		}
		if isNumeric(tok) {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// isNumeric reports whether the token consists entirely of digits.
func isNumeric(tok string) bool {
	for _, r := range tok {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
