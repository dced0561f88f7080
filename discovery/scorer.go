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


package discovery

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/pressidio/imagescout/core"
)

// Scoring weights. Description matches outweigh URL matches because
// descriptions are closer to human-judged relevance than path fragments.
const (
	keywordDescriptionPoints = 15
	keywordURLPoints         = 10
	titleWordDescPoints      = 20
	titleWordURLPoints       = 15
	genericTermPenalty       = 5
	minTitleWordRunes        = 3
)

// trustedSourceBonus rewards hosts with consistently usable editorial
// imagery. Checked in order; every matching host contributes its bonus.
var trustedSourceBonus = []struct {
	host  string
	bonus int
}{
	{"unsplash.com", 10},
	{"pexels.com", 8},
	{"pixabay.com", 6},
}

// genericTerms correlate with low-specificity stock photography and are
// penalized per occurrence in the candidate description.
var genericTerms = []string{"business", "people", "background", "abstract", "concept"}

// ScoreCandidates assigns each candidate a relevance score in [0,100]
// against the article title, body and keyword set, then returns the same
// candidates sorted descending by score. The sort is stable: candidates with
// equal scores keep their original parse order.
//
// ScoreCandidates is a pure function of its inputs. Given identical
// candidates and text it always produces identical scores and ordering.
func ScoreCandidates(candidates []*core.ImageCandidate, title, body string, kw core.KeywordSet) []*core.ImageCandidate {
	for _, cand := range candidates {
		cand.RelevanceScore = scoreOne(cand, title, kw)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].RelevanceScore > candidates[j].RelevanceScore
	})
	return candidates
}

func scoreOne(cand *core.ImageCandidate, title string, kw core.KeywordSet) int {
	desc := strings.ToLower(cand.Description)
	candidateURL := strings.ToLower(cand.URL)

	score := 0

	for _, keyword := range kw {
		if strings.Contains(desc, keyword) {
			score += keywordDescriptionPoints
		}
		if strings.Contains(candidateURL, keyword) {
			score += keywordURLPoints
		}
	}

	for _, word := range strings.Fields(strings.ToLower(title)) {
		word = strings.Trim(word, ".,;:!?\"'()[]{}«»")
		if utf8.RuneCountInString(word) <= minTitleWordRunes {
			continue
		}
		if strings.Contains(desc, word) {
			score += titleWordDescPoints
		}
		if strings.Contains(candidateURL, word) {
			score += titleWordURLPoints
		}
	}

	host := strings.ToLower(cand.SourceDomain)
	for _, trusted := range trustedSourceBonus {
		if strings.Contains(host, trusted.host) {
			score += trusted.bonus
		}
	}

	for _, term := range genericTerms {
		score -= strings.Count(desc, term) * genericTermPenalty
	}

	if score < core.MinRelevanceScore {
		score = core.MinRelevanceScore
	}
	if score > core.MaxRelevanceScore {
		score = core.MaxRelevanceScore
	}
	return score
}
