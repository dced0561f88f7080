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
	"net/url"
	"regexp"
	"strings"

	"github.com/pressidio/imagescout/core"
)

// maxCandidates bounds scoring cost per provider response.
const maxCandidates = 10

// imageURLPattern extracts direct image URLs from free-form provider text.
// Only the extensions the downstream publisher accepts are matched.
var imageURLPattern = regexp.MustCompile(`(?i)https?://[^\s"'<>()\[\]]+\.(?:jpg|jpeg|png|webp|gif)`)

// trustedDomains is the host allow-list. Candidates from any other host are
// dropped: unscored third-party URLs are a downstream publishing risk, so
// the parser intentionally never trusts arbitrary hosts.
var trustedDomains = []string{
	"unsplash.com",
	"pexels.com",
	"pixabay.com",
	"wikimedia.org",
}

// ParseCandidates turns a provider's free-text response into a structured,
// de-duplicated list of image candidates restricted to the trusted-domain
// allow-list. Candidates are created with score 0 in first-seen order,
// capped at 10. Malformed URLs are silently skipped: partial or garbled
// provider output is an expected, recoverable condition, not a failure.
func ParseCandidates(raw string, kw core.KeywordSet) []*core.ImageCandidate {
	if raw == "" {
		return nil
	}

	matches := imageURLPattern.FindAllString(raw, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	candidates := make([]*core.ImageCandidate, 0, maxCandidates)
	for _, match := range matches {
		if len(candidates) >= maxCandidates {
			break
		}
		if seen[match] {
			continue
		}
		seen[match] = true

		parsed, err := url.Parse(match)
		if err != nil {
			continue
		}
		host := strings.ToLower(parsed.Hostname())
		if !trustedHost(host) {
			continue
		}

		candidates = append(candidates, &core.ImageCandidate{
			URL:          match,
			SourceDomain: host,
			Description:  "image from " + host,
			Keywords:     kw,
		})
	}

	return candidates
}

// hostOf extracts the lowercase hostname from a URL, or "" when it cannot
// be parsed.
func hostOf(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Hostname())
}

// trustedHost reports whether host is an allow-listed domain or one of its
// subdomains.
func trustedHost(host string) bool {
	for _, domain := range trustedDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}
