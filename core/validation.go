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


package core

import "fmt"

// ValidateDiscoveryInput validates the required fields of a discovery request.
//
// Validation rules:
//   - articleID must not be empty
//   - title must not be empty
//   - content must not be empty
//
// Validation happens before any provider call; a failure here means no
// network activity took place.
func ValidateDiscoveryInput(articleID, title, content string) error {
	if articleID == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrMissingArticleID)
	}
	if title == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrMissingTitle)
	}
	if content == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrMissingContent)
	}
	return nil
}

// ValidateCandidate checks the invariants of a scored candidate.
//
// NOT validated (populated by the parser):
//   - Description (synthetic, derived from the host)
//   - Keywords (may be empty for degenerate input text)
func ValidateCandidate(cand *ImageCandidate) error {
	if cand == nil {
		return fmt.Errorf("%w: candidate is nil", ErrValidation)
	}
	if cand.URL == "" {
		return fmt.Errorf("%w: candidate url cannot be empty", ErrValidation)
	}
	if cand.RelevanceScore < MinRelevanceScore || cand.RelevanceScore > MaxRelevanceScore {
		return fmt.Errorf("%w: %d", ErrInvalidRelevanceScore, cand.RelevanceScore)
	}
	return nil
}

// ValidateOutcome checks the invariants of a terminal escalation outcome.
func ValidateOutcome(outcome *EscalationOutcome) error {
	if outcome == nil || outcome.Image == nil {
		return fmt.Errorf("%w: outcome must carry an image", ErrValidation)
	}
	if !ValidSearchLevel(outcome.Level) {
		return fmt.Errorf("%w: %d", ErrInvalidSearchLevel, int(outcome.Level))
	}
	return ValidateCandidate(outcome.Image)
}
