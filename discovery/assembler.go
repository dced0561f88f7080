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
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pressidio/imagescout/core"
)

// IDGenerator produces unique identifiers for assembled images.
// Injected so assembly output is reproducible in tests.
type IDGenerator interface {
	NewID() string
}

// Clock supplies the current time. Injected so filenames and timings are
// reproducible in tests.
type Clock interface {
	Now() time.Time
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string { return uuid.NewString() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// timings carries the measured durations of a discovery request into
// assembly.
type timings struct {
	search time.Duration
	total  time.Duration
}

// assemble packages the terminal escalation outcome into the response
// contract. It is a pure mapping with no business logic and never fails.
func assemble(req *Request, outcome *core.EscalationOutcome, kw core.KeywordSet, t timings, totalFound int, providerName string, ids IDGenerator, clock Clock) *Response {
	filename := req.Filename
	if filename == "" {
		filename = fmt.Sprintf("image-%s-%d.jpg", outcome.Level, clock.Now().Unix())
	}
	altText := req.AltText
	if altText == "" {
		altText = outcome.Image.Description
	}

	return &Response{
		Image: ImageResult{
			ID:             ids.NewID(),
			URL:            outcome.Image.URL,
			Filename:       filename,
			AltText:        altText,
			Status:         StatusReady,
			RelevanceScore: outcome.Image.RelevanceScore,
			SearchLevel:    outcome.Level.String(),
		},
		SearchResults: SearchReport{
			TotalFound:          totalFound,
			CandidatesEvaluated: outcome.CandidatesEvaluated,
			BestScore:           outcome.Image.RelevanceScore,
			SearchLevel:         outcome.Level.String(),
			ProcessingTimeMs:    outcome.ProcessingTime.Milliseconds(),
		},
		Metadata: Metadata{
			WasGenerated: outcome.Level == core.LevelAiGenerated,
			Provider:     providerName,
			SearchTimeMs: t.search.Milliseconds(),
			TotalTimeMs:  t.total.Milliseconds(),
			Keywords:     append([]string(nil), kw...),
		},
	}
}
