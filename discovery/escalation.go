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
	"context"
	"fmt"

	"github.com/pressidio/imagescout/core"
	"github.com/pressidio/imagescout/keywords"
)

// Acceptance thresholds per search level. Earlier levels demand higher
// relevance because they target higher precision; the generative level is
// accepted unconditionally with a fixed synthetic score.
const (
	ultraSpecificThreshold = 85
	thematicThreshold      = 70
	generatedScore         = 95
)

// levelSpec is one row of the escalation transition table.
type levelSpec struct {
	level     core.SearchLevel
	threshold int
}

// escalationLevels is the ordered transition table. Levels are visited in
// strict sequence, each terminal on its first passed gate, and never
// revisited.
var escalationLevels = []levelSpec{
	{core.LevelUltraSpecific, ultraSpecificThreshold},
	{core.LevelThematic, thematicThreshold},
	{core.LevelAiGenerated, generatedScore},
}

// escalate walks the transition table until a level's quality gate passes.
// Returns the terminal outcome and the total number of candidates parsed
// across all visited levels.
//
// A provider failure or an empty parse at a search level is a miss: it
// forfeits that level's chance and falls through to the next. Only a failure
// of the generative level itself exhausts the escalation.
func (e *Engine) escalate(ctx context.Context, req *Request, kw core.KeywordSet) (*core.EscalationOutcome, int, error) {
	start := e.clock.Now()
	totalFound := 0
	evaluated := 0

	for _, spec := range escalationLevels {
		// Cancellation wins over any further provider work.
		if err := ctx.Err(); err != nil {
			return nil, totalFound, err
		}

		if spec.level == core.LevelAiGenerated {
			outcome, err := e.generateImage(ctx, req, kw)
			if err != nil {
				return nil, totalFound, err
			}
			outcome.CandidatesEvaluated = evaluated
			outcome.ProcessingTime = e.clock.Now().Sub(start)
			return outcome, totalFound, nil
		}

		if req.ForceRegenerate {
			continue
		}

		best, found, err := e.searchLevel(ctx, spec.level, req, kw)
		if err != nil {
			return nil, totalFound, err
		}
		totalFound += found
		if best == nil {
			continue
		}
		evaluated += found

		e.monitor.LevelScored(spec.level, best)
		if best.RelevanceScore >= spec.threshold {
			e.monitor.LevelAccepted(spec.level, best)
			return &core.EscalationOutcome{
				Image:               best,
				Level:               spec.level,
				CandidatesEvaluated: evaluated,
				ProcessingTime:      e.clock.Now().Sub(start),
			}, totalFound, nil
		}
		e.logger.Debug("quality gate missed",
			"level", spec.level.String(),
			"bestScore", best.RelevanceScore,
			"threshold", spec.threshold)
	}

	// Unreachable: the generative level always terminates the walk.
	return nil, totalFound, ErrNoSuitableImages
}

// searchLevel runs one search stage: build the prompt, call the provider,
// parse and score. A nil best candidate means the level missed. A non-nil
// error is returned only for caller cancellation; provider errors are
// absorbed as misses.
func (e *Engine) searchLevel(ctx context.Context, level core.SearchLevel, req *Request, kw core.KeywordSet) (*core.ImageCandidate, int, error) {
	var prompt string
	switch level {
	case core.LevelUltraSpecific:
		prompt = ultraSpecificPrompt(req.ArticleTitle, kw)
	case core.LevelThematic:
		prompt = thematicPrompt(keywords.InferThemes(kw), kw)
	}
	e.monitor.LevelStarted(level, prompt)

	raw, err := e.provider.Searcher().Search(ctx, prompt, e.searchModelHint)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, 0, ctxErr
		}
		e.logger.Warn("provider search failed",
			"level", level.String(),
			"err", err)
		e.monitor.ProviderMiss(level, err)
		return nil, 0, nil
	}

	candidates := ParseCandidates(raw, kw)
	e.monitor.CandidatesParsed(level, len(candidates))
	if len(candidates) == 0 {
		e.logger.Debug("no usable candidates in provider response", "level", level.String())
		e.monitor.ProviderMiss(level, nil)
		return nil, 0, nil
	}

	scored := ScoreCandidates(candidates, req.ArticleTitle, req.ArticleContent, kw)
	return scored[0], len(scored), nil
}

// generateImage runs the terminal generative stage. A successful generation
// is accepted unconditionally with the fixed synthetic score; a failure
// exhausts the escalation.
func (e *Engine) generateImage(ctx context.Context, req *Request, kw core.KeywordSet) (*core.EscalationOutcome, error) {
	prompt := req.AiPrompt
	if prompt == "" {
		prompt = generationPrompt(req.ArticleTitle, req.ArticleContent, kw)
	}
	e.monitor.LevelStarted(core.LevelAiGenerated, prompt)

	img, err := e.provider.Generator().Generate(ctx, prompt)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		e.monitor.ProviderMiss(core.LevelAiGenerated, err)
		return nil, fmt.Errorf("%w: %w", ErrNoSuitableImages, err)
	}

	description := img.Description
	if description == "" {
		description = "generated image"
	}
	image := &core.ImageCandidate{
		URL:            img.URL,
		SourceDomain:   hostOf(img.URL),
		Description:    description,
		Keywords:       kw,
		RelevanceScore: generatedScore,
	}
	e.monitor.LevelAccepted(core.LevelAiGenerated, image)

	return &core.EscalationOutcome{
		Image: image,
		Level: core.LevelAiGenerated,
	}, nil
}
