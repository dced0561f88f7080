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


// Package discovery implements relevance-scored image discovery for article
// text.
//
// The Engine type orchestrates a three-level escalating strategy against an
// external AI provider:
//
//   - UltraSpecific: narrow search driven by the title and top keywords,
//     accepted at relevance >= 85
//   - Thematic: broader search driven by inferred themes and the full
//     keyword set, accepted at relevance >= 70
//   - AiGenerated: terminal generative stage, accepted unconditionally
//
// Levels are tried in strict sequence and never revisited. Provider failures
// at a search level are absorbed as misses and downgrade the request to the
// next level; only a failure of the generative level produces a
// caller-visible ErrNoSuitableImages.
//
// Candidate parsing, scoring and response assembly are exposed as pure
// functions so each stage can be tested in isolation with deterministic
// provider fakes.
package discovery
