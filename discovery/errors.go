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

import "errors"

var (
	// ErrProviderRequired is returned when an AI provider is not supplied.
	ErrProviderRequired = errors.New("ai provider required")

	// ErrNoSuitableImages is returned when all three search levels are
	// exhausted without a result. This only happens when the generative
	// level itself fails; callers should treat it as retryable.
	ErrNoSuitableImages = errors.New("no suitable images found or generated")
)
