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

import "errors"

// Domain validation errors
var (
	// ErrValidation indicates a discovery request failed input validation.
	ErrValidation = errors.New("invalid discovery request")

	// ErrMissingArticleID indicates the article ID field is empty.
	ErrMissingArticleID = errors.New("article id cannot be empty")

	// ErrMissingTitle indicates the article title field is empty.
	ErrMissingTitle = errors.New("article title cannot be empty")

	// ErrMissingContent indicates the article content field is empty.
	ErrMissingContent = errors.New("article content cannot be empty")

	// ErrInvalidRelevanceScore indicates a score outside [0,100].
	ErrInvalidRelevanceScore = errors.New("relevance score out of range")

	// ErrInvalidSearchLevel indicates an undefined SearchLevel value.
	ErrInvalidSearchLevel = errors.New("invalid search level")
)
