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


// Package storage provides the journal abstraction layer for imagescout.
//
// This package defines the DiscoveryJournal interface that decouples
// persistence from the discovery engine. It allows different backends
// (BadgerDB, in-memory, etc.) to be used interchangeably.
//
// # Constructor Return Type Pattern
//
// This package follows a strict "return interface" pattern for all public
// constructors:
//
//	journal, err := badger.NewJournal(path)  // returns storage.DiscoveryJournal
//
// Internal constructors (newBackend, etc.) may return concrete types since
// they are only used within the implementation package.
//
// # Usage
//
// Create a journal instance:
//
//	journal, err := badger.NewJournal("/path/to/db")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer journal.Close()
//
// Use in tests with in-memory storage:
//
//	journal, err := badger.NewMemoryJournal()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer journal.Close()
//
// # Thread Safety
//
// All journal implementations must be thread-safe and support concurrent
// access from multiple goroutines.
//
// # Context Support
//
// All journal methods accept context.Context for cancellation and timeout
// support. Pass context.Background() for operations without specific
// timeout requirements.
package storage
