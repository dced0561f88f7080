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


package storage

import (
	"fmt"

	"github.com/pressidio/imagescout/core"
)

// MarshalDiscoveryRecord serializes a DiscoveryRecord to bytes.
func MarshalDiscoveryRecord(record *core.DiscoveryRecord) []byte {
	buf := make([]byte, core.DiscoveryRecordMUS.Size(*record))
	core.DiscoveryRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalDiscoveryRecord deserializes a DiscoveryRecord from bytes.
func UnmarshalDiscoveryRecord(data []byte) (*core.DiscoveryRecord, error) {
	record, _, err := core.DiscoveryRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &record, nil
}
