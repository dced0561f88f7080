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

import (
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// DiscoveryRecordMUS serializes DiscoveryRecord values in MUS format.
// Timestamps are stored as Unix microseconds, durations as nanoseconds.
var DiscoveryRecordMUS = discoveryRecordMUS{}

var keywordsMUS = ord.NewSliceSer[string](ord.String)

type discoveryRecordMUS struct{}

func (s discoveryRecordMUS) Marshal(v DiscoveryRecord, bs []byte) (n int) {
	n = ord.String.Marshal(v.ArticleID, bs)
	n += ord.String.Marshal(v.ArticleTitle, bs[n:])
	n += ord.String.Marshal(v.ImageURL, bs[n:])
	n += ord.String.Marshal(v.SourceDomain, bs[n:])
	n += varint.Int.Marshal(v.RelevanceScore, bs[n:])
	n += varint.Int.Marshal(int(v.Level), bs[n:])
	n += varint.Int.Marshal(v.CandidatesSeen, bs[n:])
	n += ord.Bool.Marshal(v.WasGenerated, bs[n:])
	n += keywordsMUS.Marshal([]string(v.Keywords), bs[n:])
	n += varint.Int64.Marshal(int64(v.ProcessingTime), bs[n:])
	n += varint.Int64.Marshal(v.InsertedAt.UnixMicro(), bs[n:])
	return n
}

func (s discoveryRecordMUS) Unmarshal(bs []byte) (v DiscoveryRecord, n int, err error) {
	var n1 int
	v.ArticleID, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v.ArticleTitle, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ImageURL, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.SourceDomain, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.RelevanceScore, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var level int
	level, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Level = SearchLevel(level)
	v.CandidatesSeen, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.WasGenerated, n1, err = ord.Bool.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	var keywords []string
	keywords, n1, err = keywordsMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Keywords = KeywordSet(keywords)
	var processing int64
	processing, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ProcessingTime = time.Duration(processing)
	var insertedMicro int64
	insertedMicro, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt = time.UnixMicro(insertedMicro).UTC()
	return
}

func (s discoveryRecordMUS) Size(v DiscoveryRecord) (size int) {
	size = ord.String.Size(v.ArticleID)
	size += ord.String.Size(v.ArticleTitle)
	size += ord.String.Size(v.ImageURL)
	size += ord.String.Size(v.SourceDomain)
	size += varint.Int.Size(v.RelevanceScore)
	size += varint.Int.Size(int(v.Level))
	size += varint.Int.Size(v.CandidatesSeen)
	size += ord.Bool.Size(v.WasGenerated)
	size += keywordsMUS.Size([]string(v.Keywords))
	size += varint.Int64.Size(int64(v.ProcessingTime))
	size += varint.Int64.Size(v.InsertedAt.UnixMicro())
	return size
}
