// Copyright 2025 Poiesic Systems
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
	"fmt"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

// MUS serializers for the domain records stored as BadgerDB values.
// Timestamps are encoded as Unix microseconds.
var (
	IDMUS             = idMUS{}
	ReviewMUS         = reviewMUS{}
	EmbeddingEntryMUS = embeddingEntryMUS{}
)

type idMUS struct{}

func (idMUS) Size(id ID) int {
	return varint.Uint64.Size(uint64(id))
}

func (idMUS) Marshal(id ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(id), bs)
}

func (idMUS) Unmarshal(bs []byte) (id ID, n int, err error) {
	v, n, err := varint.Uint64.Unmarshal(bs)
	return ID(v), n, err
}

type reviewMUS struct{}

func (reviewMUS) Size(r Review) (size int) {
	size = varint.Uint64.Size(uint64(r.Id))
	size += ord.String.Size(r.Text)
	size += varint.Int.Size(r.Rating)
	size += varint.Int64.Size(r.Date.UnixMicro())
	size += ord.String.Size(string(r.SentimentLabel))
	size += varint.Float64.Size(r.SentimentScore)
	size += ord.Bool.Size(r.IsComplaint)
	size += varint.Int64.Size(r.InsertedAt.UnixMicro())
	return size
}

func (reviewMUS) Marshal(r Review, bs []byte) (n int) {
	n = varint.Uint64.Marshal(uint64(r.Id), bs)
	n += ord.String.Marshal(r.Text, bs[n:])
	n += varint.Int.Marshal(r.Rating, bs[n:])
	n += varint.Int64.Marshal(r.Date.UnixMicro(), bs[n:])
	n += ord.String.Marshal(string(r.SentimentLabel), bs[n:])
	n += varint.Float64.Marshal(r.SentimentScore, bs[n:])
	n += ord.Bool.Marshal(r.IsComplaint, bs[n:])
	n += varint.Int64.Marshal(r.InsertedAt.UnixMicro(), bs[n:])
	return n
}

func (reviewMUS) Unmarshal(bs []byte) (r Review, n int, err error) {
	var (
		id         uint64
		label      string
		dateMicro  int64
		insertedAt int64
		n1         int
	)
	if id, n, err = varint.Uint64.Unmarshal(bs); err != nil {
		return
	}
	r.Id = ID(id)
	if r.Text, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if r.Rating, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if dateMicro, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	r.Date = time.UnixMicro(dateMicro).UTC()
	if label, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	r.SentimentLabel = SentimentLabel(label)
	if r.SentimentScore, n1, err = varint.Float64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if r.IsComplaint, n1, err = ord.Bool.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if insertedAt, n1, err = varint.Int64.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	r.InsertedAt = time.UnixMicro(insertedAt).UTC()
	return
}

type embeddingEntryMUS struct{}

func (embeddingEntryMUS) Size(e EmbeddingEntry) (size int) {
	size = ord.String.Size(e.Id)
	size += varint.Int.Size(len(e.Vector))
	for _, v := range e.Vector {
		size += varint.Float32.Size(v)
	}
	size += ord.String.Size(e.Document)
	size += varint.Int.Size(e.Metadata.Rating)
	size += ord.String.Size(e.Metadata.Date)
	size += ord.String.Size(string(e.Metadata.Sentiment))
	size += ord.Bool.Size(e.Metadata.Complaint)
	return size
}

func (embeddingEntryMUS) Marshal(e EmbeddingEntry, bs []byte) (n int) {
	n = ord.String.Marshal(e.Id, bs)
	n += varint.Int.Marshal(len(e.Vector), bs[n:])
	for _, v := range e.Vector {
		n += varint.Float32.Marshal(v, bs[n:])
	}
	n += ord.String.Marshal(e.Document, bs[n:])
	n += varint.Int.Marshal(e.Metadata.Rating, bs[n:])
	n += ord.String.Marshal(e.Metadata.Date, bs[n:])
	n += ord.String.Marshal(string(e.Metadata.Sentiment), bs[n:])
	n += ord.Bool.Marshal(e.Metadata.Complaint, bs[n:])
	return n
}

func (embeddingEntryMUS) Unmarshal(bs []byte) (e EmbeddingEntry, n int, err error) {
	var (
		length    int
		sentiment string
		n1        int
	)
	if e.Id, n, err = ord.String.Unmarshal(bs); err != nil {
		return
	}
	if length, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if length < 0 {
		err = fmt.Errorf("negative vector length %d", length)
		return
	}
	if length > 0 {
		e.Vector = make([]float32, length)
		for i := 0; i < length; i++ {
			if e.Vector[i], n1, err = varint.Float32.Unmarshal(bs[n:]); err != nil {
				return
			}
			n += n1
		}
	}
	if e.Document, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if e.Metadata.Rating, n1, err = varint.Int.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if e.Metadata.Date, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	if sentiment, n1, err = ord.String.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	e.Metadata.Sentiment = SentimentLabel(sentiment)
	if e.Metadata.Complaint, n1, err = ord.Bool.Unmarshal(bs[n:]); err != nil {
		return
	}
	n += n1
	return
}
