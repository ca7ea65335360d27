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


// Package storage provides the storage abstraction layer for reviewlens.
//
// It defines two repository interfaces that decouple the analysis layer from
// the storage implementation:
//
//   - ReviewRepository: the append-only review store (insertion order preserved,
//     no update or delete)
//   - EmbeddingIndex: the similarity index of (id, vector, document, metadata)
//     tuples, queryable by cosine similarity
//
// The two stores grow together (one entry each per analyzed review) but are
// logically independent; the index carries a denormalized metadata snapshot
// so retrieval never joins against the review store.
//
// Public constructors in implementation packages return these interfaces to
// keep consumers swappable between backends; the in-tree implementation is
// storage/badger, which supports in-memory operation for process-lifetime
// stores as well as on-disk persistence for the CLI.
//
// All repository implementations must be thread-safe. Methods accept
// context.Context for cancellation.
package storage
