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


// Package badger implements the review store and embedding index on BadgerDB.
//
// A single Backend wraps the database handle and is shared by both stores.
// Review records are keyed by a BigEndian-encoded sequence ID so that key
// order equals insertion order, with a secondary date index for range
// queries. Embedding entries are keyed by their string id and scanned in
// full for similarity queries.
//
// The backend supports an in-memory mode where nothing touches disk and all
// data lives for the process lifetime only.
package badger
