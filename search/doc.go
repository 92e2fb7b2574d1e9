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


// Package search provides relevance search over persons and notes.
//
// The Searcher type implements a multi-stage search algorithm that combines:
//   - Keyword scoring of person profiles with fuzzy matching
//   - Evidence scoring of notes across raw text, meetings, action items,
//     connections, network mentions and extracted entities
//   - Query intent detection that narrows the result set
//   - One-hop traversal of the relationship graph from the best person matches
//
// Results are scored, ranked, deduplicated and formatted into presentable
// answers for a given natural-language query.
package search
