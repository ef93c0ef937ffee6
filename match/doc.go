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


// Package match finds all occurrences of a single phrase within a text span.
//
// The Matcher interface is the collaborator contract consumed by the search
// package: given a span, a phrase, and a parallelism flag, return every byte
// offset where the phrase starts, in ascending order. LiteralMatcher is the
// default implementation; when asked to parallelize it recursively halves
// the span over a shared fork/join pool, overlapping the halves by one byte
// less than the phrase length so occurrences straddling the midpoint are
// found exactly once.
package match
