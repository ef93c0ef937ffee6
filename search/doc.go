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


// Package search finds occurrences of many phrases in a single block of
// text using fork-join parallelism over the phrase list.
//
// The Searcher recursively halves the phrase list: each split forks the
// left half to a shared worker pool and continues with the right half on
// the current goroutine, joining the left result afterwards and merging
// left before right. Splitting stops below a threshold fixed once at the
// root (half the original list size), where a leaf evaluates its phrases
// sequentially against the body of the text. The first line of the text is
// treated as a title and excluded from matching; match positions are byte
// offsets relative to the body. Phrases with no occurrences are omitted
// from the results.
package search
