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


// Package forkjoin provides an asynchronous-fork, blocking-join harness
// over a shared goroutine pool.
//
// Fork schedules a unit of work for concurrent execution without blocking
// the caller; Join blocks until that unit has completed. When the pool has
// no free worker, the forked unit runs inline on the forking goroutine
// instead of being queued. This guarantees forward progress: a Join can
// never wait on work that no worker will ever pick up, so recursive
// fork/join trees cannot deadlock the pool however deep they go.
package forkjoin
