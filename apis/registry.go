/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import "reflect"

// Registry caches the declared attribute levels of struct types so repeated
// calls on the same type skip the embedding walk.
// Caching has no observable effect on resolution results.
type Registry interface {
	// Register computes and stores the levels of t (after pointer
	// normalization). It is idempotent.
	Register(t reflect.Type) error
	// Lookup returns the cached levels for t, if present.
	Lookup(t reflect.Type) (levels []Level, ok bool)
	// Levels returns the cached levels for t, computing them on first use.
	Levels(t reflect.Type) ([]Level, error)
	// Entries returns a snapshot for diagnostics (order is unspecified).
	Entries() []Entry
	// Count returns the number of cached types.
	Count() int
	// Reset clears the cache.
	Reset()
}

// Entry is a single cached (type, levels) association in a Registry snapshot.
type Entry struct {
	// Type is the normalized struct type.
	Type reflect.Type
	// Levels are the declared levels of Type.
	Levels []Level
}
