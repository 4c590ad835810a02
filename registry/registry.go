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

package registry

import (
	"errors"
	"reflect"
	"sync"

	"dirpx.dev/rtti/apis"
	uref "dirpx.dev/rtti/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("rtti(registry): nil reflect.Type provided")
)

// New constructs a Registry that caches declared levels per struct type.
func New() apis.Registry {
	return &registry{}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps normalized reflect.Type to []apis.Level.
	m sync.Map
	// count tracks the number of cached entries.
	count int
}

// Register computes and caches the levels of t. It is idempotent.
func (r *registry) Register(t reflect.Type) error {
	_, err := r.Levels(t)
	return err
}

// Lookup returns the cached levels for t, if present.
func (r *registry) Lookup(t reflect.Type) ([]apis.Level, bool) {
	if t == nil {
		return nil, false
	}
	nt, err := uref.NormalizeType(t, 0)
	if err != nil {
		return nil, false
	}
	if v, ok := r.m.Load(nt); ok {
		return v.([]apis.Level), true
	}
	return nil, false
}

// Levels returns the cached levels for t, computing them on first use.
func (r *registry) Levels(t reflect.Type) ([]apis.Level, error) {
	if t == nil {
		return nil, ErrNilType
	}
	nt, err := uref.NormalizeType(t, 0)
	if err != nil {
		return nil, err
	}

	// Fast read path without locking.
	if v, ok := r.m.Load(nt); ok {
		return v.([]apis.Level), nil
	}

	// Walk outside the lock; concurrent first uses may compute twice but
	// only one result is stored.
	levels, err := uref.DeclaredLevels(nt)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if v, ok := r.m.Load(nt); ok {
		return v.([]apis.Level), nil
	}
	r.m.Store(nt, levels)
	r.count++
	return levels, nil
}

// Entries returns a snapshot for diagnostics (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Type:   key.(reflect.Type),
			Levels: value.([]apis.Level),
		})
		return true
	})
	return entries
}

// Count returns the number of cached entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all cached entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}
