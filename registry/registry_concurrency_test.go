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

package registry_test

import (
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/rtti/apis"
	"dirpx.dev/rtti/registry"
)

// A few struct types with distinct shapes.
type T0 struct{ A int }
type T1 struct{ A, B int }
type T2 struct{ A, B, C int }
type T3 struct {
	T0
	D int
}
type T4 struct {
	*T1
	e int
}

// TestConcurrentLevelsAndLookup verifies that Levels/Lookup/Entries/Count
// are race-free and consistent under concurrent use.
func TestConcurrentLevelsAndLookup(t *testing.T) {
	reg := registry.New()

	types := []reflect.Type{
		reflect.TypeOf(T0{}), reflect.TypeOf(T1{}), reflect.TypeOf(T2{}),
		reflect.TypeOf(T3{}), reflect.TypeOf(&T4{}),
	}
	depths := []int{1, 1, 1, 2, 2}

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// First uses race each other here; every worker must see the same shape.
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				j := (i + id) % len(types)
				levels, err := reg.Levels(types[j])
				if err != nil {
					t.Errorf("levels %v: %v", types[j], err)
					return
				}
				if len(levels) != depths[j] {
					t.Errorf("levels %v: got %d want %d", types[j], len(levels), depths[j])
					return
				}
				_, _ = reg.Lookup(types[j])
				_ = reg.Count()
				_ = reg.Entries()
			}
		}(w)
	}
	wg.Wait()

	// Final consistency checks.
	if reg.Count() != len(types) {
		t.Fatalf("count mismatch: got %d want %d", reg.Count(), len(types))
	}
	if n := len(reg.Entries()); n != len(types) {
		t.Fatalf("entries mismatch: got %d want %d", n, len(types))
	}
}

// TestResetSnapshot ensures Reset is safe and Entries returns a stable snapshot.
func TestResetSnapshot(t *testing.T) {
	reg := registry.New()

	_ = reg.Register(reflect.TypeOf(T0{}))
	_ = reg.Register(reflect.TypeOf(T1{}))

	snap := reg.Entries() // snapshot copy expected
	reg.Reset()

	// After Reset, Count() should be 0, but previous snapshot must still be usable.
	if reg.Count() != 0 {
		t.Fatalf("count after reset: got %d want 0", reg.Count())
	}
	if len(snap) != 2 {
		t.Fatalf("snapshot length changed unexpectedly: %d", len(snap))
	}
	for _, e := range snap {
		if e.Type == nil || len(e.Levels) == 0 {
			t.Fatalf("snapshot contents invalid after reset: %+v", e)
		}
	}
}

// This ensures the interface is satisfied; not a test but a compile-time check.
var _ apis.Registry = registry.New()
