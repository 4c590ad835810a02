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

import (
	"fmt"
	"iter"
	"strings"
)

// Source supplies attribute values to Inject.
type Source interface {
	// Lookup returns the value stored under name, if any.
	Lookup(name string) (any, bool)
}

// Values is a plain map Source.
type Values map[string]any

// Lookup implements Source.
func (v Values) Lookup(name string) (any, bool) {
	val, ok := v[name]
	return val, ok
}

// Map is an insertion-ordered attribute map produced by Extract.
// A nil *Map behaves as an empty map for every read method.
type Map struct {
	keys []string
	vals map[string]any
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{vals: make(map[string]any)}
}

// Set stores value under name. Overwriting keeps the original position.
func (m *Map) Set(name string, value any) {
	if m.vals == nil {
		m.vals = make(map[string]any)
	}
	if _, ok := m.vals[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.vals[name] = value
}

// Get returns the value stored under name.
func (m *Map) Get(name string) (any, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.vals[name]
	return v, ok
}

// Lookup implements Source so an extracted Map can be injected back.
func (m *Map) Lookup(name string) (any, bool) {
	return m.Get(name)
}

// Has reports whether name is present.
func (m *Map) Has(name string) bool {
	_, ok := m.Get(name)
	return ok
}

// Len returns the number of attributes.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the attribute names in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// All iterates over the attributes in insertion order.
func (m *Map) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}

// ToMap converts m into a plain map. Nested *Map values are converted too.
func (m *Map) ToMap() map[string]any {
	out := make(map[string]any, m.Len())
	for k, v := range m.All() {
		if nested, ok := v.(*Map); ok {
			v = nested.ToMap()
		}
		out[k] = v
	}
	return out
}

// String renders m as "{k: v, ...}" in insertion order.
func (m *Map) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s: %v", k, v)
	}
	b.WriteByte('}')
	return b.String()
}
