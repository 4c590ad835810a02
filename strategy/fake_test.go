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

package strategy_test

import (
	"errors"
	"reflect"
	"sync"

	"dirpx.dev/rtti/apis"
)

var errFake = errors.New("fake failure")

// fakeObject is a hand-written apis.Introspectable that records calls.
type fakeObject struct {
	mu      sync.Mutex
	fields  map[string]any
	methods map[string]func(args ...any) (any, error)
	dynamic map[string]any
	calls   []string
}

func newFake() *fakeObject {
	return &fakeObject{
		fields:  map[string]any{},
		methods: map[string]func(args ...any) (any, error){},
		dynamic: map[string]any{},
	}
}

func (f *fakeObject) record(s string) {
	f.mu.Lock()
	f.calls = append(f.calls, s)
	f.mu.Unlock()
}

func (f *fakeObject) Type() reflect.Type          { return reflect.TypeOf(f) }
func (f *fakeObject) Declared() []apis.Level      { return nil }
func (f *fakeObject) Instance() []apis.Descriptor { return nil }

func (f *fakeObject) Field(d apis.Descriptor) (any, error) {
	f.record("field:" + d.Name)
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.fields[d.Name]
	if !ok {
		return nil, errFake
	}
	return v, nil
}

func (f *fakeObject) SetField(d apis.Descriptor, value any) error {
	f.record("setfield:" + d.Name)
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.fields[d.Name]; !ok {
		return errFake
	}
	f.fields[d.Name] = value
	return nil
}

func (f *fakeObject) HasPublicCallable(name string) bool {
	_, ok := f.methods[name]
	return ok
}

func (f *fakeObject) Invoke(name string, args ...any) (any, error) {
	f.record("invoke:" + name)
	m, ok := f.methods[name]
	if !ok {
		return nil, errFake
	}
	return m(args...)
}

func (f *fakeObject) InvokeIfPresent(name string, args ...any) (any, bool) {
	f.record("dynamic:" + name)
	if m, ok := f.methods[name]; ok {
		v, err := m(args...)
		return v, err == nil
	}
	v, ok := f.dynamic[name]
	return v, ok
}
