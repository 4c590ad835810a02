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

package rtti

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/rtti/accessor"
	"dirpx.dev/rtti/apis"
	"dirpx.dev/rtti/builder"
	"dirpx.dev/rtti/config"
)

// Map is the ordered attribute map returned by Extract.
type Map = apis.Map

// Values is a plain map usable as an Inject source.
type Values = apis.Values

// Source supplies attribute values to Inject.
type Source = apis.Source

// init initializes the global state.
func init() {
	// Initialize state with default cfg, reg, and res.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.reg = b.BuildRegistry(s.cfg, nil)
	s.res = b.BuildResolver(s.cfg, s.reg, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("rtti: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("rtti: builder returned nil resolver")
)

// Extract returns the attributes of v using the global configuration,
// registry and resolver. opts are layered over the global configuration for
// this call only.
func Extract(v any, opts ...config.Option) (*Map, error) {
	return New(opts...).Extract(v)
}

// Inject writes the values of src onto v using the global configuration,
// registry and resolver. opts are layered over the global configuration for
// this call only.
func Inject(src Source, v any, opts ...config.Option) error {
	return New(opts...).Inject(src, v)
}

// ExtractPrivate is Extract restricted to private attributes.
func ExtractPrivate(v any, opts ...config.Option) (*Map, error) {
	return Extract(v, privateOnly(opts)...)
}

// InjectPrivate is Inject restricted to private attributes.
func InjectPrivate(src Source, v any, opts ...config.Option) error {
	return Inject(src, v, privateOnly(opts)...)
}

func privateOnly(opts []config.Option) []config.Option {
	return append(opts[:len(opts):len(opts)], config.WithVisibility(apis.Private))
}

// New returns a standalone accessor bound to the current global registry and
// resolver. Later changes to the global state do not affect it.
func New(opts ...config.Option) *accessor.Accessor {
	s := st.Load()
	return accessor.New(config.Apply(s.cfg, opts...), s.reg, s.res)
}

// Register computes and caches the attribute levels of t in the global
// registry. Registration is optional; unregistered types are cached on
// first use.
func Register(t reflect.Type) error {
	return st.Load().reg.Register(t)
}

// SetAll explicitly sets all global state components.
//
// A nil cfg or bld leaves the corresponding component unchanged. A nil reg
// or res is rebuilt by the builder and unpinned; a non-nil one is installed
// and pinned.
func SetAll(cfg *apis.Config, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := state{cfg: old.cfg, bld: old.bld, reg: reg, res: res}
	if cfg != nil {
		next.cfg = *cfg
	}
	if bld != nil {
		next.bld = bld
	}

	if next.reg == nil {
		next.reg = next.bld.BuildRegistry(next.cfg, old.reg)
	} else {
		next.preg = true
	}
	if next.res == nil {
		next.res = next.bld.BuildResolver(next.cfg, next.reg, old.res)
	} else {
		next.pres = true
	}
	publish(&next)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration to cfg and rebuilds the unpinned
// layers with it.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.cfg = cfg
	rebuild(&next)
	publish(&next)
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry installs reg as the global registry and pins it. The resolver
// is rebuilt against it unless pinned. A nil reg is ignored.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.reg, next.preg = reg, true
	rebuild(&next)
	publish(&next)
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver installs res as the global resolver and pins it.
// A nil res is ignored.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.res, next.pres = res, true
	publish(&next)
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder installs b as the global builder and rebuilds the unpinned
// layers with it. A nil b is ignored.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	next.bld = b
	rebuild(&next)
	publish(&next)
}

// IsRegistryPinned returns whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry stops the global registry from being rebuilt.
func PinRegistry() { setPins(func(s *state) { s.preg = true }) }

// UnpinRegistry lets the global registry be rebuilt again.
func UnpinRegistry() { setPins(func(s *state) { s.preg = false }) }

// IsResolverPinned returns whether the global resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver stops the global resolver from being rebuilt.
func PinResolver() { setPins(func(s *state) { s.pres = true }) }

// UnpinResolver lets the global resolver be rebuilt again.
func UnpinResolver() { setPins(func(s *state) { s.pres = false }) }

func setPins(f func(*state)) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := *st.Load()
	f(&next)
	publish(&next)
}

// rebuild replaces the unpinned layers of s using s.bld. The registry is
// rebuilt first so the resolver sees the new one.
func rebuild(s *state) {
	if !s.preg {
		s.reg = s.bld.BuildRegistry(s.cfg, s.reg)
	}
	if !s.pres {
		s.res = s.bld.BuildResolver(s.cfg, s.reg, s.res)
	}
}

// publish validates s and stores it as the current snapshot.
// Callers must hold buildMu.
func publish(s *state) {
	// Ensure non-nil reg and res.
	if s.reg == nil {
		panic(ErrNilRegistry)
	}
	if s.res == nil {
		panic(ErrNilResolver)
	}
	st.Store(s)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers copy the current state, modify the copy and
// swap it in.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// reg is the global registry.
	reg apis.Registry
	// res is the global resolver.
	res apis.Resolver
	// bld is the global builder.
	bld apis.Builder
	// preg indicates whether reg is pinned.
	preg bool
	// pres indicates whether res is pinned.
	pres bool
}
