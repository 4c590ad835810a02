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

package builder

import (
	"dirpx.dev/rtti/apis"
	"dirpx.dev/rtti/registry"
	"dirpx.dev/rtti/resolver"
	"dirpx.dev/rtti/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry. If a pre-existing
// registry is provided, its types are registered again in the new registry so
// warm caches survive a configuration change.
func (b *builder) BuildRegistry(cfg apis.Config, preg apis.Registry) apis.Registry {
	nreg := registry.New()
	if preg != nil {
		for _, e := range preg.Entries() {
			if err := nreg.Register(e.Type); err != nil {
				cfg.Log().Debug("rtti: registry migration skipped type",
					"type", e.Type, "error", err)
			}
		}
	}
	return nreg
}

// BuildResolver builds and returns the default resolution chain:
// direct field access, then the conventional accessor method, then dynamic
// dispatch. The chain holds no per-type state, so prev is not consulted.
func (b *builder) BuildResolver(_ apis.Config, _ apis.Registry, _ apis.Resolver) apis.Resolver {
	return resolver.New(
		strategy.NewFieldStrategy(),
		strategy.NewMethodStrategy(),
		strategy.NewCallerStrategy(),
	)
}
