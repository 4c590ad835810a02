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

package resolver

import (
	"errors"
	"fmt"

	"dirpx.dev/rtti/apis"
)

// ErrUnresolved is returned when no strategy handled an attribute.
var ErrUnresolved = errors.New("rtti(resolver): no strategy handled attribute")

// New constructs an apis.Resolver that tries the given strategies in order.
// Nil strategies are ignored. The returned resolver is safe for concurrent use
// provided strategies themselves are safe for concurrent calls.
func New(strategies ...apis.Strategy) apis.Resolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// chain is an immutable, order-preserving resolver over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// Get runs strategies in order until one handles the attribute.
func (r chain) Get(obj apis.Introspectable, d apis.Descriptor, cfg apis.Config) (any, error) {
	for _, s := range r.strats {
		if v, handled, err := s.TryGet(obj, d, cfg); handled {
			return v, err
		}
	}
	return nil, fmt.Errorf("%w: get %s (%s)", ErrUnresolved, d.Name, d.Visibility)
}

// Set runs strategies in order until one handles the attribute.
func (r chain) Set(obj apis.Introspectable, d apis.Descriptor, value any, cfg apis.Config) error {
	for _, s := range r.strats {
		if handled, err := s.TrySet(obj, d, value, cfg); handled {
			return err
		}
	}
	return fmt.Errorf("%w: set %s (%s)", ErrUnresolved, d.Name, d.Visibility)
}
