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

package strategy

import (
	"errors"
	"fmt"

	"dirpx.dev/rtti/apis"
	"dirpx.dev/rtti/naming"
)

// ErrNoAccessor is returned when neither a concrete nor a dynamically
// dispatched getter produced a value.
var ErrNoAccessor = errors.New("rtti(strategy): no accessor for restricted attribute")

// NewCallerStrategy creates an apis.Strategy that invokes the derived getter
// name through dynamic dispatch (apis.Caller) when no concrete method exists.
// It is the last step for restricted reads and never handles writes.
func NewCallerStrategy() apis.Strategy {
	return &callerStrategy{}
}

type callerStrategy struct{}

// Ensure callerStrategy implements apis.Strategy.
var _ apis.Strategy = (*callerStrategy)(nil)

// TryGet always handles restricted attributes; failure means omission.
func (*callerStrategy) TryGet(obj apis.Introspectable, d apis.Descriptor, cfg apis.Config) (any, bool, error) {
	if !d.Visibility.Restricted() {
		return nil, false, nil
	}
	name := naming.Resolve(cfg.GetterPrefix, d.Name, cfg.ConventionalCasing)
	v, ok := obj.InvokeIfPresent(name)
	if !ok {
		return nil, true, fmt.Errorf("%w: %s (%s)", ErrNoAccessor, d.Name, name)
	}
	return v, true, nil
}

// TrySet never handles: setters are not dispatched dynamically.
func (*callerStrategy) TrySet(apis.Introspectable, apis.Descriptor, any, apis.Config) (bool, error) {
	return false, nil
}
