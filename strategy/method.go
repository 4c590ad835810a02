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
	"dirpx.dev/rtti/apis"
	"dirpx.dev/rtti/naming"
)

// NewMethodStrategy creates an apis.Strategy that reaches restricted
// attributes through conventionally named public methods: a zero-argument
// getter (GetterPrefix + name) and a one-argument setter (SetterPrefix + name).
func NewMethodStrategy() apis.Strategy {
	return &methodStrategy{}
}

// methodStrategy falls through when the accessor method does not exist, so a
// later strategy may still resolve the attribute.
type methodStrategy struct{}

// Ensure methodStrategy implements apis.Strategy.
var _ apis.Strategy = (*methodStrategy)(nil)

// TryGet invokes the getter of a restricted attribute.
func (*methodStrategy) TryGet(obj apis.Introspectable, d apis.Descriptor, cfg apis.Config) (any, bool, error) {
	if !d.Visibility.Restricted() {
		return nil, false, nil
	}
	name := naming.Resolve(cfg.GetterPrefix, d.Name, cfg.ConventionalCasing)
	if !obj.HasPublicCallable(name) {
		return nil, false, nil
	}
	v, err := obj.Invoke(name)
	return v, true, err
}

// TrySet invokes the setter of a restricted attribute.
func (*methodStrategy) TrySet(obj apis.Introspectable, d apis.Descriptor, value any, cfg apis.Config) (bool, error) {
	if !d.Visibility.Restricted() {
		return false, nil
	}
	name := naming.Resolve(cfg.SetterPrefix, d.Name, cfg.ConventionalCasing)
	if !obj.HasPublicCallable(name) {
		return false, nil
	}
	_, err := obj.Invoke(name, value)
	return true, err
}
