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
)

// NewFieldStrategy creates an apis.Strategy that reads and writes public
// attributes (exported fields and instance attributes) directly.
func NewFieldStrategy() apis.Strategy {
	return fieldStrategy{}
}

// fieldStrategy handles every Public descriptor and nothing else.
// Read and write failures are reported as handled errors so the attribute
// is skipped rather than retried through an accessor.
type fieldStrategy struct{}

// Ensure fieldStrategy implements apis.Strategy.
var _ apis.Strategy = fieldStrategy{}

// TryGet reads a public attribute.
func (fieldStrategy) TryGet(obj apis.Introspectable, d apis.Descriptor, _ apis.Config) (any, bool, error) {
	if d.Visibility != apis.Public {
		return nil, false, nil
	}
	v, err := obj.Field(d)
	return v, true, err
}

// TrySet writes a public attribute.
func (fieldStrategy) TrySet(obj apis.Introspectable, d apis.Descriptor, value any, _ apis.Config) (bool, error) {
	if d.Visibility != apis.Public {
		return false, nil
	}
	return true, obj.SetField(d, value)
}
