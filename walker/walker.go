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

// Package walker enumerates the attribute levels of an introspectable value,
// from the most-derived type through each embedded type.
package walker

import (
	"iter"

	"dirpx.dev/rtti/apis"
)

// Walk lazily yields obj's declared levels, most-derived first, each carrying
// only the attributes that match vis.
//
// When a level has no matching declared attribute, it carries the instance
// attributes of obj instead (as Public descriptors at that level's depth).
// The fallback applies independently to every such level.
func Walk(obj apis.Introspectable, vis apis.Visibility) iter.Seq[apis.Level] {
	return func(yield func(apis.Level) bool) {
		if obj == nil {
			return
		}
		for _, lvl := range obj.Declared() {
			out := apis.Level{Type: lvl.Type, Depth: lvl.Depth}
			for _, d := range lvl.Attributes {
				if vis.Has(d.Visibility) {
					out.Attributes = append(out.Attributes, d)
				}
			}
			if len(out.Attributes) == 0 {
				for _, d := range obj.Instance() {
					d.Depth = lvl.Depth
					out.Attributes = append(out.Attributes, d)
				}
			}
			if !yield(out) {
				return
			}
		}
	}
}
