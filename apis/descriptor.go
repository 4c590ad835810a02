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

import "reflect"

// Descriptor identifies one attribute found while walking a type hierarchy.
type Descriptor struct {
	// Name is the attribute name used as the Map key and as the base of
	// derived accessor names.
	Name string
	// Visibility is exactly one of Public, Protected or Private.
	Visibility Visibility
	// Depth is the embedding depth of the declaring level (0 = outer type).
	Depth int
	// Index is the field index path from the outer struct, suitable for
	// reflect.Value.FieldByIndex. It is nil for instance attributes.
	Index []int
	// Type is the declared field type, or nil when unknown.
	Type reflect.Type
}

// Instance reports whether d names an attribute attached to the live value
// rather than declared by its type.
func (d Descriptor) Instance() bool {
	return d.Index == nil
}

// Level is one step of a hierarchy walk: a struct type and the attributes
// declared at exactly that depth.
type Level struct {
	Type       reflect.Type
	Depth      int
	Attributes []Descriptor
}
