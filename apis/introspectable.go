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

// Introspectable is the capability the resolution algorithm needs from a
// target. The introspect package provides a reflection-backed implementation
// for arbitrary Go values; a value that implements Introspectable itself is
// used as-is and never reflected upon.
type Introspectable interface {
	// Type returns the outer (most-derived) type of the target.
	Type() reflect.Type

	// Declared returns every declared attribute level, most-derived first,
	// regardless of visibility. It always contains at least the outer level.
	Declared() []Level

	// Instance returns the attributes attached to the live value outside of
	// its type declaration, sorted by name. They are always Public.
	Instance() []Descriptor

	// Field reads a public or instance attribute directly.
	Field(d Descriptor) (any, error)

	// SetField writes a public or instance attribute directly.
	SetField(d Descriptor, value any) error

	// HasPublicCallable reports whether a public method named name exists.
	HasPublicCallable(name string) bool

	// Invoke calls the public method name with args.
	Invoke(name string, args ...any) (any, error)

	// InvokeIfPresent calls name through whatever dispatch the target
	// supports, including dynamic dispatch. It reports false instead of
	// failing.
	InvokeIfPresent(name string, args ...any) (any, bool)
}

// Caller is implemented by values that synthesize methods at run time.
// It is consulted for getters that have no concrete method.
type Caller interface {
	CallMethod(name string, args ...any) (any, error)
}

// Dynamic is implemented by values that carry attributes outside their
// declared fields.
type Dynamic interface {
	DynamicAttributes() map[string]any
}

// DynamicSetter is the write side of Dynamic.
type DynamicSetter interface {
	SetDynamicAttribute(name string, value any) error
}
