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

package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/rtti/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectNilValue is returned when the value, or a pointer on the way
	// to it, is nil.
	ErrReflectNilValue = errors.New("reflect: nil value provided")
	// ErrReflectNotIntrospectable indicates that the provided type (after
	// unwrapping pointers) is neither a struct nor a string-keyed map.
	ErrReflectNotIntrospectable = errors.New("reflect: type is neither a struct nor a string-keyed map")
	// ErrReflectTooDeep indicates more indirections than MaxUnwrap allows.
	ErrReflectTooDeep = errors.New("reflect: indirection exceeds MaxUnwrap")
)

// IsIntrospectable reports whether t can hold attributes: a struct, or a map
// keyed by a string kind.
func IsIntrospectable(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Struct:
		return true
	case reflect.Map:
		return t.Key().Kind() == reflect.String
	default:
		return false
	}
}

// NormalizeType unwraps pointers and returns the struct or map type
// underneath, or an error if none is found.
//
// If maxUnwrap <= 0, DefaultMaxUnwrap is used.
func NormalizeType(t reflect.Type, maxUnwrap int) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}
	for i := 0; t.Kind() == reflect.Pointer; i++ {
		if i >= maxUnwrap {
			return nil, ErrReflectTooDeep
		}
		t = t.Elem()
	}
	if !IsIntrospectable(t) {
		return nil, ErrReflectNotIntrospectable
	}
	return t, nil
}

// Normalize unwraps pointers and interfaces of v and returns the struct or
// map value underneath (elem) together with the pointer that referenced it
// (ptr, invalid when v was not reached through a pointer).
//
// Unwrapping policy:
//   - ptr/interface -> Elem(); a nil on the way yields ErrReflectNilValue
//   - more than maxUnwrap indirections yields ErrReflectTooDeep
//   - the final value must satisfy IsIntrospectable
//
// If maxUnwrap <= 0, DefaultMaxUnwrap is used.
func Normalize(v reflect.Value, maxUnwrap int) (elem, ptr reflect.Value, err error) {
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}
	for i := 0; v.IsValid(); i++ {
		k := v.Kind()
		if k != reflect.Pointer && k != reflect.Interface {
			break
		}
		if v.IsNil() {
			return reflect.Value{}, reflect.Value{}, ErrReflectNilValue
		}
		if i >= maxUnwrap {
			return reflect.Value{}, reflect.Value{}, ErrReflectTooDeep
		}
		if k == reflect.Pointer {
			ptr = v
		} else {
			ptr = reflect.Value{}
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return reflect.Value{}, reflect.Value{}, ErrReflectNilValue
	}
	if !IsIntrospectable(v.Type()) {
		return reflect.Value{}, reflect.Value{}, ErrReflectNotIntrospectable
	}
	if v.Kind() == reflect.Map && v.IsNil() {
		return reflect.Value{}, reflect.Value{}, ErrReflectNilValue
	}
	return v, ptr, nil
}

// IsNil reports whether v is an untyped nil or a nil pointer, map,
// interface, slice, channel or func.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
