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
	"fmt"
	"reflect"
)

// ErrReflectIncompatible is returned when a value cannot be stored into a
// destination of the requested type.
var ErrReflectIncompatible = errors.New("reflect: incompatible value")

// Coerce prepares value for storage into (or passing as) a t.
//
// Coercion policy:
//   - nil becomes the zero value of nillable kinds (ptr/interface/map/slice/chan/func)
//   - assignable values are used as is
//   - numeric values convert between numeric kinds when the result is exact
//     (no overflow, no sign loss, no float truncation into an integer)
//   - other convertible values convert only between identical kinds
//     (e.g. string -> named string type); int -> string is never performed
func Coerce(value any, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: nil to %s", ErrReflectIncompatible, t)
	}
	v := reflect.ValueOf(value)
	if v.Type().AssignableTo(t) {
		return v, nil
	}
	if isNumeric(v.Kind()) && isNumeric(t.Kind()) {
		if out, ok := convertNumber(v, t); ok {
			return out, nil
		}
		return reflect.Value{}, fmt.Errorf("%w: %s value %v does not fit %s", ErrReflectIncompatible, v.Type(), value, t)
	}
	if v.Kind() == t.Kind() && v.Type().ConvertibleTo(t) {
		return v.Convert(t), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrReflectIncompatible, v.Type(), t)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func convertNumber(v reflect.Value, t reflect.Type) (reflect.Value, bool) {
	zero := reflect.Zero(t)
	switch {
	case v.CanInt():
		n := v.Int()
		switch {
		case zero.CanInt():
			if zero.OverflowInt(n) {
				return reflect.Value{}, false
			}
		case zero.CanUint():
			if n < 0 || zero.OverflowUint(uint64(n)) {
				return reflect.Value{}, false
			}
		case zero.CanFloat():
			if zero.OverflowFloat(float64(n)) {
				return reflect.Value{}, false
			}
		}
	case v.CanUint():
		n := v.Uint()
		switch {
		case zero.CanInt():
			if n > 1<<63-1 || zero.OverflowInt(int64(n)) {
				return reflect.Value{}, false
			}
		case zero.CanUint():
			if zero.OverflowUint(n) {
				return reflect.Value{}, false
			}
		case zero.CanFloat():
			if zero.OverflowFloat(float64(n)) {
				return reflect.Value{}, false
			}
		}
	case v.CanFloat():
		if !zero.CanFloat() || zero.OverflowFloat(v.Float()) {
			return reflect.Value{}, false
		}
	}
	return v.Convert(t), true
}
