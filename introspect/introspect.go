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

// Package introspect adapts arbitrary Go values to apis.Introspectable using
// the reflect package.
//
// A target is a struct, a pointer to a struct, or a string-keyed map. Exported
// fields are public attributes and unexported fields are restricted ones.
// Methods are looked up on the pointer receiver, so value and pointer
// receivers are both reachable. Struct values passed by value are copied into
// a fresh addressable value first; such targets can be read but Writable
// rejects them.
package introspect

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"dirpx.dev/rtti/apis"
	uref "dirpx.dev/rtti/utils/reflect"
)

var (
	// ErrNilObject is returned when the target is nil.
	ErrNilObject = errors.New("rtti(introspect): nil object")
	// ErrNotIntrospectable is returned when the target is neither a struct
	// nor a string-keyed map.
	ErrNotIntrospectable = errors.New("rtti(introspect): value cannot be introspected")
	// ErrNotAddressable is returned by Writable for struct values that were
	// not passed by pointer.
	ErrNotAddressable = errors.New("rtti(introspect): struct value must be passed by pointer to be modified")
	// ErrNoSuchMethod is returned when a public method does not exist.
	ErrNoSuchMethod = errors.New("rtti(introspect): no such public method")
	// ErrArity is returned when a method does not accept the given arguments.
	ErrArity = errors.New("rtti(introspect): argument count mismatch")
	// ErrInvokePanic wraps a panic raised by an invoked method.
	ErrInvokePanic = errors.New("rtti(introspect): method panicked")
	// ErrNoSuchField is returned when a descriptor does not resolve to a field.
	ErrNoSuchField = errors.New("rtti(introspect): no such field")
	// ErrUnexportedField is returned when reading or writing an unexported field directly.
	ErrUnexportedField = errors.New("rtti(introspect): field is not exported")
	// ErrNoInstanceAttribute is returned when an instance attribute is missing.
	ErrNoInstanceAttribute = errors.New("rtti(introspect): no such instance attribute")
	// ErrReadOnly is returned when instance attributes cannot be written.
	ErrReadOnly = errors.New("rtti(introspect): instance attributes are read-only")
)

var errorType = reflect.TypeFor[error]()

// Of returns an Introspectable view of v. Values implementing
// apis.Introspectable are returned unchanged. Declared levels come from reg
// when it is non-nil.
func Of(v any, reg apis.Registry, cfg apis.Config) (apis.Introspectable, error) {
	if uref.IsNil(v) {
		return nil, ErrNilObject
	}
	if in, ok := v.(apis.Introspectable); ok {
		return in, nil
	}
	elem, ptr, err := normalize(v, cfg.MaxUnwrap)
	if err != nil {
		return nil, err
	}
	if elem.Kind() == reflect.Struct && !ptr.IsValid() {
		cp := reflect.New(elem.Type())
		cp.Elem().Set(elem)
		ptr, elem = cp, cp.Elem()
	}

	var levels []apis.Level
	if reg != nil {
		levels, err = reg.Levels(elem.Type())
	} else {
		levels, err = uref.DeclaredLevels(elem.Type())
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %T: %w", ErrNotIntrospectable, v, err)
	}

	o := &object{orig: v, elem: elem, levels: levels}
	if ptr.IsValid() {
		o.recv = ptr
	} else {
		o.recv = elem
	}
	return o, nil
}

// Writable reports whether changes made through Of(v) reach v itself.
func Writable(v any, maxUnwrap int) error {
	if uref.IsNil(v) {
		return ErrNilObject
	}
	if _, ok := v.(apis.Introspectable); ok {
		return nil
	}
	elem, ptr, err := normalize(v, maxUnwrap)
	if err != nil {
		return err
	}
	if elem.Kind() == reflect.Struct && !ptr.IsValid() {
		return fmt.Errorf("%w: got %T", ErrNotAddressable, v)
	}
	return nil
}

func normalize(v any, maxUnwrap int) (elem, ptr reflect.Value, err error) {
	elem, ptr, err = uref.Normalize(reflect.ValueOf(v), maxUnwrap)
	switch {
	case err == nil:
		return elem, ptr, nil
	case errors.Is(err, uref.ErrReflectNilValue):
		return elem, ptr, fmt.Errorf("%w: %w", ErrNilObject, err)
	default:
		return elem, ptr, fmt.Errorf("%w: %T: %w", ErrNotIntrospectable, v, err)
	}
}

// object is the reflection-backed apis.Introspectable.
type object struct {
	// orig is the value handed to Of.
	orig any
	// elem is the struct or map holding the attributes.
	elem reflect.Value
	// recv is the method receiver: the pointer to elem when there is one.
	recv reflect.Value
	// levels are the declared levels of elem's type.
	levels []apis.Level
}

// Ensure object implements apis.Introspectable.
var _ apis.Introspectable = (*object)(nil)

func (o *object) Type() reflect.Type { return o.elem.Type() }

func (o *object) Declared() []apis.Level { return o.levels }

func (o *object) Instance() []apis.Descriptor {
	var names []string
	if o.elem.Kind() == reflect.Map {
		for _, k := range o.elem.MapKeys() {
			names = append(names, k.String())
		}
	} else if dyn, ok := capability[apis.Dynamic](o); ok {
		for k := range dyn.DynamicAttributes() {
			names = append(names, k)
		}
	}
	slices.Sort(names)

	out := make([]apis.Descriptor, len(names))
	for i, n := range names {
		out[i] = apis.Descriptor{Name: n, Visibility: apis.Public}
	}
	return out
}

func (o *object) Field(d apis.Descriptor) (any, error) {
	if d.Instance() {
		return o.instanceField(d.Name)
	}
	f, err := o.field(d)
	if err != nil {
		return nil, err
	}
	if !f.CanInterface() {
		return nil, fmt.Errorf("%w: %s", ErrUnexportedField, d.Name)
	}
	return f.Interface(), nil
}

func (o *object) SetField(d apis.Descriptor, value any) error {
	if d.Instance() {
		return o.setInstanceField(d.Name, value)
	}
	f, err := o.field(d)
	if err != nil {
		return err
	}
	if !f.CanSet() {
		return fmt.Errorf("%w: %s", ErrUnexportedField, d.Name)
	}
	cv, err := uref.Coerce(value, f.Type())
	if err != nil {
		return fmt.Errorf("%s: %w", d.Name, err)
	}
	f.Set(cv)
	return nil
}

func (o *object) HasPublicCallable(name string) bool {
	return o.method(name).IsValid()
}

func (o *object) Invoke(name string, args ...any) (any, error) {
	m := o.method(name)
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %s.%s", ErrNoSuchMethod, o.elem.Type(), name)
	}
	return call(m, name, args)
}

func (o *object) InvokeIfPresent(name string, args ...any) (any, bool) {
	if m := o.method(name); m.IsValid() {
		v, err := call(m, name, args)
		return v, err == nil
	}
	if c, ok := capability[apis.Caller](o); ok {
		v, err := callMethod(c, name, args)
		return v, err == nil
	}
	return nil, false
}

func (o *object) method(name string) reflect.Value {
	if name == "" {
		return reflect.Value{}
	}
	return o.recv.MethodByName(name)
}

// field resolves d.Index against elem. A nil embedded pointer on the path
// is reported as an error instead of a panic.
func (o *object) field(d apis.Descriptor) (f reflect.Value, err error) {
	if o.elem.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNoSuchField, d.Name)
	}
	defer func() {
		if r := recover(); r != nil {
			f, err = reflect.Value{}, fmt.Errorf("%w: %s: %v", ErrNoSuchField, d.Name, r)
		}
	}()
	f, err = o.elem.FieldByIndexErr(d.Index)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %s: %w", ErrNoSuchField, d.Name, err)
	}
	return f, nil
}

func (o *object) instanceField(name string) (any, error) {
	if o.elem.Kind() == reflect.Map {
		mv := o.elem.MapIndex(o.mapKey(name))
		if !mv.IsValid() {
			return nil, fmt.Errorf("%w: %s", ErrNoInstanceAttribute, name)
		}
		return mv.Interface(), nil
	}
	if dyn, ok := capability[apis.Dynamic](o); ok {
		if v, ok := dyn.DynamicAttributes()[name]; ok {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoInstanceAttribute, name)
}

func (o *object) setInstanceField(name string, value any) error {
	if o.elem.Kind() == reflect.Map {
		cv, err := uref.Coerce(value, o.elem.Type().Elem())
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		o.elem.SetMapIndex(o.mapKey(name), cv)
		return nil
	}
	if ds, ok := capability[apis.DynamicSetter](o); ok {
		return ds.SetDynamicAttribute(name, value)
	}
	return fmt.Errorf("%w: %s", ErrReadOnly, name)
}

func (o *object) mapKey(name string) reflect.Value {
	return reflect.ValueOf(name).Convert(o.elem.Type().Key())
}

// capability returns the first of recv and orig implementing T.
func capability[T any](o *object) (T, bool) {
	if o.recv.CanInterface() {
		if c, ok := o.recv.Interface().(T); ok {
			return c, true
		}
	}
	c, ok := o.orig.(T)
	return c, ok
}

func call(m reflect.Value, name string, args []any) (out any, err error) {
	mt := m.Type()
	if mt.IsVariadic() || mt.NumIn() != len(args) {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, name, mt.NumIn(), len(args))
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		cv, err := uref.Coerce(a, mt.In(i))
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", name, i, err)
		}
		in[i] = cv
	}

	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: %s: %v", ErrInvokePanic, name, r)
		}
	}()
	return unpack(m.Call(in))
}

func callMethod(c apis.Caller, name string, args []any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: %s: %v", ErrInvokePanic, name, r)
		}
	}()
	return c.CallMethod(name, args...)
}

// unpack maps method results to a single value. A trailing error result is
// returned as the error; the first remaining result, if any, is the value.
func unpack(res []reflect.Value) (any, error) {
	if n := len(res); n > 0 && res[n-1].Type() == errorType {
		if !res[n-1].IsNil() {
			return nil, res[n-1].Interface().(error)
		}
		res = res[:n-1]
	}
	if len(res) == 0 {
		return nil, nil
	}
	return res[0].Interface(), nil
}
