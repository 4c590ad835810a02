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

// Package accessor reads and writes the named attributes of arbitrary Go
// values.
//
// Extract walks a value's type hierarchy from the outer struct through its
// embedded structs and collects every attribute the configured visibility
// admits. Exported fields are read directly; unexported fields are reached
// through conventionally named accessor methods ("balance" -> "GetBalance").
// Inject is the inverse: it applies a Source of values back onto a value,
// writing exported fields directly and calling mutator methods
// ("SetBalance") for unexported ones.
//
// Per-attribute failures never fail the call. The attribute is omitted (or
// left unchanged) and the reason is logged at debug level on the configured
// logger.
package accessor

import (
	"encoding"
	"errors"
	"reflect"

	"dirpx.dev/rtti/apis"
	"dirpx.dev/rtti/builder"
	"dirpx.dev/rtti/introspect"
	uref "dirpx.dev/rtti/utils/reflect"
	"dirpx.dev/rtti/walker"
)

var textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()

// Accessor extracts and injects attributes using a fixed configuration,
// type registry and resolver. It holds no per-call state and is safe for
// concurrent use.
type Accessor struct {
	cfg apis.Config
	reg apis.Registry
	res apis.Resolver
}

// New returns an Accessor. A nil reg or res is replaced by the one the
// default builder produces for cfg.
func New(cfg apis.Config, reg apis.Registry, res apis.Resolver) *Accessor {
	b := builder.New()
	if reg == nil {
		reg = b.BuildRegistry(cfg, nil)
	}
	if res == nil {
		res = b.BuildResolver(cfg, reg, nil)
	}
	return &Accessor{cfg: cfg, reg: reg, res: res}
}

// Config returns the configuration a uses.
func (a *Accessor) Config() apis.Config { return a.cfg }

// Extract returns the attributes of v in walk order: most-derived level
// first, declaration order within a level. When several levels declare the
// same name the most-derived one wins.
//
// A nil v (untyped, nil pointer or nil map) yields an empty Map. The only
// error is introspect.ErrNotIntrospectable for values that hold no
// attributes, such as an int or a slice.
func (a *Accessor) Extract(v any) (*apis.Map, error) {
	out, err := a.extract(v, a.cfg)
	if err != nil || !a.cfg.Recurse {
		return out, err
	}

	nested := a.cfg
	nested.Recurse = false
	for _, name := range out.Keys() {
		val, _ := out.Get(name)
		if !isObject(val) {
			continue
		}
		m, err := a.extract(val, nested)
		if err != nil {
			a.cfg.Log().Debug("rtti: nested extraction failed, keeping raw value",
				"attribute", name, "error", err)
			continue
		}
		out.Set(name, m)
	}
	return out, nil
}

func (a *Accessor) extract(v any, cfg apis.Config) (*apis.Map, error) {
	out := apis.NewMap()
	if uref.IsNil(v) {
		return out, nil
	}
	obj, err := introspect.Of(v, a.reg, cfg)
	if errors.Is(err, introspect.ErrNilObject) {
		return out, nil
	}
	if err != nil {
		return nil, err
	}

	log := cfg.Log()
	for lvl := range walker.Walk(obj, cfg.Visibility) {
		for _, d := range lvl.Attributes {
			if out.Has(d.Name) {
				continue
			}
			val, err := a.res.Get(obj, d, cfg)
			if err != nil {
				log.Debug("rtti: attribute skipped",
					"attribute", d.Name, "type", obj.Type(), "depth", d.Depth, "error", err)
				continue
			}
			out.Set(d.Name, val)
		}
	}
	return out, nil
}

// Inject writes the values of src onto v. Only attributes whose names are
// present in src are touched; all others keep their current value.
//
// v must be a non-nil pointer to a struct, a non-nil string-keyed map, or an
// apis.Introspectable. A nil src is a no-op.
func (a *Accessor) Inject(src apis.Source, v any) error {
	if err := introspect.Writable(v, a.cfg.MaxUnwrap); err != nil {
		return err
	}
	if uref.IsNil(src) {
		return nil
	}
	obj, err := introspect.Of(v, a.reg, a.cfg)
	if err != nil {
		return err
	}

	log := a.cfg.Log()
	for lvl := range walker.Walk(obj, a.cfg.Visibility) {
		for _, d := range lvl.Attributes {
			val, ok := src.Lookup(d.Name)
			if !ok {
				continue
			}
			if err := a.res.Set(obj, d, val, a.cfg); err != nil {
				log.Debug("rtti: attribute not injected",
					"attribute", d.Name, "type", obj.Type(), "depth", d.Depth, "error", err)
			}
		}
	}
	return nil
}

// isObject reports whether v is worth a nested extraction: a struct or a
// non-nil pointer to one, or a value carrying its own attributes. Types that
// marshal to text (time.Time, net.IP) are treated as scalars.
func isObject(v any) bool {
	if uref.IsNil(v) {
		return false
	}
	switch v.(type) {
	case apis.Introspectable, apis.Dynamic:
		return true
	case encoding.TextMarshaler:
		return false
	}
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	return !reflect.PointerTo(t).Implements(textMarshalerType)
}
