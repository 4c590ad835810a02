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
	"reflect"
	"strings"

	"dirpx.dev/rtti/apis"
)

// TagName is the struct tag consulted when declaring attributes.
//
//	Field  T `rtti:"-"`            // not an attribute
//	field  T `rtti:"alias"`        // attribute named "alias"
//	field  T `rtti:",protected"`   // protected instead of private
const TagName = "rtti"

type fieldTag struct {
	name      string
	skip      bool
	protected bool
}

func parseTag(tag string) fieldTag {
	if tag == "-" {
		return fieldTag{skip: true}
	}
	name, opts, _ := strings.Cut(tag, ",")
	ft := fieldTag{name: name}
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == "protected" {
			ft.protected = true
		}
	}
	return ft
}

// DeclaredLevels walks the embedding hierarchy of t breadth-first and returns
// one Level per struct type, most-derived first. The result always starts
// with t itself.
//
// Embedded struct fields (or pointers to structs) are levels, not attributes.
// Embedded interfaces carry no storable attributes and are skipped. A struct
// type embedded more than once, or recursively through a pointer, is walked
// only the first time it is seen. A map type yields a single empty level.
func DeclaredLevels(t reflect.Type) ([]apis.Level, error) {
	t, err := NormalizeType(t, 0)
	if err != nil {
		return nil, err
	}
	if t.Kind() != reflect.Struct {
		return []apis.Level{{Type: t}}, nil
	}

	type pending struct {
		t     reflect.Type
		depth int
		index []int
	}
	queue := []pending{{t: t}}
	seen := map[reflect.Type]bool{t: true}
	var levels []apis.Level

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		lvl := apis.Level{Type: p.t, Depth: p.depth}
		for i := range p.t.NumField() {
			f := p.t.Field(i)
			tag := parseTag(f.Tag.Get(TagName))
			if tag.skip {
				continue
			}
			index := make([]int, len(p.index)+1)
			copy(index, p.index)
			index[len(p.index)] = i

			if f.Anonymous {
				et := f.Type
				if et.Kind() == reflect.Pointer {
					et = et.Elem()
				}
				switch et.Kind() {
				case reflect.Interface:
					continue
				case reflect.Struct:
					if !seen[et] {
						seen[et] = true
						queue = append(queue, pending{t: et, depth: p.depth + 1, index: index})
					}
					continue
				}
			}

			name := f.Name
			if tag.name != "" {
				name = tag.name
			}
			lvl.Attributes = append(lvl.Attributes, apis.Descriptor{
				Name:       name,
				Visibility: visibilityOf(f, tag),
				Depth:      p.depth,
				Index:      index,
				Type:       f.Type,
			})
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

func visibilityOf(f reflect.StructField, tag fieldTag) apis.Visibility {
	switch {
	case f.IsExported():
		return apis.Public
	case tag.protected:
		return apis.Protected
	default:
		return apis.Private
	}
}
