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

package reflect_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	uref "dirpx.dev/rtti/utils/reflect"
)

// Local test types.
type A struct{ X int }
type B map[string]int

func TestNormalizeType(t *testing.T) {
	a := reflect.TypeOf(A{})

	cases := []struct {
		name string
		typ  reflect.Type
		want reflect.Type
		err  error
	}{
		{"plain", a, a, nil},
		{"ptr", reflect.TypeOf(&A{}), a, nil},
		{"ptr ptr", reflect.TypeOf((**A)(nil)), a, nil},
		{"string map", reflect.TypeOf(B{}), reflect.TypeOf(B{}), nil},
		{"int map", reflect.TypeOf(map[int]string{}), nil, uref.ErrReflectNotIntrospectable},
		{"slice", reflect.TypeOf([]A{}), nil, uref.ErrReflectNotIntrospectable},
		{"builtin", reflect.TypeOf(0), nil, uref.ErrReflectNotIntrospectable},
		{"nil", nil, nil, uref.ErrReflectNilType},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.NormalizeType(tc.typ, 8)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeType_MaxUnwrap(t *testing.T) {
	tt := reflect.TypeOf((**A)(nil))

	_, err := uref.NormalizeType(tt, 1)
	require.ErrorIs(t, err, uref.ErrReflectTooDeep)

	got, err := uref.NormalizeType(tt, 2)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(A{}), got)
}

func TestNormalize_Values(t *testing.T) {
	a := &A{X: 7}
	pa := &a

	t.Run("struct value", func(t *testing.T) {
		elem, ptr, err := uref.Normalize(reflect.ValueOf(A{X: 1}), 0)
		require.NoError(t, err)
		assert.Equal(t, 1, elem.Interface().(A).X)
		assert.False(t, ptr.IsValid())
		assert.False(t, elem.CanAddr())
	})

	t.Run("pointer keeps addressability", func(t *testing.T) {
		elem, ptr, err := uref.Normalize(reflect.ValueOf(a), 0)
		require.NoError(t, err)
		assert.True(t, elem.CanSet())
		assert.Equal(t, a, ptr.Interface())
	})

	t.Run("pointer to pointer", func(t *testing.T) {
		elem, ptr, err := uref.Normalize(reflect.ValueOf(pa), 0)
		require.NoError(t, err)
		assert.Equal(t, 7, elem.Field(0).Interface())
		assert.Equal(t, a, ptr.Interface(), "ptr must be the innermost pointer")
	})

	t.Run("too deep", func(t *testing.T) {
		_, _, err := uref.Normalize(reflect.ValueOf(pa), 1)
		require.ErrorIs(t, err, uref.ErrReflectTooDeep)
	})

	t.Run("nil pointer", func(t *testing.T) {
		_, _, err := uref.Normalize(reflect.ValueOf((*A)(nil)), 0)
		require.ErrorIs(t, err, uref.ErrReflectNilValue)
	})

	t.Run("nil map", func(t *testing.T) {
		_, _, err := uref.Normalize(reflect.ValueOf(B(nil)), 0)
		require.ErrorIs(t, err, uref.ErrReflectNilValue)
	})

	t.Run("invalid", func(t *testing.T) {
		_, _, err := uref.Normalize(reflect.Value{}, 0)
		require.ErrorIs(t, err, uref.ErrReflectNilValue)
	})

	t.Run("not introspectable", func(t *testing.T) {
		_, _, err := uref.Normalize(reflect.ValueOf(42), 0)
		require.ErrorIs(t, err, uref.ErrReflectNotIntrospectable)
	})

	t.Run("through interface field", func(t *testing.T) {
		holder := struct{ V any }{V: a}
		elem, ptr, err := uref.Normalize(reflect.ValueOf(holder).Field(0), 0)
		require.NoError(t, err)
		assert.Equal(t, 7, elem.Field(0).Interface())
		assert.True(t, ptr.IsValid())
	})
}

func TestIsNil(t *testing.T) {
	var nilMap map[string]any
	var nilPtr *A
	var nilIface any

	assert.True(t, uref.IsNil(nil))
	assert.True(t, uref.IsNil(nilMap))
	assert.True(t, uref.IsNil(nilPtr))
	assert.True(t, uref.IsNil(nilIface))
	assert.False(t, uref.IsNil(A{}))
	assert.False(t, uref.IsNil(0))
	assert.False(t, uref.IsNil(&A{}))
}
