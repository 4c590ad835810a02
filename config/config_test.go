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

package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/rtti/apis"
	"dirpx.dev/rtti/config"
)

func TestDefaultConfigValues(t *testing.T) {
	got := config.DefaultConfig()

	assert.Equal(t, apis.AnyVisibility, got.Visibility)
	assert.Equal(t, config.DefaultGetterPrefix, got.GetterPrefix)
	assert.Equal(t, config.DefaultSetterPrefix, got.SetterPrefix)
	assert.Equal(t, config.DefaultConventionalCasing, got.ConventionalCasing)
	assert.Equal(t, config.DefaultRecurse, got.Recurse)
	assert.Equal(t, config.DefaultMaxUnwrap, got.MaxUnwrap)
	assert.Nil(t, got.Logger)
}

func TestNewConfig_NoOptions_EqualsDefault(t *testing.T) {
	require.Equal(t, config.DefaultConfig(), config.NewConfig())
}

func TestWithVisibility(t *testing.T) {
	c := config.NewConfig(config.WithVisibility(apis.Public))
	assert.Equal(t, apis.Public, c.Visibility)

	c = config.NewConfig(config.WithVisibility(apis.Private | apis.Protected))
	assert.Equal(t, apis.Private|apis.Protected, c.Visibility)
}

func TestWithVisibility_Empty_ResetsToDefault(t *testing.T) {
	c := config.NewConfig(config.WithVisibility(0))
	assert.Equal(t, config.DefaultVisibility, c.Visibility)
}

func TestWithVisibility_UnknownBitsAreDropped(t *testing.T) {
	c := config.NewConfig(config.WithVisibility(apis.Public | 0x80))
	assert.Equal(t, apis.Public, c.Visibility)
}

func TestWithPrefixes(t *testing.T) {
	c := config.NewConfig(config.WithGetterPrefix("Fetch"), config.WithSetterPrefix("Put"))
	assert.Equal(t, "Fetch", c.GetterPrefix)
	assert.Equal(t, "Put", c.SetterPrefix)

	// Empty prefixes are valid (Go-style getters).
	c = config.NewConfig(config.WithGetterPrefix(""))
	assert.Equal(t, "", c.GetterPrefix)
}

func TestWithConventionalCasingAndRecurse(t *testing.T) {
	c := config.NewConfig(config.WithConventionalCasing(false), config.WithRecurse(true))
	assert.False(t, c.ConventionalCasing)
	assert.True(t, c.Recurse)
}

func TestWithMaxUnwrap(t *testing.T) {
	assert.Equal(t, 3, config.NewConfig(config.WithMaxUnwrap(3)).MaxUnwrap)
	assert.Equal(t, config.DefaultMaxUnwrap, config.NewConfig(config.WithMaxUnwrap(-1)).MaxUnwrap)
	assert.Equal(t, config.DefaultMaxUnwrap, config.NewConfig(config.WithMaxUnwrap(0)).MaxUnwrap)
}

func TestWithLogger(t *testing.T) {
	l := slog.New(slog.DiscardHandler)
	c := config.NewConfig(config.WithLogger(l))
	assert.Same(t, l, c.Logger)
	assert.Same(t, l, c.Log())

	c = config.NewConfig(config.WithLogger(nil))
	assert.NotNil(t, c.Log(), "nil logger must fall back to a discarding logger")
}

func TestApply_LayersOverBase(t *testing.T) {
	base := config.NewConfig(config.WithGetterPrefix("Read"), config.WithRecurse(true))
	got := config.Apply(base, config.WithVisibility(apis.Private))

	assert.Equal(t, "Read", got.GetterPrefix)
	assert.True(t, got.Recurse)
	assert.Equal(t, apis.Private, got.Visibility)
	// base is untouched.
	assert.Equal(t, apis.AnyVisibility, base.Visibility)
}

func TestApply_NormalizesZeroConfig(t *testing.T) {
	got := config.Apply(apis.Config{})
	assert.Equal(t, config.DefaultVisibility, got.Visibility)
	assert.Equal(t, config.DefaultMaxUnwrap, got.MaxUnwrap)
}

func TestOptionsOrder_LastWins(t *testing.T) {
	c := config.NewConfig(
		config.WithGetterPrefix("A"),
		config.WithGetterPrefix("B"),
		config.WithMaxUnwrap(2),
		config.WithMaxUnwrap(5),
		config.WithRecurse(true),
		config.WithRecurse(false),
	)

	assert.Equal(t, "B", c.GetterPrefix)
	assert.Equal(t, 5, c.MaxUnwrap)
	assert.False(t, c.Recurse)
}
