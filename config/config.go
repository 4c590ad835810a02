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

package config

import (
	"log/slog"

	"dirpx.dev/rtti/apis"
)

const (
	// DefaultVisibility represents the default for Visibility.
	// Every access level is considered.
	DefaultVisibility = apis.AnyVisibility
	// DefaultGetterPrefix represents the default for GetterPrefix.
	// Go only exposes exported methods, so the prefix is capitalized.
	DefaultGetterPrefix = "Get"
	// DefaultSetterPrefix represents the default for SetterPrefix.
	DefaultSetterPrefix = "Set"
	// DefaultConventionalCasing represents the default for ConventionalCasing.
	DefaultConventionalCasing = true
	// DefaultRecurse represents the default for Recurse.
	DefaultRecurse = false
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	return Apply(DefaultConfig(), opts...)
}

// Apply layers opts over base and normalizes the result.
func Apply(base apis.Config, opts ...Option) apis.Config {
	cfg := base
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap and Visibility are valid.
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.Visibility&apis.AnyVisibility == 0 {
		cfg.Visibility = DefaultVisibility
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Visibility:         DefaultVisibility,
		GetterPrefix:       DefaultGetterPrefix,
		SetterPrefix:       DefaultSetterPrefix,
		ConventionalCasing: DefaultConventionalCasing,
		Recurse:            DefaultRecurse,
		MaxUnwrap:          DefaultMaxUnwrap,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithVisibility sets the Visibility filter.
// An empty set resets to the default.
func WithVisibility(v apis.Visibility) Option {
	return func(c *apis.Config) {
		if v&apis.AnyVisibility == 0 {
			c.Visibility = DefaultVisibility
			return
		}
		c.Visibility = v & apis.AnyVisibility
	}
}

// WithGetterPrefix sets the GetterPrefix option.
// An empty prefix is valid and selects Go-style getters ("age" -> "Age").
func WithGetterPrefix(prefix string) Option {
	return func(c *apis.Config) {
		c.GetterPrefix = prefix
	}
}

// WithSetterPrefix sets the SetterPrefix option.
func WithSetterPrefix(prefix string) Option {
	return func(c *apis.Config) {
		c.SetterPrefix = prefix
	}
}

// WithConventionalCasing sets the ConventionalCasing option.
func WithConventionalCasing(conventional bool) Option {
	return func(c *apis.Config) {
		c.ConventionalCasing = conventional
	}
}

// WithRecurse sets the Recurse option.
func WithRecurse(recurse bool) Option {
	return func(c *apis.Config) {
		c.Recurse = recurse
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A non-positive value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max <= 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithLogger sets the Logger option. Nil restores the discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = l
	}
}
