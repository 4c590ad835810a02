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

import "log/slog"

// Config carries the resolution options for a single Extract or Inject call.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Visibility filters which declared attributes are considered.
	// A zero value is normalized to AnyVisibility by the config package.
	Visibility Visibility

	// GetterPrefix is prepended to the attribute name to derive the accessor
	// used for restricted attributes during extraction.
	GetterPrefix string

	// SetterPrefix is prepended to the attribute name to derive the mutator
	// used for restricted attributes during injection.
	SetterPrefix string

	// ConventionalCasing upper-cases the first rune of the attribute name
	// when deriving accessor names ("age" -> "GetAge").
	ConventionalCasing bool

	// Recurse replaces object-valued attributes with their own extracted
	// Map. Exactly one nested level is converted. Ignored by Inject.
	Recurse bool

	// MaxUnwrap limits how many pointer or interface indirections are
	// followed to reach the target struct or map.
	MaxUnwrap int

	// Logger receives per-attribute diagnostics at debug level.
	// Nil means discard.
	Logger *slog.Logger
}

// Log returns the configured logger, or a discarding logger when unset.
func (c Config) Log() *slog.Logger {
	if c.Logger == nil {
		return discard
	}
	return c.Logger
}

var discard = slog.New(slog.DiscardHandler)
