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

// Package rtti reads and writes the named attributes of arbitrary Go values
// through a process-wide, lock-free snapshot.
//
// Given a struct, rtti walks its type from the outer struct through every
// embedded struct (breadth-first, most-derived first) and collects each
// declared attribute regardless of visibility:
//
//   - exported fields are public and are read or written directly;
//   - unexported fields are private, or protected when tagged
//     `rtti:",protected"`, and are reached through accessor methods named
//     by convention: "balance" is read with GetBalance() and written with
//     SetBalance(v).
//
// Values without declared attributes (a map[string]T, or a struct that only
// implements apis.Dynamic) expose their instance attributes instead.
//
//	m, err := rtti.Extract(&acct)              // {Owner: ada, balance: 10}
//	err = rtti.Inject(rtti.Values{"balance": 42}, &acct)
//
// Attributes that cannot be resolved are skipped rather than reported. Pass
// config.WithLogger to see why at debug level.
//
// # Struct tags
//
// The `rtti` tag renames an attribute (`rtti:"owner"`), hides it
// (`rtti:"-"`) or marks an unexported field protected (`rtti:",protected"`).
// Options combine: `rtti:"owner,protected"`.
//
// # Design
//
// The core of rtti is a read-mostly global snapshot (state). The snapshot
// holds four things:
//
//   - Config: resolution options (visibility filter, accessor prefixes,
//     casing, one-level recursion, pointer unwrapping depth, logger).
//
//   - Registry: a process-wide cache of the declared attribute levels of
//     each struct type. Caching has no observable effect on results; it
//     only saves the embedding walk on repeated calls. Types can be
//     pre-warmed with Register.
//
//   - Resolver: reads and writes a single attribute. The default resolver
//     tries, in order:
//     1. direct field access for public attributes;
//     2. the conventional accessor method for restricted ones;
//     3. dynamic dispatch through apis.Caller for getters with no method.
//
//   - Builder: a pluggable factory that constructs Registry and Resolver
//     instances for a given Config, optionally migrating state from the
//     previous ones.
//
// All of these live inside a single immutable struct. Readers load the
// current snapshot atomically and never take locks; writers (SetConfig,
// SetBuilder, SetRegistry, SetResolver, SetAll) serialize on a build
// mutex, assemble a new snapshot and publish it with an atomic swap.
//
// # Pinning
//
// SetRegistry and SetResolver install a layer and pin it: later calls to
// SetConfig or SetBuilder leave a pinned layer alone until it is unpinned
// with UnpinRegistry or UnpinResolver.
//
// # Per-call options
//
// Extract, Inject and New accept config.Option values that are layered over
// the global configuration for that call only:
//
//	m, err := rtti.Extract(v, config.WithVisibility(apis.Public), config.WithRecurse(true))
//
// ExtractPrivate and InjectPrivate restrict the walk to private attributes.
package rtti
