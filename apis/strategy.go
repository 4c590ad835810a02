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

// Strategy is a pluggable per-attribute resolution step. A Resolver chains
// strategies in order (e.g., Field -> Method -> Caller).
type Strategy interface {
	// TryGet attempts to read d from obj. It returns handled=false to fall
	// through to the next strategy. When handled, a non-nil err means the
	// attribute is omitted.
	TryGet(obj Introspectable, d Descriptor, cfg Config) (value any, handled bool, err error)

	// TrySet attempts to write value into d on obj, with the same handled
	// semantics as TryGet.
	TrySet(obj Introspectable, d Descriptor, value any, cfg Config) (handled bool, err error)
}
