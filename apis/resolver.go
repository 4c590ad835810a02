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

// Resolver coordinates strategies to read and write single attributes.
// Typical chain: FieldStrategy -> MethodStrategy -> CallerStrategy.
type Resolver interface {
	// Get returns the value of d, or an error if it cannot be resolved.
	Get(obj Introspectable, d Descriptor, cfg Config) (any, error)

	// Set writes value into d, or returns an error if it cannot be written.
	Set(obj Introspectable, d Descriptor, value any, cfg Config) error
}
