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

// Package naming derives conventional accessor method names from attribute
// names ("age" + "Get" -> "GetAge").
package naming

import (
	"unicode"
	"unicode/utf8"
)

// Resolve returns the method name for attribute under prefix.
// With conventional casing the first rune of attribute is upper-cased;
// otherwise attribute is appended verbatim. An empty attribute yields prefix.
func Resolve(prefix, attribute string, conventional bool) string {
	if conventional {
		return prefix + Capitalize(attribute)
	}
	return prefix + attribute
}

// Capitalize upper-cases the first rune of s and leaves the rest untouched.
// It is multibyte-safe; an invalid leading byte is left as is.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	up := unicode.ToUpper(r)
	if up == r {
		return s
	}
	return string(up) + s[size:]
}
