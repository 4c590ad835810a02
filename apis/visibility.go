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

import (
	"fmt"
	"strings"
)

// Visibility is a bit set of attribute access levels.
//
// In Go terms an exported field is Public, an unexported field is Private,
// and an unexported field tagged `rtti:",protected"` is Protected.
type Visibility uint8

const (
	// Public attributes are read and written directly.
	Public Visibility = 1 << iota
	// Protected attributes are reached through accessor methods only.
	Protected
	// Private attributes are reached through accessor methods only.
	Private
)

// AnyVisibility selects every access level.
const AnyVisibility = Public | Protected | Private

// Has reports whether v shares at least one access level with o.
func (v Visibility) Has(o Visibility) bool {
	return v&o != 0
}

// Restricted reports whether v names a protected or private attribute.
func (v Visibility) Restricted() bool {
	return v&(Protected|Private) != 0
}

// String renders the set as "public|protected|private" (in that order).
func (v Visibility) String() string {
	if v == 0 {
		return "none"
	}
	var parts []string
	if v&Public != 0 {
		parts = append(parts, "public")
	}
	if v&Protected != 0 {
		parts = append(parts, "protected")
	}
	if v&Private != 0 {
		parts = append(parts, "private")
	}
	if rest := v &^ AnyVisibility; rest != 0 {
		parts = append(parts, fmt.Sprintf("unknown(%#x)", uint8(rest)))
	}
	return strings.Join(parts, "|")
}

// ParseVisibility parses a set of access levels such as "public",
// "protected|private" or "any". Tokens are separated by '|' or ',', matched
// case-insensitively and trimmed of surrounding whitespace.
//
// Example:
//
//	vis, err := ParseVisibility("Public, private")
//	if err != nil {
//	    // handle invalid configuration
//	}
//
//	_ = vis // Public|Private
func ParseVisibility(s string) (Visibility, error) {
	if strings.TrimSpace(s) == "" {
		return 0, fmt.Errorf("rtti(apis): empty visibility")
	}

	var v Visibility
	for tok := range strings.FieldsFuncSeq(s, func(r rune) bool { return r == '|' || r == ',' }) {
		switch strings.ToLower(strings.TrimSpace(tok)) {
		case "public":
			v |= Public
		case "protected":
			v |= Protected
		case "private":
			v |= Private
		case "any", "all":
			v |= AnyVisibility
		case "":
		default:
			return 0, fmt.Errorf("rtti(apis): unknown visibility %q in %q", tok, s)
		}
	}
	if v == 0 {
		return 0, fmt.Errorf("rtti(apis): empty visibility %q", s)
	}
	return v, nil
}

// MustParseVisibility is like ParseVisibility but panics on invalid input.
func MustParseVisibility(s string) Visibility {
	v, err := ParseVisibility(s)
	if err != nil {
		panic(err)
	}
	return v
}

// MarshalText implements encoding.TextMarshaler. The empty set and unknown
// bits cannot be marshaled.
func (v Visibility) MarshalText() ([]byte, error) {
	if v == 0 || v&^AnyVisibility != 0 {
		return nil, fmt.Errorf("rtti(apis): cannot marshal visibility %#x", uint8(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the same
// input as ParseVisibility and leaves v unchanged on error.
func (v *Visibility) UnmarshalText(text []byte) error {
	parsed, err := ParseVisibility(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
