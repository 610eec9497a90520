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

package text

import (
	"strings"
	"unicode"

	"dirpx.dev/caseid/apis"
)

// safePunct are the only non-alphanumeric runes kept verbatim.
const safePunct = "._~"

// Sanitize makes s safe for use in filenames, command-line filters and
// report labels by replacing every unsafe rune with cfg.Placeholder.
//
// Kept: letters, digits and "._~", unless they occur in one of the
// configured separators or brackets. Everything else (whitespace, path
// separators, quotes, shell and glob metacharacters, control runes) is
// replaced one rune at a time, so "hello world/x" becomes "hello_world_x".
func Sanitize(s string, cfg apis.Config) string {
	if s == "" {
		return s
	}
	reserved := cfg.Separator + cfg.ElemSeparator + cfg.Open + cfg.Close
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if isSafe(r) && !strings.ContainsRune(reserved, r) {
			b.WriteRune(r)
			continue
		}
		b.WriteString(cfg.Placeholder)
	}
	return b.String()
}

// IsSafe reports whether s would pass through Sanitize unchanged.
func IsSafe(s string, cfg apis.Config) bool {
	return Sanitize(s, cfg) == s
}

func isSafe(r rune) bool {
	switch {
	case r == unicode.ReplacementChar:
		return false
	case unicode.IsLetter(r), unicode.IsDigit(r):
		return true
	default:
		return strings.ContainsRune(safePunct, r)
	}
}
