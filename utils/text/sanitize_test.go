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

package text_test

import (
	"strings"
	"testing"
	"unicode"

	"dirpx.dev/caseid/config"
	"dirpx.dev/caseid/utils/text"
)

func TestSanitize(t *testing.T) {
	conf := config.DefaultConfig()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "abc", "abc"},
		{"space and slash", "hello world/x", "hello_world_x"},
		{"backslash", `a\b`, "a_b"},
		{"quotes", `"a"'b'` + "`c`", "_a__b__c_"},
		{"tab and newline", "a\tb\nc", "a_b_c"},
		{"separator", "a-b", "a_b"},
		{"elem separator", "a+b", "a_b"},
		{"brackets", "[x]", "_x_"},
		{"equals and colon", "k=v:w", "k_v_w"},
		{"shell metachars", "a;b|c&d$e*f?g", "a_b_c_d_e_f_g"},
		{"kept punctuation", "v1.2_rc~3", "v1.2_rc~3"},
		{"unicode letters", "héllo", "héllo"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := text.Sanitize(tc.in, conf); got != tc.want {
				t.Fatalf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSanitize_NoUnsafeRunesRemain(t *testing.T) {
	conf := config.DefaultConfig()
	in := " \t\r\n/\\\"'`:;|&<>*?$#%!(){}[]=+-,\x00\x7f"
	got := text.Sanitize(in, conf)
	if strings.Trim(got, conf.Placeholder) != "" {
		t.Fatalf("Sanitize(%q) = %q, want only placeholders", in, got)
	}
	for _, r := range got {
		if unicode.IsSpace(r) || r == '/' || r == '\\' {
			t.Fatalf("unsafe rune %q survived in %q", r, got)
		}
	}
}

func TestSanitize_CustomPlaceholderAndSeparator(t *testing.T) {
	conf := config.NewConfig(config.WithPlaceholder("~"), config.WithSeparator("."))
	if got := text.Sanitize("a.b c", conf); got != "a~b~c" {
		t.Fatalf("Sanitize = %q, want a~b~c", got)
	}
}

func TestIsSafe(t *testing.T) {
	conf := config.DefaultConfig()
	if !text.IsSafe("abc_1.2", conf) {
		t.Fatal("abc_1.2 should be safe")
	}
	if text.IsSafe("a b", conf) {
		t.Fatal("'a b' should not be safe")
	}
}

func TestSanitize_NeverEmitsSentinelMark(t *testing.T) {
	conf := config.DefaultConfig()

	for _, in := range []string{conf.Nil, conf.EmptyText, conf.EmptyRecord, "a@b", "@"} {
		got := text.Sanitize(in, conf)
		if strings.Contains(got, config.SentinelMark) {
			t.Fatalf("Sanitize(%q) = %q keeps the sentinel mark", in, got)
		}
		if got == conf.Nil || got == conf.EmptyText || got == conf.EmptyRecord {
			t.Fatalf("Sanitize(%q) = %q renders as a sentinel", in, got)
		}
	}
}
