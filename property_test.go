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

package caseid

import (
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

type pair struct {
	n int
	s string
}

func TestIdentify_Properties(t *testing.T) {
	restoreDefaults(t)

	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property("identifier is deterministic", prop.ForAll(
		func(n int, s string) bool {
			x, err1 := Identify(pair{n, s})
			y, err2 := Identify(pair{n, s})
			return err1 == nil && err2 == nil && x == y
		},
		gen.Int(), gen.AnyString(),
	))

	properties.Property("fields render in declaration order", prop.ForAll(
		func(a, b int) bool {
			id, err := Identify(struct{ a, b int }{a, b})
			return err == nil && id == strconv.Itoa(a)+"-"+strconv.Itoa(b)
		},
		gen.Int(), gen.Int(),
	))

	properties.Property("distinct records get distinct identifiers", prop.ForAll(
		func(n1 int, s1 string, n2 int, s2 string) bool {
			x, err1 := Identify(pair{n1, s1})
			y, err2 := Identify(pair{n2, s2})
			if err1 != nil || err2 != nil {
				return false
			}
			return (x == y) == (n1 == n2 && s1 == s2)
		},
		gen.IntRange(-20, 20), gen.Identifier(), gen.IntRange(-20, 20), gen.Identifier(),
	))

	sentinelish := gen.OneGenOf(
		gen.AlphaString(),
		gen.OneConstOf("", "blank", "nil", "empty", "@blank", "@nil", "@empty"),
	)
	properties.Property("text and nil never collide with sentinels", prop.ForAll(
		func(s1 string, nil1 bool, s2 string, nil2 bool) bool {
			ref := func(s string, isNil bool) *string {
				if isNil {
					return nil
				}
				return &s
			}
			type row struct {
				s string
				p *string
			}
			x, err1 := Identify(row{s1, ref(s1, nil1)})
			y, err2 := Identify(row{s2, ref(s2, nil2)})
			if err1 != nil || err2 != nil {
				return false
			}
			return (x == y) == (s1 == s2 && nil1 == nil2)
		},
		sentinelish, gen.Bool(), sentinelish, gen.Bool(),
	))

	properties.Property("text is never blank and never unsafe", prop.ForAll(
		func(s string) bool {
			id, err := Identify(struct{ s string }{s})
			return err == nil && id != "" && !strings.ContainsAny(id, " \t\r\n/\\:\"'`-+[]=")
		},
		gen.AnyString(),
	))

	properties.Property("lists keep every element", prop.ForAll(
		func(xs []int) bool {
			id, err := Identify(struct{ xs []int }{xs})
			switch {
			case err != nil:
				return false
			case xs == nil:
				return id == "@nil"
			case len(xs) == 0:
				return id == "[]"
			}
			return strings.HasPrefix(id, "[") && strings.HasSuffix(id, "]") &&
				strings.Count(id, "+") == len(xs)-1
		},
		gen.SliceOf(gen.IntRange(0, 9)),
	))

	properties.TestingRun(t)
}
