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

// Package caseid derives readable, deterministic names for the cases of
// table-driven tests from the cases themselves.
//
// A case table in Go is usually a slice of (often anonymous) structs. When
// those structs carry no name column, subtests end up named "#00", "#01"
// and so on. caseid renders the field values of each record in declaration
// order and joins them into an identifier that is safe on a command line
// and in a file name:
//
//	struct{ a, b int; want string }{1, 2, "a"}   -> "1-2-a"
//	struct{}{}                                   -> "@empty"
//	struct{ in Point; ok bool }{Point{1, 2}, true} -> "[1-2]-true"
//	struct{ xs []int }{[]int{1, 2, 3}}           -> "[1+2+3]"
//
// # Wrapping cases
//
// Wrap turns a record into a *Case. The case's String method yields its
// name, so fmt and loggers pick it up without further help; Record and
// Field give the record back. Run hands the record straight to the test
// body:
//
//	caseid.Run(t, []*caseid.Case[tc]{
//		caseid.Wrap(tc{1, 2, 3}),
//		caseid.Wrap(tc{-1, 1, 0}, caseid.WithMarks(caseid.Parallel())),
//	}, func(t *testing.T, c tc) {
//		if got := c.a + c.b; got != c.want {
//			t.Errorf("got %d, want %d", got, c.want)
//		}
//	})
//
// Prepare computes every name before any case runs; a field whose type has
// no textual form (channels, funcs, unsafe pointers) or two cases with the
// same name fail the whole table instead of a single subtest.
//
// # Selecting cases
//
// Subtest filters given to go test -run and -skip are regular expressions,
// one per "/"-separated level, and identifiers use "[", "]", "+" and "."
// literally. Quote a name before filtering on it, by hand with
// regexp.QuoteMeta or with RunPattern:
//
//	// RunPattern("TestSum", "[1+2]-3")
//	go test -run '^TestSum$/^\[1\+2\]-3$'
//
// # Rendering
//
// Field values are rendered by a chain of strategies, first match wins:
// nil, apis.Displayer, registered formatters, encoding.TextMarshaler,
// fmt.Stringer and error, pointers, nested records, scalars, byte strings,
// collections and finally plain structs. Every piece of text coming from a
// value is sanitized: whitespace, path and quote characters and the
// separators themselves are replaced by a placeholder, so an identifier
// splits back into exactly its fields.
//
// # Global state
//
// Like other DIRPX packages, caseid keeps a read-mostly snapshot (Config,
// Registry, Renderer, Builder and a zerolog.Logger) behind an atomic
// pointer. Reads are lock-free; SetConfig, SetBuilder, SetRegistry,
// SetRenderer, SetLogger and SetAll publish a new snapshot. Registry and
// renderer set explicitly are pinned and survive rebuilds until unpinned.
//
// Custom formatters make opaque types readable:
//
//	_ = caseid.RegisterFormatter(reflect.TypeOf(net.IP{}), func(v any) string {
//		return v.(net.IP).String()
//	})
package caseid
