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
	"fmt"
	"regexp"
	"strings"
	"testing"
)

// Entry is a prepared case ready to be handed to t.Run.
type Entry[T any] struct {
	Name   string
	Record T
	Marks  []Mark
}

// Prepare resolves the names of all cases up front.
//
// keys is the ", "-joined field names of the first case. Every name is
// computed eagerly, so an unrenderable field or two cases sharing a name
// fail here, before any case runs. An empty input is not an error.
func Prepare[T any](cases []*Case[T]) (keys string, entries []Entry[T], err error) {
	log := Logger()
	if len(cases) == 0 {
		log.Warn().Msg("no cases to prepare")
		return "", nil, nil
	}
	if cases[0] == nil {
		return "", nil, fmt.Errorf("%w at index 0", ErrNilCase)
	}

	keys = cases[0].fieldNames()
	log.Info().Str("keys", keys).Int("cases", len(cases)).Msg("prepared case keys")

	seen := make(map[string]int, len(cases))
	entries = make([]Entry[T], 0, len(cases))
	for i, c := range cases {
		if c == nil {
			return "", nil, fmt.Errorf("%w at index %d", ErrNilCase, i)
		}
		name, err := c.Name()
		if err != nil {
			return "", nil, fmt.Errorf("caseid: case %d: %w", i, err)
		}
		if j, dup := seen[name]; dup {
			log.Error().Str("id", name).Int("first", j).Int("second", i).Msg("duplicate case id")
			return "", nil, fmt.Errorf("%w %q: cases %d and %d", ErrDuplicateID, name, j, i)
		}
		seen[name] = i
		entries = append(entries, Entry[T]{Name: name, Record: c.record, Marks: c.Marks()})
		log.Debug().Int("index", i).Str("id", name).Stringers("marks", stringers(c.marks)).Msg("prepared case")
	}
	return keys, entries, nil
}

// Run prepares cases and runs fn for each of them as a subtest named by
// the case. The body receives the record itself.
func Run[T any](t *testing.T, cases []*Case[T], fn func(t *testing.T, record T)) {
	t.Helper()
	_, entries, err := Prepare(cases)
	if err != nil {
		t.Fatalf("caseid: %v", err)
	}
	for _, e := range entries {
		t.Run(e.Name, func(t *testing.T) {
			for _, m := range e.Marks {
				m.apply(t)
			}
			fn(t, e.Record)
		})
	}
}

func stringers(marks []Mark) []fmt.Stringer {
	out := make([]fmt.Stringer, len(marks))
	for i, m := range marks {
		out[i] = m
	}
	return out
}

// RunPattern returns a pattern for go test -run or -skip that selects
// exactly the subtest path elems, e.g. RunPattern("TestSum", "[1+2]-3").
// Case names hold regexp metacharacters such as "[", "]", "+" and ".", so a
// name pasted verbatim after -run selects other subtests or none.
func RunPattern(elems ...string) string {
	quoted := make([]string, len(elems))
	for i, e := range elems {
		quoted[i] = "^" + regexp.QuoteMeta(e) + "$"
	}
	return strings.Join(quoted, "/")
}
