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
	"strings"
	"testing"

	"dirpx.dev/caseid/apis"
	uref "dirpx.dev/caseid/utils/reflect"
)

// Case wraps one parameter record of a table-driven test.
//
// Its name is derived from the record's field values in declaration order,
// so a table of anonymous structs gets readable subtest names without a
// hand-written name column:
//
//	cases := []*caseid.Case[struct{ a, b int; want string }]{
//		caseid.Wrap(struct{ a, b int; want string }{1, 2, "a"}), // "1-2-a"
//	}
//
// The record is held as given and never copied or mutated.
type Case[T any] struct {
	record T
	id     string
	hasID  bool
	marks  []Mark
}

// CaseOption configures a Case.
type CaseOption func(*caseOptions)

type caseOptions struct {
	id    string
	hasID bool
	marks []Mark
}

// WithID sets an explicit name that takes precedence over the
// field-derived identifier.
func WithID(id string) CaseOption {
	return func(o *caseOptions) {
		o.id = id
		o.hasID = true
	}
}

// WithMarks attaches marks applied to the subtest before the body runs.
func WithMarks(marks ...Mark) CaseOption {
	return func(o *caseOptions) {
		o.marks = append(o.marks, marks...)
	}
}

// Wrap returns a Case for record. A record with no fields is legal and is
// named by Config.EmptyRecord.
func Wrap[T any](record T, opts ...CaseOption) *Case[T] {
	var o caseOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Case[T]{record: record, id: o.id, hasID: o.hasID, marks: o.marks}
}

// ID renders the field-derived identifier with the global configuration.
// It is recomputed on every call.
func (c *Case[T]) ID() (string, error) {
	return Identify(c.record)
}

// Name returns the explicit id when one was set, otherwise ID.
func (c *Case[T]) Name() (string, error) {
	if c.hasID {
		return c.id, nil
	}
	return c.ID()
}

// String implements fmt.Stringer. It panics with the rendering error
// instead of returning a degraded name.
func (c *Case[T]) String() string {
	name, err := c.Name()
	if err != nil {
		panic(err)
	}
	return name
}

// Record returns the wrapped record.
func (c *Case[T]) Record() T {
	return c.record
}

// Marks returns the marks attached to the case.
func (c *Case[T]) Marks() []Mark {
	return append([]Mark(nil), c.marks...)
}

// Fields returns the record's (name, value) pairs in declaration order.
func (c *Case[T]) Fields() ([]apis.Field, error) {
	fields, ok := uref.Fields(c.record)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotRecord, c.record)
	}
	return fields, nil
}

// Field returns the value of the named field, unexported fields included.
// It resolves name the way the selector record.name would: a field hides
// deeper promoted fields of the same name, and an ambiguous name is not
// found.
func (c *Case[T]) Field(name string) (any, bool) {
	return uref.Lookup(c.record, name)
}

// fieldNames joins the record's field names with ", ".
func (c *Case[T]) fieldNames() string {
	fields, ok := uref.Fields(c.record)
	if !ok {
		return ""
	}
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return strings.Join(names, ", ")
}

type markKind uint8

const (
	markSkip markKind = iota + 1
	markParallel
)

// Mark is a per-case annotation applied to its subtest.
type Mark struct {
	kind   markKind
	reason string
}

// Skip marks a case to be skipped with the given reason.
func Skip(reason string) Mark {
	return Mark{kind: markSkip, reason: reason}
}

// Parallel marks a case to run in parallel with its siblings.
func Parallel() Mark {
	return Mark{kind: markParallel}
}

func (m Mark) String() string {
	switch m.kind {
	case markSkip:
		return "skip(" + m.reason + ")"
	case markParallel:
		return "parallel"
	default:
		return "unknown"
	}
}

func (m Mark) apply(t *testing.T) {
	switch m.kind {
	case markSkip:
		t.Skip(m.reason)
	case markParallel:
		t.Parallel()
	}
}
