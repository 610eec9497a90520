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
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var (
	// ErrUnsupportedFieldType is returned when a field has no textual,
	// record or collection form (channels, funcs, unsafe pointers, ...).
	ErrUnsupportedFieldType = errors.New("caseid: unsupported field type")
	// ErrMaxDepthExceeded is returned when nesting exceeds Config.MaxDepth,
	// typically because of a pointer cycle.
	ErrMaxDepthExceeded = errors.New("caseid: max nesting depth exceeded")
)

// UnsupportedFieldTypeError names the offending record, field and type.
// It matches ErrUnsupportedFieldType with errors.Is.
type UnsupportedFieldTypeError struct {
	// Record is the Go type of the outermost record.
	Record string
	// Path holds field names and "[i]" / "[key]" selectors from the
	// outermost record down to the offending value.
	Path []string
	// Type is the type that could not be rendered.
	Type reflect.Type
}

// Error implements error.
func (e *UnsupportedFieldTypeError) Error() string {
	var b strings.Builder
	b.WriteString(ErrUnsupportedFieldType.Error())
	if e.Type != nil {
		b.WriteString(" ")
		b.WriteString(e.Type.String())
	}
	if e.Record != "" {
		b.WriteString(" in record ")
		b.WriteString(e.Record)
	}
	if p := e.FieldPath(); p != "" {
		b.WriteString(" at field ")
		b.WriteString(p)
	}
	return b.String()
}

// Is reports whether target is ErrUnsupportedFieldType.
func (e *UnsupportedFieldTypeError) Is(target error) bool {
	return target == ErrUnsupportedFieldType
}

// FieldPath joins Path into "Outer.Inner[2]".
func (e *UnsupportedFieldTypeError) FieldPath() string {
	var b strings.Builder
	for i, p := range e.Path {
		if i > 0 && !strings.HasPrefix(p, "[") {
			b.WriteByte('.')
		}
		b.WriteString(p)
	}
	return b.String()
}

// WithinField prefixes the path of an UnsupportedFieldTypeError with a
// field name or a "[i]" selector. Other errors pass through unchanged.
func WithinField(err error, field string) error {
	var ue *UnsupportedFieldTypeError
	if !errors.As(err, &ue) {
		return err
	}
	ue.Path = append([]string{field}, ue.Path...)
	return err
}

// InRecord records the enclosing record type of an UnsupportedFieldTypeError.
// Called while unwinding, so the last call leaves the outermost record.
func InRecord(err error, record string) error {
	var ue *UnsupportedFieldTypeError
	if errors.As(err, &ue) && record != "" {
		ue.Record = record
	}
	return err
}

// Unsupported builds an UnsupportedFieldTypeError for t.
func Unsupported(t reflect.Type) error {
	return &UnsupportedFieldTypeError{Type: t}
}

// MaxDepth wraps ErrMaxDepthExceeded with the type being rendered.
func MaxDepth(t reflect.Type, limit int) error {
	return fmt.Errorf("%w: %v deeper than %d", ErrMaxDepthExceeded, t, limit)
}
