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

package reflect

import (
	"encoding"
	"fmt"
	"reflect"

	"dirpx.dev/caseid/apis"
)

var (
	displayerType = reflect.TypeOf((*apis.Displayer)(nil)).Elem()
	recordType    = reflect.TypeOf((*apis.Record)(nil)).Elem()
	textType      = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	stringerType  = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
	errorType     = reflect.TypeOf((*error)(nil)).Elem()
)

// StructFields enumerates the fields of struct v in declaration order.
//
// Embedded structs are flattened in place, the way Go promotes their fields,
// unless the embedded type has a textual form of its own (see HasOwnForm):
// flattening time.Time would expose its internals. Blank fields are skipped.
// Unexported fields are included and readable. A field shadowed by a
// shallower one of the same name is still listed.
func StructFields(v reflect.Value) []apis.Field {
	v = Accessible(v)
	if v.Kind() != reflect.Struct {
		return nil
	}
	out := make([]apis.Field, 0, v.NumField())
	walkFields(v, 0, func(f apis.Field, _ int, embedded bool) {
		if !embedded {
			out = append(out, f)
		}
	})
	return out
}

// walkFields visits the fields of struct v, descending into flattened
// embedded structs. depth is the embedding depth of the field; embedded
// reports the flattened struct itself, which is visited before its fields.
func walkFields(v reflect.Value, depth int, visit func(f apis.Field, depth int, embedded bool)) {
	v = Accessible(v)
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Name == "_" {
			continue
		}
		fv := v.Field(i)
		f := apis.Field{Name: sf.Name, Value: Interface(fv)}
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && !HasOwnForm(sf.Type) {
			visit(f, depth, true)
			walkFields(fv, depth+1, visit)
			continue
		}
		visit(f, depth, false)
	}
}

// Fields returns the ordered field set of a record value: RecordFields for
// apis.Record implementations, StructFields for structs (through pointers).
// ok is false when v is neither.
func Fields(v any) (fields []apis.Field, ok bool) {
	rec, sv, ok := recordOf(v)
	switch {
	case !ok:
		return nil, false
	case rec != nil:
		return rec.RecordFields(), true
	}
	return StructFields(sv), true
}

// Lookup returns the value that the selector v.name denotes.
//
// Struct fields follow Go's promotion rules: the shallowest field of that
// name wins and a tie at the shallowest depth is ambiguous, reported as
// not found. Embedded structs are selectable by their type name. For an
// apis.Record the first descriptor field of that name is returned.
func Lookup(v any, name string) (value any, ok bool) {
	rec, sv, ok := recordOf(v)
	switch {
	case !ok:
		return nil, false
	case rec != nil:
		for _, f := range rec.RecordFields() {
			if f.Name == name {
				return f.Value, true
			}
		}
		return nil, false
	}

	best, hits := -1, 0
	walkFields(sv, 0, func(f apis.Field, depth int, _ bool) {
		if f.Name != name {
			return
		}
		switch {
		case best < 0 || depth < best:
			best, hits, value = depth, 1, f.Value
		case depth == best:
			hits++
		}
	})
	if hits != 1 {
		return nil, false
	}
	return value, true
}

// recordOf resolves v to either an apis.Record or a struct value,
// following pointers and interfaces.
func recordOf(v any) (apis.Record, reflect.Value, bool) {
	if r, isRec := v.(apis.Record); isRec {
		return r, reflect.Value{}, true
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, reflect.Value{}, false
	}
	if rv.CanAddr() {
		if r, isRec := Interface(rv.Addr()).(apis.Record); isRec {
			return r, reflect.Value{}, true
		}
	}
	return nil, rv, true
}

// HasOwnForm reports whether values of t (or *t) render through a method
// rather than field by field.
func HasOwnForm(t reflect.Type) bool {
	if t == nil {
		return false
	}
	for _, it := range []reflect.Type{displayerType, recordType, textType, stringerType, errorType} {
		if t.Implements(it) || reflect.PointerTo(t).Implements(it) {
			return true
		}
	}
	return false
}
