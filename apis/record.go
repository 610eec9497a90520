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

// Field is a single (name, value) pair of a record, in declaration order.
type Field struct {
	// Name is the declared field name.
	Name string
	// Value is the field value.
	Value any
}

// Record is the explicit field-list contract. Types implementing it are
// enumerated through RecordFields instead of struct reflection, which lets
// non-struct types (or structs with a curated view) act as records.
//
// RecordFields must return the same names in the same order on every call.
type Record interface {
	RecordFields() []Field
}

// Displayer lets a value choose its own rendering inside an identifier.
// The result is still sanitized.
type Displayer interface {
	DisplayString() string
}

// FormatFunc renders a value of a registered type.
type FormatFunc func(v any) string
