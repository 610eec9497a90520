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

// Config carries read-only rendering knobs that influence strategies.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Separator joins the rendered top-level fields of a record,
	// and the fields of nested records inside their brackets.
	Separator string

	// ElemSeparator joins the rendered elements of slices, arrays and maps.
	ElemSeparator string

	// Placeholder replaces every character of a textual value that is not
	// safe in a test identifier (whitespace, path separators, quotes, ...).
	Placeholder string

	// Open and Close bracket nested records and collections.
	Open  string
	Close string

	// EmptyRecord is returned for a record without fields.
	// It must be non-empty: runners reject blank ids.
	EmptyRecord string

	// EmptyText is rendered for empty strings and empty byte slices.
	EmptyText string

	// Nil is rendered for nil pointers, interfaces, maps and slices.
	Nil string

	// MaxDepth limits nesting (records, collections, pointers).
	// Acts as a guard against cyclic pointer graphs.
	MaxDepth int

	// IncludeFieldNames renders every field as "name=value".
	IncludeFieldNames bool
}
