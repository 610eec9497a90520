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

import "reflect"

// Registry maps types to custom formatters. It is consulted before any
// built-in rendering rule, so it can also give a textual form to types
// that would otherwise be unsupported (channels, handles, funcs).
type Registry interface {
	// Register associates a (pointer-stripped) reflect.Type with fn.
	// Re-registering the same function is a no-op; a different one is a conflict.
	Register(t reflect.Type, fn FormatFunc) error
	// Lookup returns the formatter for a type if present.
	Lookup(t reflect.Type) (fn FormatFunc, ok bool)
	// Entries returns a snapshot for diagnostics/docs (order is unspecified).
	Entries() []Entry
	// Count returns the number of registered entries.
	Count() int
	// Reset clears all registered entries.
	Reset()
}

// Entry is a single (type, formatter) association in a Registry snapshot.
type Entry struct {
	// Type is the registered reflect.Type.
	Type reflect.Type
	// Format is the associated formatter.
	Format FormatFunc
}
