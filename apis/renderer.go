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
	"reflect"
)

// Renderer coordinates strategies to turn records into identifiers.
type Renderer interface {
	// Render returns the identifier of record v: its fields rendered in
	// declaration order and joined by cfg.Separator.
	Render(v any, cfg Config) (string, error)

	// RenderValue renders a single value at the given nesting depth.
	RenderValue(v reflect.Value, cfg Config, depth int) (string, error)

	// RenderFields renders an ordered field set. When nested is true the
	// result is bracketed; otherwise an empty set yields cfg.EmptyRecord.
	RenderFields(fields []Field, cfg Config, depth int, nested bool) (string, error)
}
