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

// Strategy is a pluggable rendering step. A Renderer chains multiple
// strategies in order (e.g., Nil -> Displayer -> Registry -> ... -> Struct).
type Strategy interface {
	// TryRender attempts to render v at the given nesting depth.
	// It returns (out, true, nil) if handled, ("", false, nil) to fall
	// through, and a non-nil error to abort the whole identifier.
	// Nested values are rendered through r so the chain applies recursively.
	TryRender(v reflect.Value, r Renderer, cfg Config, depth int) (out string, handled bool, err error)
}
