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
	"errors"
	"reflect"

	"dirpx.dev/caseid/apis"
	"dirpx.dev/caseid/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTooDeep indicates that pointer unwrapping hit MaxDepth.
	ErrReflectTooDeep = errors.New("reflect: pointer chain deeper than MaxDepth")
)

// Normalize strips pointer levels from t and returns the pointee type, so
// that T, *T and **T share one registry key.
//
// Unlike container unwrapping, slices, maps and arrays are kept as-is:
// a formatter registered for []T must not capture T, and vice versa.
//
// If MaxDepth <= 0, config.DefaultMaxDepth is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	maxDepth := cfg.MaxDepth
	if maxDepth <= 0 {
		maxDepth = config.DefaultMaxDepth
	}

	for i := 0; t.Kind() == reflect.Ptr; i++ {
		if i >= maxDepth {
			return nil, ErrReflectTooDeep
		}
		t = t.Elem()
	}
	return t, nil
}

// TypeName returns a readable name for t: "pkg.Type" for named types and
// the type literal otherwise ("struct { a int }").
func TypeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
