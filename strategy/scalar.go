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

package strategy

import (
	"reflect"
	"strconv"
	"strings"

	"dirpx.dev/caseid/apis"
)

// NewScalarStrategy creates an apis.Strategy for booleans, numbers and strings.
func NewScalarStrategy() apis.Strategy {
	return scalarStrategy{}
}

// scalarStrategy renders primitives via their natural textual form.
// Only strings are sanitized: numeric forms are already safe.
// uintptr is deliberately not handled; it is an address, not a value.
type scalarStrategy struct{}

// Ensure scalarStrategy implements apis.Strategy.
var _ apis.Strategy = (*scalarStrategy)(nil)

// TryRender implements apis.Strategy.
func (scalarStrategy) TryRender(v reflect.Value, _ apis.Renderer, cfg apis.Config, _ int) (string, bool, error) {
	switch v.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), true, nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32), true, nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), true, nil
	case reflect.Complex64:
		return complexString(v.Complex(), 64), true, nil
	case reflect.Complex128:
		return complexString(v.Complex(), 128), true, nil
	case reflect.String:
		return textOrEmpty(v.String(), cfg), true, nil
	}
	return "", false, nil
}

// complexString formats c as "1+2i", without FormatComplex's parentheses.
func complexString(c complex128, bitSize int) string {
	s := strconv.FormatComplex(c, 'g', -1, bitSize)
	return strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
}
