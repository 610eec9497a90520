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

	"dirpx.dev/caseid/apis"
)

// NewNilStrategy creates an apis.Strategy that renders nil values.
func NewNilStrategy() apis.Strategy {
	return nilStrategy{}
}

// nilStrategy renders invalid values and nil pointers, interfaces, maps
// and slices as cfg.Nil. It runs first so later strategies never call
// methods on nil receivers.
type nilStrategy struct{}

// Ensure nilStrategy implements apis.Strategy.
var _ apis.Strategy = (*nilStrategy)(nil)

// TryRender implements apis.Strategy.
func (nilStrategy) TryRender(v reflect.Value, _ apis.Renderer, cfg apis.Config, _ int) (string, bool, error) {
	if !v.IsValid() {
		return cfg.Nil, true, nil
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return cfg.Nil, true, nil
		}
	}
	return "", false, nil
}
