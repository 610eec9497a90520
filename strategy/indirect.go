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

// NewIndirectStrategy creates an apis.Strategy that follows pointers and
// interfaces and renders what they point to.
func NewIndirectStrategy() apis.Strategy {
	return indirectStrategy{}
}

type indirectStrategy struct{}

// Ensure indirectStrategy implements apis.Strategy.
var _ apis.Strategy = (*indirectStrategy)(nil)

// TryRender implements apis.Strategy. Nil values are expected to be
// handled earlier by the nil strategy.
func (indirectStrategy) TryRender(v reflect.Value, r apis.Renderer, cfg apis.Config, depth int) (string, bool, error) {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return cfg.Nil, true, nil
		}
		out, err := r.RenderValue(v.Elem(), cfg, depth+1)
		return out, err == nil, err
	}
	return "", false, nil
}
