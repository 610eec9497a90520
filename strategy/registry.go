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
	uref "dirpx.dev/caseid/utils/reflect"
)

// NewRegistryStrategy creates an apis.Strategy that uses an apis.Registry.
func NewRegistryStrategy(reg apis.Registry) apis.Strategy {
	return &registryStrategy{reg: reg}
}

// registryStrategy consults a provided apis.Registry of custom formatters.
type registryStrategy struct {
	reg apis.Registry
}

// Ensure registryStrategy implements apis.Strategy.
var _ apis.Strategy = (*registryStrategy)(nil)

// TryRender looks up v's type in the registry and formats the pointee.
func (s *registryStrategy) TryRender(v reflect.Value, _ apis.Renderer, cfg apis.Config, _ int) (string, bool, error) {
	if s.reg == nil || !v.IsValid() {
		return "", false, nil
	}
	fn, ok := s.reg.Lookup(v.Type())
	if !ok {
		return "", false, nil
	}
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return cfg.Nil, true, nil
		}
		v = v.Elem()
	}
	return textOrEmpty(fn(uref.Interface(v)), cfg), true, nil
}
