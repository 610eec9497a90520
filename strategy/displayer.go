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
	"dirpx.dev/caseid/utils/text"
)

// NewDisplayerStrategy creates an apis.Strategy that uses apis.Displayer.
func NewDisplayerStrategy() apis.Strategy {
	return &displayerStrategy{}
}

// displayerStrategy is the explicit fast path: if v implements
// apis.Displayer, its DisplayString() is used (sanitized) and the chain stops.
type displayerStrategy struct{}

// Ensure displayerStrategy implements apis.Strategy.
var _ apis.Strategy = (*displayerStrategy)(nil)

// TryRender checks if v (or &v) implements apis.Displayer.
func (*displayerStrategy) TryRender(v reflect.Value, _ apis.Renderer, cfg apis.Config, _ int) (string, bool, error) {
	d, ok := methodValue[apis.Displayer](v)
	if !ok {
		return "", false, nil
	}
	return textOrEmpty(d.DisplayString(), cfg), true, nil
}

// methodValue returns v (or its address, when addressable) as I.
func methodValue[I any](v reflect.Value) (I, bool) {
	var zero I
	if x, ok := uref.Interface(v).(I); ok {
		return x, true
	}
	if v.CanAddr() {
		if x, ok := uref.Interface(v.Addr()).(I); ok {
			return x, true
		}
	}
	return zero, false
}

// textOrEmpty sanitizes s, substituting cfg.EmptyText for "".
func textOrEmpty(s string, cfg apis.Config) string {
	if s == "" {
		return cfg.EmptyText
	}
	return text.Sanitize(s, cfg)
}
