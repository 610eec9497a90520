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
	"encoding"
	"fmt"
	"reflect"

	"dirpx.dev/caseid/apis"
)

// NewTextStrategy creates an apis.Strategy for values that already know
// their textual form: encoding.TextMarshaler, fmt.Stringer and error,
// tried in that order.
func NewTextStrategy() apis.Strategy {
	return textStrategy{}
}

// textStrategy prefers MarshalText because it is meant to be a stable,
// machine-oriented form (time.Time renders as RFC 3339, not with a
// monotonic clock reading).
type textStrategy struct{}

// Ensure textStrategy implements apis.Strategy.
var _ apis.Strategy = (*textStrategy)(nil)

// TryRender implements apis.Strategy.
func (textStrategy) TryRender(v reflect.Value, _ apis.Renderer, cfg apis.Config, _ int) (string, bool, error) {
	if tm, ok := methodValue[encoding.TextMarshaler](v); ok {
		b, err := tm.MarshalText()
		if err != nil {
			return "", false, fmt.Errorf("caseid(strategy): MarshalText %v: %w", v.Type(), err)
		}
		return textOrEmpty(string(b), cfg), true, nil
	}
	if s, ok := methodValue[fmt.Stringer](v); ok {
		return textOrEmpty(s.String(), cfg), true, nil
	}
	if e, ok := methodValue[error](v); ok {
		return textOrEmpty(e.Error(), cfg), true, nil
	}
	return "", false, nil
}
