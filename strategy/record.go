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

// NewRecordStrategy creates an apis.Strategy for values implementing the
// explicit apis.Record field-list contract.
func NewRecordStrategy() apis.Strategy {
	return recordStrategy{}
}

// NewStructStrategy creates an apis.Strategy that renders any struct as a
// nested record, fields in declaration order.
func NewStructStrategy() apis.Strategy {
	return structStrategy{}
}

type recordStrategy struct{}

type structStrategy struct{}

// Ensure record strategies implement apis.Strategy.
var (
	_ apis.Strategy = (*recordStrategy)(nil)
	_ apis.Strategy = (*structStrategy)(nil)
)

// TryRender implements apis.Strategy.
func (recordStrategy) TryRender(v reflect.Value, r apis.Renderer, cfg apis.Config, depth int) (string, bool, error) {
	rec, ok := methodValue[apis.Record](v)
	if !ok {
		return "", false, nil
	}
	return nested(r, rec.RecordFields(), v.Type(), cfg, depth)
}

// TryRender implements apis.Strategy.
func (structStrategy) TryRender(v reflect.Value, r apis.Renderer, cfg apis.Config, depth int) (string, bool, error) {
	if v.Kind() != reflect.Struct {
		return "", false, nil
	}
	return nested(r, uref.StructFields(v), v.Type(), cfg, depth)
}

func nested(r apis.Renderer, fields []apis.Field, t reflect.Type, cfg apis.Config, depth int) (string, bool, error) {
	out, err := r.RenderFields(fields, cfg, depth, true)
	if err != nil {
		return "", false, apis.InRecord(err, uref.TypeName(t))
	}
	return out, true, nil
}
