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

package renderer

import (
	"reflect"
	"strings"

	"dirpx.dev/caseid/apis"
	"dirpx.dev/caseid/config"
	uref "dirpx.dev/caseid/utils/reflect"
	"dirpx.dev/caseid/utils/text"
)

// New constructs an apis.Renderer that tries the given strategies in order.
// Nil strategies are ignored. The returned renderer is safe for concurrent use
// provided strategies themselves are safe for concurrent TryRender calls.
func New(strategies ...apis.Strategy) apis.Renderer {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// chain is an immutable, order-preserving renderer over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// Render enumerates the fields of record v and joins their renderings.
// A value that is not a record (no struct, no apis.Record) is rendered
// as a single value, so plain parameters still get a readable id.
func (r chain) Render(v any, cfg apis.Config) (string, error) {
	cfg = config.Sanitize(cfg)
	fields, ok := uref.Fields(v)
	if !ok {
		return r.RenderValue(reflect.ValueOf(v), cfg, 0)
	}
	id, err := r.RenderFields(fields, cfg, 0, false)
	if err != nil {
		return "", apis.InRecord(err, uref.TypeName(reflect.TypeOf(v)))
	}
	return id, nil
}

// RenderValue runs strategies in order until one handles the value.
// It fails with ErrUnsupportedFieldType if none does.
func (r chain) RenderValue(v reflect.Value, cfg apis.Config, depth int) (string, error) {
	cfg = config.Sanitize(cfg)
	if depth > cfg.MaxDepth {
		var t reflect.Type
		if v.IsValid() {
			t = v.Type()
		}
		return "", apis.MaxDepth(t, cfg.MaxDepth)
	}
	v = uref.Accessible(v)
	if v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = uref.Accessible(v.Elem())
	}
	for _, s := range r.strats {
		out, ok, err := s.TryRender(v, r, cfg, depth)
		if err != nil {
			return "", err
		}
		if ok {
			return out, nil
		}
	}
	if !v.IsValid() {
		return cfg.Nil, nil
	}
	return "", apis.Unsupported(v.Type())
}

// RenderFields renders fields in the given order and joins them with
// cfg.Separator. Nested sets are bracketed; an empty top-level set yields
// cfg.EmptyRecord so the identifier is never blank.
func (r chain) RenderFields(fields []apis.Field, cfg apis.Config, depth int, nested bool) (string, error) {
	cfg = config.Sanitize(cfg)
	if len(fields) == 0 {
		if nested {
			return cfg.Open + cfg.Close, nil
		}
		return cfg.EmptyRecord, nil
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		s, err := r.RenderValue(reflect.ValueOf(f.Value), cfg, depth+1)
		if err != nil {
			return "", apis.WithinField(err, f.Name)
		}
		if cfg.IncludeFieldNames {
			s = text.Sanitize(f.Name, cfg) + "=" + s
		}
		parts = append(parts, s)
	}
	joined := strings.Join(parts, cfg.Separator)
	if nested {
		return cfg.Open + joined + cfg.Close, nil
	}
	return joined, nil
}
