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
	"encoding/hex"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"dirpx.dev/caseid/apis"
)

// NewBytesStrategy creates an apis.Strategy rendering byte slices and
// arrays as lowercase hex.
func NewBytesStrategy() apis.Strategy {
	return bytesStrategy{}
}

// NewCollectionStrategy creates an apis.Strategy for slices, arrays and maps.
//
// Slices and arrays render as Open + e1 ElemSeparator e2 ... + Close, order
// preserved. Maps render their "key=value" entries sorted, since Go map
// iteration order is random.
func NewCollectionStrategy() apis.Strategy {
	return collectionStrategy{}
}

type bytesStrategy struct{}

type collectionStrategy struct{}

// Ensure collection strategies implement apis.Strategy.
var (
	_ apis.Strategy = (*bytesStrategy)(nil)
	_ apis.Strategy = (*collectionStrategy)(nil)
)

// TryRender implements apis.Strategy.
func (bytesStrategy) TryRender(v reflect.Value, _ apis.Renderer, cfg apis.Config, _ int) (string, bool, error) {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
	default:
		return "", false, nil
	}
	if v.Type().Elem().Kind() != reflect.Uint8 {
		return "", false, nil
	}
	n := v.Len()
	if n == 0 {
		return cfg.EmptyText, true, nil
	}
	b := make([]byte, n)
	for i := 0; i < n; i++ {
		b[i] = byte(v.Index(i).Uint())
	}
	return hex.EncodeToString(b), true, nil
}

// TryRender implements apis.Strategy.
func (collectionStrategy) TryRender(v reflect.Value, r apis.Renderer, cfg apis.Config, depth int) (string, bool, error) {
	var (
		parts []string
		err   error
	)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		parts, err = renderList(v, r, cfg, depth)
	case reflect.Map:
		parts, err = renderMap(v, r, cfg, depth)
	default:
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return cfg.Open + strings.Join(parts, cfg.ElemSeparator) + cfg.Close, true, nil
}

func renderList(v reflect.Value, r apis.Renderer, cfg apis.Config, depth int) ([]string, error) {
	parts := make([]string, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		s, err := r.RenderValue(v.Index(i), cfg, depth+1)
		if err != nil {
			return nil, apis.WithinField(err, "["+strconv.Itoa(i)+"]")
		}
		parts = append(parts, s)
	}
	return parts, nil
}

func renderMap(v reflect.Value, r apis.Renderer, cfg apis.Config, depth int) ([]string, error) {
	parts := make([]string, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		k, err := r.RenderValue(iter.Key(), cfg, depth+1)
		if err != nil {
			return nil, err
		}
		e, err := r.RenderValue(iter.Value(), cfg, depth+1)
		if err != nil {
			return nil, apis.WithinField(err, "["+k+"]")
		}
		parts = append(parts, k+"="+e)
	}
	sort.Strings(parts)
	return parts, nil
}
