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

package reflect_test

import (
	"errors"
	"reflect"
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/caseid/apis"
	"dirpx.dev/caseid/config"
	uref "dirpx.dev/caseid/utils/reflect"
)

// Local test types.
type A struct{}
type G[T any] struct{}

func TestNormalize_StripsPointers(t *testing.T) {
	conf := config.DefaultConfig()
	type PP = **A

	cases := []struct {
		name string
		typ  reflect.Type
		want reflect.Type
	}{
		{"plain", reflect.TypeOf(A{}), reflect.TypeOf(A{})},
		{"ptr", reflect.TypeOf(&A{}), reflect.TypeOf(A{})},
		{"ptr ptr", reflect.TypeOf((*PP)(nil)).Elem(), reflect.TypeOf(A{})},
		{"slice kept", reflect.TypeOf([]A{}), reflect.TypeOf([]A{})},
		{"map kept", reflect.TypeOf(map[string]A{}), reflect.TypeOf(map[string]A{})},
		{"chan kept", reflect.TypeOf((chan A)(nil)), reflect.TypeOf((chan A)(nil))},
		{"unnamed func", reflect.TypeOf(func() {}), reflect.TypeOf(func() {})},
		{"generic", reflect.TypeOf(&G[int]{}), reflect.TypeOf(G[int]{})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Normalize(tc.typ, conf)
			if err != nil {
				t.Fatalf("Normalize(%v) returned error: %v", tc.typ, err)
			}
			if got != tc.want {
				t.Fatalf("Normalize(%v) = %v, want %v", tc.typ, got, tc.want)
			}
		})
	}
}

func TestNormalize_MaxDepth(t *testing.T) {
	type PPP = ***A
	tPPP := reflect.TypeOf((*PPP)(nil)).Elem()

	tight := apis.Config{MaxDepth: 2}
	if _, err := uref.Normalize(tPPP, tight); !errors.Is(err, uref.ErrReflectTooDeep) {
		t.Fatalf("MaxDepth=2: err = %v, want ErrReflectTooDeep", err)
	}

	wide := apis.Config{MaxDepth: 3}
	if got, err := uref.Normalize(tPPP, wide); err != nil || got != reflect.TypeOf(A{}) {
		t.Fatalf("MaxDepth=3: got (%v,%v), want (A,nil)", got, err)
	}
}

func TestNormalize_NilType(t *testing.T) {
	if _, err := uref.Normalize(nil, config.DefaultConfig()); !errors.Is(err, uref.ErrReflectNilType) {
		t.Fatalf("nil type: err = %v, want ErrReflectNilType", err)
	}
}

func TestTypeName(t *testing.T) {
	if got := uref.TypeName(reflect.TypeOf(A{})); got != "reflect_test.A" {
		t.Fatalf("TypeName(A) = %q", got)
	}
	if got := uref.TypeName(nil); got != "<nil>" {
		t.Fatalf("TypeName(nil) = %q", got)
	}
}

func TestNormalize_Concurrent(t *testing.T) {
	conf := config.DefaultConfig()
	types := []reflect.Type{
		reflect.TypeOf(A{}),
		reflect.TypeOf(&A{}),
		reflect.TypeOf([]A{}),
		reflect.TypeOf(&G[int]{}),
	}
	want := []reflect.Type{
		reflect.TypeOf(A{}),
		reflect.TypeOf(A{}),
		reflect.TypeOf([]A{}),
		reflect.TypeOf(G[int]{}),
	}

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan reflect.Type, workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				idx := i % len(types)
				got, err := uref.Normalize(types[idx], conf)
				if err != nil || got != want[idx] {
					errCh <- types[idx]
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errCh)
	for typ := range errCh {
		t.Fatalf("concurrent Normalize mismatch for %v", typ)
	}
}
