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

package registry

import (
	"errors"
	"reflect"
	"sync"
	"unsafe"

	"dirpx.dev/caseid/apis"
	"dirpx.dev/caseid/config"
	uref "dirpx.dev/caseid/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("caseid(registry): nil reflect.Type provided")
	// ErrNilFormatter is returned when a nil formatter is provided.
	ErrNilFormatter = errors.New("caseid(registry): nil formatter provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type with a different formatter.
	ErrConflictingRegistration = errors.New("caseid(registry): conflicting type registration")
)

// New constructs a Registry that normalizes types according to cfg.
// Only MaxDepth is used here.
func New(cfg apis.Config) apis.Registry {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = config.DefaultMaxDepth
	}
	return &registry{cfg: cfg}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// cfg is the configuration used for type normalization.
	cfg apis.Config
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps the pointer-stripped reflect.Type to its formatter.
	m sync.Map // map[reflect.Type]apis.FormatFunc
	// count tracks the number of registered entries.
	count int
}

// sameFunc reports whether a and b are the same func value; funcs are not
// comparable. Re-registering a top-level function or the very same closure
// is idempotent. Two closures built from one literal are distinct values and
// conflict, even when they would format alike.
func sameFunc(a, b apis.FormatFunc) bool {
	return *(*unsafe.Pointer)(unsafe.Pointer(&a)) == *(*unsafe.Pointer)(unsafe.Pointer(&b))
}

// Register associates the pointer-stripped type of t with fn.
// It is idempotent for the same (type, function) pair.
func (r *registry) Register(t reflect.Type, fn apis.FormatFunc) error {
	if t == nil {
		return ErrNilType
	}
	if fn == nil {
		return ErrNilFormatter
	}

	b, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return err
	}

	// Fast read path without locking.
	if old, ok := r.m.Load(b); ok {
		if sameFunc(old.(apis.FormatFunc), fn) {
			return nil
		}
		return ErrConflictingRegistration
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(b); ok {
		if sameFunc(old.(apis.FormatFunc), fn) {
			return nil
		}
		return ErrConflictingRegistration
	}

	r.m.Store(b, fn)
	r.count++
	return nil
}

// Lookup returns the formatter for t (or its pointee) if present.
func (r *registry) Lookup(t reflect.Type) (apis.FormatFunc, bool) {
	if t == nil {
		return nil, false
	}
	nt, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return nil, false
	}
	if v, ok := r.m.Load(nt); ok {
		return v.(apis.FormatFunc), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Type:   key.(reflect.Type),
			Format: value.(apis.FormatFunc),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Range(func(key, _ any) bool {
		r.m.Delete(key)
		return true
	})
	r.count = 0
}
