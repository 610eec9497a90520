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

package caseid

import (
	"errors"
	"os"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"dirpx.dev/caseid/apis"
	"dirpx.dev/caseid/builder"
	"dirpx.dev/caseid/config"
)

// init publishes the default snapshot.
func init() {
	cfg := config.DefaultConfig()
	b := builder.New()
	reg := b.BuildRegistry(cfg, nil, nil)
	st.Store(&state{
		cfg: cfg,
		reg: reg,
		ren: b.BuildRenderer(cfg, reg, nil, nil),
		bld: b,
		log: defaultLogger(),
	})
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("caseid: builder returned nil registry")
	// ErrNilRenderer is returned when a builder returns a nil renderer.
	ErrNilRenderer = errors.New("caseid: builder returned nil renderer")
)

// state is an immutable snapshot. Writers publish a new one.
type state struct {
	cfg apis.Config
	ext any
	reg apis.Registry
	ren apis.Renderer
	bld apis.Builder
	log zerolog.Logger

	// preg and pres mark layers set explicitly; they are not rebuilt.
	preg bool
	pres bool
}

var (
	// st holds the current snapshot.
	st atomic.Pointer[state]
	// buildMu serializes writers.
	buildMu sync.Mutex
)

func defaultLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(zerolog.WarnLevel).
		With().Timestamp().Str("component", "caseid").Logger()
}

// update derives a new snapshot from the current one under buildMu,
// rebuilds the layers that are not pinned and publishes the result.
func update(mutate func(next *state), rebuild bool) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	next := *old
	mutate(&next)

	if rebuild {
		if !next.preg {
			next.reg = next.bld.BuildRegistry(next.cfg, old.reg, next.ext)
		}
		if !next.pres {
			next.ren = next.bld.BuildRenderer(next.cfg, next.reg, old.ren, next.ext)
		}
	}
	if next.reg == nil {
		panic(ErrNilRegistry)
	}
	if next.ren == nil {
		panic(ErrNilRenderer)
	}
	st.Store(&next)
}

// Identify renders the identifier of record v with the global renderer
// and configuration.
func Identify(v any) (string, error) {
	s := st.Load()
	return s.ren.Render(v, s.cfg)
}

// RegisterFormatter adds a custom formatter for t (and *t) to the global
// registry. Use it to give opaque field types a readable form.
func RegisterFormatter(t reflect.Type, fn apis.FormatFunc) error {
	return st.Load().reg.Register(t, fn)
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig replaces the configuration and rebuilds non-pinned layers.
func SetConfig(cfg apis.Config) {
	cfg = config.Sanitize(cfg)
	update(func(n *state) { n.cfg = cfg }, true)
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry installs reg and pins it. The renderer is rebuilt over the
// new registry unless it is pinned too.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	update(func(n *state) {
		n.reg = reg
		n.preg = true
	}, true)
}

// Renderer returns the global renderer.
func Renderer() apis.Renderer {
	return st.Load().ren
}

// SetRenderer installs ren and pins it.
func SetRenderer(ren apis.Renderer) {
	if ren == nil {
		return
	}
	update(func(n *state) {
		n.ren = ren
		n.pres = true
	}, false)
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder swaps the builder and rebuilds non-pinned layers with it.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	update(func(n *state) { n.bld = b }, true)
}

// SetExt replaces the extension payload handed to the builder and
// rebuilds non-pinned layers.
func SetExt[T any](ext T) {
	update(func(n *state) { n.ext = ext }, true)
}

// ExtAs returns the extension payload as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// UnpinRegistry releases an explicitly set registry; the next rebuild
// happens immediately.
func UnpinRegistry() {
	update(func(n *state) { n.preg = false }, true)
}

// UnpinRenderer releases an explicitly set renderer and rebuilds it.
func UnpinRenderer() {
	update(func(n *state) { n.pres = false }, true)
}

// IsRegistryPinned reports whether the registry was set explicitly.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// IsRendererPinned reports whether the renderer was set explicitly.
func IsRendererPinned() bool {
	return st.Load().pres
}

// Logger returns the global logger.
func Logger() zerolog.Logger {
	return st.Load().log
}

// SetLogger replaces the global logger. Use zerolog.Nop() to silence it.
func SetLogger(l zerolog.Logger) {
	update(func(n *state) { n.log = l }, false)
}

// SetAll explicitly sets all global state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced. Registry and renderer are
// pinned only when given; otherwise they are rebuilt and unpinned.
// Mainly used by tests to get a clean deterministic state.
func SetAll(cfg *apis.Config, ext any, reg apis.Registry, ren apis.Renderer, bld apis.Builder) {
	update(func(n *state) {
		if cfg != nil {
			n.cfg = config.Sanitize(*cfg)
		}
		if bld != nil {
			n.bld = bld
		}
		n.ext = ext
		n.preg, n.pres = false, false
		if reg != nil {
			n.reg, n.preg = reg, true
		}
		if ren != nil {
			n.ren, n.pres = ren, true
		}
	}, true)
}
