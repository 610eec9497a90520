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

package builder

import (
	"dirpx.dev/caseid/apis"
	"dirpx.dev/caseid/registry"
	"dirpx.dev/caseid/renderer"
	"dirpx.dev/caseid/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds a new apis.Registry for cfg. Entries of a
// pre-existing registry are copied into the new one.
func (b *builder) BuildRegistry(cfg apis.Config, preg apis.Registry, _ any) apis.Registry {
	nreg := registry.New(cfg)
	if preg != nil {
		for _, e := range preg.Entries() {
			_ = nreg.Register(e.Type, e.Format)
		}
	}
	return nreg
}

// BuildRenderer builds the default strategy chain over reg. Order matters:
// nil checks guard every method call, explicit hooks (Displayer, registry,
// text forms) beat structural rendering, and structs come last so that a
// struct with its own textual form keeps it.
func (b *builder) BuildRenderer(_ apis.Config, reg apis.Registry, _ apis.Renderer, _ any) apis.Renderer {
	return renderer.New(
		strategy.NewNilStrategy(),
		strategy.NewDisplayerStrategy(),
		strategy.NewRegistryStrategy(reg),
		strategy.NewTextStrategy(),
		strategy.NewIndirectStrategy(),
		strategy.NewRecordStrategy(),
		strategy.NewScalarStrategy(),
		strategy.NewBytesStrategy(),
		strategy.NewCollectionStrategy(),
		strategy.NewStructStrategy(),
	)
}
