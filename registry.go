// Copyright 2026 The LUCI Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package astcmp

import (
	"slices"
	"sync"

	"github.com/google/go-cmp/cmp"
)

var cmpOptions struct {
	sync.Mutex
	opts []cmp.Option
}

// RegisterCmpOption adds a go-cmp option to every comparison done by this
// package.
//
// Suites with domain-specific equivalences (say, ignoring a field the
// rewrite under test is allowed to change) register them here from an
// init() function. Registration after init time is legal but unusual.
//
// Panics if opt is nil.
func RegisterCmpOption(opt cmp.Option) {
	if opt == nil {
		panic("RegisterCmpOption called with nil option")
	}
	cmpOptions.Lock()
	defer cmpOptions.Unlock()
	cmpOptions.opts = append(cmpOptions.opts, opt)
}

// GetCmpOptions returns a copy of all registered comparison options.
func GetCmpOptions() []cmp.Option {
	cmpOptions.Lock()
	defer cmpOptions.Unlock()
	return slices.Clone(cmpOptions.opts)
}
