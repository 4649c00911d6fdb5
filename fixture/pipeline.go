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

package fixture

import (
	"github.com/dave/dst"

	"go.chromium.org/astcmp"
)

// Rewriter mutates a parsed file in place. Rewriters are the unit a Group
// composes into a transform.
type Rewriter[O any] func(file *dst.File, opts O) error

// Pipeline builds a Transform that parses the input, applies each rewriter in
// order and prints the result.
//
// Inputs may be whole files or fragments, same as astcmp.Parse.
func Pipeline[O any](rws ...Rewriter[O]) Transform[O] {
	return func(src string, opts O) (string, error) {
		frag, err := astcmp.Parse(src)
		if err != nil {
			return "", err
		}
		for _, rw := range rws {
			if err := rw(frag.File, opts); err != nil {
				return "", err
			}
		}
		return frag.Print()
	}
}
