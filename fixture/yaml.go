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
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// LoadTable reads a Table from a YAML document.
//
// The document is a mapping from case names to cases:
//
//	renames x:
//	  input: "x := 1"
//	  output: "y := 1"
//	rejects broken source:
//	  input: "func ("
//	  throws: "expected"
//
// Unknown keys are rejected so that typos in fixtures fail loudly.
func LoadTable[O any](path string) (Table[O], error) {
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading fixture table")
	}
	var table Table[O]
	if err := yaml.UnmarshalStrict(blob, &table); err != nil {
		return nil, errors.Wrapf(err, "parsing fixture table %s", path)
	}
	return table, nil
}
