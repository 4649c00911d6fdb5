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

// Package fixture runs tables of source transformation cases as subtests.
//
// A Table maps case names to inputs, expected outputs and expected errors.
// Section runs every case of a table against a single Transform. Group does
// the same for a pipeline of Rewriters, wrapped in a named subtest group:
//
//	fixture.Group(t, "rename", []fixture.Rewriter[renameOpts]{renameIdents},
//		fixture.Table[renameOpts]{
//			"renames x": {Input: "x := 1", Output: "y := 1"},
//		},
//		&fixture.Config[renameOpts]{Defaults: renameOpts{From: "x", To: "y"}},
//	)
//
// Outputs are compared structurally via astcmp, so cases may spell literals
// and layout differently from what the transform emits.
//
// Each case may declare what should happen instead of an output comparison:
//
//	Throws: fixture.Any()       // any error from the transform
//	Throws: fixture.Like("x")   // an error whose message contains "x"
//	Throws: fixture.None()      // no error, but skip the output comparison
//
// Tables can live in the test file, in YAML documents (LoadTable) or in txtar
// archives with refreshable golden outputs (Archive).
package fixture
