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

// Package astcmp compares Go source text structurally.
//
// It is a helper for test suites of source-to-source rewrites: two snippets
// of Go code are parsed, normalized to remove cosmetic differences (layout,
// literal spelling, redundant parentheses, and by default comments), and then
// compared as syntax trees. On mismatch the failure carries a Report with
// both sources pretty-printed, the longest common prefix of the renderings,
// a short excerpt of each side at the point of divergence, and structural
// and textual diffs.
//
// The simplest entry point is AssertEqual:
//
//	astcmp.AssertEqual(t, "x := 16", "x := 0x10", nil)
//
// Inputs need not be whole files. A snippet that fails to parse as a file is
// retried as a list of declarations and then as a list of statements, so
// test cases can use the smallest fragment that shows the behavior under
// test.
//
// Package fixture builds on this to run declarative tables of rewrite test
// cases, and package assertions exposes the comparison as GoConvey-style
// assertion functions.
package astcmp
