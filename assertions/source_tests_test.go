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

package assertions

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"go.chromium.org/astcmp"
)

func TestShouldMatchSource(t *testing.T) {
	t.Parallel()

	Convey(`ShouldMatchSource`, t, func() {
		Convey(`accepts structurally equal sources`, func() {
			So("x := 0x10", ShouldMatchSource, "x := 16")
			So("f(  1,2 )", ShouldMatchSource, "f(1, 2)")
			So("// c\nx := 1", ShouldMatchSource, "x := 1")
		})

		Convey(`honors the comments option`, func() {
			So("// c\nx := 1", ShouldMatchSource, "// c\nx := 1", &astcmp.Options{Comments: true})
			So(ShouldMatchSource("// c\nx := 1", "x := 1", &astcmp.Options{Comments: true}), ShouldNotEqual, "")
		})

		Convey(`reports divergences`, func() {
			msg := ShouldMatchSource("x := 1", "x := 2")
			So(msg, ShouldContainSubstring, `CommonPrefix: "x := "`)
			So(msg, ShouldContainSubstring, `ExpectedExcerpt: "2"`)
			So(msg, ShouldContainSubstring, `ActualExcerpt: "1"`)
		})

		Convey(`reports parse failures`, func() {
			So(ShouldMatchSource("func (", "x := 1"), ShouldContainSubstring, "expected")
		})

		Convey(`checks its arguments`, func() {
			So(ShouldMatchSource("x"), ShouldEqual,
				"ShouldMatchSource requires 1 or 2 expected values, got 0")
			So(ShouldMatchSource("x", "y", nil, nil), ShouldEqual,
				"ShouldMatchSource requires 1 or 2 expected values, got 3")
			So(ShouldMatchSource(42, "x"), ShouldContainSubstring, "int")
			So(ShouldMatchSource("x", 42), ShouldContainSubstring, "int")
			So(ShouldMatchSource("x", "y", 42), ShouldContainSubstring, "int")
		})
	})
}

func TestShouldNotMatchSource(t *testing.T) {
	t.Parallel()

	Convey(`ShouldNotMatchSource`, t, func() {
		Convey(`accepts differing sources`, func() {
			So("x := 1", ShouldNotMatchSource, "x := 2")
			So("// c\nx := 1", ShouldNotMatchSource, "x := 1", &astcmp.Options{Comments: true})
		})

		Convey(`rejects equal sources`, func() {
			So(ShouldNotMatchSource("x := 1", "x := 0x1"), ShouldEqual,
				"sources were expected to differ structurally, but they are equal")
		})

		Convey(`rejects unparseable sources`, func() {
			So(ShouldNotMatchSource("func (", "x := 1"), ShouldContainSubstring, "expected")
		})
	})
}
