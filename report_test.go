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
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	. "github.com/smartystreets/goconvey/convey"
)

// mismatchReport runs Equal and returns the report it must produce.
func mismatchReport(t *testing.T, expected, actual string, opts *Options) *Report {
	t.Helper()
	err := Equal(expected, actual, opts)
	if err == nil {
		t.Fatalf("Equal(%q, %q) unexpectedly passed", expected, actual)
	}
	var mismatch *MismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("Equal(%q, %q) = %s, want *MismatchError", expected, actual, err)
	}
	return mismatch.Report
}

func TestReportPinpointsDivergence(t *testing.T) {
	t.Parallel()

	r := mismatchReport(t, "y := 1", "y := 2", nil)

	Convey(`digit divergence`, t, func() {
		So(r.Expected, ShouldEqual, "y := 1")
		So(r.Actual, ShouldEqual, "y := 2")
		So(r.CommonPrefix, ShouldEqual, "y := ")
		So(r.ExpectedExcerpt, ShouldEqual, "1")
		So(r.ActualExcerpt, ShouldEqual, "2")
		So(r.TreeDiff, ShouldContainSubstring, "BasicLit")
		So(r.TextDiff, ShouldContainSubstring, "-y := 1")
		So(r.TextDiff, ShouldContainSubstring, "+y := 2")
	})
}

func TestReportExcerptBounds(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", 100)
	r := mismatchReport(t, `s := "b`+long+`"`, `s := "c`+long+`"`, nil)

	if want := `s := "`; r.CommonPrefix != want {
		t.Errorf("CommonPrefix = %q, want %q", r.CommonPrefix, want)
	}
	if n := utf8.RuneCountInString(r.ExpectedExcerpt); n != excerptLen {
		t.Errorf("ExpectedExcerpt is %d runes, want %d", n, excerptLen)
	}
	if !strings.HasPrefix(r.ExpectedExcerpt, "b") {
		t.Errorf("ExpectedExcerpt = %q, want it to start at the divergence", r.ExpectedExcerpt)
	}
	if !strings.HasPrefix(r.ActualExcerpt, "c") {
		t.Errorf("ActualExcerpt = %q, want it to start at the divergence", r.ActualExcerpt)
	}
}

func TestReportCountsRunesNotBytes(t *testing.T) {
	t.Parallel()

	r := mismatchReport(t, `s := "αβγ1"`, `s := "αβγ2"`, nil)
	if want := `s := "αβγ`; r.CommonPrefix != want {
		t.Errorf("CommonPrefix = %q, want %q", r.CommonPrefix, want)
	}
	if r.ExpectedExcerpt != `1"` {
		t.Errorf("ExpectedExcerpt = %q, want %q", r.ExpectedExcerpt, `1"`)
	}
}

func TestReportExhaustedSide(t *testing.T) {
	t.Parallel()

	// The actual side is a strict prefix of the expected side.
	r := mismatchReport(t, "x := 1\ny := 2", "x := 1", nil)
	if r.ActualExcerpt != "" {
		t.Errorf("ActualExcerpt = %q, want empty for an exhausted side", r.ActualExcerpt)
	}
	if r.ExpectedExcerpt == "" {
		t.Error("ExpectedExcerpt empty, want the trailing statement")
	}
}

func TestReportString(t *testing.T) {
	t.Parallel()

	r := mismatchReport(t, "y := 1", "y := 2", nil)
	text := r.String()
	for _, want := range []string{
		"Expected: y := 1",
		"Actual: y := 2",
		`CommonPrefix: "y := "`,
		"TreeDiff (-expected +actual)",
		"UnifiedDiff",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Report.String() missing %q:\n%s", want, text)
		}
	}
}
