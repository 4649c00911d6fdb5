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
	"flag"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

// TestingTB is the subset of testing.TB that AssertEqual needs.
type TestingTB interface {
	Helper()
	Log(args ...any)
	FailNow()
}

// Equal compares two sources structurally after normalizing both with the
// same opts.
//
// It returns nil when the normalized trees are deeply equal, a *ParseError
// when either side does not parse, and otherwise a *MismatchError carrying
// the full Report, wrapped with the stack of this call site.
func Equal(expected, actual string, opts *Options) error {
	expTree, err := normalize("expected.go", expected, opts)
	if err != nil {
		return err
	}
	actTree, err := normalize("actual.go", actual, opts)
	if err != nil {
		return err
	}
	diff := cmp.Diff(expTree, actTree, GetCmpOptions()...)
	if diff == "" {
		return nil
	}
	report, err := buildReport(expected, actual, diff)
	if err != nil {
		// Both sides parsed during normalization, so the display render
		// cannot fail; surface it rather than mask the mismatch.
		return errors.WithStack(err)
	}
	return errors.WithStack(&MismatchError{Report: report})
}

// AssertEqual compares two sources structurally and fails the test on any
// difference.
//
// On mismatch the rendered Report is logged and the test is stopped with
// FailNow. Verbose findings are expanded when the enclosing test binary
// runs with -v; under any other harness they stay collapsed.
func AssertEqual(t TestingTB, expected, actual string, opts *Options) {
	t.Helper()
	err := Equal(expected, actual, opts)
	if err == nil {
		return
	}
	var mismatch *MismatchError
	if errors.As(err, &mismatch) {
		render := RenderCLI{Verbose: verboseTest()}
		t.Log("AssertEqual FAILED\n" + render.Report("", mismatch.Report))
	} else {
		t.Log("AssertEqual: " + err.Error())
	}
	t.FailNow()
}

// verboseTest reports whether a test binary is running with -v. Outside a
// test binary the testing flags are never registered or parsed, and
// testing.Verbose panics when consulted in that state, so both conditions
// gate the call.
func verboseTest() bool {
	return flag.Lookup("test.v") != nil && flag.Parsed() && testing.Verbose()
}
