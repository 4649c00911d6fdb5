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
	"fmt"

	"github.com/pkg/errors"
	. "github.com/smarty/assertions"

	"go.chromium.org/astcmp"
)

// ShouldMatchSource checks that the Go source on the left side is
// structurally equal to the Go source on the right side. An optional second
// value on the right side carries the comparison's *astcmp.Options.
//
//	So(got, ShouldMatchSource, "x := 1")
//	So(got, ShouldMatchSource, "// c\nx := 1", &astcmp.Options{Comments: true})
//
// On mismatch the failure message is the full divergence report.
func ShouldMatchSource(actual any, expected ...any) string {
	got, want, opts, fail := sourceArgs("ShouldMatchSource", actual, expected)
	if fail != "" {
		return fail
	}
	if err := astcmp.Equal(want, got, opts); err != nil {
		return err.Error()
	}
	return ""
}

// ShouldNotMatchSource checks that the Go source on the left side is NOT
// structurally equal to the Go source on the right side. It takes the same
// arguments as ShouldMatchSource.
//
// Sources that fail to parse fail the assertion; "not equal" is only claimed
// for sources that were actually compared.
func ShouldNotMatchSource(actual any, expected ...any) string {
	got, want, opts, fail := sourceArgs("ShouldNotMatchSource", actual, expected)
	if fail != "" {
		return fail
	}
	err := astcmp.Equal(want, got, opts)
	if err == nil {
		return "sources were expected to differ structurally, but they are equal"
	}
	var mismatch *astcmp.MismatchError
	if !errors.As(err, &mismatch) {
		return err.Error()
	}
	return ""
}

// sourceArgs validates the common argument shape of the source assertions.
func sourceArgs(name string, actual any, expected []any) (got, want string, opts *astcmp.Options, fail string) {
	if len(expected) < 1 || len(expected) > 2 {
		fail = fmt.Sprintf("%s requires 1 or 2 expected values, got %d", name, len(expected))
		return
	}
	var ok bool
	if got, ok = actual.(string); !ok {
		fail = ShouldHaveSameTypeAs(actual, "")
		return
	}
	if want, ok = expected[0].(string); !ok {
		fail = ShouldHaveSameTypeAs(expected[0], "")
		return
	}
	if len(expected) == 2 {
		if opts, ok = expected[1].(*astcmp.Options); !ok {
			fail = ShouldHaveSameTypeAs(expected[1], (*astcmp.Options)(nil))
			return
		}
	}
	return
}
