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

// Package testsupport helps test code that fails tests.
//
// Assertion helpers in this module take a narrow testing interface with
// Helper, Log, Logf and FailNow. A Recorder implements that interface by
// capturing the output instead of failing the enclosing test, and Check
// then asserts that the helper under test failed with the right messages.
package testsupport

import (
	"fmt"
	"strings"
	"testing"
)

// Recorder captures what an assertion helper reports.
//
// Its FailNow only records the failure; it does not stop the goroutine the
// way testing.T.FailNow does, so helpers driven through a Recorder must
// return right after failing. All helpers in this module do.
type Recorder struct {
	t *testing.T

	out    strings.Builder
	failed bool
}

// Record returns a Recorder that reports Check violations on t.
func Record(t *testing.T) *Recorder {
	return &Recorder{t: t}
}

// Helper is a no-op; a Recorder attributes nothing to file lines.
func (r *Recorder) Helper() {}

// Log captures one line. Operands are joined the way testing.T.Log joins
// them, with a space between every pair.
func (r *Recorder) Log(args ...any) {
	fmt.Fprintln(&r.out, args...)
}

// Logf captures one formatted line.
func (r *Recorder) Logf(format string, args ...any) {
	fmt.Fprintf(&r.out, format, args...)
	r.out.WriteByte('\n')
}

// FailNow records that the helper failed.
func (r *Recorder) FailNow() {
	r.failed = true
}

// Check asserts that the helper under test called FailNow and that every
// want string appears somewhere in the captured output. Violations fail
// the test the Recorder was built from, quoting the full capture.
func (r *Recorder) Check(want ...string) {
	r.t.Helper()

	if !r.failed {
		r.t.Fatal("the helper under test did not fail")
	}
	ok := true
	for _, w := range want {
		if !strings.Contains(r.out.String(), w) {
			r.t.Errorf("helper output is missing %q", w)
			ok = false
		}
	}
	if !ok {
		r.t.Fatalf("captured helper output:\n%s", r.out.String())
	}
}
