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
	"reflect"
	"sort"
	"strings"
	"testing"

	"go.chromium.org/astcmp"
)

// Transform turns a source text into another source text. O carries whatever
// options the transform understands.
type Transform[O any] func(src string, opts O) (string, error)

// Case is a single table entry.
//
// If Options is left at its zero value the case runs with Config.Defaults
// instead.
type Case[O any] struct {
	Input   string `yaml:"input"`
	Output  string `yaml:"output"`
	Throws  Throws `yaml:"throws"`
	Options O      `yaml:"options"`
}

// Table maps case names to cases. Section runs cases in lexical name order so
// that failures reproduce deterministically.
type Table[O any] map[string]Case[O]

// Config adjusts how a whole table runs. A nil *Config is valid and means
// all defaults.
type Config[O any] struct {
	// Compare is passed to astcmp when comparing outputs.
	Compare *astcmp.Options
	// Defaults is handed to the transform for cases that set no Options.
	Defaults O
}

func (c *Config[O]) compare() *astcmp.Options {
	if c == nil {
		return nil
	}
	return c.Compare
}

func (c *Config[O]) defaults() (o O) {
	if c == nil {
		return
	}
	return c.Defaults
}

type throwsKind int

const (
	throwsUnset throwsKind = iota
	throwsAny
	throwsLike
	throwsNone
)

// Throws declares what errors a case expects from the transform.
//
// The zero value expects no error and a structural match of the output.
type Throws struct {
	kind   throwsKind
	substr string
}

// Any expects the transform to fail with any error. The output comparison is
// skipped.
func Any() Throws { return Throws{kind: throwsAny} }

// Like expects the transform to fail with an error whose message contains
// substr. The output comparison is skipped.
func Like(substr string) Throws { return Throws{kind: throwsLike, substr: substr} }

// None expects the transform to succeed, but skips the output comparison.
func None() Throws { return Throws{kind: throwsNone} }

// UnmarshalYAML accepts `true` for Any, `false` for None and a string for
// Like, mirroring the constructors.
func (th *Throws) UnmarshalYAML(unmarshal func(any) error) error {
	var b bool
	if err := unmarshal(&b); err == nil {
		if b {
			*th = Any()
		} else {
			*th = None()
		}
		return nil
	}
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	*th = Like(s)
	return nil
}

// testingTB is the subset of testing.TB the runner needs. It matches both
// *testing.T and the fake in internal/testsupport.
type testingTB interface {
	Helper()
	Log(args ...any)
	Logf(format string, args ...any)
	FailNow()
}

// Section runs every case of the table as a subtest of t.
//
// Each case feeds its Input through fn and checks the result against the
// case's Throws declaration, defaulting to a structural comparison with
// Output.
func Section[O any](t *testing.T, fn Transform[O], table Table[O], cfg *Config[O]) {
	t.Helper()
	for _, name := range sortedKeys(table) {
		c := table[name]
		t.Run(name, func(t *testing.T) {
			runCase(t, fn, c, cfg)
		})
	}
}

// Group runs the table under a named subtest, transforming inputs with the
// given rewriters applied in order.
func Group[O any](t *testing.T, name string, rws []Rewriter[O], table Table[O], cfg *Config[O]) {
	t.Helper()
	t.Run(name, func(t *testing.T) {
		Section(t, Pipeline(rws...), table, cfg)
	})
}

// runCase executes one case against fn and reports failures on t.
//
// Note t.FailNow may be a recording fake, so every failure path must return
// explicitly.
func runCase[O any](t testingTB, fn Transform[O], c Case[O], cfg *Config[O]) {
	t.Helper()

	opts := c.Options
	if reflect.ValueOf(&opts).Elem().IsZero() {
		opts = cfg.defaults()
	}

	got, err := fn(c.Input, opts)

	switch c.Throws.kind {
	case throwsAny:
		if err == nil {
			t.Log("transform succeeded, want an error")
			t.FailNow()
			return
		}
	case throwsLike:
		if err == nil {
			t.Logf("transform succeeded, want an error containing %q", c.Throws.substr)
			t.FailNow()
			return
		}
		if !strings.Contains(err.Error(), c.Throws.substr) {
			t.Logf("transform error %q does not contain %q", err, c.Throws.substr)
			t.FailNow()
			return
		}
	case throwsNone:
		if err != nil {
			t.Logf("transform failed: %s", err)
			t.FailNow()
			return
		}
	default:
		if err != nil {
			t.Logf("transform failed: %s", err)
			t.FailNow()
			return
		}
		astcmp.AssertEqual(t, c.Output, got, cfg.compare())
	}
}

func sortedKeys[O any](table Table[O]) []string {
	keys := make([]string, 0, len(table))
	for name := range table {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}
