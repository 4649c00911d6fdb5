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
	"flag"
	"os"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
)

var update = flag.Bool("astcmp.update", false, "rewrite golden outputs in txtar fixture archives")

// archiveCase collects the sections of one named case. golden indexes into
// the archive's file list so updates can write back in place.
type archiveCase struct {
	hasInput bool
	input    string
	golden   int     // -1 when absent
	errLike  *string // nil when absent, "" for any error
}

// Archive runs the cases of a txtar archive as subtests of t.
//
// Each case is a group of sections sharing a name: `<name>.input` holds the
// source fed to fn, and exactly one of `<name>.golden` (the expected output,
// compared structurally) or `<name>.error` (a substring the transform error
// must contain, or empty for any error) holds the expectation.
//
// Running the test with -astcmp.update regenerates every golden section from
// the transform's current output and rewrites the archive.
func Archive[O any](t *testing.T, path string, fn Transform[O], cfg *Config[O]) {
	t.Helper()

	ar, err := txtar.ParseFile(path)
	if err != nil {
		t.Fatalf("loading fixture archive: %s", err)
	}
	order, cases := splitArchive(t, ar)

	changed := false
	for _, name := range order {
		ac := cases[name]
		t.Run(name, func(t *testing.T) {
			if !ac.hasInput {
				t.Fatalf("case %q has no input section", name)
			}
			switch {
			case ac.errLike != nil && ac.golden >= 0:
				t.Fatalf("case %q has both a golden and an error section", name)
			case ac.errLike == nil && ac.golden < 0:
				t.Fatalf("case %q has neither a golden nor an error section", name)
			}

			if *update && ac.golden >= 0 {
				out, err := fn(ac.input, cfg.defaults())
				if err != nil {
					t.Fatalf("transform failed: %s", err)
				}
				if string(ar.Files[ac.golden].Data) != out {
					ar.Files[ac.golden].Data = []byte(out)
					changed = true
				}
				return
			}

			c := Case[O]{Input: ac.input}
			if ac.errLike != nil {
				if *ac.errLike == "" {
					c.Throws = Any()
				} else {
					c.Throws = Like(*ac.errLike)
				}
			} else {
				c.Output = string(ar.Files[ac.golden].Data)
			}
			runCase(t, fn, c, cfg)
		})
	}

	if changed {
		if err := os.WriteFile(path, txtar.Format(ar), 0666); err != nil {
			t.Fatalf("updating fixture archive: %s", err)
		}
		t.Logf("updated %s", path)
	}
}

// splitArchive groups the archive's sections by case name, preserving the
// order cases first appear in.
func splitArchive(t *testing.T, ar *txtar.Archive) ([]string, map[string]*archiveCase) {
	t.Helper()

	var order []string
	cases := map[string]*archiveCase{}
	grab := func(name string) *archiveCase {
		if c, ok := cases[name]; ok {
			return c
		}
		c := &archiveCase{golden: -1}
		cases[name] = c
		order = append(order, name)
		return c
	}

	for i, f := range ar.Files {
		dot := strings.LastIndex(f.Name, ".")
		if dot < 0 {
			t.Fatalf("fixture file %q has no .input, .golden or .error suffix", f.Name)
		}
		name, ext := f.Name[:dot], f.Name[dot+1:]
		switch ext {
		case "input":
			c := grab(name)
			c.hasInput = true
			c.input = string(f.Data)
		case "golden":
			grab(name).golden = i
		case "error":
			s := strings.TrimSpace(string(f.Data))
			grab(name).errLike = &s
		default:
			t.Fatalf("fixture file %q has unrecognized suffix %q", f.Name, ext)
		}
	}
	return order, cases
}
