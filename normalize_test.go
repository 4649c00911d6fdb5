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
	"fmt"
	"go/token"
	"strings"
	"testing"

	"github.com/dave/dst"
	"github.com/google/go-cmp/cmp"
)

func TestCanonicalLiteral(t *testing.T) {
	t.Parallel()

	cases := []struct {
		kind token.Token
		in   string
		want string
	}{
		{token.STRING, "`ab`", `"ab"`},
		{token.STRING, `"a\x62"`, `"ab"`},
		{token.STRING, `"ab"`, `"ab"`},
		{token.CHAR, `'\x41'`, `'A'`},
		{token.CHAR, `'a'`, `'a'`},
		{token.INT, "0x10", "16"},
		{token.INT, "0b101", "5"},
		{token.INT, "017", "15"},
		{token.INT, "1_000", "1000"},
		{token.INT, "42", "42"},
		{token.FLOAT, "1e2", "100.0"},
		{token.FLOAT, "100.0", "100.0"},
		{token.FLOAT, ".5", "0.5"},
		{token.FLOAT, "0.50", "0.5"},
		{token.IMAG, "2i", "2i"},
		{token.IMAG, "2.0i", "2i"},
		{token.IMAG, "1e1i", "10i"},
		{token.IMAG, "0x10i", "16i"},
		{token.IMAG, "0b101i", "5i"},
		// A digit-only imaginary body is decimal even with a leading 0.
		{token.IMAG, "010i", "10i"},
		{token.IMAG, "1.5i", "1.5i"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			if got := canonicalLiteral(tc.kind, tc.in); got != tc.want {
				t.Errorf("canonicalLiteral(%s, %q) = %q, want %q", tc.kind, tc.in, got, tc.want)
			}
		})
	}
}

func TestParseFragments(t *testing.T) {
	t.Parallel()

	t.Run("whole file", func(t *testing.T) {
		t.Parallel()
		frag, err := Parse("package main\n\nfunc main() {}\n")
		if err != nil {
			t.Fatal(err)
		}
		if frag.wrap != wrapNone {
			t.Errorf("wrap = %d, want wrapNone", frag.wrap)
		}
		text, err := frag.Print()
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(text, "package main") {
			t.Errorf("Print() = %q, want package clause kept", text)
		}
	})

	t.Run("declaration list", func(t *testing.T) {
		t.Parallel()
		frag, err := Parse("func f() int {\n\treturn 1\n}")
		if err != nil {
			t.Fatal(err)
		}
		if frag.wrap != wrapPackage {
			t.Errorf("wrap = %d, want wrapPackage", frag.wrap)
		}
		text, err := frag.Print()
		if err != nil {
			t.Fatal(err)
		}
		if want := "func f() int {\n\treturn 1\n}\n"; text != want {
			t.Errorf("Print() = %q, want %q", text, want)
		}
	})

	t.Run("statement list", func(t *testing.T) {
		t.Parallel()
		frag, err := Parse("x := 1")
		if err != nil {
			t.Fatal(err)
		}
		if frag.wrap != wrapFunc {
			t.Errorf("wrap = %d, want wrapFunc", frag.wrap)
		}
		text, err := frag.Print()
		if err != nil {
			t.Fatal(err)
		}
		if want := "x := 1\n"; text != want {
			t.Errorf("Print() = %q, want %q", text, want)
		}
	})

	t.Run("empty source", func(t *testing.T) {
		t.Parallel()
		frag, err := Parse("")
		if err != nil {
			t.Fatal(err)
		}
		if len(frag.File.Decls) != 0 {
			t.Errorf("empty source parsed to %d decls", len(frag.File.Decls))
		}
		text, err := frag.Print()
		if err != nil {
			t.Fatal(err)
		}
		if text != "" {
			t.Errorf("Print() = %q, want empty", text)
		}
	})

	t.Run("syntax error", func(t *testing.T) {
		t.Parallel()
		_, err := Parse("func f( {")
		if err == nil {
			t.Fatal("Parse succeeded on malformed source")
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("error is %T, want *ParseError", err)
		}
		if !strings.Contains(perr.Error(), "expected") {
			t.Errorf("parser message lost: %q", perr.Error())
		}
	})
}

func TestNormalizeIdempotence(t *testing.T) {
	t.Parallel()

	sources := []string{
		"package main\n\n// doc for f\nfunc f() int {\n\t// answer\n\treturn 0x2A\n}\n",
		"x := 1\ny := `raw`\nz := 1e3\nw := 0x10i",
		"func g(a, b int) (int, error) {\n\treturn a + b, nil\n}",
		"// c\nx := 'A'",
		"",
	}
	modes := []struct {
		name string
		opts *Options
	}{
		{"plain", nil},
		{"comments", &Options{Comments: true}},
	}

	for _, mode := range modes {
		mode := mode
		t.Run(mode.name, func(t *testing.T) {
			t.Parallel()
			for i, src := range sources {
				i, src := i, src
				t.Run(fmt.Sprintf("src%d", i), func(t *testing.T) {
					t.Parallel()
					n1, err := Normalize(src, mode.opts)
					if err != nil {
						t.Fatalf("Normalize(%q): %s", src, err)
					}
					text, err := Format(n1)
					if err != nil {
						t.Fatal(err)
					}
					n2, err := Normalize(text, mode.opts)
					if err != nil {
						t.Fatalf("Normalize(Format): %s", err)
					}
					if diff := cmp.Diff(n1, n2); diff != "" {
						t.Errorf("normalize is not idempotent for %q (-first +second):\n%s", src, diff)
					}
				})
			}
		})
	}
}

func TestNormalizeScrubsResolverState(t *testing.T) {
	t.Parallel()

	file, err := Normalize("package main\n\nimport \"fmt\"\n\nfunc main() { fmt.Println(1) }\n", nil)
	if err != nil {
		t.Fatal(err)
	}
	clean := true
	dst.Inspect(file, func(n dst.Node) bool {
		if id, isIdent := n.(*dst.Ident); isIdent {
			if id.Obj != nil || id.Path != "" {
				clean = false
			}
		}
		return true
	})
	if !clean {
		t.Error("ident resolver state survived normalization")
	}
}

func TestCanonical(t *testing.T) {
	t.Parallel()

	cases := []struct {
		src  string
		want string
	}{
		{"x  :=  0x10", "x := 16\n"},
		{"x := `raw`", "x := \"raw\"\n"},
		{"// c\nx := 1", "// c\nx := 1\n"},
		{"f(\n\ta,\n\tb,\n)", "f(\n\ta,\n\tb,\n)\n"},
	}
	for _, c := range cases {
		got, err := Canonical(c.src)
		if err != nil {
			t.Errorf("Canonical(%q) failed: %s", c.src, err)
			continue
		}
		if got != c.want {
			t.Errorf("Canonical(%q) = %q, want %q", c.src, got, c.want)
		}
	}

	if _, err := Canonical("func ("); err == nil {
		t.Error("Canonical accepted broken source")
	}
}
