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
	"bytes"
	"fmt"
	"go/constant"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

// wrapKind records which synthetic wrapper, if any, made a fragment parse
// as a whole file.
type wrapKind int

const (
	wrapNone wrapKind = iota
	wrapPackage
	wrapFunc
)

const (
	packageClause = "package p\n\n"
	funcOpen      = "func _() {\n"
	funcClose     = "\n}\n"
)

// Fragment is a parsed piece of Go source: a whole file, a list of
// declarations, or a list of statements.
//
// Fragments that are not whole files are held inside a synthetic
// `package p` / `func _()` wrapper so that the dst toolchain can operate
// on them; Print undoes the wrapper.
type Fragment struct {
	// File is the parsed tree, including the synthetic wrapper when the
	// source was not a whole file. Rewrites may mutate it freely.
	File *dst.File

	wrap wrapKind
}

// Parse parses src, which may be a whole file, a list of declarations, or
// a list of statements. Comments are kept.
//
// The fallback order follows goimports: whole file first, then a synthetic
// package clause, then a synthetic function body. If none of them parse,
// the error from the whole-file attempt is returned inside a *ParseError.
func Parse(src string) (*Fragment, error) {
	return parseSource("input.go", src)
}

func parseSource(name, src string) (*Fragment, error) {
	f, err := parseFile(name, src)
	if err == nil {
		return &Fragment{File: f, wrap: wrapNone}, nil
	}
	perr := &ParseError{Input: name, Err: err}
	if !strings.Contains(err.Error(), "expected 'package'") {
		return nil, perr
	}
	f, declErr := parseFile(name, packageClause+src)
	if declErr == nil {
		return &Fragment{File: f, wrap: wrapPackage}, nil
	}
	if !strings.Contains(declErr.Error(), "expected declaration") {
		return nil, perr
	}
	f, stmtErr := parseFile(name, packageClause+funcOpen+src+funcClose)
	if stmtErr == nil {
		return &Fragment{File: f, wrap: wrapFunc}, nil
	}
	return nil, perr
}

// parseFile parses through the dst decorator so that comments and spacing
// travel with the nodes instead of as position-keyed side tables.
//
// The syntax is checked with a plain parse first: on a syntax error
// go/parser hands back a partial file alongside the error, and decorating
// a partial file panics inside dst. Only sources that parse cleanly reach
// the decorator.
func parseFile(name, src string) (*dst.File, error) {
	if _, err := parser.ParseFile(token.NewFileSet(), name, src, parser.ParseComments); err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	return decorator.NewDecorator(fset).ParseFile(name, src, parser.ParseComments)
}

// Print renders the fragment and strips the synthetic wrapper, so the
// output is the same kind of fragment the input was.
func (f *Fragment) Print() (string, error) {
	text, err := Format(f.File)
	if err != nil {
		return "", err
	}
	return unwrapPrinted(text, f.wrap), nil
}

// Format renders a file with the canonical printer (gofmt conventions).
//
// Its name leaves Print free for convey's dot-imported helper of the same
// name, so suites may dot-import both this package and convey.
func Format(file *dst.File) (string, error) {
	var buf bytes.Buffer
	if err := decorator.Fprint(&buf, file); err != nil {
		return "", fmt.Errorf("printing: %w", err)
	}
	return buf.String(), nil
}

// unwrapPrinted removes the synthetic wrapper from printed text. The
// printer's output shape is fixed, so this is plain line surgery.
func unwrapPrinted(text string, wrap wrapKind) string {
	switch wrap {
	case wrapPackage:
		if i := strings.Index(text, "\n\n"); i >= 0 {
			return text[i+2:]
		}
		// The file held nothing but the synthetic clause.
		if i := strings.Index(text, "\n"); i >= 0 {
			return text[i+1:]
		}
	case wrapFunc:
		lines := strings.Split(text, "\n")
		start := 0
		for i, l := range lines {
			if l == "func _() {" {
				start = i + 1
				break
			}
		}
		end := len(lines) - 1
		for end > start && lines[end] != "}" {
			end--
		}
		body := lines[start:end]
		for i, l := range body {
			body[i] = strings.TrimPrefix(l, "\t")
		}
		if len(body) == 0 {
			return ""
		}
		return strings.Join(body, "\n") + "\n"
	}
	return text
}

// Canonical returns src re-printed in its canonical spelling: the layout
// the printer emits and one spelling per literal value. The fragment kind
// is preserved, so statement input comes back as statements.
//
// Comments always survive canonical printing; whether they count for a
// comparison is decided later, when trees are scrubbed.
func Canonical(src string) (string, error) {
	frag, err := parseSource("input.go", src)
	if err != nil {
		return "", err
	}
	canonicalizeLiterals(frag.File)
	return frag.Print()
}

// Normalize parses src and returns its comparison-ready tree.
//
// The tree has been re-printed to canonical text, re-parsed, and scrubbed
// of non-semantic state per opts. Two sources are structurally equal
// exactly when their normalized trees are deeply equal.
//
// Normalization is idempotent: normalizing the Print of a normalized tree
// yields the same tree.
func Normalize(src string, opts *Options) (*dst.File, error) {
	return normalize("input.go", src, opts)
}

func normalize(name, src string, opts *Options) (*dst.File, error) {
	frag, err := parseSource(name, src)
	if err != nil {
		return nil, err
	}
	canonicalizeLiterals(frag.File)
	text, err := Format(frag.File)
	if err != nil {
		return nil, err
	}
	// Both inputs of a comparison must pass through the printer once:
	// hand-written and printed text disagree on derived decoration
	// metadata (comma and newline attachment), and re-parsing erases
	// the difference.
	file, err := parseFile(name, text)
	if err != nil {
		return nil, fmt.Errorf("reparsing canonical text: %w", err)
	}
	scrub(file, opts)
	return file, nil
}

// canonicalizeLiterals rewrites every basic literal to a single spelling
// per value, so that the printed canonical text no longer distinguishes
// raw from interpreted strings, integer radixes, or float forms.
func canonicalizeLiterals(file *dst.File) {
	dst.Inspect(file, func(n dst.Node) bool {
		if lit, ok := n.(*dst.BasicLit); ok {
			lit.Value = canonicalLiteral(lit.Kind, lit.Value)
		}
		return true
	})
}

// canonicalLiteral returns the canonical spelling of a literal. Text the
// stdlib cannot interpret is returned unchanged; the parser already
// accepted it, so in practice that only happens for values out of range.
func canonicalLiteral(kind token.Token, text string) string {
	switch kind {
	case token.STRING:
		s, err := strconv.Unquote(text)
		if err != nil {
			return text
		}
		return strconv.Quote(s)
	case token.CHAR:
		s, err := strconv.Unquote(text)
		if err != nil {
			return text
		}
		r, _ := utf8.DecodeRuneInString(s)
		return strconv.QuoteRune(r)
	case token.INT:
		v := constant.MakeFromLiteral(text, token.INT, 0)
		if v.Kind() != constant.Int {
			return text
		}
		return v.ExactString()
	case token.FLOAT:
		return canonicalFloat(text)
	case token.IMAG:
		return canonicalImag(strings.TrimSuffix(text, "i")) + "i"
	}
	return text
}

// canonicalFloat formats a float literal in the shortest `g` form that
// still re-parses as a FLOAT token: a bare integer result gets a ".0"
// suffix so the token kind survives the canonical round trip.
func canonicalFloat(text string) string {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return text
	}
	out := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(out, ".eE") {
		out += ".0"
	}
	return out
}

// canonicalImag returns the canonical spelling of an imaginary literal's
// numeric body. The trailing i alone pins the token kind, so integral
// values carry no ".0" suffix and 2i, 2.0i and 0x2i share one spelling.
func canonicalImag(body string) string {
	digits := strings.ReplaceAll(body, "_", "")
	switch {
	case isDecimalDigits(digits):
		// A digit-only imaginary body is decimal even when it starts
		// with 0, unlike an INT token, so it must not go through
		// go/constant's integer parsing.
		if t := strings.TrimLeft(digits, "0"); t != "" {
			return t
		}
		return "0"
	case isRadixedInt(body):
		v := constant.MakeFromLiteral(body, token.INT, 0)
		if v.Kind() != constant.Int {
			return body
		}
		return v.ExactString()
	default:
		f, err := strconv.ParseFloat(body, 64)
		if err != nil {
			return body
		}
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
}

func isDecimalDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isRadixedInt reports whether a literal body uses one of the explicit
// integer radix prefixes. Hex floats carry a dot or a p exponent and stay
// on the float path.
func isRadixedInt(s string) bool {
	if len(s) < 2 || s[0] != '0' {
		return false
	}
	switch s[1] {
	case 'b', 'B', 'o', 'O':
		return true
	case 'x', 'X':
		return !strings.ContainsAny(s, ".pP")
	}
	return false
}
