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
	"strconv"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// excerptLen bounds how much of each rendering is quoted after the point
// where the two sides diverge.
const excerptLen = 60

// verbosePrefixLen is the length beyond which the common-prefix finding is
// only shown in verbose mode.
const verbosePrefixLen = 120

// Report is the diagnostic bundle built for a structural mismatch.
//
// Expected and Actual are display renderings of the original inputs: parsed
// once, printed with comments, trailing whitespace trimmed. They are
// independent of the normalized trees the comparison ran on.
type Report struct {
	Expected string
	Actual   string

	// CommonPrefix is the longest common prefix of Expected and Actual.
	CommonPrefix string

	// ExpectedExcerpt and ActualExcerpt quote at most 60 runes of each
	// rendering starting where the common prefix ends.
	ExpectedExcerpt string
	ActualExcerpt   string

	// TreeDiff is the structural diff of the normalized trees
	// (-expected +actual).
	TreeDiff string

	// TextDiff is a unified diff of Expected and Actual.
	TextDiff string
}

// Findings returns the report as named sections in display order, ready
// for RenderCLI.
func (r *Report) Findings() []Finding {
	lines := func(s string) []string { return strings.Split(s, "\n") }
	return []Finding{
		{Name: "Expected", Value: lines(r.Expected)},
		{Name: "Actual", Value: lines(r.Actual)},
		{
			Name:    "CommonPrefix",
			Value:   []string{strconv.Quote(r.CommonPrefix)},
			Verbose: len(r.CommonPrefix) > verbosePrefixLen,
		},
		{Name: "ExpectedExcerpt", Value: []string{strconv.Quote(r.ExpectedExcerpt)}},
		{Name: "ActualExcerpt", Value: []string{strconv.Quote(r.ActualExcerpt)}},
		{Name: "TreeDiff (-expected +actual)", Value: lines(r.TreeDiff), Diff: true},
		{Name: "UnifiedDiff", Value: lines(r.TextDiff), Diff: true},
	}
}

// String renders the report without color; verbose findings are elided.
func (r *Report) String() string {
	return RenderCLI{}.Report("", r)
}

// buildReport assembles the mismatch diagnostics for two sources whose
// normalized trees produced treeDiff.
func buildReport(expected, actual, treeDiff string) (*Report, error) {
	expText, err := displayRender("expected.go", expected)
	if err != nil {
		return nil, err
	}
	actText, err := displayRender("actual.go", actual)
	if err != nil {
		return nil, err
	}

	r := &Report{
		Expected: expText,
		Actual:   actText,
		TreeDiff: strings.TrimSuffix(treeDiff, "\n"),
	}

	expRunes := []rune(expText)
	actRunes := []rune(actText)
	// DiffCommonPrefix counts runes, not bytes.
	p := diffmatchpatch.New().DiffCommonPrefix(expText, actText)
	r.CommonPrefix = string(expRunes[:p])
	r.ExpectedExcerpt = excerpt(expRunes, p)
	r.ActualExcerpt = excerpt(actRunes, p)

	ud, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expText + "\n"),
		B:        difflib.SplitLines(actText + "\n"),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil {
		return nil, err
	}
	r.TextDiff = strings.TrimSuffix(ud, "\n")
	return r, nil
}

func excerpt(text []rune, from int) string {
	if from >= len(text) {
		return ""
	}
	end := from + excerptLen
	if end > len(text) {
		end = len(text)
	}
	return string(text[from:end])
}

// displayRender pretty-prints one side for the report: comments kept,
// synthetic fragment wrappers removed, trailing whitespace trimmed.
func displayRender(name, src string) (string, error) {
	frag, err := parseSource(name, src)
	if err != nil {
		return "", err
	}
	text, err := frag.Print()
	if err != nil {
		return "", err
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n"), nil
}
