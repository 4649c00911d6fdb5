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
	"fmt"
	"strings"

	"github.com/mgutz/ansi"
)

// Finding is one named section of a rendered mismatch Report.
type Finding struct {
	Name  string
	Value []string

	// Diff marks the value as diff-shaped, enabling per-line colorization.
	Diff bool

	// Verbose marks a value that is elided unless the renderer is verbose.
	Verbose bool
}

// RenderCLI renders findings for `go test` style CLI output.
type RenderCLI struct {
	// If true, renders all Verbose findings.
	//
	// Otherwise these print an omission message which describes how long the
	// omitted value is and to pass `-v` to the test to see them.
	Verbose bool

	// If true, adds ANSI color codes to diff-shaped findings (simple +/-
	// per-line colorization).
	Colorize bool
}

// Finding renders a single Finding to a set of output lines suitable for
// display (e.g. to be logged with testing.T.Log calls).
func (r RenderCLI) Finding(prefix string, f *Finding) string {
	if len(f.Value) == 0 {
		return fmt.Sprintf("%s%s [no value]", prefix, f.Name)
	}
	if len(f.Value) == 1 && len(strings.TrimSpace(f.Value[0])) == 0 {
		return fmt.Sprintf("%s%s [blank one-line value]", prefix, f.Name)
	}

	if f.Verbose && !r.Verbose {
		valLen := len(f.Value) - 1 // one per newline
		for _, line := range f.Value {
			valLen += len(line)
		}
		return fmt.Sprintf("%s%s [verbose value len=%d (pass -v to see)]", prefix, f.Name, valLen)
	}

	if len(f.Value) == 1 {
		return fmt.Sprintf("%s%s: %s", prefix, f.Name, f.Value[0])
	}

	value := make([]string, len(f.Value))
	copy(value, f.Value)
	if r.Colorize && f.Diff {
		for i, line := range value {
			code := ""
			if strings.HasPrefix(line, "-") {
				code = ansi.Green
				if strings.HasPrefix(line, "--- ") {
					code = ansi.LightGreen
				}
			} else if strings.HasPrefix(line, "+") {
				code = ansi.Red
				if strings.HasPrefix(line, "+++ ") {
					code = ansi.LightRed
				}
			} else if strings.HasPrefix(line, "@@ ") {
				code = ansi.Red
			}
			if code != "" {
				value[i] = fmt.Sprintf("%s%s%s", code, line, ansi.Reset)
			}
		}
	}
	for i, line := range value {
		value[i] = "    " + line
	}
	return fmt.Sprintf("%s%s: \\\n%s", prefix, f.Name, strings.Join(value, "\n"))
}

// Report renders all of a Report's findings, one per line group.
func (r RenderCLI) Report(prefix string, rep *Report) string {
	findings := rep.Findings()
	lines := make([]string, 0, len(findings))
	for i := range findings {
		lines = append(lines, r.Finding(prefix, &findings[i]))
	}
	return strings.Join(lines, "\n")
}
