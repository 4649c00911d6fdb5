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

// ParseError reports that one input could not be parsed, even after the
// fragment fallbacks.
//
// Err is the parser's own error (usually a scanner.ErrorList). Its text
// already names the input and position, so Error passes it through
// unmodified; Input repeats the name for structured access.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MismatchError reports that two sources are not structurally equal.
//
// Its message is the full rendered Report. Equal returns it wrapped with a
// stack trace captured at the comparison site, so formatting the returned
// error with %+v shows where the mismatch was detected.
type MismatchError struct {
	Report *Report
}

func (e *MismatchError) Error() string {
	return "sources differ structurally\n" + e.Report.String()
}
