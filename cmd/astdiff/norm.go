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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/maruel/subcommands"

	"go.chromium.org/astcmp"
)

var cmdNorm = &subcommands.Command{
	UsageLine: "norm [<file.go>]",
	ShortDesc: "prints a Go source in canonical form",
	LongDesc: `Prints a Go source in canonical form.

The input may be a whole file, a list of declarations or a list of
statements; it is read from the named file, or from stdin when no file
is given. The output has printer layout and one spelling per literal
value, so sources that compare structurally equal also print
identically, comments aside.`,
	CommandRun: func() subcommands.CommandRun { return &normRun{} },
}

type normRun struct {
	subcommands.CommandRunBase
}

func (c *normRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	var src []byte
	var err error
	switch len(args) {
	case 0:
		src, err = io.ReadAll(os.Stdin)
	case 1:
		src, err = os.ReadFile(args[0])
	default:
		log.Errorf("norm expects at most one file, got %d", len(args))
		return exitFailure
	}
	if err != nil {
		log.Errorf("%s", err)
		return exitFailure
	}

	out, err := astcmp.Canonical(string(src))
	if err != nil {
		log.Errorf("%s", err)
		return exitFailure
	}
	fmt.Fprint(a.GetOut(), out)
	return exitEqual
}
