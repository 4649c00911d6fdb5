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
	"os"

	"github.com/maruel/subcommands"
	"github.com/pkg/errors"

	"go.chromium.org/astcmp"
)

var cmdDiff = &subcommands.Command{
	UsageLine: "diff <expected.go> <actual.go>",
	ShortDesc: "compares two Go sources structurally",
	LongDesc: `Compares two Go sources structurally.

Layout, literal spelling and comments (unless -comments is given) do not
count as differences. Either file may hold a whole source file or a
fragment (declarations or statements).

Exits 0 when the sources are structurally equal, 1 when they differ, and
2 on usage or parse errors.`,
	CommandRun: func() subcommands.CommandRun {
		c := &diffRun{}
		c.Flags.BoolVar(&c.comments, "comments", false, "treat comments as significant")
		c.Flags.BoolVar(&c.color, "color", false, "colorize the divergence report")
		c.Flags.BoolVar(&c.verbose, "verbose", false, "never elide long values in the report")
		return c
	},
}

type diffRun struct {
	subcommands.CommandRunBase

	comments bool
	color    bool
	verbose  bool
}

func (c *diffRun) Run(a subcommands.Application, args []string, env subcommands.Env) int {
	if len(args) != 2 {
		log.Errorf("diff expects exactly two files, got %d", len(args))
		return exitFailure
	}

	expected, err := os.ReadFile(args[0])
	if err != nil {
		log.Errorf("%s", err)
		return exitFailure
	}
	actual, err := os.ReadFile(args[1])
	if err != nil {
		log.Errorf("%s", err)
		return exitFailure
	}

	err = astcmp.Equal(string(expected), string(actual), &astcmp.Options{Comments: c.comments})
	if err == nil {
		return exitEqual
	}
	var mismatch *astcmp.MismatchError
	if !errors.As(err, &mismatch) {
		log.Errorf("%s", err)
		return exitFailure
	}

	render := astcmp.RenderCLI{Verbose: c.verbose, Colorize: c.color}
	fmt.Fprintln(a.GetOut(), render.Report("", mismatch.Report))
	return exitDiffer
}
