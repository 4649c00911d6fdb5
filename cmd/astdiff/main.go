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

// Command astdiff compares Go sources structurally and prints canonical
// forms, using the same normalization the astcmp library applies in tests.
package main

import (
	"os"

	"github.com/maruel/subcommands"
	logging "github.com/op/go-logging"
)

// Exit codes of the diff subcommand. norm uses exitEqual for success.
const (
	exitEqual   = 0
	exitDiffer  = 1
	exitFailure = 2
)

var log = logging.MustGetLogger("astdiff")

const logFormat = `%{color}[P%{pid} %{time:15:04:05.000} %{shortfile} %{level:.4s} %{id:03x}]%{color:reset} %{message}`

var application = &subcommands.DefaultApplication{
	Name:  "astdiff",
	Title: "Structural comparison of Go sources.",
	Commands: []*subcommands.Command{
		subcommands.CmdHelp,
		cmdDiff,
		cmdNorm,
	},
}

func main() {
	backend := logging.NewBackendFormatter(
		logging.NewLogBackend(os.Stderr, "", 0),
		logging.MustStringFormatter(logFormat))
	logging.SetBackend(backend)

	os.Exit(subcommands.Run(application, os.Args[1:]))
}
