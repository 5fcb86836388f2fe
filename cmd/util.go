// miscall: platform-calibrated base-miscall probabilities for genotyping.
// Copyright (c) 2017-2020 imec vzw.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/ExaScience/elprep/blob/master/LICENSE.txt>.

package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	log "github.com/sirupsen/logrus"

	"github.com/exascience/miscall/config"
	"github.com/exascience/miscall/genotyper"
	"github.com/exascience/miscall/utils"
)

// ProgramMessage is the first line printed when the miscall binary
// is called.
var ProgramMessage = fmt.Sprint(
	"\n", utils.ProgramName, " version ", utils.ProgramVersion,
	" compiled with ", runtime.Version(),
	" - see ", utils.ProgramURL, " for more information.\n",
)

// HelpMessage is printed to show the --help flag
const HelpMessage = "Print command details:\n" +
	"[--help]\n"

// ErrUsage is returned for malformed command lines, after the
// command's help text has been written.
var ErrUsage = errors.New("invalid command line")

// parseFlags parses args and then checks that exactly nargs
// positional arguments remain.
func parseFlags(flags *flag.FlagSet, args []string, nargs int, help string, w io.Writer) ([]string, error) {
	flags.SetOutput(io.Discard)
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(w, help)
			return nil, err
		}
		fmt.Fprintln(w, err)
		fmt.Fprint(w, help)
		return nil, ErrUsage
	}
	if flags.NArg() != nargs {
		fmt.Fprintln(w, "Incorrect number of parameters.")
		fmt.Fprint(w, help)
		return nil, ErrUsage
	}
	return flags.Args(), nil
}

func addLogFlag(flags *flag.FlagSet, logLevel *string) {
	flags.StringVar(logLevel, "log-level", "warning", "logging level")
}

func setLogLevel(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

func loadOptions(configFile, logLevel string) (genotyper.Options, error) {
	if err := setLogLevel(logLevel); err != nil {
		return genotyper.Options{}, err
	}
	options, _, err := config.Load(configFile)
	return options, err
}
