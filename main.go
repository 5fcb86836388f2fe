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

// miscall reports platform-calibrated base-miscall probabilities.
//
// Please see https://github.com/exascience/miscall for a
// documentation of the tool, and package genotyper for the API.
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/exascience/miscall/cmd"
)

func printHelp() {
	fmt.Fprintln(os.Stderr, "Available commands: table, lookup")
	fmt.Fprint(os.Stderr, "\n", cmd.TableHelp)
	fmt.Fprint(os.Stderr, "\n", cmd.LookupHelp)
}

func main() {
	fmt.Fprintln(os.Stderr, cmd.ProgramMessage)
	if len(os.Args) < 2 {
		log.Error("Incorrect number of parameters.")
		fmt.Fprint(os.Stderr, cmd.HelpMessage)
		printHelp()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "table":
		err = cmd.Table(os.Stdout, os.Args[2:])
	case "lookup":
		err = cmd.Lookup(os.Stdout, os.Args[2:])
	case "help", "-help", "--help", "-h", "--h":
		printHelp()
	default:
		log.Errorf("Unknown command %v.", os.Args[1])
		printHelp()
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
}
