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
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/exascience/miscall/genotyper"
)

// TableHelp is the help string for this command.
const TableHelp = "Table parameters:\n" +
	"miscall table\n" +
	"[--platform name]\n" +
	"[--log-level level]\n"

func writeTable(w io.Writer, table *genotyper.MiscallTable, pl genotyper.Platform) error {
	fmt.Fprintf(w, "# %v: log10 P(true | miscalled), rows miscalled, columns true\n", pl)
	var header strings.Builder
	for _, b := range genotyper.Bases {
		fmt.Fprintf(&header, "\t%v", b)
	}
	fmt.Fprintln(w, header.String())
	for _, miscalled := range genotyper.Bases {
		fmt.Fprint(w, miscalled)
		for _, trueBase := range genotyper.Bases {
			if miscalled == trueBase {
				fmt.Fprint(w, "\t.")
				continue
			}
			log10p, err := table.Lookup(pl, miscalled, trueBase)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "\t%.6f", log10p)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// Table implements the miscall table command. It prints the miscall
// table of one platform, or of every platform.
func Table(w io.Writer, args []string) error {
	var platformName, logLevel string

	var flags flag.FlagSet
	flags.StringVar(&platformName, "platform", "", "UNKNOWN, SOLEXA, ROCHE454 or SOLID")
	addLogFlag(&flags, &logLevel)

	if _, err := parseFlags(&flags, args, 0, TableHelp, w); err != nil {
		return err
	}
	if err := setLogLevel(logLevel); err != nil {
		return err
	}

	platforms := genotyper.Platforms[:]
	if platformName != "" {
		pl, err := genotyper.ParsePlatform(platformName)
		if err != nil {
			return err
		}
		platforms = []genotyper.Platform{pl}
	}

	table := genotyper.NewModel().Table
	for _, pl := range platforms {
		if err := writeTable(w, table, pl); err != nil {
			return err
		}
	}
	return nil
}
