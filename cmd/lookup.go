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

	log "github.com/sirupsen/logrus"

	"github.com/exascience/miscall/genotyper"
	"github.com/exascience/miscall/sam"
	"github.com/exascience/miscall/utils"
)

// LookupHelp is the help string for this command.
const LookupHelp = "Lookup parameters:\n" +
	"miscall lookup observed-base candidate-true-base\n" +
	"[--pl platform-tag]\n" +
	"[--reversed]\n" +
	"[--config file]\n" +
	"[--log-level level]\n"

const lookupReadGroup = "lookup"

// Lookup implements the miscall lookup command. It describes a single
// read by the PL tag of its read group and its strand, and prints
// log10 P(true | miscalled) for it.
func Lookup(w io.Writer, args []string) error {
	var (
		pl, configFile, logLevel string
		reversed                 bool
	)

	var flags flag.FlagSet
	flags.StringVar(&pl, "pl", "", "PL tag of the read group, e.g. ILLUMINA")
	flags.BoolVar(&reversed, "reversed", false, "the read is on the reverse strand")
	flags.StringVar(&configFile, "config", "", "configuration file")
	addLogFlag(&flags, &logLevel)

	bases, err := parseFlags(&flags, args, 2, LookupHelp, w)
	if err != nil {
		return err
	}
	for _, b := range bases {
		if len(b) != 1 {
			fmt.Fprintf(w, "Expected a single base, got %v.\n", b)
			fmt.Fprint(w, LookupHelp)
			return ErrUsage
		}
	}

	options, err := loadOptions(configFile, logLevel)
	if err != nil {
		return err
	}

	hdr := sam.NewHeader()
	record := utils.StringMap{"ID": lookupReadGroup}
	if pl != "" {
		record[genotyper.SAMPlatformTag] = pl
	}
	hdr.AddReadGroup(record)

	aln := sam.NewAlignment()
	aln.QNAME = "lookup"
	aln.SetRG(lookupReadGroup)
	if reversed {
		aln.FLAG |= sam.Reversed
	}

	engine := genotyper.NewMiscallEngine(genotyper.NewModel(), hdr, options)
	log10p, err := engine.Log10PTrueGivenMiscallBytes(bases[0][0], bases[1][0], aln)
	if err != nil {
		return err
	}
	platform, err := engine.EffectivePlatform(aln)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"pl": pl, "platform": platform, "reversed": reversed}).Info("resolved platform")
	fmt.Fprintf(w, "%v\t%v\t%v\t%.6f\n", platform, bases[0], bases[1], log10p)
	return nil
}
