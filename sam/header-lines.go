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

package sam

import (
	"fmt"
	"strings"

	"github.com/exascience/miscall/utils"
)

func splitHeaderField(field string) (tag, value string, err error) {
	if len(field) < 3 || field[2] != ':' {
		return "", "", fmt.Errorf("incorrectly formatted SAM header field %q", field)
	}
	return field[:2], field[3:], nil
}

// ParseHeaderLine splits a tab-separated SAM header line such as
// "@RG\tID:lane1\tPL:ILLUMINA" into its record code and fields.
func ParseHeaderLine(line string) (code string, record utils.StringMap, err error) {
	fields := strings.Split(strings.TrimRight(line, "\r\n"), "\t")
	code = fields[0]
	if len(code) != 3 || code[0] != '@' {
		return "", nil, fmt.Errorf("invalid SAM header record code %q", code)
	}
	record = make(utils.StringMap)
	if code == "@CO" {
		record["CO"] = strings.Join(fields[1:], "\t")
		return code, record, nil
	}
	for _, field := range fields[1:] {
		switch tag, value, err := splitHeaderField(field); {
		case err != nil:
			return code, record, err
		case !record.SetUniqueEntry(tag, value):
			return code, record, fmt.Errorf("duplicate field tag %v in SAM header line %v", tag, code)
		}
	}
	return code, record, nil
}

// AddHeaderLines parses and adds @HD, @RG and @CO lines. Lines with
// other record codes are accepted and ignored.
func (hdr *Header) AddHeaderLines(lines ...string) error {
	for _, line := range lines {
		code, record, err := ParseHeaderLine(line)
		if err != nil {
			return err
		}
		switch code {
		case "@HD":
			if hdr.HD != nil {
				return fmt.Errorf("more than one @HD line in SAM header")
			}
			hdr.HD = record
		case "@RG":
			id, ok := record["ID"]
			if !ok {
				return fmt.Errorf("ID entry in a RG header line missing")
			}
			if hdr.FindReadGroup(id) != nil {
				return fmt.Errorf("duplicate read group %v in SAM header", id)
			}
			hdr.RG = append(hdr.RG, record)
		case "@CO":
			hdr.CO = append(hdr.CO, record["CO"])
		}
	}
	return nil
}
