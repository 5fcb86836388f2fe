// miscall: platform-calibrated base-miscall probabilities for genotyping.
// Copyright (c) 2020 imec vzw.

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

package genotyper

import (
	"fmt"
	"strings"
)

// A Platform is the sequencing technology that produced a read.
type Platform uint8

const (
	// Unknown is the platform of reads without a recognized PL tag.
	// Its miscall table is the non-informative 1/3 prior.
	Unknown Platform = iota
	// Solexa covers Solexa / Illumina.
	Solexa
	// Roche454 covers 454 Life Sciences.
	Roche454
	// Solid covers ABI SOLiD.
	Solid
)

const nofPlatforms = 4

// Platforms lists all platforms, including Unknown.
var Platforms = [nofPlatforms]Platform{Unknown, Solexa, Roche454, Solid}

var platformNames = [nofPlatforms]string{"UNKNOWN", "SOLEXA", "ROCHE454", "SOLID"}

func (pl Platform) String() string {
	if int(pl) < len(platformNames) {
		return platformNames[pl]
	}
	return fmt.Sprintf("Platform(%d)", uint8(pl))
}

// ParsePlatform returns the Platform whose String form equals name,
// ignoring case. This is for configuration values, not for PL tags:
// use PlatformAliases.Canonicalize for those.
func ParsePlatform(name string) (Platform, error) {
	for _, pl := range Platforms {
		if strings.EqualFold(name, platformNames[pl]) {
			return pl, nil
		}
	}
	return Unknown, fmt.Errorf("invalid platform name %q, expected one of %v", name, strings.Join(platformNames[:], ", "))
}

// SAMPlatformTag is the read group field that names the platform.
const SAMPlatformTag = "PL"

// PlatformAliases maps PL tag values to platforms. It is immutable
// once NewPlatformAliases returns.
type PlatformAliases struct {
	aliases map[string]Platform
}

// NewPlatformAliases registers the recognized PL values, each in its
// raw, upper-case and lower-case spelling.
func NewPlatformAliases() *PlatformAliases {
	p := &PlatformAliases{aliases: make(map[string]Platform)}
	p.bind("LS454", Roche454)
	p.bind("454", Roche454)
	p.bind("ILLUMINA", Solexa)
	p.bind("solid", Solid)
	return p
}

func (p *PlatformAliases) bind(s string, pl Platform) {
	p.aliases[s] = pl
	p.aliases[strings.ToUpper(s)] = pl
	p.aliases[strings.ToLower(s)] = pl
}

// Canonicalize maps a raw PL tag value to a Platform. The raw string
// is tried first, then its upper-case and lower-case forms. Anything
// unrecognized, including the empty string, is Unknown.
func (p *PlatformAliases) Canonicalize(rawTag string) Platform {
	for _, s := range [...]string{rawTag, strings.ToUpper(rawTag), strings.ToLower(rawTag)} {
		if pl, ok := p.aliases[s]; ok {
			return pl
		}
	}
	return Unknown
}

// CanonicalizeOptional is Canonicalize for a tag that may be absent.
// An absent tag is Unknown.
func (p *PlatformAliases) CanonicalizeOptional(rawTag string, present bool) Platform {
	if !present {
		return Unknown
	}
	return p.Canonicalize(rawTag)
}
