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

type (
	// Read is the per-read metadata the engine consumes.
	Read interface {
		// Name identifies the read in error messages.
		Name() string
		// ReadGroupID returns the RG tag of the read, if any.
		ReadGroupID() (string, bool)
		// IsReversed reports whether the read aligned to the reverse
		// strand.
		IsReversed() bool
	}

	// ReadGroupDictionary gives access to the read groups of an
	// alignment header.
	ReadGroupDictionary interface {
		// ReadGroupPlatform returns the PL entry of the given read
		// group. It reports false if the read group does not exist or
		// has no PL entry.
		ReadGroupPlatform(readGroupID string) (string, bool)
	}
)

// PlatformResolver determines the sequencer platform of reads that
// share one alignment header.
type PlatformResolver struct {
	aliases *PlatformAliases
	header  ReadGroupDictionary
}

// NewPlatformResolver returns a resolver over the given header. A nil
// header resolves every read to Unknown.
func NewPlatformResolver(aliases *PlatformAliases, header ReadGroupDictionary) *PlatformResolver {
	return &PlatformResolver{aliases: aliases, header: header}
}

func (r *PlatformResolver) platformTag(read Read) (string, bool) {
	readGroup, ok := read.ReadGroupID()
	if !ok || r.header == nil {
		return "", false
	}
	return r.header.ReadGroupPlatform(readGroup)
}

// ResolvePlatform returns the canonical platform of the read's read
// group. Reads without a read group, with a read group missing from
// the header, or with a read group without PL resolve to Unknown.
func (r *PlatformResolver) ResolvePlatform(read Read) Platform {
	return r.aliases.CanonicalizeOptional(r.platformTag(read))
}
