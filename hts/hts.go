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

// Package hts adapts biogo/hts SAM/BAM records to the read metadata
// interfaces of package genotyper.
package hts

import (
	"github.com/biogo/hts/sam"
)

var (
	readGroupTag = sam.NewTag("RG")
	platformTag  = sam.NewTag("PL")
)

// Header indexes the read groups of a biogo header by ID.
type Header struct {
	platforms map[string]string
}

// NewHeader collects the PL entries of the header's read groups. A
// nil header has no read groups.
func NewHeader(hdr *sam.Header) *Header {
	h := &Header{platforms: make(map[string]string)}
	if hdr == nil {
		return h
	}
	for _, rg := range hdr.RGs() {
		h.platforms[rg.Name()] = rg.Get(platformTag)
	}
	return h
}

// ReadGroupPlatform implements genotyper.ReadGroupDictionary. An
// empty PL entry counts as absent.
func (h *Header) ReadGroupPlatform(readGroupID string) (string, bool) {
	platform, ok := h.platforms[readGroupID]
	if !ok || platform == "" {
		return "", false
	}
	return platform, true
}

// Read implements genotyper.Read for a biogo record.
type Read struct {
	*sam.Record
}

// Name returns the query name.
func (r Read) Name() string {
	return r.Record.Name
}

// ReadGroupID returns the value of the RG aux field, if present.
func (r Read) ReadGroupID() (string, bool) {
	aux, ok := r.Record.Tag(readGroupTag[:])
	if !ok {
		return "", false
	}
	rg, ok := aux.Value().(string)
	return rg, ok
}

// IsReversed reports whether the reverse flag is set.
func (r Read) IsReversed() bool {
	return r.Record.Flags&sam.Reverse != 0
}
