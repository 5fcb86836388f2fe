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
	log "github.com/sirupsen/logrus"

	"github.com/exascience/miscall/utils"
)

// Header is the part of a SAM file header that read metadata lookups
// need.
type Header struct {
	HD utils.StringMap
	RG []utils.StringMap
	CO []string
}

func NewHeader() *Header { return &Header{} }

// AddReadGroup appends an @RG record. The record must have an ID
// entry, and no other read group may have the same ID.
func (hdr *Header) AddReadGroup(record utils.StringMap) {
	id, ok := record["ID"]
	if !ok {
		log.Panic("ID entry in a RG header line missing")
	}
	if hdr.FindReadGroup(id) != nil {
		log.Panic("duplicate read group ", id, " in SAM header")
	}
	hdr.RG = append(hdr.RG, record)
}

// FindReadGroup returns the @RG record with the given ID, or nil.
func (hdr *Header) FindReadGroup(id string) utils.StringMap {
	if hdr == nil {
		return nil
	}
	return utils.FindByField(hdr.RG, "ID", id)
}

// ReadGroupPlatform returns the PL entry of the read group with the
// given ID. It reports false if there is no such read group, or if
// that read group has no PL entry.
func (hdr *Header) ReadGroupPlatform(id string) (string, bool) {
	record := hdr.FindReadGroup(id)
	if record == nil {
		return "", false
	}
	platform, ok := record["PL"]
	return platform, ok
}

type Alignment struct {
	QNAME string
	FLAG  uint16
	RNAME string
	POS   int32
	MAPQ  byte
	CIGAR string
	SEQ   string
	QUAL  string
	TAGS  utils.SmallMap
}

var RG = utils.Intern("RG")

func NewAlignment() *Alignment {
	return &Alignment{TAGS: make(utils.SmallMap, 0, 16)}
}

func (aln *Alignment) SetRG(rg string) {
	aln.TAGS.Set(RG, rg)
}

// ReadGroupID returns the RG tag of the alignment, if any.
func (aln *Alignment) ReadGroupID() (string, bool) {
	return aln.TAGS.GetString(RG)
}

// Name returns QNAME.
func (aln *Alignment) Name() string {
	return aln.QNAME
}

const (
	Multiple      = 0x1
	Proper        = 0x2
	Unmapped      = 0x4
	NextUnmapped  = 0x8
	Reversed      = 0x10
	NextReversed  = 0x20
	First         = 0x40
	Last          = 0x80
	Secondary     = 0x100
	QCFailed      = 0x200
	Duplicate     = 0x400
	Supplementary = 0x800
)

// IsReversed reports whether the read aligned to the reverse strand.
func (aln *Alignment) IsReversed() bool { return (aln.FLAG & Reversed) != 0 }
