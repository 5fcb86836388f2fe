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
	"math"

	"github.com/bits-and-blooms/bitset"
	log "github.com/sirupsen/logrus"
)

// An empiricalMiscall is the percentage of miscalls of one base that
// turned out to be a given true base.
type empiricalMiscall struct {
	miscalled, trueBase byte
	percent             float64
}

// Empirical substitution profiles per sequencing technology: for each
// miscalled base, how its errors split over the three other bases.
var (
	solexaMiscalls = []empiricalMiscall{
		{'A', 'C', 57.7}, {'A', 'G', 17.1}, {'A', 'T', 25.2},
		{'C', 'A', 34.9}, {'C', 'G', 11.3}, {'C', 'T', 53.9},
		{'G', 'A', 31.9}, {'G', 'C', 5.1}, {'G', 'T', 63.0},
		{'T', 'A', 45.8}, {'T', 'C', 22.1}, {'T', 'G', 32.0},
	}

	solidMiscalls = []empiricalMiscall{
		{'A', 'C', 18.7}, {'A', 'G', 42.5}, {'A', 'T', 38.7},
		{'C', 'A', 27.0}, {'C', 'G', 18.9}, {'C', 'T', 54.1},
		{'G', 'A', 61.0}, {'G', 'C', 15.7}, {'G', 'T', 23.2},
		{'T', 'A', 40.5}, {'T', 'C', 34.3}, {'T', 'G', 25.2},
	}

	roche454Miscalls = []empiricalMiscall{
		{'A', 'C', 23.2}, {'A', 'G', 42.6}, {'A', 'T', 34.3},
		{'C', 'A', 19.7}, {'C', 'G', 8.4}, {'C', 'T', 71.9},
		{'G', 'A', 71.5}, {'G', 'C', 6.6}, {'G', 'T', 21.9},
		{'T', 'A', 43.8}, {'T', 'C', 37.8}, {'T', 'G', 18.5},
	}
)

const cellsPerPlatform = nofBases * nofBases

func cellIndex(pl Platform, miscalled, trueBase Base) uint {
	return uint(pl)*cellsPerPlatform + uint(miscalled)*nofBases + uint(trueBase)
}

/*
A MiscallTable holds, per platform, log10 P(true base | miscalled
base) for every ordered pair of distinct bases.

Which cells are populated is tracked in a separate bit set, so a
stored value of 0 (a probability of 1) is never mistaken for a
missing entry. A MiscallTable is immutable once BuildMiscallTable
returns and is safe for concurrent use.
*/
type MiscallTable struct {
	log10p [nofPlatforms][nofBases][nofBases]float64
	isSet  *bitset.BitSet
}

func newMiscallTable() *MiscallTable {
	return &MiscallTable{isSet: bitset.New(nofPlatforms * cellsPerPlatform)}
}

func (table *MiscallTable) addMiscall(pl Platform, miscalled, trueBase byte, p float64) {
	i, err := ParseBase(miscalled)
	if err != nil {
		log.Panic(err)
	}
	j, err := ParseBase(trueBase)
	if err != nil {
		log.Panic(err)
	}
	switch {
	case i == j:
		log.Panicf("miscall of %v as itself registered for platform %v", i, pl)
	case !(p > 0 && p < 1):
		log.Panicf("miscall probability %v for %v->%v on platform %v is outside (0, 1)", p, i, j, pl)
	}
	index := cellIndex(pl, i, j)
	if table.isSet.Test(index) {
		log.Panicf("miscall %v->%v registered twice for platform %v", i, j, pl)
	}
	table.log10p[pl][i][j] = math.Log10(p)
	table.isSet.Set(index)
}

func (table *MiscallTable) addEmpirical(pl Platform, miscalls []empiricalMiscall) {
	for _, m := range miscalls {
		table.addMiscall(pl, m.miscalled, m.trueBase, m.percent/100.0)
	}
}

func (table *MiscallTable) addUnknown() {
	for _, b1 := range Bases {
		for _, b2 := range Bases {
			if b1 != b2 {
				table.addMiscall(Unknown, b1.Byte(), b2.Byte(), 1.0/3.0)
			}
		}
	}
}

// BuildMiscallTable constructs the complete table for all platforms.
// Every call yields an identical table.
func BuildMiscallTable() *MiscallTable {
	table := newMiscallTable()
	table.addEmpirical(Solexa, solexaMiscalls)
	table.addEmpirical(Roche454, roche454Miscalls)
	table.addEmpirical(Solid, solidMiscalls)
	table.addUnknown()
	return table
}

// Lookup returns log10 of the probability that a miscalled base is in
// fact trueBase on the given platform. It returns an
// UninitializedTableError for any cell that was never populated,
// which includes miscalled == trueBase.
func (table *MiscallTable) Lookup(pl Platform, miscalled, trueBase Base) (float64, error) {
	if table == nil || table.isSet == nil || int(pl) >= nofPlatforms ||
		miscalled >= nofBases || trueBase >= nofBases || !table.isSet.Test(cellIndex(pl, miscalled, trueBase)) {
		return 0, &UninitializedTableError{Platform: pl, Observed: miscalled, True: trueBase}
	}
	return table.log10p[pl][miscalled][trueBase], nil
}

// Populated reports the number of populated cells.
func (table *MiscallTable) Populated() uint {
	if table == nil || table.isSet == nil {
		return 0
	}
	return table.isSet.Count()
}
