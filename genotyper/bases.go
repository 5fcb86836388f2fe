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

import "fmt"

// A Base is one of the four nucleotides. Its value is the base index
// used for table lookups: A=0, C=1, G=2, T=3.
type Base uint8

const (
	A Base = iota
	C
	G
	T
)

// nofBases is the number of distinct Base values.
const nofBases = 4

// Bases lists all four bases in index order.
var Bases = [nofBases]Base{A, C, G, T}

var baseChars = [nofBases]byte{'A', 'C', 'G', 'T'}

// ambiguous or unknown symbols map to -1
var simpleBaseToBaseIndexTable = func() (table [256]int8) {
	for i := range table {
		table[i] = -1
	}
	for _, b := range Bases {
		table[baseChars[b]] = int8(b)
		table[baseChars[b]|0x20] = int8(b)
	}
	return
}()

// ParseBase converts a base character, in either case, to a Base.
// Anything other than A, C, G, or T yields an UnrecognizedBaseError.
func ParseBase(char byte) (Base, error) {
	if index := simpleBaseToBaseIndexTable[char]; index >= 0 {
		return Base(index), nil
	}
	return 0, &UnrecognizedBaseError{Base: char}
}

// Byte returns the upper-case character of the base.
func (b Base) Byte() byte { return baseChars[b] }

func (b Base) String() string {
	if b < nofBases {
		return string(baseChars[b])
	}
	return fmt.Sprintf("Base(%d)", uint8(b))
}

// Complement returns the Watson-Crick complement: A<->T, C<->G.
// With the index order A, C, G, T the complement index is 3 - b.
func (b Base) Complement() Base { return T - b }
