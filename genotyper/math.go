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

import "math"

const (
	log10Ploidy   = 0.3010299956639812
	log10OneThird = -0.47712125471966244
)

// some math stuff
var (
	ln10              = math.Log(10)
	log1mexpThreshold = math.Log(0.5)
)

func log10SumLog10(a, b float64) float64 {
	if a > b {
		return a + math.Log10(1+math.Pow(10, b-a))
	}
	return b + math.Log10(1+math.Pow(10, a-b))
}

func log1mexp(a float64) float64 {
	if a > 0 {
		return math.NaN()
	}
	if a == 0 {
		return math.Inf(-1)
	}
	if a < log1mexpThreshold {
		return math.Log1p(-math.Exp(a))
	}
	return math.Log(-math.Expm1(a))
}

// log10(1 - 10^a)
func log10OneMinusPow10(a float64) float64 {
	if a > 0 {
		return math.NaN()
	}
	if a == 0 {
		return math.Inf(-1)
	}
	return log1mexp(a*ln10) / ln10
}
