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

// A Genotype is an unordered pair of bases, stored with First <=
// Second.
type Genotype struct {
	First, Second Base
}

func (g Genotype) String() string {
	return g.First.String() + g.Second.String()
}

// IsHom reports whether both alleles are the same base.
func (g Genotype) IsHom() bool { return g.First == g.Second }

// NofGenotypes is the number of diploid genotypes over four bases.
const NofGenotypes = nofBases * (nofBases + 1) / 2

// Genotypes lists the diploid genotypes in canonical order: AA, AC,
// AG, AT, CC, CG, CT, GG, GT, TT.
var Genotypes = func() (result [NofGenotypes]Genotype) {
	k := 0
	for _, b1 := range Bases {
		for _, b2 := range Bases[b1:] {
			result[k] = Genotype{b1, b2}
			k++
		}
	}
	return
}()

/*
DiploidGenotypeLikelihoods accumulates, for one genomic position,
log10 P(observations | genotype) for all ten diploid genotypes. No
priors are applied.

A DiploidGenotypeLikelihoods is not safe for concurrent use; each
position gets its own accumulator.
*/
type DiploidGenotypeLikelihoods struct {
	model    ObservationModel
	log10gls [NofGenotypes]float64
	depth    int
}

// NewDiploidGenotypeLikelihoods returns an empty accumulator that
// evaluates observations with the given model.
func NewDiploidGenotypeLikelihoods(model ObservationModel) *DiploidGenotypeLikelihoods {
	return &DiploidGenotypeLikelihoods{model: model}
}

// Add accumulates one observed base with its phred quality. If the
// model fails for any candidate base, Add returns the error and the
// accumulator is unchanged.
func (gl *DiploidGenotypeLikelihoods) Add(observed Base, qual byte, read Read) error {
	var perBase [nofBases]float64
	for _, b := range Bases {
		l, err := gl.model.Log10PObservation(observed, b, qual, read)
		if err != nil {
			return err
		}
		perBase[b] = l
	}
	for k, g := range Genotypes {
		if g.IsHom() {
			gl.log10gls[k] += perBase[g.First]
		} else {
			gl.log10gls[k] += log10SumLog10(perBase[g.First], perBase[g.Second]) - log10Ploidy
		}
	}
	gl.depth++
	return nil
}

// Depth returns the number of observations added.
func (gl *DiploidGenotypeLikelihoods) Depth() int { return gl.depth }

// Log10Likelihoods returns the accumulated likelihoods in the order
// of Genotypes.
func (gl *DiploidGenotypeLikelihoods) Log10Likelihoods() [NofGenotypes]float64 {
	return gl.log10gls
}

// Likelihood returns the accumulated likelihood of one genotype.
func (gl *DiploidGenotypeLikelihoods) Likelihood(g Genotype) float64 {
	if g.First > g.Second {
		g.First, g.Second = g.Second, g.First
	}
	for k, h := range Genotypes {
		if h == g {
			return gl.log10gls[k]
		}
	}
	return math.Inf(-1)
}

// Best returns the genotype with the highest likelihood. Ties go to
// the genotype that comes first in Genotypes.
func (gl *DiploidGenotypeLikelihoods) Best() (best Genotype, log10gl float64) {
	log10gl = math.Inf(-1)
	for k, g := range Genotypes {
		if l := gl.log10gls[k]; l > log10gl {
			best, log10gl = g, l
		}
	}
	return
}
