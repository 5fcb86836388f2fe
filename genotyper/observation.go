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

// An ObservationModel converts one observed base into its
// contribution to a genotype likelihood: log10 P(observed | the
// chromosome carries chromBase).
//
// qual is a phred-scaled base quality (not ASCII-encoded).
type ObservationModel interface {
	Log10PObservation(observed, chromBase Base, qual byte, read Read) (float64, error)
}

// qualities below 1 would make the probability of a correct call 0
const minUsableQual = 1

// log10 of the probability that the base call is wrong
func log10ErrorProbability(qual byte) float64 {
	if qual < minUsableQual {
		qual = minUsableQual
	}
	return -float64(qual) / 10.0
}

// EmpiricalSubstitutionModel distributes the error probability of a
// mismatching call over the alternative bases according to the
// platform-specific miscall tables.
type EmpiricalSubstitutionModel struct {
	Engine *MiscallEngine
}

// Log10PObservation implements ObservationModel.
func (m EmpiricalSubstitutionModel) Log10PObservation(observed, chromBase Base, qual byte, read Read) (float64, error) {
	log10e := log10ErrorProbability(qual)
	if observed == chromBase {
		return log10OneMinusPow10(log10e), nil
	}
	log10p, err := m.Engine.Log10PTrueGivenMiscall(observed, chromBase, read)
	if err != nil {
		return 0, err
	}
	return log10e + log10p, nil
}

// ThreeStateModel distributes the error probability of a mismatching
// call uniformly over the three alternative bases, whatever the
// platform.
type ThreeStateModel struct{}

// Log10PObservation implements ObservationModel.
func (ThreeStateModel) Log10PObservation(observed, chromBase Base, qual byte, _ Read) (float64, error) {
	log10e := log10ErrorProbability(qual)
	if observed == chromBase {
		return log10OneMinusPow10(log10e), nil
	}
	return log10e + log10OneThird, nil
}
