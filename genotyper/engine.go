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

// Model bundles the state shared by all engines: the PL alias table
// and the miscall table. Build it once with NewModel before
// traversal starts and pass it to every engine; it is never modified
// afterwards.
type Model struct {
	Aliases *PlatformAliases
	Table   *MiscallTable
}

// NewModel builds the alias and miscall tables.
func NewModel() *Model {
	return &Model{
		Aliases: NewPlatformAliases(),
		Table:   BuildMiscallTable(),
	}
}

// Options configures how an engine treats reads whose platform
// resolves to Unknown.
type Options struct {
	// RaiseOnUnknownPlatform makes such reads fail with an
	// UnsupportedPlatformError.
	RaiseOnUnknownPlatform bool
	// DefaultPlatform is used in place of Unknown when
	// RaiseOnUnknownPlatform is false. Leaving it Unknown selects the
	// non-informative 1/3 table.
	DefaultPlatform Platform
}

// DefaultOptions refuses reads of unknown platform.
func DefaultOptions() Options {
	return Options{RaiseOnUnknownPlatform: true, DefaultPlatform: Unknown}
}

// AssumePlatform returns options that accept reads of unknown
// platform as if they came from the given platform.
func AssumePlatform(pl Platform) Options {
	return Options{RaiseOnUnknownPlatform: false, DefaultPlatform: pl}
}

// MiscallEngine computes platform- and strand-aware miscall
// probabilities for the reads of one alignment header. It holds no
// mutable state and is safe for concurrent use.
type MiscallEngine struct {
	table    *MiscallTable
	resolver *PlatformResolver
	options  Options
}

// NewMiscallEngine returns an engine for reads described by header.
func NewMiscallEngine(model *Model, header ReadGroupDictionary, options Options) *MiscallEngine {
	return &MiscallEngine{
		table:    model.Table,
		resolver: NewPlatformResolver(model.Aliases, header),
		options:  options,
	}
}

// Options returns the options the engine was constructed with.
func (e *MiscallEngine) Options() Options { return e.options }

// EffectivePlatform returns the platform whose table applies to the
// read, after the unknown-platform policy.
func (e *MiscallEngine) EffectivePlatform(read Read) (Platform, error) {
	pl := e.resolver.ResolvePlatform(read)
	if pl == Unknown {
		if e.options.RaiseOnUnknownPlatform {
			return Unknown, &UnsupportedPlatformError{ReadName: read.Name()}
		}
		pl = e.options.DefaultPlatform
	}
	return pl, nil
}

/*
Log10PTrueGivenMiscall returns log10 of the probability that
candidateTrue is the true base, given that the sequencer miscalled
it as observed in the given read.

The tables are calibrated in sequencing orientation, so for reads on
the reverse strand both bases are complemented before the lookup.
observed == candidateTrue lies outside the miscall model and yields
a MiscallDomainError.
*/
func (e *MiscallEngine) Log10PTrueGivenMiscall(observed, candidateTrue Base, read Read) (float64, error) {
	if observed == candidateTrue {
		return 0, &MiscallDomainError{Base: observed}
	}
	pl, err := e.EffectivePlatform(read)
	if err != nil {
		return 0, err
	}
	if read.IsReversed() {
		observed, candidateTrue = observed.Complement(), candidateTrue.Complement()
	}
	return e.table.Lookup(pl, observed, candidateTrue)
}

// Log10PTrueGivenMiscallBytes is Log10PTrueGivenMiscall for base
// characters as they appear in SEQ fields and reference sequences.
func (e *MiscallEngine) Log10PTrueGivenMiscallBytes(observed, candidateTrue byte, read Read) (float64, error) {
	o, err := ParseBase(observed)
	if err != nil {
		return 0, err
	}
	t, err := ParseBase(candidateTrue)
	if err != nil {
		return 0, err
	}
	return e.Log10PTrueGivenMiscall(o, t, read)
}
