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

// UnrecognizedBaseError reports a base symbol outside {A, C, G, T}.
type UnrecognizedBaseError struct {
	Base byte
}

func (err *UnrecognizedBaseError) Error() string {
	return fmt.Sprintf("unrecognized base %q, expected one of A, C, G, T", err.Base)
}

// UnsupportedPlatformError reports a read whose sequencer platform
// resolves to UNKNOWN while the engine is configured to refuse such
// reads.
type UnsupportedPlatformError struct {
	ReadName string
}

func (err *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unknown sequencer platform for read %v (set a default platform to accept such reads)", err.ReadName)
}

// UninitializedTableError reports a lookup of a miscall table cell
// that was never populated. It always indicates a construction defect.
type UninitializedTableError struct {
	Platform       Platform
	Observed, True Base
}

func (err *UninitializedTableError) Error() string {
	return fmt.Sprintf("bad miscall base request for platform %v: miscalled=%v true=%v has no probability", err.Platform, err.Observed, err.True)
}

// MiscallDomainError reports a request for the probability that a
// base was miscalled as itself, which lies outside the miscall model.
type MiscallDomainError struct {
	Base Base
}

func (err *MiscallDomainError) Error() string {
	return fmt.Sprintf("miscall probability requested for identical observed and true base %v", err.Base)
}
