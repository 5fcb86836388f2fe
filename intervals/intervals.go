// miscall: platform-calibrated base-miscall probabilities for genotyping.
// Copyright (c) 2017-2019 imec vzw.

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

package intervals

import (
	"sort"

	"github.com/exascience/pargo/parallel"
	psort "github.com/exascience/pargo/sort"
)

// Interval is a range of positions on one contig. Both Start and End
// are included in the interval.
type Interval struct {
	Start, End int32
}

type intervalsByStart []Interval

func (s intervalsByStart) SequentialSort(i, j int) {
	ivals := s[i:j]
	sort.SliceStable(ivals, func(k, l int) bool {
		return ivals[k].Start < ivals[l].Start
	})
}

func (s intervalsByStart) NewTemp() psort.StableSorter {
	return make(intervalsByStart, len(s))
}

func (s intervalsByStart) Len() int {
	return len(s)
}

func (s intervalsByStart) Less(i, j int) bool {
	return s[i].Start < s[j].Start
}

func (s intervalsByStart) Assign(source psort.StableSorter) func(i, j, len int) {
	dst, src := s, source.(intervalsByStart)
	return func(i, j, len int) {
		copy(dst[i:i+len], src[j:j+len])
	}
}

// ParallelSortByStart stably sorts intervals by Start.
func ParallelSortByStart(intervals []Interval) {
	psort.StableSort(intervalsByStart(intervals))
}

// Extend merges next into ival if next starts at or before ival.End,
// and reports whether it did. next.Start must not be smaller than
// ival.Start.
func (ival *Interval) Extend(next Interval) bool {
	if next.Start > ival.End {
		return false
	}
	if next.End > ival.End {
		ival.End = next.End
	}
	return true
}

// Flatten merges overlapping intervals of a slice sorted by Start.
// The result is sorted, contains no overlapping intervals, and shares
// memory with the argument.
func Flatten(intervals []Interval) []Interval {
	if len(intervals) == 0 {
		return intervals
	}
	last := 0
	for _, ival := range intervals[1:] {
		if !intervals[last].Extend(ival) {
			last++
			intervals[last] = ival
		}
	}
	return intervals[:last+1]
}

const parallelFlattenGrainSize = 0x1000

// ParallelFlatten is Flatten, splitting large slices in halves that
// are flattened in parallel.
func ParallelFlatten(intervals []Interval) []Interval {
	if len(intervals) < parallelFlattenGrainSize {
		return Flatten(intervals)
	}
	half := len(intervals) >> 1
	left, right := intervals[:half], intervals[half:]
	parallel.Do(
		func() { left = ParallelFlatten(left) },
		func() { right = ParallelFlatten(right) },
	)
	for len(right) > 0 && left[len(left)-1].Extend(right[0]) {
		right = right[1:]
	}
	return append(left, right...)
}

// Overlap reports whether [start, end) overlaps with any of the
// intervals, which must be flattened.
func Overlap(intervals []Interval, start, end int32) bool {
	i := sort.Search(len(intervals), func(i int) bool {
		return intervals[i].End >= start
	})
	return i < len(intervals) && intervals[i].Start < end
}
