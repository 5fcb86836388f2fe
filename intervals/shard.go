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

package intervals

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// A GenomeLoc is an interval of 1-based positions on one contig.
type GenomeLoc struct {
	Contig string
	Interval
}

func (loc GenomeLoc) String() string {
	return fmt.Sprintf("%v:%v-%v", loc.Contig, loc.Start, loc.End)
}

// ShardType distinguishes kinds of traversal shards.
type ShardType int

const (
	// LocusShardType marks shards traversed position by position.
	LocusShardType ShardType = iota
)

func (t ShardType) String() string {
	switch t {
	case LocusShardType:
		return "LOCUS"
	default:
		return fmt.Sprintf("ShardType(%d)", int(t))
	}
}

/*
A LocusShard is a unit of parallel traversal: a list of genome
locations. It holds no reads itself.

The ID is unique per shard and only serves to correlate log entries
of concurrently processed shards.
*/
type LocusShard struct {
	ID   uuid.UUID
	loci []GenomeLoc
	// flattened loci per contig, for Contains
	contigs map[string][]Interval
}

// NewLocusShard returns a shard over the given loci. The loci are
// kept in the given order.
func NewLocusShard(loci []GenomeLoc) *LocusShard {
	shard := &LocusShard{
		ID:      uuid.New(),
		loci:    append([]GenomeLoc(nil), loci...),
		contigs: make(map[string][]Interval),
	}
	for _, loc := range loci {
		shard.contigs[loc.Contig] = append(shard.contigs[loc.Contig], loc.Interval)
	}
	for contig, ivals := range shard.contigs {
		ParallelSortByStart(ivals)
		shard.contigs[contig] = ParallelFlatten(ivals)
	}
	return shard
}

// GenomeLocs returns the locations covered by the shard.
func (shard *LocusShard) GenomeLocs() []GenomeLoc {
	return shard.loci
}

// ShardType returns LocusShardType.
func (shard *LocusShard) ShardType() ShardType {
	return LocusShardType
}

// Contains reports whether the position on the given contig lies in
// one of the shard's locations.
func (shard *LocusShard) Contains(contig string, pos int32) bool {
	ivals, ok := shard.contigs[contig]
	return ok && Overlap(ivals, pos, pos+1)
}

// Size returns the number of distinct positions the shard covers.
func (shard *LocusShard) Size() (size int64) {
	for _, ivals := range shard.contigs {
		for _, ival := range ivals {
			size += int64(ival.End-ival.Start) + 1
		}
	}
	return size
}

func (shard *LocusShard) String() string {
	strs := make([]string, len(shard.loci))
	for i, loc := range shard.loci {
		strs[i] = loc.String()
	}
	return strings.Join(strs, ";")
}

// PartitionContig splits positions 1..length of a contig into shards
// of at most shardSize positions each.
func PartitionContig(contig string, length, shardSize int32) []*LocusShard {
	if length <= 0 {
		return nil
	}
	if shardSize <= 0 {
		shardSize = length
	}
	var shards []*LocusShard
	for start := int32(1); ; {
		end := start + shardSize - 1
		if end > length || end < start {
			end = length
		}
		shards = append(shards, NewLocusShard([]GenomeLoc{{contig, Interval{start, end}}}))
		if end == length {
			return shards
		}
		start = end + 1
	}
}
