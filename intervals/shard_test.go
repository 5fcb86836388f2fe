package intervals

import (
	"reflect"
	"testing"
)

func TestPartitionContig(t *testing.T) {
	for _, test := range []struct {
		length, shardSize int32
		want              []string
	}{
		{20, 6, []string{"chr1:1-6", "chr1:7-12", "chr1:13-18", "chr1:19-20"}},
		{20, 5, []string{"chr1:1-5", "chr1:6-10", "chr1:11-15", "chr1:16-20"}},
		{3, 10, []string{"chr1:1-3"}},
		{3, 0, []string{"chr1:1-3"}},
		{0, 10, nil},
	} {
		var got []string
		var size int64
		for _, shard := range PartitionContig("chr1", test.length, test.shardSize) {
			got = append(got, shard.String())
			size += shard.Size()
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("PartitionContig(%v, %v): got %v, want %v", test.length, test.shardSize, got, test.want)
		}
		if test.length > 0 && size != int64(test.length) {
			t.Errorf("PartitionContig(%v, %v) covers %v positions", test.length, test.shardSize, size)
		}
	}
}

func TestPartitionContigAtMaxPosition(t *testing.T) {
	const length = 1<<31 - 1
	shards := PartitionContig("chrUn", length, 1<<30)
	if len(shards) != 2 {
		t.Fatalf("got %v shards", len(shards))
	}
	if last := shards[1].GenomeLocs()[0]; last.End != length {
		t.Errorf("last shard ends at %v", last.End)
	}
}

func TestLocusShard(t *testing.T) {
	shard := NewLocusShard([]GenomeLoc{
		{"chr2", Interval{50, 60}},
		{"chr1", Interval{10, 20}},
		{"chr2", Interval{55, 70}},
	})
	if shard.ShardType() != LocusShardType || shard.ShardType().String() != "LOCUS" {
		t.Errorf("unexpected shard type %v", shard.ShardType())
	}
	if s := shard.String(); s != "chr2:50-60;chr1:10-20;chr2:55-70" {
		t.Errorf("String: got %v", s)
	}
	if size := shard.Size(); size != 11+21 {
		t.Errorf("Size: got %v", size)
	}
	for _, test := range []struct {
		contig string
		pos    int32
		in     bool
	}{
		{"chr1", 9, false},
		{"chr1", 10, true},
		{"chr1", 20, true},
		{"chr1", 21, false},
		{"chr2", 65, true},
		{"chr2", 70, true},
		{"chr2", 71, false},
		{"chr3", 15, false},
	} {
		if got := shard.Contains(test.contig, test.pos); got != test.in {
			t.Errorf("Contains(%v, %v): got %v", test.contig, test.pos, got)
		}
	}
}

func TestLocusShardIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, shard := range PartitionContig("chr1", 1000, 10) {
		id := shard.ID.String()
		if seen[id] {
			t.Fatalf("duplicate shard ID %v", id)
		}
		seen[id] = true
	}
}

func TestLocusShardKeepsLociOrder(t *testing.T) {
	loci := []GenomeLoc{{"chrX", Interval{5, 9}}, {"chrX", Interval{1, 3}}}
	shard := NewLocusShard(loci)
	loci[0].Start = 100
	if got := shard.GenomeLocs(); got[0].Start != 5 || got[1].Start != 1 {
		t.Errorf("GenomeLocs: got %v", got)
	}
}

func TestLocusShardWithManyOverlappingLoci(t *testing.T) {
	loci := make([]GenomeLoc, 2*parallelFlattenGrainSize)
	for i := range loci {
		loci[i] = GenomeLoc{"chr1", Interval{1, 100}}
	}
	loci[len(loci)-1] = GenomeLoc{"chr1", Interval{50, 150}}
	shard := NewLocusShard(loci)
	if size := shard.Size(); size != 150 {
		t.Errorf("Size: got %v", size)
	}
	if !shard.Contains("chr1", 150) || shard.Contains("chr1", 151) {
		t.Error("Contains disagrees with the merged locus")
	}
}
