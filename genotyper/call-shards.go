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
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/exascience/pargo/parallel"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/exascience/miscall/intervals"
)

type (
	// An Observation is one base of one read at a pileup position.
	Observation struct {
		Read Read
		// Base is the base character as it appears in SEQ.
		Base byte
		// Qual is the phred-scaled base quality.
		Qual byte
	}

	// A Pileup is the set of observations at one reference position.
	Pileup struct {
		Contig       string
		Pos          int32
		RefBase      byte
		Observations []Observation
	}

	// A PileupSource produces the pileups of a shard. It is called
	// concurrently for different shards.
	PileupSource interface {
		Pileups(ctx context.Context, shard *intervals.LocusShard) ([]Pileup, error)
	}

	// SiteLikelihoods are the genotype likelihoods at one position.
	SiteLikelihoods struct {
		Contig      string
		Pos         int32
		RefBase     byte
		Likelihoods *DiploidGenotypeLikelihoods
		// Skipped counts observations that did not contribute: bases
		// other than A, C, G, T, and reads of unsupported platform
		// when CallOptions.SkipUnsupportedReads is set.
		Skipped int
	}
)

// CallOptions configures CallShards.
type CallOptions struct {
	// Parallelism bounds the number of shards processed at the same
	// time. Values <= 0 mean runtime.GOMAXPROCS(0).
	Parallelism int
	// SkipUnsupportedReads drops observations from reads whose
	// platform the engine refuses, instead of aborting the run.
	SkipUnsupportedReads bool
}

// DefaultCallOptions aborts on the first unsupported read.
func DefaultCallOptions() CallOptions {
	return CallOptions{Parallelism: runtime.GOMAXPROCS(0)}
}

func (opts CallOptions) parallelism() int {
	if opts.Parallelism <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return opts.Parallelism
}

func callPileup(shard *intervals.LocusShard, pileup Pileup, model ObservationModel, skipUnsupported bool) (SiteLikelihoods, error) {
	site := SiteLikelihoods{
		Contig:      pileup.Contig,
		Pos:         pileup.Pos,
		RefBase:     pileup.RefBase,
		Likelihoods: NewDiploidGenotypeLikelihoods(model),
	}
	for _, obs := range pileup.Observations {
		base, err := ParseBase(obs.Base)
		if err != nil {
			site.Skipped++
			continue
		}
		if err = site.Likelihoods.Add(base, obs.Qual, obs.Read); err != nil {
			var unsupported *UnsupportedPlatformError
			if skipUnsupported && errors.As(err, &unsupported) {
				log.WithFields(log.Fields{
					"shard": shard.ID,
					"read":  unsupported.ReadName,
					"locus": fmt.Sprintf("%v:%v", pileup.Contig, pileup.Pos),
				}).Warn("skipping read of unknown sequencer platform")
				site.Skipped++
				continue
			}
			return site, fmt.Errorf("%v:%v: %w", pileup.Contig, pileup.Pos, err)
		}
	}
	return site, nil
}

func callShard(ctx context.Context, shard *intervals.LocusShard, source PileupSource, model ObservationModel, opts CallOptions) ([]SiteLikelihoods, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pileups, err := source.Pileups(ctx, shard)
	if err != nil {
		return nil, fmt.Errorf("shard %v: %w", shard, err)
	}
	kept := pileups[:0:0]
	for _, pileup := range pileups {
		if shard.Contains(pileup.Contig, pileup.Pos) {
			kept = append(kept, pileup)
		}
	}
	if dropped := len(pileups) - len(kept); dropped > 0 {
		log.WithFields(log.Fields{"shard": shard.ID, "dropped": dropped}).Debug("pileups outside shard ignored")
	}
	if len(kept) == 0 {
		return nil, nil
	}
	sites := make([]SiteLikelihoods, len(kept))
	errs := make([]error, len(kept))
	parallel.Range(0, len(kept), 0, func(low, high int) {
		for i := low; i < high; i++ {
			if ctx.Err() != nil {
				errs[i] = ctx.Err()
				return
			}
			sites[i], errs[i] = callPileup(shard, kept[i], model, opts.SkipUnsupportedReads)
		}
	})
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return sites, nil
}

/*
CallShards computes genotype likelihoods for every pileup the source
produces for the given shards. Pileups at positions outside their
shard are ignored.

Shards are processed concurrently, at most opts.Parallelism at a time.
The first error cancels the remaining shards and is returned. The
result lists the sites shard by shard, in the order of the shards
argument, and within a shard in the order the source produced them.
*/
func CallShards(ctx context.Context, shards []*intervals.LocusShard, source PileupSource, model ObservationModel, opts CallOptions) ([]SiteLikelihoods, error) {
	perShard := make([][]SiteLikelihoods, len(shards))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.parallelism())
	for i, shard := range shards {
		i, shard := i, shard
		g.Go(func() error {
			log.WithFields(log.Fields{"shard": shard.ID, "loci": shard.String()}).Debug("calling shard")
			sites, err := callShard(gctx, shard, source, model, opts)
			if err != nil {
				return err
			}
			perShard[i] = sites
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var result []SiteLikelihoods
	for _, sites := range perShard {
		result = append(result, sites...)
	}
	return result, nil
}
