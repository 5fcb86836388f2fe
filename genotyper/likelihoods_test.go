package genotyper

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenotypesOrder(t *testing.T) {
	var names []string
	for _, g := range Genotypes {
		names = append(names, g.String())
	}
	assert.Equal(t, []string{"AA", "AC", "AG", "AT", "CC", "CG", "CT", "GG", "GT", "TT"}, names)
}

func newEmpiricalModel(options Options) EmpiricalSubstitutionModel {
	return EmpiricalSubstitutionModel{Engine: NewMiscallEngine(NewModel(), header, options)}
}

func TestEmpiricalObservationModel(t *testing.T) {
	model := newEmpiricalModel(DefaultOptions())
	read := fwd("illumina")

	match, err := model.Log10PObservation(A, A, 30, read)
	require.NoError(t, err)
	assert.InDelta(t, math.Log10(1-0.001), match, 1e-12)

	mismatch, err := model.Log10PObservation(A, C, 30, read)
	require.NoError(t, err)
	assert.InDelta(t, -3+math.Log10(0.577), mismatch, 1e-12)

	// quality 0 is treated as quality 1
	q0, err := model.Log10PObservation(A, A, 0, read)
	require.NoError(t, err)
	assert.InDelta(t, math.Log10(1-math.Pow(10, -0.1)), q0, 1e-12)
	assert.False(t, math.IsInf(q0, 0))
}

func TestThreeStateObservationModel(t *testing.T) {
	var model ThreeStateModel
	mismatch, err := model.Log10PObservation(G, T, 20, nil)
	require.NoError(t, err)
	assert.InDelta(t, -2+math.Log10(1.0/3.0), mismatch, 1e-12)
}

func TestSingleObservationLikelihoods(t *testing.T) {
	gl := NewDiploidGenotypeLikelihoods(newEmpiricalModel(DefaultOptions()))
	require.NoError(t, gl.Add(A, 30, fwd("illumina")))
	assert.Equal(t, 1, gl.Depth())

	const e = 0.001
	assert.InDelta(t, math.Log10(1-e), gl.Likelihood(Genotype{A, A}), 1e-12)
	assert.InDelta(t, math.Log10(0.5*(1-e)+0.5*e*0.577), gl.Likelihood(Genotype{A, C}), 1e-12)
	assert.InDelta(t, math.Log10(e*0.171), gl.Likelihood(Genotype{G, G}), 1e-12)
	assert.Equal(t, gl.Likelihood(Genotype{A, C}), gl.Likelihood(Genotype{C, A}))
}

func TestBestGenotype(t *testing.T) {
	model := newEmpiricalModel(DefaultOptions())

	hom := NewDiploidGenotypeLikelihoods(model)
	for i := 0; i < 10; i++ {
		require.NoError(t, hom.Add(T, 30, fwd("solid")))
	}
	best, _ := hom.Best()
	assert.Equal(t, Genotype{T, T}, best)

	het := NewDiploidGenotypeLikelihoods(model)
	for i := 0; i < 5; i++ {
		require.NoError(t, het.Add(C, 30, fwd("454")))
		require.NoError(t, het.Add(G, 30, rev("454")))
	}
	best, log10gl := het.Best()
	assert.Equal(t, Genotype{C, G}, best)
	assert.Equal(t, het.Likelihood(best), log10gl)
	assert.Equal(t, 10, het.Depth())
}

func TestFailedObservationLeavesLikelihoodsUnchanged(t *testing.T) {
	gl := NewDiploidGenotypeLikelihoods(newEmpiricalModel(DefaultOptions()))
	require.NoError(t, gl.Add(A, 30, fwd("illumina")))
	before := gl.Log10Likelihoods()

	err := gl.Add(C, 30, testRead{name: "orphan"})
	var unsupported *UnsupportedPlatformError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, before, gl.Log10Likelihoods())
	assert.Equal(t, 1, gl.Depth())
}

func TestUnknownPlatformMatchesThreeStateModel(t *testing.T) {
	empirical := NewDiploidGenotypeLikelihoods(newEmpiricalModel(Options{RaiseOnUnknownPlatform: false}))
	threeState := NewDiploidGenotypeLikelihoods(ThreeStateModel{})
	read := testRead{name: "orphan"}
	for _, obs := range []Base{A, A, C, T, G, A} {
		require.NoError(t, empirical.Add(obs, 25, read))
		require.NoError(t, threeState.Add(obs, 25, read))
	}
	e, ts := empirical.Log10Likelihoods(), threeState.Log10Likelihoods()
	for k := range Genotypes {
		assert.InDelta(t, ts[k], e[k], 1e-9, Genotypes[k].String())
	}
}
