package genotyper

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiscallScenarios(t *testing.T) {
	engine := NewMiscallEngine(NewModel(), header, DefaultOptions())
	for _, tc := range []struct {
		name                string
		read                testRead
		observed, trueBase  Base
		want, approximately float64
	}{
		{"solexa forward", fwd("illumina"), A, C, math.Log10(0.577), -0.2388},
		{"solid forward", fwd("solid"), G, A, math.Log10(0.61), -0.2147},
		{"454 reverse", rev("454"), C, T, math.Log10(0.715), -0.1458},
	} {
		log10p, err := engine.Log10PTrueGivenMiscall(tc.observed, tc.trueBase, tc.read)
		require.NoError(t, err, tc.name)
		assert.InDelta(t, tc.want, log10p, 1e-12, tc.name)
		assert.InDelta(t, tc.approximately, log10p, 5e-4, tc.name)
	}
}

func TestStrandSymmetry(t *testing.T) {
	model := NewModel()
	engine := NewMiscallEngine(model, header, DefaultOptions())
	for pl, rg := range platformReadGroups {
		for _, i := range Bases {
			for _, j := range Bases {
				if i == j {
					continue
				}
				forward, err := engine.Log10PTrueGivenMiscall(i, j, fwd(rg))
				require.NoError(t, err)
				expected, err := model.Table.Lookup(pl, i, j)
				require.NoError(t, err)
				assert.Equal(t, expected, forward, "%v %v->%v forward", pl, i, j)

				reverse, err := engine.Log10PTrueGivenMiscall(i, j, rev(rg))
				require.NoError(t, err)
				expected, err = model.Table.Lookup(pl, i.Complement(), j.Complement())
				require.NoError(t, err)
				assert.Equal(t, expected, reverse, "%v %v->%v reverse", pl, i, j)
			}
		}
	}
}

func TestUnknownPlatformFailsByDefault(t *testing.T) {
	engine := NewMiscallEngine(NewModel(), header, DefaultOptions())
	for _, read := range []testRead{
		{name: "no-rg"},
		{name: "missing-rg", rg: "not-in-header", hasRG: true},
		{name: "unrecognized-pl", rg: "pacbio", hasRG: true},
	} {
		_, err := engine.Log10PTrueGivenMiscall(A, C, read)
		var unsupported *UnsupportedPlatformError
		require.True(t, errors.As(err, &unsupported), read.name)
		assert.Equal(t, read.name, unsupported.ReadName)
		assert.Contains(t, err.Error(), read.name)
	}
}

func TestUnknownPlatformWithoutHeader(t *testing.T) {
	engine := NewMiscallEngine(NewModel(), nil, DefaultOptions())
	_, err := engine.Log10PTrueGivenMiscall(A, C, fwd("illumina"))
	var unsupported *UnsupportedPlatformError
	assert.True(t, errors.As(err, &unsupported))
}

func TestDefaultPlatformSubstitution(t *testing.T) {
	model := NewModel()
	engine := NewMiscallEngine(model, header, AssumePlatform(Solid))
	assert.False(t, engine.Options().RaiseOnUnknownPlatform)

	unknown := testRead{name: "no-rg"}
	for _, i := range Bases {
		for _, j := range Bases {
			if i == j {
				continue
			}
			log10p, err := engine.Log10PTrueGivenMiscall(i, j, unknown)
			require.NoError(t, err)
			expected, err := model.Table.Lookup(Solid, i, j)
			require.NoError(t, err)
			assert.Equal(t, expected, log10p)
		}
	}

	// recognized platforms are unaffected by the default
	log10p, err := engine.Log10PTrueGivenMiscall(A, C, fwd("illumina"))
	require.NoError(t, err)
	assert.InDelta(t, math.Log10(0.577), log10p, 1e-12)
}

func TestDefaultPlatformUnknownUsesUniformTable(t *testing.T) {
	engine := NewMiscallEngine(NewModel(), header, Options{RaiseOnUnknownPlatform: false})
	log10p, err := engine.Log10PTrueGivenMiscall(G, T, rev("pacbio"))
	require.NoError(t, err)
	assert.InDelta(t, math.Log10(1.0/3.0), log10p, 1e-12)
}

func TestRaiseOverridesDefaultPlatform(t *testing.T) {
	engine := NewMiscallEngine(NewModel(), header, Options{RaiseOnUnknownPlatform: true, DefaultPlatform: Solexa})
	_, err := engine.Log10PTrueGivenMiscall(A, C, testRead{name: "no-rg"})
	var unsupported *UnsupportedPlatformError
	assert.True(t, errors.As(err, &unsupported))
}

func TestIdenticalBasesAreOutsideTheModel(t *testing.T) {
	engine := NewMiscallEngine(NewModel(), header, DefaultOptions())
	for _, b := range Bases {
		_, err := engine.Log10PTrueGivenMiscall(b, b, fwd("illumina"))
		var domain *MiscallDomainError
		require.True(t, errors.As(err, &domain))
		assert.Equal(t, b, domain.Base)
	}
}

func TestLog10PTrueGivenMiscallBytes(t *testing.T) {
	engine := NewMiscallEngine(NewModel(), header, DefaultOptions())
	log10p, err := engine.Log10PTrueGivenMiscallBytes('a', 'C', fwd("illumina"))
	require.NoError(t, err)
	assert.InDelta(t, math.Log10(0.577), log10p, 1e-12)

	var unrecognized *UnrecognizedBaseError
	_, err = engine.Log10PTrueGivenMiscallBytes('N', 'C', fwd("illumina"))
	require.True(t, errors.As(err, &unrecognized))
	assert.Equal(t, byte('N'), unrecognized.Base)
	_, err = engine.Log10PTrueGivenMiscallBytes('A', 'R', fwd("illumina"))
	require.True(t, errors.As(err, &unrecognized))
	assert.Equal(t, byte('R'), unrecognized.Base)
}

func TestEngineIsSafeForConcurrentUse(t *testing.T) {
	model := NewModel()
	engine := NewMiscallEngine(model, header, DefaultOptions())
	expected, err := engine.Log10PTrueGivenMiscall(T, C, rev("solid"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]float64, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for k := 0; k < 1000; k++ {
				results[i], _ = engine.Log10PTrueGivenMiscall(T, C, rev("solid"))
			}
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		assert.Equal(t, expected, r)
	}
}
