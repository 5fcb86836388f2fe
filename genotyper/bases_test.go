package genotyper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBase(t *testing.T) {
	for _, tc := range []struct {
		char byte
		want Base
	}{
		{'A', A}, {'C', C}, {'G', G}, {'T', T},
		{'a', A}, {'c', C}, {'g', G}, {'t', T},
	} {
		b, err := ParseBase(tc.char)
		require.NoError(t, err)
		assert.Equal(t, tc.want, b, "base %c", tc.char)
	}
}

func TestParseBaseRejectsAmbiguousSymbols(t *testing.T) {
	for _, char := range []byte{'N', 'n', '*', '.', 'U', 0} {
		_, err := ParseBase(char)
		var unrecognized *UnrecognizedBaseError
		require.True(t, errors.As(err, &unrecognized), "symbol %q", char)
		assert.Equal(t, char, unrecognized.Base)
	}
}

func TestComplement(t *testing.T) {
	assert.Equal(t, T, A.Complement())
	assert.Equal(t, G, C.Complement())
	assert.Equal(t, C, G.Complement())
	assert.Equal(t, A, T.Complement())
	for _, b := range Bases {
		assert.Equal(t, b, b.Complement().Complement())
	}
}

func TestBaseString(t *testing.T) {
	assert.Equal(t, "ACGT", A.String()+C.String()+G.String()+T.String())
	assert.Equal(t, byte('G'), G.Byte())
	assert.Equal(t, "Base(9)", Base(9).String())
}
