package math

import (
	"testing"

	"github.com/db47h/bigint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *bigint.Int {
	t.Helper()
	x, err := bigint.Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return x
}

func TestProxies(t *testing.T) {
	z, err := Pow(new(bigint.Int), bigint.New(2), bigint.New(64))
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551616", z.String())

	z, err = ModPow(new(bigint.Int), bigint.New(2), bigint.New(64), bigint.New(1000))
	require.NoError(t, err)
	assert.Equal(t, "616", z.String())

	z, err = Sqrt(new(bigint.Int), bigint.New(1000000))
	require.NoError(t, err)
	assert.Equal(t, "1000", z.String())

	_, err = Pow(new(bigint.Int), bigint.New(2), bigint.New(-1))
	assert.ErrorIs(t, err, bigint.ErrInvalidInput)
}
