package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domicilia/backoffice-api/pkg/token"
)

func TestNewSecret_LongitudYUnicidad(t *testing.T) {
	a, err := token.NewSecret()
	require.NoError(t, err)
	b, err := token.NewSecret()
	require.NoError(t, err)

	assert.Len(t, a, 40)
	assert.Len(t, b, 40)
	assert.NotEqual(t, a, b, "dos secretos consecutivos no deben coincidir")
}

func TestComposeSplit_RoundTrip(t *testing.T) {
	secret, err := token.NewSecret()
	require.NoError(t, err)

	plain := token.Compose(42, secret)
	id, got, err := token.Split(plain)
	require.NoError(t, err)

	assert.Equal(t, int64(42), id)
	assert.Equal(t, secret, got)
}

func TestSplit_FormatoInvalido(t *testing.T) {
	casos := []string{"", "sinseparador", "abc|secreto", "-1|secreto", "7|"}
	for _, c := range casos {
		_, _, err := token.Split(c)
		assert.Error(t, err, "entrada %q debe rechazarse", c)
	}
}

func TestMatches_SoloConElSecretoOriginal(t *testing.T) {
	secret, err := token.NewSecret()
	require.NoError(t, err)
	stored := token.Hash(secret)

	assert.True(t, token.Matches(stored, secret))
	assert.False(t, token.Matches(stored, secret+"x"))
	assert.False(t, token.Matches(stored, ""))
}
