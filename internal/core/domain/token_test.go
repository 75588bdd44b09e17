package domain

import (
	"encoding/base64"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateTokenIsURLSafe(t *testing.T) {
	token, err := GenerateToken()
	require.NoError(t, err)
	require.Equal(t, token, url.PathEscape(token))

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)
	require.Len(t, raw, TokenBytes)
}

// With 256 random bits the chance of any collision among 1e5 tokens is
// below 1e10/2^257, so a duplicate here means the generator is broken.
func TestGenerateTokenUnique(t *testing.T) {
	const n = 100_000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		token, err := GenerateToken()
		require.NoError(t, err)
		_, dup := seen[token]
		require.False(t, dup, "duplicate token after %d draws", i)
		seen[token] = struct{}{}
	}
}
