package jwtutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := GenerateToken("secret", time.Hour, "sid-1")
	require.NoError(t, err)

	claims, err := ParseToken("secret", token)
	require.NoError(t, err)
	assert.Equal(t, "sid-1", claims.SessionID())
}

func TestParseToken_Rejects(t *testing.T) {
	valid, err := GenerateToken("secret", time.Hour, "sid-1")
	require.NoError(t, err)
	expired, err := GenerateToken("secret", -time.Minute, "sid-1")
	require.NoError(t, err)
	noID, err := GenerateToken("secret", time.Hour, "")
	require.NoError(t, err)

	cases := map[string]struct {
		secret string
		token  string
	}{
		"wrong secret": {"other", valid},
		"expired":      {"secret", expired},
		"garbage":      {"secret", "not-a-token"},
		"empty id":     {"secret", noID},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseToken(tc.secret, tc.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
