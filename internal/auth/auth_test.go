package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tok, err := MakeToken("user-1", "secret", time.Now())
	require.NoError(t, err)

	uid, err := ParseToken(tok, "secret")
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)
}

func TestParseTokenRejects(t *testing.T) {
	expired, err := MakeToken("user-1", "secret", time.Now().Add(-48*time.Hour))
	require.NoError(t, err)
	valid, err := MakeToken("user-1", "secret", time.Now())
	require.NoError(t, err)

	tests := []struct {
		name   string
		raw    string
		secret string
	}{
		{"garbage", "not-a-token", "secret"},
		{"expired", expired, "secret"},
		{"wrong secret", valid, "other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseToken(tt.raw, tt.secret)
			assert.Error(t, err)
		})
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("testpass123")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "testpass123"))
	assert.False(t, CheckPassword(hash, "wrong"))
}
