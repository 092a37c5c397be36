package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, ":5000", cfg.Addr())
	assert.Equal(t, 10, cfg.RateLimitBurst)
}

func TestLoadGoogleCredentials(t *testing.T) {
	t.Setenv("GOOGLE_CLIENT_ID", "cid")
	t.Setenv("GOOGLE_CLIENT_SECRET", "secret")
	t.Setenv("GOOGLE_REDIRECT_URI", "http://localhost/cb")
	t.Setenv("GOOGLE_REFRESH_TOKEN", "refresh")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, GoogleConfig{
		ClientID:     "cid",
		ClientSecret: "secret",
		RedirectURI:  "http://localhost/cb",
		RefreshToken: "refresh",
	}, cfg.Google)
}

func TestLoadRejectsUnknownStorage(t *testing.T) {
	t.Setenv("STORAGE", "mongo")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo")
}
