package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConfig(t *testing.T) {
	t.Parallel()
	result := &Result{
		AppName:        "my-shop",
		Repository:     "git@example.com:acme/shop.git",
		Domain:         "shop.example.com",
		RuntimeVersion: "8.2",
		TLSEnabled:     true,
		TLSEmail:       "ops@example.com",
	}

	cfg := BuildConfig(result)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "my-shop", cfg.App.Name)
	assert.Equal(t, "/srv/my-shop", cfg.App.BasePath)
	assert.Equal(t, "8.2", cfg.Runtime.Version)
	assert.Equal(t, "my_shop", cfg.Database.Name)
	assert.True(t, cfg.TLS.Enabled)
	assert.Equal(t, "ops@example.com", cfg.TLS.Email)
}

func TestBuildConfig_ExplicitOverrides(t *testing.T) {
	t.Parallel()
	result := &Result{
		AppName:          "shop",
		Repository:       "repo",
		Domain:           "shop.example.com",
		BasePath:         "/var/www/shop",
		DatabaseName:     "shopdb",
		DatabaseUsername: "shopuser",
	}

	cfg := BuildConfig(result)
	assert.Equal(t, "/var/www/shop", cfg.App.BasePath)
	assert.Equal(t, "shopdb", cfg.Database.Name)
	assert.Equal(t, "shopuser", cfg.Database.Username)
}

func TestValidateAppName(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validateAppName("my-app"))
	assert.NoError(t, validateAppName("a"))
	assert.Error(t, validateAppName(""))
	assert.Error(t, validateAppName("-leading"))
	assert.Error(t, validateAppName("trailing-"))
	assert.Error(t, validateAppName("UpperCase"))
	assert.Error(t, validateAppName("way-too-long-name-that-exceeds-the-limit"))
}

func TestValidateDomain(t *testing.T) {
	t.Parallel()
	assert.NoError(t, validateDomain("example.com"))
	assert.NoError(t, validateDomain("shop.example.co.uk"))
	assert.Error(t, validateDomain("localhost"))
	assert.Error(t, validateDomain("bad_domain.com"))
	assert.Error(t, validateDomain(""))
}
