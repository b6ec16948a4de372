package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.GoEnv)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 15*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, "1000/day", cfg.ThrottleUserRate)
	assert.Equal(t, "100/day", cfg.ThrottleAnonRate)
	assert.Equal(t, "5/day", cfg.ThrottleReviewCreate)
	assert.Equal(t, "10/day", cfg.ThrottleReviewList)
	assert.Equal(t, "200/day", cfg.ThrottlePlatformDetail)
	assert.True(t, cfg.IsDevelopment())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ACCESS_TOKEN_TTL", "30m")
	t.Setenv("THROTTLE_REVIEW_CREATE", "20/hour")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL)
	assert.Equal(t, "20/hour", cfg.ThrottleReviewCreate)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("JWT_SECRET", "0123456789abcdef0123456789abcdef")

	t.Run("BadPort", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "not-a-port")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("BadDuration", func(t *testing.T) {
		t.Setenv("ACCESS_TOKEN_TTL", "soon")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := Config{
		HTTPPort:  8080,
		JWTSecret: "0123456789abcdef0123456789abcdef",
		LogLevel:  "info",
		LogFormat: "json",
	}

	t.Run("Valid", func(t *testing.T) {
		cfg := valid
		assert.NoError(t, cfg.Validate())
	})

	t.Run("ShortSecret", func(t *testing.T) {
		cfg := valid
		cfg.JWTSecret = "short"
		assert.ErrorContains(t, cfg.Validate(), "JWT_SECRET")
	})

	t.Run("BadLogLevel", func(t *testing.T) {
		cfg := valid
		cfg.LogLevel = "verbose"
		assert.ErrorContains(t, cfg.Validate(), "LOG_LEVEL")
	})

	t.Run("PortOutOfRange", func(t *testing.T) {
		cfg := valid
		cfg.HTTPPort = 0
		assert.ErrorContains(t, cfg.Validate(), "HTTP_PORT")
	})
}
