package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.StartingBalance)
	assert.Zero(t, cfg.ShuffleSeed)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.False(t, cfg.DealerSoft17)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("STARTING_BALANCE", "250")
	t.Setenv("SHUFFLE_SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DEALER_SOFT17", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 250, cfg.StartingBalance)
	assert.Equal(t, int64(42), cfg.ShuffleSeed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.True(t, cfg.DealerSoft17)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"balance not a number", "STARTING_BALANCE", "lots"},
		{"unknown level", "LOG_LEVEL", "loud"},
		{"unknown format", "LOG_FORMAT", "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
