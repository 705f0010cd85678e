package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RecommendDefaults(t *testing.T) {
	t.Setenv("RECOMMEND_COUNT", "")
	t.Setenv("RECOMMEND_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Recommend.Count)
	assert.Equal(t, 20*time.Second, cfg.Recommend.Timeout)
	assert.Equal(t, "Australian", cfg.Recommend.Domain)
	assert.Equal(t, "keyword", cfg.Recommend.FallbackMode)
	assert.False(t, cfg.Recommend.AuthRequired)
}

func TestLoad_RecommendOverrides(t *testing.T) {
	t.Setenv("RECOMMEND_COUNT", "5")
	t.Setenv("RECOMMEND_TIMEOUT", "45")
	t.Setenv("FALLBACK_MODE", "single")
	t.Setenv("AUTH_REQUIRED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Recommend.Count)
	assert.Equal(t, 45*time.Second, cfg.Recommend.Timeout)
	assert.Equal(t, "single", cfg.Recommend.FallbackMode)
	assert.True(t, cfg.Recommend.AuthRequired)
}

func TestLoad_ClampsMalformedRecommendSettings(t *testing.T) {
	tests := []struct {
		name    string
		count   string
		timeout string
	}{
		{"not numbers", "three", "soon"},
		{"zero", "0", "0"},
		{"negative", "-2", "-10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RECOMMEND_COUNT", tt.count)
			t.Setenv("RECOMMEND_TIMEOUT", tt.timeout)

			cfg, err := Load()
			require.NoError(t, err)

			assert.Equal(t, 3, cfg.Recommend.Count)
			assert.Equal(t, 20*time.Second, cfg.Recommend.Timeout)
		})
	}
}
