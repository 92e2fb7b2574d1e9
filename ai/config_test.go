package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.NotNil(t, cfg)
	assert.Equal(t, "http://localhost:11434/v1", cfg.ExtractorHost)
	assert.Equal(t, "qwen2.5:3b", cfg.ExtractorModel)
	assert.Equal(t, "none", cfg.Token)
	assert.Equal(t, 3, cfg.MaxAttempts)
}

func TestNewConfig(t *testing.T) {
	t.Run("with no options", func(t *testing.T) {
		cfg := NewConfig()

		assert.NotNil(t, cfg)
		// Should have default values
		assert.Equal(t, "http://localhost:11434/v1", cfg.ExtractorHost)
		assert.Equal(t, 3, cfg.MaxAttempts)
	})

	t.Run("with custom host", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://custom:8080/v1"))

		assert.Equal(t, "http://custom:8080/v1", cfg.ExtractorHost)
	})

	t.Run("with custom model", func(t *testing.T) {
		cfg := NewConfig(WithModel("gpt-4o-mini"))

		assert.Equal(t, "gpt-4o-mini", cfg.ExtractorModel)
	})

	t.Run("with custom token", func(t *testing.T) {
		cfg := NewConfig(WithToken("sk-test"))

		assert.Equal(t, "sk-test", cfg.Token)
	})

	t.Run("with custom max attempts", func(t *testing.T) {
		cfg := NewConfig(WithMaxAttempts(5))

		assert.Equal(t, 5, cfg.MaxAttempts)
	})

	t.Run("with multiple options", func(t *testing.T) {
		cfg := NewConfig(
			WithHost("http://custom:8080/v1"),
			WithModel("custom-extract"),
			WithToken("sk-test"),
			WithMaxAttempts(1),
		)

		assert.Equal(t, "http://custom:8080/v1", cfg.ExtractorHost)
		assert.Equal(t, "custom-extract", cfg.ExtractorModel)
		assert.Equal(t, "sk-test", cfg.Token)
		assert.Equal(t, 1, cfg.MaxAttempts)
	})
}

func TestConfigNormalize(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		expected string
	}{
		{
			name:     "already has /v1",
			host:     "http://localhost:11434/v1",
			expected: "http://localhost:11434/v1",
		},
		{
			name:     "missing /v1",
			host:     "http://localhost:11434",
			expected: "http://localhost:11434/v1",
		},
		{
			name:     "has trailing slash",
			host:     "http://localhost:11434/",
			expected: "http://localhost:11434/v1",
		},
		{
			name:     "empty host left alone",
			host:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{ExtractorHost: tt.host}
			cfg.Normalize()
			assert.Equal(t, tt.expected, cfg.ExtractorHost)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := DefaultConfig()
		require.NoError(t, cfg.Validate())
	})

	t.Run("validate normalizes host", func(t *testing.T) {
		cfg := NewConfig(WithHost("http://localhost:11434"))
		require.NoError(t, cfg.Validate())
		assert.Equal(t, "http://localhost:11434/v1", cfg.ExtractorHost)
	})

	t.Run("missing host", func(t *testing.T) {
		cfg := NewConfig(WithHost(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := NewConfig(WithModel(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing token", func(t *testing.T) {
		cfg := NewConfig(WithToken(""))
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero max attempts", func(t *testing.T) {
		cfg := NewConfig(WithMaxAttempts(0))
		assert.Error(t, cfg.Validate())
	})
}
