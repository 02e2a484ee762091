package logger

import (
	"testing"

	"github.com/ruralpay/hacklab/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("console", func(t *testing.T) {
		l, err := New(config.LogConfig{Level: "debug", Format: "console"})
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("json", func(t *testing.T) {
		l, err := New(config.LogConfig{Level: "warn", Format: "json"})
		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := New(config.LogConfig{Level: "loud", Format: "json"})
		assert.Error(t, err)
	})
}
