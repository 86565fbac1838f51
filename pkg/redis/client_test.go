package redis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_NotConfigured(t *testing.T) {
	_, err := Connect(context.Background(), Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestOptions(t *testing.T) {
	t.Run("plain url with password", func(t *testing.T) {
		opts, err := options(Config{URL: "redis://:pw@cache.local:6380"})
		require.NoError(t, err)
		assert.Equal(t, "cache.local:6380", opts.Addr)
		assert.Equal(t, "pw", opts.Password)
		assert.Nil(t, opts.TLSConfig)
	})

	t.Run("tls with default port and explicit password", func(t *testing.T) {
		opts, err := options(Config{URL: "rediss://cache.local", Password: "override"})
		require.NoError(t, err)
		assert.Equal(t, "cache.local:6379", opts.Addr)
		assert.Equal(t, "override", opts.Password)
		assert.NotNil(t, opts.TLSConfig)
	})

	t.Run("rejects other schemes", func(t *testing.T) {
		_, err := options(Config{URL: "http://cache.local"})
		assert.Error(t, err)
	})
}
