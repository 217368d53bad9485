package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type uploadConfig struct {
	retries  int
	gateway  string
	compress bool
	calls    []string
}

func withRetries(n int) Option[*uploadConfig] {
	return New(func(c *uploadConfig) error {
		if n < 0 {
			return errors.New("retries cannot be negative")
		}
		c.retries = n
		c.calls = append(c.calls, "retries")

		return nil
	})
}

func withGateway(name string) Option[*uploadConfig] {
	return NoError(func(c *uploadConfig) {
		c.gateway = name
		c.calls = append(c.calls, "gateway")
	})
}

func withCompression() Option[*uploadConfig] {
	return NoError(func(c *uploadConfig) {
		c.compress = true
		c.calls = append(c.calls, "compress")
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &uploadConfig{}

		err := Apply(cfg, withGateway("gw-1"), withRetries(3), withCompression())
		require.NoError(t, err)
		require.Equal(t, 3, cfg.retries)
		require.Equal(t, "gw-1", cfg.gateway)
		require.True(t, cfg.compress)
		require.Equal(t, []string{"gateway", "retries", "compress"}, cfg.calls)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &uploadConfig{}

		err := Apply(cfg, withGateway("gw-1"), withRetries(-1), withCompression())
		require.Error(t, err)
		require.Contains(t, err.Error(), "retries cannot be negative")
		require.Equal(t, []string{"gateway"}, cfg.calls)
		require.False(t, cfg.compress)
	})

	t.Run("no options is a no-op", func(t *testing.T) {
		cfg := &uploadConfig{retries: 7}

		require.NoError(t, Apply(cfg))
		require.Equal(t, 7, cfg.retries)
	})

	t.Run("later options override earlier ones", func(t *testing.T) {
		cfg := &uploadConfig{}

		require.NoError(t, Apply(cfg, withRetries(1), withRetries(5)))
		require.Equal(t, 5, cfg.retries)
	})
}

func TestOption_ValueTarget(t *testing.T) {
	var seen []int
	record := func(v int) Option[int] {
		return NoError(func(target int) {
			seen = append(seen, target*v)
		})
	}

	require.NoError(t, Apply(2, record(10), record(20)))
	require.Equal(t, []int{20, 40}, seen)
}
