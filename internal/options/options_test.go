package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type config struct {
	level   int
	enabled bool
}

func TestApply_InOrder(t *testing.T) {
	cfg := &config{}

	err := Apply(cfg,
		NoError(func(c *config) { c.enabled = true }),
		New(func(c *config) error {
			c.level = 3
			return nil
		}),
	)
	require.NoError(t, err)
	require.True(t, cfg.enabled)
	require.Equal(t, 3, cfg.level)
}

func TestApply_StopsOnError(t *testing.T) {
	cfg := &config{}
	boom := errors.New("boom")

	err := Apply(cfg,
		New(func(c *config) error { return boom }),
		NoError(func(c *config) { c.level = 7 }),
	)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 0, cfg.level)
}
