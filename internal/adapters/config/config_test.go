package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaults(t *testing.T) {
	cfg, err := Get()
	require.NoError(t, err)

	assert.Equal(t, "Black", cfg.FillColor)
	assert.Equal(t, "White", cfg.BackgroundColor)
	assert.Equal(t, "qrcode.png", cfg.FileName)
	assert.Equal(t, 40, cfg.PreviewSize)
}
