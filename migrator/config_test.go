package migrator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.applyDefaults()
	assert.Equal(t, ClasslessAdd, cfg.ClasslessFigures)
	assert.False(t, cfg.MediaPreview)
	require.NoError(t, cfg.Validate())
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{ClasslessFigures: "fix"})
	require.Error(t, err)
	assert.Equal(t, `invalid classlessFigures "fix"`, err.Error())
}

func TestNewKeepsExplicitPolicy(t *testing.T) {
	m, err := New(Config{ClasslessFigures: ClasslessLeave, MediaPreview: true})
	require.NoError(t, err)
	assert.Equal(t, ClasslessLeave, m.config.ClasslessFigures)
	assert.True(t, m.config.MediaPreview)
}
