package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rgonek/richtext-field/fieldtype"
)

func TestConfigFileToInputConfig(t *testing.T) {
	cfg, err := loadFileConfig(writeTestConfig(t))
	require.NoError(t, err)

	field, err := fieldtype.New(cfg.Settings, fieldtype.Options{
		Permissions: cfg.Permissions,
		Catalog:     cfg.Catalog,
	})
	require.NoError(t, err)

	input, err := field.InputConfig(context.Background(), cfg.User)
	require.NoError(t, err)

	assert.Equal(t, []string{"volume:0b6f2c5e-4f7e-4c1a-9a35-9d0d5e3c2a11"}, input.Volumes)
	assert.Equal(t, []fieldtype.TransformOption{{Handle: "thumb", Name: "Thumbnail"}}, input.Transforms)
	assert.True(t, input.SourceEditing)
	assert.Equal(t, 100, input.WordLimit)
}

func TestEncodeInputConfig(t *testing.T) {
	input := fieldtype.InputConfig{
		Volumes:    []string{"volume:abc"},
		Transforms: []fieldtype.TransformOption{{Handle: "thumb", Name: "Thumbnail"}},
		WordLimit:  50,
	}

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, encodeInputConfig(&buf, input, "json"))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, []any{"volume:abc"}, decoded["volumes"])
		assert.EqualValues(t, 50, decoded["wordLimit"])
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, encodeInputConfig(&buf, input, "YAML"))

		var decoded map[string]any
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, []any{"volume:abc"}, decoded["volumes"])
		assert.Equal(t, 50, decoded["wordLimit"])
	})

	t.Run("unknown", func(t *testing.T) {
		err := encodeInputConfig(&bytes.Buffer{}, input, "toml")
		require.Error(t, err)
		assert.Equal(t, `unknown format "toml" (allowed: json, yaml)`, err.Error())
	})
}
