package main

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rgonek/richtext-field/fieldtype"
	"github.com/rgonek/richtext-field/logging"
)

const (
	presetBalanced = "balanced"
	presetStrict   = "strict"
	presetPreview  = "preview"
	presetRaw      = "raw"
)

const envPrefix = "RTFIELD"

// fileConfig is the layout of the --config YAML file.
type fileConfig struct {
	Settings    fieldtype.Settings          `mapstructure:"settings"`
	Catalog     fieldtype.StaticCatalog     `mapstructure:"catalog"`
	Permissions fieldtype.StaticPermissions `mapstructure:"permissions"`
	User        fieldtype.User              `mapstructure:"user"`
	Log         logging.Config              `mapstructure:"log"`
}

// overrides holds values given explicitly on the command line.
type overrides struct {
	MediaPreview *bool
	Purifier     string
}

// loadFileConfig reads path (when set) and the RTFIELD_* environment.
func loadFileConfig(path string) (fileConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	if err := v.BindEnv("settings.mediaPreview", envPrefix+"_MEDIA_PREVIEW"); err != nil {
		return fileConfig{}, err
	}
	if err := v.BindEnv("settings.purifier", envPrefix+"_PURIFIER"); err != nil {
		return fileConfig{}, err
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return fileConfig{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg fileConfig
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return fileConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func applyPreset(base fieldtype.Settings, preset string) (fieldtype.Settings, error) {
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", presetBalanced:
		return base, nil
	case presetStrict:
		base.Purifier = fieldtype.PurifierBasic
		return base, nil
	case presetPreview:
		base.MediaPreview = true
		return base, nil
	case presetRaw:
		base.Purifier = fieldtype.PurifierNone
		return base, nil
	default:
		return fieldtype.Settings{}, fmt.Errorf("unknown preset %q (allowed: balanced, strict, preview, raw)", preset)
	}
}

// resolveSettings layers the preset and then explicit flags over the file settings.
func resolveSettings(base fieldtype.Settings, preset string, o overrides) (fieldtype.Settings, error) {
	cfg, err := applyPreset(base, preset)
	if err != nil {
		return fieldtype.Settings{}, err
	}

	if o.MediaPreview != nil {
		cfg.MediaPreview = *o.MediaPreview
	}
	if o.Purifier != "" {
		cfg.Purifier = fieldtype.PurifierPreset(strings.ToLower(strings.TrimSpace(o.Purifier)))
	}
	return cfg, nil
}

func flagOverrides(cmd *cobra.Command) overrides {
	var o overrides
	if f := cmd.Flags().Lookup("media-preview"); f != nil && f.Changed {
		v := mediaPreviewFlag
		o.MediaPreview = &v
	}
	if f := cmd.Flags().Lookup("purifier"); f != nil && f.Changed {
		o.Purifier = purifierFlag
	}
	return o
}
