package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rgonek/richtext-field/fieldtype"
	"github.com/rgonek/richtext-field/logging"
)

var (
	configFile string
	presetName string
	logLevel   string
	logFormat  string

	mediaPreviewFlag bool
	purifierFlag     string
)

var rootCmd = &cobra.Command{
	Use:   "rtfield",
	Short: "Migrate and inspect rich text field markup",
	Long: `rtfield rewrites stored rich text values into the current editor dialect:
figures are tagged image or media, iframe embeds become oembed references or
preview wrappers, and values are sanitized with the field's purifier preset.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML file with settings, catalog, permissions and user")
	rootCmd.PersistentFlags().StringVarP(&presetName, "preset", "p", "", "Preset: balanced|strict|preview|raw")
	rootCmd.PersistentFlags().BoolVar(&mediaPreviewFlag, "media-preview", false, "Keep embeds as editor preview wrappers instead of oembed references")
	rootCmd.PersistentFlags().StringVar(&purifierFlag, "purifier", "", "Sanitization preset: none|default|basic")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace|debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: console|json|pretty")
}

// newField loads configuration, applies preset and flag overrides and builds the field.
func newField(cmd *cobra.Command) (*fieldtype.Field, fileConfig, logging.Logger, error) {
	cfg, err := loadFileConfig(configFile)
	if err != nil {
		return nil, fileConfig{}, nil, err
	}

	settings, err := resolveSettings(cfg.Settings, presetName, flagOverrides(cmd))
	if err != nil {
		return nil, fileConfig{}, nil, fmt.Errorf("invalid preset: %w", err)
	}
	cfg.Settings = settings

	logger, err := newLogger(cfg.Log)
	if err != nil {
		return nil, fileConfig{}, nil, err
	}

	field, err := fieldtype.New(settings, fieldtype.Options{
		Permissions: cfg.Permissions,
		Catalog:     cfg.Catalog,
		Logger:      logger.GetLogger("rtfield.field"),
	})
	if err != nil {
		return nil, fileConfig{}, nil, fmt.Errorf("invalid settings: %w", err)
	}
	return field, cfg, logger.GetLogger("rtfield.cli"), nil
}

// newLogger builds the log provider. Flags win over the config file.
func newLogger(cfg logging.Config) (*logging.Provider, error) {
	if logLevel != "" {
		cfg.Level = logLevel
	}
	if logFormat != "" {
		cfg.Format = logFormat
	}
	if cfg.Level == "" {
		cfg.Level = "warn"
	}
	return logging.NewProvider(cfg)
}

func readInput(path string) ([]byte, error) {
	if path == stdinPath {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
