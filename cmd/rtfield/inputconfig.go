package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rgonek/richtext-field/fieldtype"
	"github.com/rgonek/richtext-field/internal/derrors"
)

var outputFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the editor configuration for the configured user",
	Long: `config assembles the client-side editor configuration from the settings,
catalog, permissions and user in the --config file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		defer derrors.Wrap(&err)

		field, cfg, _, err := newField(cmd)
		if err != nil {
			return err
		}

		input, err := field.InputConfig(cmd.Context(), cfg.User)
		if err != nil {
			return err
		}
		return encodeInputConfig(cmd.OutOrStdout(), input, outputFormat)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json|yaml")
}

func encodeInputConfig(w io.Writer, cfg fieldtype.InputConfig, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (allowed: json, yaml)", format)
	}
}
