// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/ManuGH/chancat/internal/category"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newRulesCmd(flags *globalFlags, stderr io.Writer) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Print the effective categorization rules in evaluation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags, stderr)
			if err != nil {
				return err
			}
			c, err := category.New(cfg.Keywords)
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), format, c.Rules())
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	return cmd
}

// encode writes v to w as YAML or JSON.
func encode(w io.Writer, format string, v any) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
		return nil
	default:
		return &usageError{err: fmt.Errorf("unsupported format: %s (use yaml or json)", format)}
	}
}
