// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ManuGH/chancat/internal/app"
	"github.com/ManuGH/chancat/internal/config"
	xglog "github.com/ManuGH/chancat/internal/log"
	"github.com/ManuGH/chancat/internal/version"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// globalFlags holds the flags shared by every command.
type globalFlags struct {
	configPath string
	input      string
	output     string
	preview    int
	icons      string
	logLevel   string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "chancat",
		Short: "Categorize the channels of an M3U playlist",
		Long: `chancat reads an extended M3U playlist, files every channel under exactly
one category using keyword and country-code rules, prints an overview and
writes a grouped report file.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags, stderr)
			if err != nil {
				return err
			}

			logger := xglog.WithComponent("cli")
			logger.Debug().
				Str(xglog.FieldEvent, "config.loaded").
				Str(xglog.FieldConfigPath, flags.configPath).
				Msg("configuration loaded")

			_, err = app.Run(cmd.Context(), cfg, app.Options{
				Stdout: stdout,
				Icons:  iconsEnabled(cfg.Icons, stdout),
			})
			return err
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "path to YAML configuration file (env "+config.EnvConfig+")")
	pf.StringVarP(&flags.input, "input", "i", config.DefaultInput, "playlist to read")
	pf.StringVarP(&flags.output, "output", "o", config.DefaultOutput, "report file to write")
	pf.IntVar(&flags.preview, "preview", config.DefaultPreview, "titles shown per category on the console")
	pf.StringVar(&flags.icons, "icons", config.IconsAuto, "category icons: auto, always or never")
	pf.StringVar(&flags.logLevel, "log-level", config.DefaultLogLevel, "log level: trace, debug, info, warn, error")

	cmd.AddCommand(
		newRulesCmd(flags, stderr),
		newConfigCmd(flags, stderr),
		newVersionCmd(),
	)
	return cmd
}

// loadConfig resolves the effective configuration and configures logging.
// Only flags given on the command line override file and environment values.
func loadConfig(cmd *cobra.Command, flags *globalFlags, stderr io.Writer) (config.AppConfig, error) {
	path := strings.TrimSpace(flags.configPath)
	if path == "" {
		path = strings.TrimSpace(os.Getenv(config.EnvConfig))
	}
	flags.configPath = path

	var o config.Overrides
	changed := cmd.Flags().Changed
	if changed("input") {
		o.Input = &flags.input
	}
	if changed("output") {
		o.Output = &flags.output
	}
	if changed("preview") {
		o.Preview = &flags.preview
	}
	if changed("icons") {
		o.Icons = &flags.icons
	}
	if changed("log-level") {
		o.LogLevel = &flags.logLevel
	}

	cfg, err := config.NewLoader(path, version.Version).WithOverrides(o).Load()
	if err != nil {
		return cfg, &usageError{err: fmt.Errorf("configuration: %w", err)}
	}

	xglog.Configure(xglog.Config{
		Level:   cfg.LogLevel,
		Output:  stderr,
		Service: "chancat",
		Version: version.Version,
	})
	return cfg, nil
}

// iconsEnabled resolves an icon mode. Auto enables icons only when w is a terminal.
func iconsEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.IconsAlways:
		return true
	case config.IconsNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}
