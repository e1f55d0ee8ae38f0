// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader handles configuration loading with precedence
type Loader struct {
	configPath      string
	version         string
	overrides       Overrides
	ConsumedEnvKeys map[string]struct{} // Mechanical tracking of consumed keys
}

// NewLoader creates a new configuration loader
func NewLoader(configPath, version string) *Loader {
	return &Loader{
		configPath:      configPath,
		version:         version,
		ConsumedEnvKeys: make(map[string]struct{}),
	}
}

// WithOverrides sets command-line values applied after the environment.
func (l *Loader) WithOverrides(o Overrides) *Loader {
	l.overrides = o
	return l
}

func (l *Loader) envString(key, defaultVal string) string {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseString(key, defaultVal)
}

func (l *Loader) envInt(key string, defaultVal int) int {
	l.ConsumedEnvKeys[key] = struct{}{}
	return ParseInt(key, defaultVal)
}

// Load loads configuration with precedence: Flags > ENV > File > Defaults
// and validates the result.
func (l *Loader) Load() (AppConfig, error) {
	cfg := Defaults()

	if l.configPath != "" {
		fileCfg, err := l.loadFile(l.configPath)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		mergeFileConfig(&cfg, fileCfg)
	}

	l.mergeEnvConfig(&cfg)
	l.mergeOverrides(&cfg)

	cfg.Icons = strings.ToLower(strings.TrimSpace(cfg.Icons))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Version = l.version

	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Defaults returns the built-in configuration.
func Defaults() AppConfig {
	return AppConfig{
		Input:         DefaultInput,
		Output:        DefaultOutput,
		Preview:       DefaultPreview,
		Icons:         IconsAuto,
		ProgressEvery: DefaultProgressEvery,
		LogLevel:      DefaultLogLevel,
	}
}

// loadFile loads configuration from a YAML file with STRICT parsing.
// Unknown fields will cause a fatal error to prevent misconfiguration.
func (l *Loader) loadFile(path string) (*FileConfig, error) {
	path = filepath.Clean(path)

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("unsupported config format: %s (only YAML supported)", ext)
	}

	// #nosec G304 -- configuration file paths are provided by the operator via CLI/ENV
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var fileCfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true) // Reject unknown fields

	if err := dec.Decode(&fileCfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &FileConfig{}, nil
		}
		if strings.Contains(err.Error(), "field") && strings.Contains(err.Error(), "not found") {
			return nil, fmt.Errorf("strict config parse error: %w: %w", ErrUnknownConfigField, err)
		}
		return nil, fmt.Errorf("strict config parse error: %w", err)
	}

	// Strict: Ensure no multiple documents or trailing content
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config file contains multiple documents or trailing content")
	}

	return &fileCfg, nil
}

func mergeFileConfig(cfg *AppConfig, fc *FileConfig) {
	if fc.Input != "" {
		cfg.Input = fc.Input
	}
	if fc.Output != "" {
		cfg.Output = fc.Output
	}
	if fc.Console.Preview != nil {
		cfg.Preview = *fc.Console.Preview
	}
	if fc.Console.Icons != "" {
		cfg.Icons = fc.Console.Icons
	}
	if fc.Scan.ProgressEvery != nil {
		cfg.ProgressEvery = *fc.Scan.ProgressEvery
	}
	if fc.Log.Level != "" {
		cfg.LogLevel = fc.Log.Level
	}
	if len(fc.Rules.Keywords) > 0 {
		cfg.Keywords = make(map[string][]string, len(fc.Rules.Keywords))
		for _, group := range slices.Sorted(maps.Keys(fc.Rules.Keywords)) {
			cfg.Keywords[group] = slices.Clone(fc.Rules.Keywords[group])
		}
	}
}

func (l *Loader) mergeEnvConfig(cfg *AppConfig) {
	cfg.Input = l.envString(EnvInput, cfg.Input)
	cfg.Output = l.envString(EnvOutput, cfg.Output)
	cfg.Preview = l.envInt(EnvPreview, cfg.Preview)
	cfg.Icons = l.envString(EnvIcons, cfg.Icons)
	cfg.ProgressEvery = l.envInt(EnvProgressEvery, cfg.ProgressEvery)
	cfg.LogLevel = l.envString(EnvLogLevelGeneric, cfg.LogLevel)
	cfg.LogLevel = l.envString(EnvLogLevel, cfg.LogLevel)
}

func (l *Loader) mergeOverrides(cfg *AppConfig) {
	o := l.overrides
	if o.Input != nil {
		cfg.Input = *o.Input
	}
	if o.Output != nil {
		cfg.Output = *o.Output
	}
	if o.Preview != nil {
		cfg.Preview = *o.Preview
	}
	if o.Icons != nil {
		cfg.Icons = *o.Icons
	}
	if o.LogLevel != nil {
		cfg.LogLevel = *o.LogLevel
	}
}
