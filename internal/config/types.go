// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

// Icon modes for console output.
const (
	IconsAuto   = "auto"
	IconsAlways = "always"
	IconsNever  = "never"
)

// Defaults.
const (
	DefaultInput         = "TV Channels.txt"
	DefaultOutput        = "channel_categories.txt"
	DefaultPreview       = 5
	DefaultProgressEvery = 10000
	DefaultLogLevel      = "info"
)

// Environment keys.
const (
	EnvConfig        = "CHANCAT_CONFIG"
	EnvInput         = "CHANCAT_INPUT"
	EnvOutput        = "CHANCAT_OUTPUT"
	EnvPreview       = "CHANCAT_PREVIEW"
	EnvIcons         = "CHANCAT_ICONS"
	EnvProgressEvery = "CHANCAT_PROGRESS_EVERY"
	EnvLogLevel      = "CHANCAT_LOG_LEVEL"

	// EnvLogLevelGeneric is honoured below EnvLogLevel.
	EnvLogLevelGeneric = "LOG_LEVEL"
)

// AppConfig is the effective configuration of a run.
type AppConfig struct {
	Version string `yaml:"-" json:"-"`

	Input         string              `yaml:"input" json:"input"`
	Output        string              `yaml:"output" json:"output"`
	Preview       int                 `yaml:"preview" json:"preview"`
	Icons         string              `yaml:"icons" json:"icons"`
	ProgressEvery int                 `yaml:"progressEvery" json:"progressEvery"`
	LogLevel      string              `yaml:"logLevel" json:"logLevel"`
	Keywords      map[string][]string `yaml:"keywords,omitempty" json:"keywords,omitempty"`
}

// FileConfig represents the YAML configuration structure.
type FileConfig struct {
	Input   string        `yaml:"input,omitempty"`
	Output  string        `yaml:"output,omitempty"`
	Console ConsoleConfig `yaml:"console,omitempty"`
	Scan    ScanConfig    `yaml:"scan,omitempty"`
	Log     LogConfig     `yaml:"log,omitempty"`
	Rules   RulesConfig   `yaml:"rules,omitempty"`
}

// ConsoleConfig holds console rendering settings.
type ConsoleConfig struct {
	Preview *int   `yaml:"preview,omitempty"`
	Icons   string `yaml:"icons,omitempty"`
}

// ScanConfig holds input scanning settings.
type ScanConfig struct {
	ProgressEvery *int `yaml:"progressEvery,omitempty"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// RulesConfig extends the built-in categorization tables.
type RulesConfig struct {
	// Keywords maps a keyword group ID (series, movie, sports, ...) to
	// additional keywords for that group.
	Keywords map[string][]string `yaml:"keywords,omitempty"`
}

// Overrides carries command-line values. Nil fields leave the loaded value alone.
type Overrides struct {
	Input    *string
	Output   *string
	Preview  *int
	Icons    *string
	LogLevel *string
}
