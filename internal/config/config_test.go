// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ManuGH/chancat/internal/category"
	"github.com/ManuGH/chancat/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvInput, EnvOutput, EnvPreview, EnvIcons, EnvProgressEvery, EnvLogLevel, EnvLogLevelGeneric} {
		t.Setenv(key, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader("", "v1.0.0").Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultInput, cfg.Input)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, DefaultPreview, cfg.Preview)
	assert.Equal(t, IconsAuto, cfg.Icons)
	assert.Equal(t, DefaultProgressEvery, cfg.ProgressEvery)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, "v1.0.0", cfg.Version)
	assert.Empty(t, cfg.Keywords)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	cfg, err := NewLoader("testdata/valid.yaml", "").Load()
	require.NoError(t, err)

	assert.Equal(t, "playlists/tv.m3u", cfg.Input)
	assert.Equal(t, "reports/categories.txt", cfg.Output)
	assert.Equal(t, 3, cfg.Preview)
	assert.Equal(t, IconsNever, cfg.Icons)
	assert.Equal(t, 500, cfg.ProgressEvery)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"ligtv"}, cfg.Keywords["sports"])
	assert.Equal(t, []string{"bloomberg ht"}, cfg.Keywords["news"])
}

func TestLoad_ExplicitZeroPreviewInFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "console:\n  preview: 0\n")

	cfg, err := NewLoader(path, "").Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Preview)
}

func TestLoad_EmptyFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "")

	cfg, err := NewLoader(path, "").Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultInput, cfg.Input)
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvInput, "env.m3u")
	t.Setenv(EnvPreview, "7")
	t.Setenv(EnvIcons, "ALWAYS")

	output := "flag.txt"
	preview := 2
	cfg, err := NewLoader("testdata/valid.yaml", "").
		WithOverrides(Overrides{Output: &output, Preview: &preview}).
		Load()
	require.NoError(t, err)

	assert.Equal(t, "env.m3u", cfg.Input, "env beats file")
	assert.Equal(t, "flag.txt", cfg.Output, "flag beats file")
	assert.Equal(t, 2, cfg.Preview, "flag beats env")
	assert.Equal(t, IconsAlways, cfg.Icons, "env beats file, normalized to lower case")
	assert.Equal(t, 500, cfg.ProgressEvery, "file beats default")
}

func TestLoad_LogLevelEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvLogLevelGeneric, "debug")

	cfg, err := NewLoader("", "").Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)

	t.Setenv(EnvLogLevel, "warn")
	cfg, err = NewLoader("", "").Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel, "CHANCAT_LOG_LEVEL beats LOG_LEVEL")

	level := "error"
	cfg, err = NewLoader("", "").WithOverrides(Overrides{LogLevel: &level}).Load()
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel, "flag beats env")
}

func TestLoad_InvalidEnvIntegerFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvPreview, "many")

	cfg, err := NewLoader("", "").Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPreview, cfg.Preview)
}

func TestLoad_ConsumedEnvKeys(t *testing.T) {
	clearEnv(t)

	l := NewLoader("", "")
	_, err := l.Load()
	require.NoError(t, err)

	for _, key := range []string{EnvInput, EnvOutput, EnvPreview, EnvIcons, EnvProgressEvery, EnvLogLevel} {
		assert.Contains(t, l.ConsumedEnvKeys, key)
	}
}

func TestLoad_FileErrors(t *testing.T) {
	clearEnv(t)

	t.Run("unknown field", func(t *testing.T) {
		_, err := NewLoader("testdata/unknown-field.yaml", "").Load()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownConfigField)
	})

	t.Run("multiple documents", func(t *testing.T) {
		path := writeConfig(t, "input: a.m3u\n---\ninput: b.m3u\n")
		_, err := NewLoader(path, "").Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "multiple documents")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))
		_, err := NewLoader(path, "").Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "only YAML supported")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := NewLoader(filepath.Join(t.TempDir(), "absent.yaml"), "").Load()
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"negative preview", "console:\n  preview: -1\n", "Preview"},
		{"negative progress", "scan:\n  progressEvery: -5\n", "ProgressEvery"},
		{"bad icons", "console:\n  icons: sometimes\n", "Icons"},
		{"bad log level", "log:\n  level: loud\n", "LogLevel"},
		{"same paths", "input: same.txt\noutput: ./same.txt\n", "Output"},
		{"unknown group", "rules:\n  keywords:\n    weather: [storm]\n", "Keywords"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := NewLoader(writeConfig(t, tt.body), "").Load()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidate_UnknownGroupWrapsCategoryError(t *testing.T) {
	cfg := Defaults()
	cfg.Keywords = map[string][]string{"weather": {"storm"}}

	err := Validate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, category.ErrUnknownGroup)
	assert.Contains(t, err.Error(), "Keywords")
}

func TestLoad_UnknownGroupFromFileKeepsSentinels(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "console:\n  preview: -1\nrules:\n  keywords:\n    weather: [storm]\n")

	_, err := NewLoader(path, "").Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, category.ErrUnknownGroup)

	var ve validate.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors(), 1)
	assert.Equal(t, "Preview", ve.Errors()[0].Field)
}

func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, Validate(Defaults()))
}

func TestParseString(t *testing.T) {
	t.Setenv("CHANCAT_TEST_STRING", "value")
	assert.Equal(t, "value", ParseString("CHANCAT_TEST_STRING", "fallback"))

	t.Setenv("CHANCAT_TEST_STRING", "")
	assert.Equal(t, "fallback", ParseString("CHANCAT_TEST_STRING", "fallback"))

	assert.Equal(t, "fallback", ParseString("CHANCAT_TEST_UNSET_STRING", "fallback"))
}

func TestParseInt(t *testing.T) {
	t.Setenv("CHANCAT_TEST_INT", "42")
	assert.Equal(t, 42, ParseInt("CHANCAT_TEST_INT", 1))

	t.Setenv("CHANCAT_TEST_INT", "x")
	assert.Equal(t, 1, ParseInt("CHANCAT_TEST_INT", 1))
}
