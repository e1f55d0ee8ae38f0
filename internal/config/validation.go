// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package config

import (
	"errors"
	"fmt"

	"github.com/ManuGH/chancat/internal/category"
	"github.com/ManuGH/chancat/internal/validate"
)

// Validate validates an AppConfig using the centralized validation package.
// Keyword errors keep their category sentinel so callers can match them
// with errors.Is.
func Validate(cfg AppConfig) error {
	v := validate.New()

	v.NotEmpty("Input", cfg.Input)
	v.NotEmpty("Output", cfg.Output)
	// The report must never overwrite the playlist it was built from.
	v.DistinctPaths("Output", cfg.Output, cfg.Input)

	v.NonNegative("Preview", cfg.Preview)
	v.NonNegative("ProgressEvery", cfg.ProgressEvery)
	v.OneOf("Icons", cfg.Icons, []string{IconsAuto, IconsAlways, IconsNever})
	v.LogLevel("LogLevel", cfg.LogLevel)

	var keywordErr error
	if len(cfg.Keywords) > 0 {
		if _, err := category.New(cfg.Keywords); err != nil {
			keywordErr = fmt.Errorf("validation failed for Keywords: %w", err)
		}
	}

	return errors.Join(v.Err(), keywordErr)
}
