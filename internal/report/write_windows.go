// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

//go:build windows

package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	xglog "github.com/ManuGH/chancat/internal/log"
)

// WriteFile writes the text report to path using temp file + rename.
// Windows offers no atomic replace with fsync, so this is best-effort.
func WriteFile(ctx context.Context, path string, groups []Group) error {
	logger := xglog.FromContext(ctx)

	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".chancat-report-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp report file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if err := WriteText(tmpFile, groups); err != nil {
		return fmt.Errorf("write report data: %w", err)
	}

	// Close before rename (Windows requires this)
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp report file: %w", err)
	}
	tmpFile = nil

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename report file: %w", err)
	}

	logger.Debug().Str(xglog.FieldOutputPath, path).Msg("wrote report file")
	return nil
}
