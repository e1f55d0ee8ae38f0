// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

//go:build !windows

package report

import (
	"context"
	"fmt"

	xglog "github.com/ManuGH/chancat/internal/log"
	"github.com/google/renameio/v2"
)

// WriteFile writes the text report to path with full durability guarantees.
// The target is replaced atomically; on error no partial file is left behind.
func WriteFile(ctx context.Context, path string, groups []Group) error {
	logger := xglog.FromContext(ctx)

	pendingFile, err := renameio.NewPendingFile(path,
		renameio.WithPermissions(0o644),
		renameio.WithExistingPermissions(),
	)
	if err != nil {
		return fmt.Errorf("create pending report file: %w", err)
	}
	defer func() {
		// no-op once committed
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug().Err(err).Msg("cleanup pending report file")
		}
	}()

	if err := WriteText(pendingFile, groups); err != nil {
		return fmt.Errorf("write report data: %w", err)
	}

	// fsync + rename
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace report file: %w", err)
	}

	logger.Debug().Str(xglog.FieldOutputPath, path).Msg("wrote report file")
	return nil
}
