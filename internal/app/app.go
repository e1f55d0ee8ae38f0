// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package app runs one categorization pass: scan the playlist, categorize
// every title, print the console overview and write the report file.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ManuGH/chancat/internal/category"
	"github.com/ManuGH/chancat/internal/config"
	xglog "github.com/ManuGH/chancat/internal/log"
	"github.com/ManuGH/chancat/internal/m3u"
	"github.com/ManuGH/chancat/internal/report"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	// ErrSourceUnreadable reports that the playlist could not be opened or read.
	ErrSourceUnreadable = errors.New("source unreadable")
	// ErrReportWrite reports that the report file could not be written.
	ErrReportWrite = errors.New("report write failed")
)

// Options controls presentation of a run.
type Options struct {
	// Stdout receives the console overview. Nil discards it.
	Stdout io.Writer
	// Icons prefixes category names with their icon on the console.
	Icons bool
}

// Result describes a completed run.
type Result struct {
	RunID    string
	Stats    m3u.Stats
	Groups   []report.Group
	Duration time.Duration
}

// Run executes the pipeline for cfg. The report file is only written after
// the whole input was scanned; a scan failure leaves the output untouched.
func Run(ctx context.Context, cfg config.AppConfig, opts Options) (*Result, error) {
	out := opts.Stdout
	if out == nil {
		out = io.Discard
	}

	categorizer, err := category.New(cfg.Keywords)
	if err != nil {
		return nil, fmt.Errorf("build categorizer: %w", err)
	}

	runID := uuid.NewString()
	ctx = xglog.ContextWithRunID(ctx, runID)
	logger := xglog.WithComponentFromContext(ctx, "app")
	ctx = logger.WithContext(ctx)
	start := time.Now()

	logger.Info().
		Str(xglog.FieldEvent, "run.start").
		Str(xglog.FieldInputPath, cfg.Input).
		Str(xglog.FieldOutputPath, cfg.Output).
		Msg("starting categorization")

	fmt.Fprintf(out, "Reading file: %s\n", cfg.Input)

	idx, stats, err := scan(ctx, logger, cfg, categorizer)
	if err != nil {
		logger.Error().
			Err(err).
			Str(xglog.FieldEvent, "run.failed").
			Str(xglog.FieldInputPath, cfg.Input).
			Msg("scan failed")
		return nil, err
	}

	groups := idx.Groups()
	res := &Result{RunID: runID, Stats: stats, Groups: groups}

	if err := report.WriteConsole(out, groups, report.ConsoleOptions{Preview: cfg.Preview, Icons: opts.Icons}); err != nil {
		return nil, fmt.Errorf("write console report: %w", err)
	}

	if err := report.WriteFile(ctx, cfg.Output, groups); err != nil {
		logger.Error().
			Err(err).
			Str(xglog.FieldEvent, "report.write_failed").
			Str(xglog.FieldOutputPath, cfg.Output).
			Msg("failed to write report")
		return nil, fmt.Errorf("%w: %w", ErrReportWrite, err)
	}

	fmt.Fprintf(out, "\n\nResults saved: %s\n", cfg.Output)
	if err := report.WriteSummary(out, groups); err != nil {
		return nil, fmt.Errorf("write console summary: %w", err)
	}

	res.Duration = time.Since(start)
	logger.Info().
		Str(xglog.FieldEvent, "run.complete").
		Int(xglog.FieldLines, stats.Lines).
		Int(xglog.FieldTitles, stats.Titles).
		Int(xglog.FieldMalformed, stats.Malformed).
		Int(xglog.FieldOversized, stats.Oversized).
		Int(xglog.FieldCategories, len(groups)).
		Int64(xglog.FieldDurationMS, res.Duration.Milliseconds()).
		Msg("categorization complete")

	return res, nil
}

// scan reads the playlist at cfg.Input and files every title.
func scan(ctx context.Context, logger zerolog.Logger, cfg config.AppConfig, c *category.Categorizer) (*report.Index, m3u.Stats, error) {
	// #nosec G304 -- the input path is provided by the operator via CLI/ENV/config
	f, err := os.Open(cfg.Input)
	if err != nil {
		return nil, m3u.Stats{}, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			logger.Debug().Err(cerr).Msg("close input")
		}
	}()

	progress := func(s m3u.Stats) {
		logger.Info().
			Str(xglog.FieldEvent, "scan.progress").
			Int(xglog.FieldLines, s.Lines).
			Int(xglog.FieldTitles, s.Titles).
			Msg("lines read")
	}

	sc := m3u.NewScanner(f, m3u.WithProgress(cfg.ProgressEvery, progress))
	idx := report.NewIndex()
	for sc.Next() {
		if err := ctx.Err(); err != nil {
			return nil, sc.Stats(), err
		}
		idx.Add(c.Categorize(sc.Title()), sc.Title())
	}
	if err := sc.Err(); err != nil {
		return nil, sc.Stats(), fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, sc.Stats(), err
	}

	stats := sc.Stats()
	logger.Debug().
		Str(xglog.FieldEvent, "scan.complete").
		Int(xglog.FieldLines, stats.Lines).
		Int(xglog.FieldTitles, idx.Total()).
		Int(xglog.FieldMalformed, stats.Malformed).
		Int(xglog.FieldOversized, stats.Oversized).
		Int(xglog.FieldCategories, idx.Len()).
		Msg("scan complete")
	return idx, stats, nil
}
