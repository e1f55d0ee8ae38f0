// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package log

// Canonical field name constants for structured logging.
const (
	// Identity fields
	FieldService = "service"
	FieldVersion = "version"
	FieldRunID   = "run_id"

	// Process / pipeline fields
	FieldEvent     = "event"
	FieldComponent = "component"

	// Path fields
	FieldInputPath  = "input_path"
	FieldOutputPath = "output_path"
	FieldConfigPath = "config_path"

	// Scan / report fields
	FieldLines      = "lines"
	FieldTitles     = "titles"
	FieldMalformed  = "malformed"
	FieldOversized  = "oversized"
	FieldCategories = "categories"
	FieldDurationMS = "duration_ms"
)
