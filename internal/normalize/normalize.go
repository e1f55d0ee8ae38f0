// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package normalize prepares channel titles for keyword matching.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Token normalizes a string token for matching:
// - composes to NFC so decomposed diacritics match the keyword tables
// - trims Unicode whitespace + invisible edge characters
// - lowercases for case-insensitive comparisons
func Token(s string) string {
	s = norm.NFC.String(s)
	s = strings.TrimFunc(s, isEdgeRune)
	// cases.Caser keeps state between calls; one per call.
	return cases.Lower(language.Und).String(s)
}

// Upper returns s uppercased with Unicode-aware casing rules.
func Upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func isEdgeRune(r rune) bool {
	return unicode.IsSpace(r) ||
		r == '\u200B' || // Zero Width Space
		r == '\u200C' || // Zero Width Non-Joiner
		r == '\u200D' || // Zero Width Joiner
		r == '\uFEFF' // Zero Width Non-Breaking Space (BOM)
}
