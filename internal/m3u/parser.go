// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package m3u reads channel titles out of extended M3U playlists.
package m3u

import "strings"

const (
	// Marker starts every metadata line.
	Marker = "#EXTINF"
	// NameAttr carries the channel display name on a metadata line.
	NameAttr = "tvg-name"
)

// IsMetadata reports whether line (already trimmed) describes a channel entry.
func IsMetadata(line string) bool {
	return strings.HasPrefix(line, Marker)
}

// Attr returns the value of the first key="value" attribute on line with a
// non-empty value. The key must not be the tail of a longer attribute name,
// so "tvg-name" does not match inside "x-tvg-name".
func Attr(line, key string) (string, bool) {
	needle := key + `="`
	for from := 0; from < len(line); {
		idx := strings.Index(line[from:], needle)
		if idx == -1 {
			return "", false
		}
		idx += from
		start := idx + len(needle)
		from = start

		if idx > 0 && isNameByte(line[idx-1]) {
			continue
		}
		end := strings.IndexByte(line[start:], '"')
		if end == -1 {
			return "", false
		}
		if end == 0 {
			continue
		}
		return line[start : start+end], true
	}
	return "", false
}

func isNameByte(b byte) bool {
	return b == '-' || b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
