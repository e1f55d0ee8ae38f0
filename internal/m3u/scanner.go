// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package m3u

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// MaxLineSize bounds a single playlist line. Longer lines are skipped and
// counted in Stats.Oversized.
const MaxLineSize = 4 << 20

const readBufferSize = 64 << 10

// Stats counts what a Scanner has consumed so far.
type Stats struct {
	Lines     int `json:"lines"`
	Metadata  int `json:"metadata"`
	Titles    int `json:"titles"`
	Malformed int `json:"malformed"`
	Oversized int `json:"oversized"`
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithProgress calls fn after every n lines read. n <= 0 disables it.
func WithProgress(n int, fn func(Stats)) Option {
	return func(s *Scanner) {
		s.progressEvery = n
		s.onProgress = fn
	}
}

// Scanner yields the channel titles of a playlist one at a time. It makes a
// single forward pass over its source and cannot be restarted.
//
// The source is decoded as UTF-8; a leading byte order mark selects UTF-8 or
// UTF-16 instead. Undecodable byte sequences are dropped.
type Scanner struct {
	r     *bufio.Reader
	line  []byte
	eof   bool
	title string
	stats Stats
	err   error

	progressEvery int
	onProgress    func(Stats)
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader, opts ...Option) *Scanner {
	decoded := transform.NewReader(r, transform.Chain(
		unicode.BOMOverride(unicode.UTF8.NewDecoder()),
		runes.Remove(runes.Predicate(isReplacement)),
	))

	s := &Scanner{r: bufio.NewReaderSize(decoded, readBufferSize)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Next advances to the next title. It returns false at the end of input or
// on a read error; Err distinguishes the two. Lines longer than MaxLineSize
// are skipped.
func (s *Scanner) Next() bool {
	for s.err == nil && !s.eof {
		raw, oversize, err := s.readLine()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.err = err
				break
			}
			s.eof = true
			if len(raw) == 0 && !oversize {
				break
			}
		}

		s.stats.Lines++
		if s.onProgress != nil && s.progressEvery > 0 && s.stats.Lines%s.progressEvery == 0 {
			s.onProgress(s.stats)
		}
		if oversize {
			s.stats.Oversized++
			continue
		}

		line := strings.TrimSpace(string(raw))
		if !IsMetadata(line) {
			continue
		}
		s.stats.Metadata++

		title, ok := Attr(line, NameAttr)
		if !ok {
			s.stats.Malformed++
			continue
		}
		s.stats.Titles++
		s.title = title
		return true
	}
	s.title = ""
	return false
}

// readLine returns the next line including its terminator. A line longer
// than MaxLineSize is consumed to its end and reported as oversize with no
// content.
func (s *Scanner) readLine() ([]byte, bool, error) {
	s.line = s.line[:0]
	oversize := false
	for {
		chunk, err := s.r.ReadSlice('\n')
		if !oversize {
			if len(s.line)+len(chunk) > MaxLineSize {
				oversize = true
				s.line = s.line[:0]
			} else {
				s.line = append(s.line, chunk...)
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}
		return s.line, oversize, err
	}
}

// Title returns the title found by the last successful call to Next.
func (s *Scanner) Title() string {
	return s.title
}

// Err returns the first read error, or nil at a clean end of input.
func (s *Scanner) Err() error {
	return s.err
}

// Stats returns the counters accumulated so far.
func (s *Scanner) Stats() Stats {
	return s.stats
}

// Decoders emit U+FFFD for input they cannot decode.
func isReplacement(r rune) bool {
	return r == utf8.RuneError
}
