// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/ManuGH/chancat/internal/normalize"
)

// DefaultPreview is how many titles per category the console shows.
const DefaultPreview = 5

const lineWidth = 80

var (
	heavyRule = strings.Repeat("=", lineWidth)
	lightRule = strings.Repeat("-", lineWidth)
)

// ConsoleOptions controls console rendering.
type ConsoleOptions struct {
	Preview int  // titles shown per category; negative means DefaultPreview
	Icons   bool // prefix category names with their icon
}

// WriteConsole renders the category overview: total count, then per group
// the name, count and the first Preview titles.
func WriteConsole(w io.Writer, groups []Group, opts ConsoleOptions) error {
	preview := opts.Preview
	if preview < 0 {
		preview = DefaultPreview
	}

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "\nFound %s in total\n\n", channels(countTitles(groups)))
	buf.WriteString(heavyRule + "\n")

	for _, g := range groups {
		name := g.Category.String()
		if opts.Icons {
			name = g.Category.Icon() + " " + name
		}
		fmt.Fprintf(buf, "\n%s: %s\n", name, channels(len(g.Titles)))
		buf.WriteString(lightRule + "\n")

		shown := min(preview, len(g.Titles))
		for i, title := range g.Titles[:shown] {
			fmt.Fprintf(buf, "  %d. %s\n", i+1, title)
		}
		if rest := len(g.Titles) - shown; rest > 0 {
			fmt.Fprintf(buf, "  ... and %d more\n", rest)
		}
	}

	_, err := io.Copy(w, buf)
	return err
}

// WriteSummary renders the closing totals line.
func WriteSummary(w io.Writer, groups []Group) error {
	_, err := fmt.Fprintf(w, "Total: %s, %s\n", channels(countTitles(groups)), categories(len(groups)))
	return err
}

// WriteText renders the full report: every group with a header block and
// its complete numbered title list, followed by a summary block.
func WriteText(w io.Writer, groups []Group) error {
	buf := &bytes.Buffer{}
	buf.WriteString("CHANNEL CATEGORIZATION REPORT\n")
	buf.WriteString(heavyRule + "\n\n")

	for _, g := range groups {
		buf.WriteString("\n" + heavyRule + "\n")
		fmt.Fprintf(buf, "%s (%s)\n", normalize.Upper(g.Category.String()), channels(len(g.Titles)))
		buf.WriteString(heavyRule + "\n\n")

		for i, title := range g.Titles {
			fmt.Fprintf(buf, "%d. %s\n", i+1, title)
		}
	}

	buf.WriteString("\n\n" + heavyRule + "\n")
	fmt.Fprintf(buf, "SUMMARY: %s, %s\n", channels(countTitles(groups)), categories(len(groups)))
	buf.WriteString(heavyRule + "\n")

	_, err := io.Copy(w, buf)
	return err
}

func countTitles(groups []Group) int {
	n := 0
	for _, g := range groups {
		n += len(g.Titles)
	}
	return n
}

func channels(n int) string {
	if n == 1 {
		return "1 channel"
	}
	return fmt.Sprintf("%d channels", n)
}

func categories(n int) string {
	if n == 1 {
		return "1 category"
	}
	return fmt.Sprintf("%d categories", n)
}
