// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package category

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/ManuGH/chancat/internal/normalize"
)

// ErrUnknownGroup classifies extra keywords addressed to a group that does not exist.
var ErrUnknownGroup = errors.New("unknown keyword group")

// Categorizer maps titles to categories. Its tables are fixed at
// construction, so a Categorizer is safe to share.
type Categorizer struct {
	groups  []Group
	regions []Region
	markers []string
}

var builtin = &Categorizer{
	groups:  defaultGroups(),
	regions: defaultRegions(),
	markers: defaultTurkeyMarkers(),
}

// Categorize files title using the compiled-in tables.
func Categorize(title string) Category {
	return builtin.Categorize(title)
}

// New returns a Categorizer whose keyword groups are the built-in ones plus
// extra, keyed by group ID. Extra keywords are normalized and appended after
// the built-in keywords of their group; empty keywords are ignored.
func New(extra map[string][]string) (*Categorizer, error) {
	groups := defaultGroups()

	known := make(map[string]int, len(groups))
	for i, g := range groups {
		known[g.ID] = i
	}

	ids := make([]string, 0, len(extra))
	for id := range extra {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		idx, ok := known[strings.ToLower(strings.TrimSpace(id))]
		if !ok {
			return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownGroup, id, strings.Join(GroupIDs(), ", "))
		}
		for _, kw := range extra[id] {
			kw = normalize.Token(kw)
			if kw == "" || slices.Contains(groups[idx].Keywords, kw) {
				continue
			}
			groups[idx].Keywords = append(groups[idx].Keywords, kw)
		}
	}

	return &Categorizer{
		groups:  groups,
		regions: defaultRegions(),
		markers: defaultTurkeyMarkers(),
	}, nil
}

// Categorize returns the single category for title. Rules are evaluated in
// order and the first match wins:
//
//  1. keyword groups, on the normalized title
//  2. a leading "[XX]" country code, on the original title
//  3. Turkey markers, on the normalized title
//  4. Other
func (c *Categorizer) Categorize(title string) Category {
	token := normalize.Token(title)

	for _, g := range c.groups {
		if containsAny(token, g.Keywords) {
			return g.Category
		}
	}

	if code, ok := countryCode(title); ok {
		return c.region(code)
	}

	if containsAny(token, c.markers) {
		return Turkey
	}

	return Other
}

// Rules returns a copy of the tables in evaluation order.
func (c *Categorizer) Rules() Rules {
	r := Rules{
		Groups:        make([]Group, len(c.groups)),
		Regions:       make([]Region, len(c.regions)),
		TurkeyMarkers: slices.Clone(c.markers),
	}
	for i, g := range c.groups {
		g.Keywords = slices.Clone(g.Keywords)
		r.Groups[i] = g
	}
	for i, reg := range c.regions {
		reg.Codes = slices.Clone(reg.Codes)
		r.Regions[i] = reg
	}
	return r
}

func (c *Categorizer) region(code string) Category {
	for _, r := range c.regions {
		if slices.Contains(r.Codes, code) {
			return r.Category
		}
	}
	return Country(code)
}

// countryCode parses a "[XX]" prefix where XX are two ASCII uppercase letters.
func countryCode(title string) (string, bool) {
	if len(title) < 4 || title[0] != '[' || title[3] != ']' {
		return "", false
	}
	if !isUpperASCII(title[1]) || !isUpperASCII(title[2]) {
		return "", false
	}
	return title[1:3], true
}

func isUpperASCII(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
