// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package category

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  Category
	}{
		// keyword groups
		{name: "series keyword", title: "Yabanci Dizi 1", want: Series},
		{name: "series beats movie", title: "Movie Series HD", want: Series},
		{name: "movie keyword", title: "Sinema TV", want: Movie},
		{name: "movie beats sports", title: "Sports Film Channel", want: Movie},
		{name: "sports keyword", title: "beIN SPORTS 1", want: Sports},
		{name: "sports short keyword", title: "F1 TV", want: Sports},
		{name: "sports beats news", title: "NBA News", want: Sports},
		{name: "news keyword", title: "CNN International", want: News},
		{name: "news with turkish letters", title: "HABERTÜRK", want: News},
		{name: "music keyword", title: "Power Müzik", want: Music},
		{name: "kids keyword", title: "Cartoon Network", want: Kids},
		{name: "kids turkish letters", title: "TRT Çocuk", want: Kids},
		{name: "documentary keyword", title: "Nat Geo Wild", want: Documentary},
		{name: "adult keyword", title: "Channel 18+", want: Adult},
		{name: "keyword wins over country code", title: "[DE] Sky Sport News", want: Sports},

		// country codes
		{name: "turkey code", title: "[TR] Kanal 1", want: Turkey},
		{name: "europe code", title: "[DE] Das Erste", want: Europe},
		{name: "balkans code", title: "[RS] RTS 1", want: Balkans},
		{name: "middle east code", title: "[AE] Dubai One", want: MiddleEast},
		{name: "asia code", title: "[JP] NHK World", want: Asia},
		{name: "americas code", title: "[BR] Globo", want: Americas},
		{name: "unknown code", title: "[ZZ] Test Channel", want: Country("ZZ")},
		{name: "lowercase code falls through", title: "[de] Das Erste", want: Other},
		{name: "three letter code falls through", title: "[DEU] Das Erste", want: Other},
		{name: "code not at start", title: "Das Erste [DE]", want: Other},
		{name: "bad bracket falls through to turkey marker", title: "[tr] Turkey Live", want: Turkey},

		// turkey markers
		{name: "turkey marker", title: "Show TV Turkey", want: Turkey},
		{name: "turk marker", title: "Türk TV", want: Turkey},
		{name: "tr prefix marker", title: "TR: Kanal D", want: Turkey},
		{name: "turkiye marker", title: "Turkiye 24", want: Turkey},

		// fallback
		{name: "fallback", title: "Random Channel Name", want: Other},
		{name: "empty title", title: "", want: Other},
		{name: "whitespace title", title: "   ", want: Other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.title))
		})
	}
}

func TestCategorizeTurkeyCodeBeatsMiddleEast(t *testing.T) {
	// TR is in both tables; the Turkey entry is ordered first.
	rules := builtin.Rules()

	var inMiddleEast bool
	for _, r := range rules.Regions {
		if r.Category == MiddleEast {
			for _, code := range r.Codes {
				if code == "TR" {
					inMiddleEast = true
				}
			}
		}
	}
	require.True(t, inMiddleEast, "Middle East table is expected to list TR")
	assert.Equal(t, Turkey, Categorize("[TR] Kanal 1"))
}

func TestCategorizeIsTotalAndIdempotent(t *testing.T) {
	titles := []string{
		"", " ", "[", "[]", "[A]", "[AB", "[AB]", "[ZZ]", "TRT 1", "bbc one",
		"\u200B", "Sky Cinema", "[XK] RTK 1", "random", "[TR] Dizi Max",
	}

	for _, title := range titles {
		first := Categorize(title)
		second := Categorize(title)
		assert.NotEmpty(t, first, "title %q", title)
		assert.Equal(t, first, second, "title %q", title)
		assert.True(t, isKnown(first), "title %q produced unexpected category %q", title, first)
	}
}

func isKnown(c Category) bool {
	switch c {
	case Series, Movie, Sports, News, Music, Kids, Documentary, Adult,
		Turkey, Europe, Balkans, MiddleEast, Asia, Americas, Other:
		return true
	}
	code, ok := strings.CutPrefix(string(c), "Country: ")
	return ok && len(code) == 2
}

func TestCategorizeIgnoresCase(t *testing.T) {
	assert.Equal(t, News, Categorize("bbc one"))
	assert.Equal(t, News, Categorize("BBC ONE"))
	assert.Equal(t, News, Categorize("  Bbc One  "))
}

func TestNewWithExtraKeywords(t *testing.T) {
	c, err := New(map[string][]string{
		"sports": {"  LigTV ", ""},
		"News":   {"Bloomberg HT"},
	})
	require.NoError(t, err)

	assert.Equal(t, Sports, c.Categorize("LIGTV HD"))
	assert.Equal(t, News, c.Categorize("Bloomberg HT"))
	assert.Equal(t, Other, Categorize("LigTV HD"), "built-in tables must stay untouched")
	assert.Equal(t, Other, Categorize("Bloomberg HT"), "built-in tables must stay untouched")

	rules := c.Rules()
	for _, g := range rules.Groups {
		if g.ID == "sports" {
			assert.Equal(t, "ligtv", g.Keywords[len(g.Keywords)-1])
			for _, kw := range g.Keywords {
				assert.NotEmpty(t, kw)
			}
		}
	}
}

func TestNewUnknownGroup(t *testing.T) {
	_, err := New(map[string][]string{"weather": {"meteo"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownGroup))
	assert.Contains(t, err.Error(), "weather")
}

func TestRulesReturnsCopy(t *testing.T) {
	rules := builtin.Rules()
	rules.Groups[0].Keywords[0] = "mutated"
	rules.Regions[0].Codes[0] = "XX"
	rules.TurkeyMarkers[0] = "mutated"

	again := builtin.Rules()
	assert.Equal(t, "dizi", again.Groups[0].Keywords[0])
	assert.Equal(t, "TR", again.Regions[0].Codes[0])
	assert.Equal(t, "turkey", again.TurkeyMarkers[0])
}

func TestRulesOrder(t *testing.T) {
	rules := builtin.Rules()

	var got []string
	for _, g := range rules.Groups {
		got = append(got, string(g.Category))
	}
	assert.Equal(t, "Series,Movie,Sports,News,Music,Kids,Documentary,Adult", strings.Join(got, ","))
	assert.Equal(t, GroupIDs()[0], "series")
	assert.Equal(t, Turkey, rules.Regions[0].Category)
}

func TestCategoryHelpers(t *testing.T) {
	assert.Equal(t, "Country: ZZ", Country("ZZ").String())

	assert.Equal(t, "🌐", Country("ZZ").Icon())
	assert.NotEqual(t, "🌐", Turkey.Icon())
}
