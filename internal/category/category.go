// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package category assigns channel titles to categories using ordered
// keyword and country-prefix rules.
package category

// Category is the label a title is filed under.
type Category string

// Fixed category labels.
const (
	Series      Category = "Series"
	Movie       Category = "Movie"
	Sports      Category = "Sports"
	News        Category = "News"
	Music       Category = "Music"
	Kids        Category = "Kids"
	Documentary Category = "Documentary"
	Adult       Category = "Adult"
	Turkey      Category = "Turkey"
	Europe      Category = "Europe"
	Balkans     Category = "Balkans"
	MiddleEast  Category = "Middle East"
	Asia        Category = "Asia"
	Americas    Category = "Americas"
	Other       Category = "Other"
)

// countryPrefix marks categories synthesized from unknown country codes.
const countryPrefix = "Country: "

// Country returns the synthetic category for a country code that no region
// table entry claims.
func Country(code string) Category {
	return Category(countryPrefix + code)
}

func (c Category) String() string { return string(c) }

var icons = map[Category]string{
	Series:      "📺",
	Movie:       "🎬",
	Sports:      "⚽",
	News:        "📰",
	Music:       "🎵",
	Kids:        "🎨",
	Documentary: "🎞️",
	Adult:       "⚠️",
	Turkey:      "🇹🇷",
	Europe:      "🌍",
	Balkans:     "🏔️",
	MiddleEast:  "🕌",
	Asia:        "🏯",
	Americas:    "🌎",
	Other:       "🔹",
}

// Icon returns the display glyph for c. Synthetic country categories share
// a globe.
func (c Category) Icon() string {
	if icon, ok := icons[c]; ok {
		return icon
	}
	return "🌐"
}
