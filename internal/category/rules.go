// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

package category

// Group is one keyword rule. A title whose normalized form contains any of
// the keywords is filed under Category.
type Group struct {
	ID       string   `yaml:"id" json:"id"`
	Category Category `yaml:"category" json:"category"`
	Keywords []string `yaml:"keywords" json:"keywords"`
}

// Region maps bracketed two-letter country codes to a regional category.
type Region struct {
	Category Category `yaml:"category" json:"category"`
	Codes    []string `yaml:"codes" json:"codes"`
}

// Rules is a snapshot of the tables a Categorizer evaluates, in evaluation
// order.
type Rules struct {
	Groups        []Group  `yaml:"groups" json:"groups"`
	Regions       []Region `yaml:"regions" json:"regions"`
	TurkeyMarkers []string `yaml:"turkeyMarkers" json:"turkeyMarkers"`
}

// Keyword groups in priority order. Keywords are stored normalized.
func defaultGroups() []Group {
	return []Group{
		{ID: "series", Category: Series, Keywords: []string{
			"dizi", "series", "türk dizi", "turkish series", "ask-i memnu", "ezel", "medcezir",
		}},
		{ID: "movie", Category: Movie, Keywords: []string{
			"film", "movie", "cinema", "sinema", "4k movie", "full hd film",
		}},
		{ID: "sports", Category: Sports, Keywords: []string{
			"spor", "sports", "futbol", "football", "nba", "nfl", "f1", "tennis", "voleybol",
			"basketball", "cricket",
		}},
		{ID: "news", Category: News, Keywords: []string{
			"haber", "news", "habertürk", "cnn", "bbc", "skynews",
		}},
		{ID: "music", Category: Music, Keywords: []string{
			"müzik", "music", "radyo", "radio",
		}},
		{ID: "kids", Category: Kids, Keywords: []string{
			"çocuk", "kids", "cartoon", "babytv", "nickelodeon", "trt çocuk",
		}},
		{ID: "documentary", Category: Documentary, Keywords: []string{
			"belgesel", "documentary", "discovery", "nat geo", "history",
		}},
		{ID: "adult", Category: Adult, Keywords: []string{
			"adult", "xxx", "erotik", "18+",
		}},
	}
}

// Region table in lookup order.
//
// TR is listed under both Turkey and Middle East. Lookup stops at the first
// region that claims a code, so TR always resolves to Turkey; the Middle East
// entry is kept so the table reads the same as the published channel lists.
func defaultRegions() []Region {
	return []Region{
		{Category: Turkey, Codes: []string{"TR"}},
		{Category: Europe, Codes: []string{"EN", "GB", "DE", "FR", "IT", "ES", "NL", "BE", "AT", "CH"}},
		{Category: Balkans, Codes: []string{"RS", "BG", "GR", "XK", "BA", "HR", "ME", "RO", "UA"}},
		{Category: MiddleEast, Codes: []string{"AE", "SA", "EG", "IQ", "IL", "TR", "LB", "JO"}},
		{Category: Asia, Codes: []string{"CN", "IN", "JP", "KR", "TH", "ID", "MY", "VN"}},
		{Category: Americas, Codes: []string{"BR", "AR", "MX", "CO", "CL"}},
	}
}

// Substrings of a normalized title that mark a Turkish channel when no
// keyword group or country prefix matched.
func defaultTurkeyMarkers() []string {
	return []string{"turkey", "türk", "turkiye", "tr:"}
}

// GroupIDs lists the keyword group identifiers in priority order.
func GroupIDs() []string {
	groups := defaultGroups()
	ids := make([]string, len(groups))
	for i, g := range groups {
		ids[i] = g.ID
	}
	return ids
}
