// Copyright (c) 2025 ManuGH
// Licensed under the PolyForm Noncommercial License 1.0.0
// Since v2.0.0, this software is restricted to non-commercial use only.

// Package report aggregates categorized titles and renders them for the
// console and the report file.
package report

import (
	"slices"
	"sort"

	"github.com/ManuGH/chancat/internal/category"
)

// Group is one category with its titles in scan order.
type Group struct {
	Category category.Category `json:"category" yaml:"category"`
	Titles   []string          `json:"titles" yaml:"titles"`
}

// Index collects titles per category. Titles keep insertion order and are
// never deduplicated; categories remember the order they were first seen.
// The zero value is ready to use.
type Index struct {
	order  []category.Category
	titles map[category.Category][]string
	total  int
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{}
}

// Add files title under c.
func (x *Index) Add(c category.Category, title string) {
	if x.titles == nil {
		x.titles = make(map[category.Category][]string)
	}
	if _, seen := x.titles[c]; !seen {
		x.order = append(x.order, c)
	}
	x.titles[c] = append(x.titles[c], title)
	x.total++
}

// Total is the number of titles added.
func (x *Index) Total() int {
	return x.total
}

// Len is the number of distinct categories.
func (x *Index) Len() int {
	return len(x.order)
}

// Groups returns the categories ordered by title count, largest first.
// Categories with equal counts keep first-seen order.
func (x *Index) Groups() []Group {
	groups := make([]Group, len(x.order))
	for i, c := range x.order {
		groups[i] = Group{Category: c, Titles: slices.Clone(x.titles[c])}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i].Titles) > len(groups[j].Titles)
	})
	return groups
}
