package service

import (
	"strconv"
	"strings"
)

// SearchParams holds the raw, untrusted query parameters from a list
// request. Tags is a comma-separated list of tag ids.
type SearchParams struct {
	Search     string
	Tags       string
	Ingredient string
	Sort       string
	Order      string
	Limit      string
	Offset     string
}

var validSorts = map[string]bool{
	SortTitle:        true,
	SortRating:       true,
	SortCreatedAt:    true,
	SortUpdatedAt:    true,
	SortLastViewedAt: true,
	SortRandom:       true,
}

// BuildSearchOptions normalizes raw parameters into a valid SearchOptions.
// Unknown sort keys fall back to created_at, anything but "asc" becomes
// "desc", a missing or non-positive limit becomes 50, and malformed tag ids
// are dropped rather than rejected.
func BuildSearchOptions(params SearchParams) SearchOptions {
	opts := SearchOptions{
		TextQuery:           strings.TrimSpace(params.Search),
		IngredientSubstring: strings.TrimSpace(params.Ingredient),
		Sort:                SortCreatedAt,
		Order:               OrderDesc,
		Limit:               50,
	}

	if validSorts[params.Sort] {
		opts.Sort = params.Sort
	}
	if params.Order == OrderAsc {
		opts.Order = OrderAsc
	}

	if limit, err := strconv.Atoi(params.Limit); err == nil && limit > 0 {
		opts.Limit = limit
	}
	if offset, err := strconv.Atoi(params.Offset); err == nil && offset > 0 {
		opts.Offset = offset
	}

	for _, raw := range strings.Split(params.Tags, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
			opts.TagIDs = append(opts.TagIDs, id)
		}
	}

	return opts
}
