package record

import (
	"strconv"
	"strings"
)

// Filters holds the structured filter set of a query. Every value is the
// raw string a user typed; an empty string disables that filter.
type Filters struct {
	Category string `json:"category,omitempty"`
	Status   string `json:"status,omitempty"`
	Tech     string `json:"tech,omitempty"`
	DateFrom string `json:"dateFrom,omitempty"`
	DateTo   string `json:"dateTo,omitempty"`
	MinHours string `json:"minHours,omitempty"`
	MinUsers string `json:"minUsers,omitempty"`
	MinSteps string `json:"minSteps,omitempty"`
}

// SortMode orders a record view
type SortMode string

const (
	SortLatest     SortMode = "Latest"
	SortMostImpact SortMode = "Most impact"
	SortCategory   SortMode = "Category"
)

// Next cycles Latest -> Most impact -> Category -> Latest.
func (m SortMode) Next() SortMode {
	switch m {
	case SortLatest:
		return SortMostImpact
	case SortMostImpact:
		return SortCategory
	default:
		return SortLatest
	}
}

// ParseSortMode maps user input onto a sort mode. Matching ignores case and
// accepts underscores or dashes for spaces; anything unrecognised is Latest.
func ParseSortMode(s string) SortMode {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", " ", "-", " ").Replace(norm)
	switch norm {
	case "most impact", "impact":
		return SortMostImpact
	case "category":
		return SortCategory
	default:
		return SortLatest
	}
}

// Query bundles the inputs of FilterAndSort.
type Query struct {
	Search  string   `json:"search,omitempty"`
	Filters Filters  `json:"filters"`
	Sort    SortMode `json:"sort,omitempty"`
}

// threshold parses a minimum-value filter. Malformed, empty, zero and
// negative input all disable the check.
func threshold(raw string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || !(v > 0) {
		return 0, false
	}
	return v, true
}
