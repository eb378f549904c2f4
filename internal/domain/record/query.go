package record

import (
	"cmp"
	"slices"
	"strings"
)

// FilterAndSort derives an ordered view of records. It is a pure function of
// its arguments: the input slice is never reordered and no state is kept
// between calls. Ties keep the input order.
func FilterAndSort(records []Record, search string, filters Filters, sort SortMode) []Record {
	term := strings.ToLower(strings.TrimSpace(search))
	minHours, checkHours := threshold(filters.MinHours)
	minUsers, checkUsers := threshold(filters.MinUsers)
	minSteps, checkSteps := threshold(filters.MinSteps)
	techTerm := strings.ToLower(filters.Tech)

	view := make([]Record, 0, len(records))
	for _, r := range records {
		if term != "" && !strings.Contains(searchText(r), term) {
			continue
		}
		if filters.Category != "" && string(r.Category) != filters.Category {
			continue
		}
		if filters.Status != "" && string(r.Status) != filters.Status {
			continue
		}
		if techTerm != "" && !strings.Contains(techText(r), techTerm) {
			continue
		}
		// ISO-8601 dates order lexicographically; records without a date pass.
		if filters.DateFrom != "" && r.StartDate != "" && r.StartDate < filters.DateFrom {
			continue
		}
		if filters.DateTo != "" && r.EndDate != "" && r.EndDate > filters.DateTo {
			continue
		}
		if checkHours && r.Hours() < minHours {
			continue
		}
		if checkUsers && r.Users() < minUsers {
			continue
		}
		if checkSteps && r.Steps() < minSteps {
			continue
		}
		view = append(view, r)
	}

	SortRecords(view, sort)
	return view
}

// Run applies the query to records.
func (q Query) Run(records []Record) []Record {
	return FilterAndSort(records, q.Search, q.Filters, q.Sort)
}

// SortRecords stable-sorts records in place by the given mode.
func SortRecords(records []Record, mode SortMode) {
	switch mode {
	case SortMostImpact:
		slices.SortStableFunc(records, func(a, b Record) int {
			return cmp.Compare(b.ImpactScore(), a.ImpactScore())
		})
	case SortCategory:
		slices.SortStableFunc(records, func(a, b Record) int {
			return strings.Compare(string(a.Category), string(b.Category))
		})
	default:
		slices.SortStableFunc(records, func(a, b Record) int {
			return b.LastTouched().Compare(a.LastTouched())
		})
	}
}

func searchText(r Record) string {
	fields := []string{
		r.ProjectName,
		string(r.Category),
		string(r.Status),
		r.Problem.What,
		r.Problem.Why,
		r.FinalBullet,
	}
	return strings.ToLower(joinNonEmpty(fields, " "))
}

func techText(r Record) string {
	all := make([]string, 0, len(r.Tech.Languages)+len(r.Tech.Frameworks)+len(r.Tech.Infrastructure))
	all = append(all, r.Tech.Languages...)
	all = append(all, r.Tech.Frameworks...)
	all = append(all, r.Tech.Infrastructure...)
	return strings.ToLower(strings.Join(all, " "))
}

func joinNonEmpty(parts []string, sep string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
