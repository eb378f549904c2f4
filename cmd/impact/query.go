package main

import (
	"github.com/rpggio/impact/internal/domain/record"
	"github.com/spf13/cobra"
)

// addQueryFlags registers the search, sort and filter flags shared by list,
// kpis and export.
func addQueryFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("search", "q", "", "Case-insensitive text search")
	f.String("sort", string(record.SortLatest), `Sort order: "Latest", "Most impact" or "Category"`)
	f.String("category", "", "Only this category")
	f.String("status", "", "Only this status")
	f.String("tech", "", "Languages, frameworks or infrastructure containing this text")
	f.String("from", "", "Drop records starting before this date (YYYY-MM-DD)")
	f.String("to", "", "Drop records ending after this date (YYYY-MM-DD)")
	f.String("min-hours", "", "Minimum hours saved per month")
	f.String("min-users", "", "Minimum users impacted")
	f.String("min-steps", "", "Minimum manual steps eliminated")
}

func queryFromFlags(cmd *cobra.Command) record.Query {
	get := func(name string) string {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return record.Query{
		Search: get("search"),
		Sort:   record.ParseSortMode(get("sort")),
		Filters: record.Filters{
			Category: get("category"),
			Status:   get("status"),
			Tech:     get("tech"),
			DateFrom: get("from"),
			DateTo:   get("to"),
			MinHours: get("min-hours"),
			MinUsers: get("min-users"),
			MinSteps: get("min-steps"),
		},
	}
}
