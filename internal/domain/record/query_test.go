package record_test

import (
	"testing"
	"time"

	"github.com/rpggio/impact/internal/domain/record"
	"github.com/stretchr/testify/require"
)

func fixtureRecords() []record.Record {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return []record.Record{
		{
			ID:                 "a",
			ProjectName:        "Doc Processing AI",
			Category:           record.CategoryAI,
			Status:             record.StatusCompleted,
			StartDate:          "2024-03-01",
			EndDate:            "2024-03-25",
			Problem:            record.Problem{What: "Manual document triage"},
			Tech:               record.Tech{Languages: []string{"Python"}, Frameworks: []string{"FastAPI"}},
			HoursSavedPerMonth: record.Float(40),
			UsersImpacted:      record.Float(15),
			CreatedAt:          base,
		},
		{
			ID:                    "b",
			ProjectName:           "Language Automation Fix",
			Category:              record.CategoryAutomation,
			Status:                record.StatusInProgress,
			StartDate:             "2024-02-01",
			EndDate:               "2024-02-20",
			Tech:                  record.Tech{Languages: []string{"Python"}, Frameworks: []string{"Playwright"}},
			HoursSavedPerMonth:    record.Float(18),
			UsersImpacted:         record.Float(6),
			ManualStepsEliminated: record.Float(4),
			CreatedAt:             base.Add(-time.Hour),
			UpdatedAt:             base.Add(time.Hour),
		},
		{
			ID:          "c",
			ProjectName: "Billing Hotfix",
			Category:    record.CategoryBugFix,
			Status:      record.StatusCompleted,
			Tech:        record.Tech{Infrastructure: []string{"Kubernetes"}},
			FinalBullet: "Fixed a rounding bug in invoices",
			BugsFixed:   record.Float(2),
			CreatedAt:   base.Add(-2 * time.Hour),
		},
		{
			ID:          "d",
			ProjectName: "Queue Dashboard",
			Category:    record.CategoryAutomation,
			Status:      record.StatusPoC,
		},
	}
}

func ids(records []record.Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestFilterAndSort_Search(t *testing.T) {
	records := fixtureRecords()[:2]

	for _, term := range []string{"doc", "DOC", "  Doc "} {
		view := record.FilterAndSort(records, term, record.Filters{}, record.SortLatest)
		require.Equal(t, []string{"a"}, ids(view), "term %q", term)
	}

	view := record.FilterAndSort(records, "", record.Filters{}, record.SortLatest)
	require.Len(t, view, 2)
}

func TestFilterAndSort_SearchCoversBulletAndStatus(t *testing.T) {
	records := fixtureRecords()

	view := record.FilterAndSort(records, "rounding", record.Filters{}, record.SortLatest)
	require.Equal(t, []string{"c"}, ids(view))

	view = record.FilterAndSort(records, "in progress", record.Filters{}, record.SortLatest)
	require.Equal(t, []string{"b"}, ids(view))
}

func TestFilterAndSort_Thresholds(t *testing.T) {
	records := fixtureRecords()[:2]

	view := record.FilterAndSort(records, "", record.Filters{MinHours: "20"}, record.SortLatest)
	require.Equal(t, []string{"a"}, ids(view))

	for _, raw := range []string{"", "abc", "0", "-5", "NaN"} {
		view := record.FilterAndSort(records, "", record.Filters{MinHours: raw}, record.SortLatest)
		require.Len(t, view, 2, "threshold %q should be disabled", raw)
	}

	view = record.FilterAndSort(fixtureRecords(), "", record.Filters{MinSteps: "1"}, record.SortLatest)
	require.Equal(t, []string{"b"}, ids(view))

	view = record.FilterAndSort(fixtureRecords(), "", record.Filters{MinUsers: "6"}, record.SortLatest)
	require.ElementsMatch(t, []string{"a", "b"}, ids(view))
}

func TestFilterAndSort_ExactAndTechFilters(t *testing.T) {
	records := fixtureRecords()

	view := record.FilterAndSort(records, "", record.Filters{Category: "Automation"}, record.SortLatest)
	require.ElementsMatch(t, []string{"b", "d"}, ids(view))

	view = record.FilterAndSort(records, "", record.Filters{Status: "Completed"}, record.SortLatest)
	require.ElementsMatch(t, []string{"a", "c"}, ids(view))

	view = record.FilterAndSort(records, "", record.Filters{Tech: "playw"}, record.SortLatest)
	require.Equal(t, []string{"b"}, ids(view))

	view = record.FilterAndSort(records, "", record.Filters{Tech: "KUBER"}, record.SortLatest)
	require.Equal(t, []string{"c"}, ids(view))
}

func TestFilterAndSort_DateRange(t *testing.T) {
	records := fixtureRecords()

	view := record.FilterAndSort(records, "", record.Filters{DateFrom: "2024-02-15"}, record.SortLatest)
	require.ElementsMatch(t, []string{"a", "c", "d"}, ids(view))

	view = record.FilterAndSort(records, "", record.Filters{DateTo: "2024-03-01"}, record.SortLatest)
	require.ElementsMatch(t, []string{"b", "c", "d"}, ids(view))
}

func TestFilterAndSort_SortModes(t *testing.T) {
	records := fixtureRecords()

	latest := record.FilterAndSort(records, "", record.Filters{}, record.SortLatest)
	require.Equal(t, []string{"b", "a", "c", "d"}, ids(latest))

	impact := record.FilterAndSort(records, "", record.Filters{}, record.SortMostImpact)
	for i := 1; i < len(impact); i++ {
		require.GreaterOrEqual(t, impact[i-1].ImpactScore(), impact[i].ImpactScore())
	}
	require.Equal(t, "a", impact[0].ID)

	byCategory := record.FilterAndSort(records, "", record.Filters{}, record.SortCategory)
	for i := 1; i < len(byCategory); i++ {
		require.LessOrEqual(t, string(byCategory[i-1].Category), string(byCategory[i].Category))
	}
	require.Equal(t, []string{"a", "b", "d", "c"}, ids(byCategory))
}

func TestFilterAndSort_UnknownSortIsLatest(t *testing.T) {
	records := fixtureRecords()
	require.Equal(t,
		ids(record.FilterAndSort(records, "", record.Filters{}, record.SortLatest)),
		ids(record.FilterAndSort(records, "", record.Filters{}, record.SortMode("Oldest"))),
	)
}

func TestFilterAndSort_Idempotent(t *testing.T) {
	records := fixtureRecords()
	filters := record.Filters{Tech: "python"}

	first := record.FilterAndSort(records, "a", filters, record.SortMostImpact)
	second := record.FilterAndSort(records, "a", filters, record.SortMostImpact)
	require.Equal(t, first, second)
	require.Equal(t, []string{"a", "b", "c", "d"}, ids(records), "input must not be reordered")
}

func TestFilterAndSort_Monotonic(t *testing.T) {
	records := fixtureRecords()
	all := record.FilterAndSort(records, "", record.Filters{}, record.SortLatest)

	constraints := []record.Filters{
		{Category: "AI"},
		{Status: "PoC"},
		{Tech: "python"},
		{DateFrom: "2024-03-01"},
		{DateTo: "2024-02-01"},
		{MinHours: "1"},
		{MinUsers: "10"},
		{MinSteps: "5"},
	}
	for _, f := range constraints {
		view := record.FilterAndSort(records, "", f, record.SortLatest)
		require.LessOrEqual(t, len(view), len(all), "filters %+v", f)
	}
}

func TestFilterAndSort_EmptyInput(t *testing.T) {
	view := record.FilterAndSort(nil, "x", record.Filters{MinHours: "3"}, record.SortCategory)
	require.NotNil(t, view)
	require.Empty(t, view)
}

func TestSortMode_NextAndParse(t *testing.T) {
	require.Equal(t, record.SortMostImpact, record.SortLatest.Next())
	require.Equal(t, record.SortCategory, record.SortMostImpact.Next())
	require.Equal(t, record.SortLatest, record.SortCategory.Next())

	require.Equal(t, record.SortMostImpact, record.ParseSortMode("most_impact"))
	require.Equal(t, record.SortMostImpact, record.ParseSortMode("Most impact"))
	require.Equal(t, record.SortCategory, record.ParseSortMode("CATEGORY"))
	require.Equal(t, record.SortLatest, record.ParseSortMode("bogus"))
}
