package record

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// FormValues is the in-progress state of the record editor. Lists are
// comma-separated and numbers are raw text, exactly as typed.
type FormValues struct {
	ProjectName           string           `json:"projectName" yaml:"projectName"`
	Category              string           `json:"category" yaml:"category"`
	Status                string           `json:"status" yaml:"status"`
	Team                  string           `json:"team,omitempty" yaml:"team"`
	StartDate             string           `json:"startDate,omitempty" yaml:"startDate"`
	EndDate               string           `json:"endDate,omitempty" yaml:"endDate"`
	ProblemWhat           string           `json:"problemWhat" yaml:"problemWhat"`
	ProblemWhy            string           `json:"problemWhy,omitempty" yaml:"problemWhy"`
	ContributionSummary   string           `json:"contributionSummary,omitempty" yaml:"contributionSummary"`
	Responsibilities      []Responsibility `json:"responsibilities,omitempty" yaml:"responsibilities"`
	Languages             string           `json:"languages,omitempty" yaml:"languages"`
	Frameworks            string           `json:"frameworks,omitempty" yaml:"frameworks"`
	Infrastructure        string           `json:"infrastructure,omitempty" yaml:"infrastructure"`
	HoursSavedPerMonth    string           `json:"hoursSavedPerMonth,omitempty" yaml:"hoursSavedPerMonth"`
	UsersImpacted         string           `json:"usersImpacted,omitempty" yaml:"usersImpacted"`
	BugsFixed             string           `json:"bugsFixed,omitempty" yaml:"bugsFixed"`
	ManualStepsEliminated string           `json:"manualStepsEliminated,omitempty" yaml:"manualStepsEliminated"`
	AIFeatures            []AIFeature      `json:"aiFeatures,omitempty" yaml:"aiFeatures"`
	AIOutcome             string           `json:"aiOutcome,omitempty" yaml:"aiOutcome"`
	BeforeText            string           `json:"beforeText,omitempty" yaml:"beforeText"`
	AfterText             string           `json:"afterText,omitempty" yaml:"afterText"`
	FinalBullet           string           `json:"finalBullet,omitempty" yaml:"finalBullet"`
}

// DefaultImpactRows seeds the metrics table of a new record.
func DefaultImpactRows() []ImpactRow {
	return []ImpactRow{
		{Metric: "Time per task"},
		{Metric: "Hours saved per month"},
		{Metric: "Error rate"},
		{Metric: "Manual steps"},
	}
}

// FormFromRecord fills editor values from a stored record.
func FormFromRecord(r Record) FormValues {
	return FormValues{
		ProjectName:           r.ProjectName,
		Category:              string(r.Category),
		Status:                string(r.Status),
		Team:                  strings.Join(r.Team, ", "),
		StartDate:             r.StartDate,
		EndDate:               r.EndDate,
		ProblemWhat:           r.Problem.What,
		ProblemWhy:            r.Problem.Why,
		ContributionSummary:   r.Contribution.Summary,
		Responsibilities:      r.Contribution.Responsibilities,
		Languages:             strings.Join(r.Tech.Languages, ", "),
		Frameworks:            strings.Join(r.Tech.Frameworks, ", "),
		Infrastructure:        strings.Join(r.Tech.Infrastructure, ", "),
		HoursSavedPerMonth:    FormatNumber(r.HoursSavedPerMonth),
		UsersImpacted:         FormatNumber(r.UsersImpacted),
		BugsFixed:             FormatNumber(r.BugsFixed),
		ManualStepsEliminated: FormatNumber(r.ManualStepsEliminated),
		AIFeatures:            r.AIValueAdd.Features,
		AIOutcome:             r.AIValueAdd.Outcome,
		BeforeText:            r.BeforeText,
		AfterText:             r.AfterText,
		FinalBullet:           r.FinalBullet,
	}
}

// BuildFromForm converts editor state into a record ready to save. An
// existing record keeps its ID, CreatedAt and Starred flag; a new one gets a
// fresh ID. Impact rows without a metric are dropped, and a blank final
// bullet is replaced by the synthesized one.
func BuildFromForm(form FormValues, impact []ImpactRow, evidence []EvidenceItem, feedback []FeedbackEntry, existing *Record, now time.Time) Record {
	form.ProjectName = strings.TrimSpace(form.ProjectName)
	rec := Record{
		ID:          uuid.NewString(),
		ProjectName: form.ProjectName,
		Category:    Category(form.Category),
		Status:      Status(form.Status),
		Team:        SplitList(form.Team),
		StartDate:   form.StartDate,
		EndDate:     form.EndDate,
		Problem: Problem{
			What: strings.TrimSpace(form.ProblemWhat),
			Why:  form.ProblemWhy,
		},
		Contribution: Contribution{
			Summary:          form.ContributionSummary,
			Responsibilities: nonNil(form.Responsibilities),
		},
		Tech: Tech{
			Languages:      SplitList(form.Languages),
			Frameworks:     SplitList(form.Frameworks),
			Infrastructure: SplitList(form.Infrastructure),
		},
		Impact:                keptImpactRows(impact),
		HoursSavedPerMonth:    ParseNumber(form.HoursSavedPerMonth),
		UsersImpacted:         ParseNumber(form.UsersImpacted),
		BugsFixed:             ParseNumber(form.BugsFixed),
		ManualStepsEliminated: ParseNumber(form.ManualStepsEliminated),
		AIValueAdd: AIValueAdd{
			Features: nonNil(form.AIFeatures),
			Outcome:  form.AIOutcome,
		},
		BeforeText:  form.BeforeText,
		AfterText:   form.AfterText,
		Evidence:    nonNil(evidence),
		Feedback:    nonNil(feedback),
		FinalBullet: form.FinalBullet,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if rec.FinalBullet == "" {
		rec.FinalBullet = SynthesizeBullet(form, impact)
	}
	if existing != nil {
		rec.ID = existing.ID
		rec.Starred = existing.Starred
		if !existing.CreatedAt.IsZero() {
			rec.CreatedAt = existing.CreatedAt
		}
	}
	return rec
}

// SplitList splits a comma-separated list, trimming entries and dropping
// empty ones.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseNumber reads an optional numeric form field. Blank or non-finite
// input yields nil.
func ParseNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// FormatNumber renders an optional number in its shortest form ("18",
// "2.5"); nil renders as "".
func FormatNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func keptImpactRows(rows []ImpactRow) []ImpactRow {
	kept := []ImpactRow{}
	for _, row := range rows {
		if strings.TrimSpace(row.Metric) != "" {
			kept = append(kept, row)
		}
	}
	return kept
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
