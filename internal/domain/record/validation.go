package record

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

// Validate checks a record before it is stored. Enum fields must belong to
// their closed sets so exact-match filters cannot silently miss on a typo.
func Validate(r Record) error {
	if strings.TrimSpace(r.ProjectName) == "" {
		return invalid("projectName", "is required")
	}
	if !slices.Contains(Categories, r.Category) {
		return invalid("category", fmt.Sprintf("unknown value %q", r.Category))
	}
	if !slices.Contains(Statuses, r.Status) {
		return invalid("status", fmt.Sprintf("unknown value %q", r.Status))
	}
	if err := validateDate("startDate", r.StartDate); err != nil {
		return err
	}
	if err := validateDate("endDate", r.EndDate); err != nil {
		return err
	}
	for _, resp := range r.Contribution.Responsibilities {
		if !slices.Contains(Responsibilities, resp) {
			return invalid("contribution.responsibilities", fmt.Sprintf("unknown value %q", resp))
		}
	}
	for _, feat := range r.AIValueAdd.Features {
		if !slices.Contains(AIFeatures, feat) {
			return invalid("aiValueAdd.features", fmt.Sprintf("unknown value %q", feat))
		}
	}
	numbers := []struct {
		name  string
		value *float64
	}{
		{"hoursSavedPerMonth", r.HoursSavedPerMonth},
		{"usersImpacted", r.UsersImpacted},
		{"bugsFixed", r.BugsFixed},
		{"manualStepsEliminated", r.ManualStepsEliminated},
	}
	for _, n := range numbers {
		if n.value != nil && !(*n.value >= 0) {
			return invalid(n.name, "must be a non-negative number")
		}
	}
	for i, ev := range r.Evidence {
		if ev.Type != EvidenceUpload && ev.Type != EvidenceLink {
			return invalid(fmt.Sprintf("evidence[%d].type", i), fmt.Sprintf("unknown value %q", ev.Type))
		}
		if strings.TrimSpace(ev.URL) == "" {
			return invalid(fmt.Sprintf("evidence[%d].url", i), "is required")
		}
	}
	return nil
}

// ValidateForm checks the fields the editor marks as required before a
// record is built from it.
func ValidateForm(form FormValues) error {
	if strings.TrimSpace(form.ProjectName) == "" {
		return invalid("projectName", "is required")
	}
	if form.Category == "" {
		return invalid("category", "is required")
	}
	if form.Status == "" {
		return invalid("status", "is required")
	}
	if strings.TrimSpace(form.ProblemWhat) == "" {
		return invalid("problemWhat", "describe the problem")
	}
	return nil
}

func validateDate(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(isoDate, value); err != nil {
		return invalid(field, fmt.Sprintf("%q is not a YYYY-MM-DD date", value))
	}
	return nil
}

func invalid(field, msg string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidInput, field, msg)
}
