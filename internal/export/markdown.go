package export

import (
	"strings"

	"github.com/rpggio/impact/internal/domain/record"
)

// Markdown renders a view as one Markdown section per record. Sections with
// no data are left out entirely, headings included. An empty view yields an
// empty document.
func Markdown(view []record.Record) []byte {
	var lines []string
	for _, r := range view {
		lines = append(lines,
			"# "+r.ProjectName,
			"",
			"**Category:** "+string(r.Category)+"  ",
			"**Status:** "+string(r.Status)+"  ",
		)
		if r.StartDate != "" || r.EndDate != "" {
			lines = append(lines, "**Dates:** "+r.StartDate+" → "+r.EndDate)
		}
		lines = append(lines, "")

		if r.Problem.What != "" {
			lines = append(lines, "## Problem", r.Problem.What, "")
		}
		if r.Contribution.Summary != "" {
			lines = append(lines, "## Contribution", r.Contribution.Summary, "")
		}
		if len(r.Impact) > 0 {
			lines = append(lines,
				"## Quantifiable Impact",
				"| Metric | Before | After | Improvement |",
				"| --- | --- | --- | --- |",
			)
			for _, row := range r.Impact {
				lines = append(lines, "| "+row.Metric+" | "+row.Before+" | "+row.After+" | "+row.Improvement+" |")
			}
			lines = append(lines, "")
		}
		if r.FinalBullet != "" {
			lines = append(lines, "## Summary Bullet", "- "+r.FinalBullet, "")
		}
		lines = append(lines, "---", "")
	}
	return []byte(strings.Join(lines, "\n"))
}
