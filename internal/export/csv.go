package export

import (
	"bytes"
	"strings"

	"github.com/rpggio/impact/internal/domain/record"
)

var csvHeader = []string{
	"Project Name",
	"Category",
	"Status",
	"Start Date",
	"End Date",
	"Hours Saved / Month",
	"Users Impacted",
	"Manual Steps Eliminated",
	"Bugs Fixed",
	"Final Summary Bullet",
}

// CSV renders a view as comma separated values. Every cell is quoted and rows
// are separated by a bare newline with none after the last row. An empty
// view yields the header row alone.
func CSV(view []record.Record) []byte {
	var buf bytes.Buffer
	writeCSVRow(&buf, csvHeader)
	for _, r := range view {
		buf.WriteByte('\n')
		writeCSVRow(&buf, []string{
			r.ProjectName,
			string(r.Category),
			string(r.Status),
			r.StartDate,
			r.EndDate,
			record.FormatNumber(r.HoursSavedPerMonth),
			record.FormatNumber(r.UsersImpacted),
			record.FormatNumber(r.ManualStepsEliminated),
			record.FormatNumber(r.BugsFixed),
			r.FinalBullet,
		})
	}
	return buf.Bytes()
}

func writeCSVRow(buf *bytes.Buffer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		buf.WriteByte('"')
	}
}
