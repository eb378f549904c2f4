package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpggio/impact/internal/domain/record"
)

const colGap = 2

// styles renders for one writer; colour is dropped when w is not a terminal.
type styles struct {
	header lipgloss.Style
	dim    lipgloss.Style
	star   lipgloss.Style
	bold   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		header: r.NewStyle().Foreground(lipgloss.Color("#fe8019")).Bold(true),
		dim:    r.NewStyle().Foreground(lipgloss.Color("#928374")),
		star:   r.NewStyle().Foreground(lipgloss.Color("#fabd2f")),
		bold:   r.NewStyle().Bold(true),
	}
}

// table renders aligned columns under a header and a separator line.
func (s styles) table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style func(string) string) {
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(style(cell))
			if i < len(headers)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(headers, func(c string) string { return s.header.Render(c) })
	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("─", w)
	}
	writeRow(seps, func(c string) string { return s.dim.Render(c) })
	for _, row := range rows {
		writeRow(row, func(c string) string { return c })
	}
	return b.String()
}

func (s styles) recordRows(records []record.Record) [][]string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		mark := ""
		if r.Starred {
			mark = s.star.Render("★")
		}
		rows = append(rows, []string{
			mark,
			r.ID,
			truncate(r.ProjectName, 40),
			string(r.Category),
			string(r.Status),
			formatFloat(r.ImpactScore()),
		})
	}
	return rows
}

func (s styles) kpis(k record.KPIs, count int) string {
	lines := []struct {
		label string
		value string
	}{
		{"Records", fmt.Sprint(count)},
		{"Hours saved / month", formatFloat(k.TotalHoursSaved)},
		{"Users helped", formatFloat(k.TotalUsersHelped)},
		{"Bugs fixed", formatFloat(k.TotalBugsFixed)},
		{"Automations", fmt.Sprint(k.TotalAutomations)},
	}
	var b strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&b, "%-20s %s\n", l.label, s.bold.Render(l.value))
	}
	return b.String()
}

func formatFloat(v float64) string {
	return record.FormatNumber(&v)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
