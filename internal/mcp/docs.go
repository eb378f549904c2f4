package mcp

import (
	"context"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/impact/internal/domain/record"
)

const serverInstructions = `impact keeps a personal log of work achievements (impact records) for performance reviews.

Core concepts:
- Record: one project or fix, with problem, contribution, tech, an impact table, optional numeric metrics (hours saved per month, users impacted, bugs fixed, manual steps eliminated), evidence, feedback and a one-line summary bullet.
- View: the records matching a search plus filters, in one of three sort orders (Latest, Most impact, Category). KPIs and exports always cover a view, never a cached total.
- Starred records feed the appraisal summary.

Default workflow:
1) Browse: query_records (use limit to keep responses small); get_record for full detail.
2) Write: suggest_bullet to draft a summary line, then save_record. Pass id to replace an existing record; the whole record is replaced.
3) Curate: toggle_star, duplicate_record, delete_record.
4) Report: compute_kpis, appraisal_summary, export_records (csv, markdown or pdf).

Docs:
- impact://docs/fields (field reference and allowed values)
- impact://docs/queries (search, filters and sorting rules)
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "impact://docs/fields",
		Name:        "docs_fields",
		Title:       "Record field reference",
		Description: "Every record field, which are required, and the closed sets of allowed values.",
		Content:     fieldsDoc(),
	},
	{
		URI:         "impact://docs/queries",
		Name:        "docs_queries",
		Title:       "Search, filter and sort rules",
		Description: "How query_records, compute_kpis and export_records select and order records.",
		Content: `# Queries

All filters combine with AND. An empty value disables a filter.

## Search
Case-insensitive substring match against project name, category, status, problem (what and why) and the summary bullet.

## Filters
- category, status: exact match.
- tech: case-insensitive substring of languages, frameworks and infrastructure.
- dateFrom: drops records whose start date is before it. dateTo: drops records whose end date is after it. Records without that date are kept. Use YYYY-MM-DD.
- minHours, minUsers, minSteps: drops records whose value is below the minimum. Missing values count as 0. Zero, negative or non-numeric minimums are ignored.

## Sort
- Latest (default): most recently updated first.
- Most impact: by 2 x hours saved + users impacted + manual steps eliminated, highest first.
- Category: alphabetical by category.
Ties keep store order (newest created first).
`,
	},
}

func fieldsDoc() string {
	var b strings.Builder
	b.WriteString(`# Record fields

Required when saving: projectName, category, status, problemWhat.

Form values are plain text. Team, languages, frameworks and infrastructure are comma separated lists. Numeric metrics may be left blank; blank means "not recorded" and counts as 0 in KPIs. Dates use YYYY-MM-DD.

`)
	writeList(&b, "Categories", record.Categories)
	writeList(&b, "Statuses", record.Statuses)
	writeList(&b, "Responsibilities", record.Responsibilities)
	writeList(&b, "AI features", record.AIFeatures)
	b.WriteString(`## Evidence
Each item has type "upload" (url is a data URI) or "link" (url is an address), a label and an optional MIME type.
`)
	return b.String()
}

func writeList[T ~string](b *strings.Builder, heading string, values []T) {
	b.WriteString("## " + heading + "\n")
	for _, v := range values {
		b.WriteString("- " + string(v) + "\n")
	}
	b.WriteString("\n")
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
