package mcp

import (
	"time"

	"github.com/rpggio/impact/internal/domain/activity"
	"github.com/rpggio/impact/internal/domain/record"
)

type EmptyParams struct{}

type RecordIDParams struct {
	ID string `json:"id" jsonschema:"record ID"`
}

type QueryRecordsParams struct {
	Search  string         `json:"search,omitempty" jsonschema:"case-insensitive text matched against project name, category, status, problem and summary bullet"`
	Sort    string         `json:"sort,omitempty" jsonschema:"Latest (default), Most impact or Category"`
	Filters record.Filters `json:"filters,omitempty" jsonschema:"structured filters; every value is a string and empty disables it"`
	Limit   int            `json:"limit,omitempty" jsonschema:"maximum number of records returned; the KPIs always cover the whole view"`
}

type SaveRecordParams struct {
	ID       string                 `json:"id,omitempty" jsonschema:"ID of the record to replace; omit to create a new record"`
	Form     record.FormValues      `json:"form" jsonschema:"editor values: lists are comma separated and numbers are plain text"`
	Impact   []record.ImpactRow     `json:"impact,omitempty" jsonschema:"metrics table; rows without a metric are dropped"`
	Evidence []record.EvidenceItem  `json:"evidence,omitempty"`
	Feedback []record.FeedbackEntry `json:"feedback,omitempty"`
}

type SuggestBulletParams struct {
	Form   record.FormValues  `json:"form"`
	Impact []record.ImpactRow `json:"impact,omitempty"`
}

type ExportParams struct {
	Format  string         `json:"format" jsonschema:"csv, markdown (or md) or pdf"`
	ID      string         `json:"id,omitempty" jsonschema:"export only this record (pdf only)"`
	Search  string         `json:"search,omitempty"`
	Sort    string         `json:"sort,omitempty"`
	Filters record.Filters `json:"filters,omitempty"`
}

type RecentActivityParams struct {
	RecordID string `json:"record_id,omitempty" jsonschema:"only entries for this record"`
	Type     string `json:"type,omitempty" jsonschema:"only entries of this activity type"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum number of entries (default 50)"`
}

// RecordSummary is the compact form of a record returned by queries.
type RecordSummary struct {
	ID          string          `json:"id"`
	ProjectName string          `json:"projectName"`
	Category    record.Category `json:"category"`
	Status      record.Status   `json:"status"`
	StartDate   string          `json:"startDate,omitempty"`
	EndDate     string          `json:"endDate,omitempty"`
	Bullet      string          `json:"bullet"`
	ImpactScore float64         `json:"impactScore"`
	Starred     bool            `json:"starred"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type QueryRecordsResponse struct {
	Records []RecordSummary `json:"records"`
	Total   int             `json:"total"`
	KPIs    record.KPIs     `json:"kpis"`
}

type KPIsResponse struct {
	KPIs    record.KPIs `json:"kpis"`
	Records int         `json:"records"`
}

type BulletResponse struct {
	Bullet string `json:"bullet"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
	Count   int    `json:"count"`
}

type DeleteResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

type ActivityResponse struct {
	Entries []activity.ActivityEntry `json:"entries"`
}

func toSummary(r record.Record) RecordSummary {
	return RecordSummary{
		ID:          r.ID,
		ProjectName: r.ProjectName,
		Category:    r.Category,
		Status:      r.Status,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Bullet:      r.BulletText(),
		ImpactScore: r.ImpactScore(),
		Starred:     r.Starred,
		UpdatedAt:   r.LastTouched(),
	}
}

func queryFrom(search, sort string, filters record.Filters) record.Query {
	return record.Query{
		Search:  search,
		Filters: filters,
		Sort:    record.ParseSortMode(sort),
	}
}
