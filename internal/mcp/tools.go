package mcp

import sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

// Tool names.
const (
	ToolQueryRecords      = "query_records"
	ToolGetRecord         = "get_record"
	ToolSaveRecord        = "save_record"
	ToolDeleteRecord      = "delete_record"
	ToolDuplicateRecord   = "duplicate_record"
	ToolToggleStar        = "toggle_star"
	ToolComputeKPIs       = "compute_kpis"
	ToolSuggestBullet     = "suggest_bullet"
	ToolAppraisalSummary  = "appraisal_summary"
	ToolExportRecords     = "export_records"
	ToolGetRecentActivity = "get_recent_activity"
)

func registerTools(server *sdkmcp.Server, h *Handler) {
	// Browsing
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        ToolQueryRecords,
		Description: "Search, filter and sort impact records. Returns compact summaries plus KPIs for the whole filtered view.",
	}, h.QueryRecords)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        ToolGetRecord,
		Description: "Get the full impact record by ID, including impact rows, evidence and feedback.",
	}, h.GetRecord)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        ToolComputeKPIs,
		Description: "Total hours saved, users helped, automations and bugs fixed over a filtered view.",
	}, h.ComputeKPIs)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        ToolGetRecentActivity,
		Description: "List recent changes and exports, newest first.",
	}, h.GetRecentActivity)

	// Writing
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        ToolSaveRecord,
		Description: "Create a record, or replace one when id is given, from editor form values. A blank finalBullet is filled with the suggested bullet.",
	}, h.SaveRecord)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        ToolDeleteRecord,
		Description: "Delete a record permanently.",
	}, h.DeleteRecord)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        ToolDuplicateRecord,
		Description: "Copy a record under a new ID with \" (copy)\" appended to its name. The copy is unstarred.",
	}, h.DuplicateRecord)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        ToolToggleStar,
		Description: "Star or unstar a record for the appraisal summary.",
	}, h.ToggleStar)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        ToolSuggestBullet,
		Description: "Suggest a one-line achievement bullet from form values without saving anything.",
	}, h.SuggestBullet)

	// Output
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        ToolAppraisalSummary,
		Description: "Bullet text of every starred record, one per line, ready to paste into a review.",
	}, h.AppraisalSummary)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        ToolExportRecords,
		Description: "Export the filtered view as csv or markdown (returned as text) or pdf (returned as an embedded resource).",
	}, h.ExportRecords)
}
