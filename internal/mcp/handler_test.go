package mcp

import (
	"context"
	"encoding/json"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/impact/internal/domain/activity"
	"github.com/rpggio/impact/internal/domain/record"
	"github.com/stretchr/testify/require"
)

type recordStub struct {
	getFn        func(context.Context, string) (*record.Record, error)
	saveFormFn   func(context.Context, record.SaveFormRequest) (*record.Record, error)
	deleteFn     func(context.Context, string) error
	duplicateFn  func(context.Context, string) (*record.Record, error)
	toggleStarFn func(context.Context, string) (*record.Record, error)
	queryFn      func(context.Context, record.Query) ([]record.Record, error)
	summaryFn    func(context.Context) (string, error)
}

func (r recordStub) Get(ctx context.Context, id string) (*record.Record, error) {
	return r.getFn(ctx, id)
}
func (r recordStub) SaveForm(ctx context.Context, req record.SaveFormRequest) (*record.Record, error) {
	return r.saveFormFn(ctx, req)
}
func (r recordStub) Delete(ctx context.Context, id string) error {
	return r.deleteFn(ctx, id)
}
func (r recordStub) Duplicate(ctx context.Context, id string) (*record.Record, error) {
	return r.duplicateFn(ctx, id)
}
func (r recordStub) ToggleStar(ctx context.Context, id string) (*record.Record, error) {
	return r.toggleStarFn(ctx, id)
}
func (r recordStub) Query(ctx context.Context, q record.Query) ([]record.Record, error) {
	return r.queryFn(ctx, q)
}
func (r recordStub) AppraisalSummary(ctx context.Context) (string, error) {
	return r.summaryFn(ctx)
}

type activityStub struct {
	exports []string
	recent  []activity.ActivityEntry
}

func (a *activityStub) GetRecentActivity(context.Context, activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	return a.recent, nil
}
func (a *activityStub) LogExport(_ context.Context, format string, _ int) {
	a.exports = append(a.exports, format)
}

func resultText(t *testing.T, result *sdkmcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "first content is %T", result.Content[0])
	return text.Text
}

func decodeAPIError(t *testing.T, result *sdkmcp.CallToolResult) APIError {
	t.Helper()
	require.True(t, result.IsError)
	var apiErr APIError
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &apiErr))
	return apiErr
}

func TestHandler_QueryRecordsLimitKeepsFullKPIs(t *testing.T) {
	var got record.Query
	h := NewHandler(Services{Records: recordStub{
		queryFn: func(_ context.Context, q record.Query) ([]record.Record, error) {
			got = q
			return record.SampleRecords(), nil
		},
	}}, nil)

	result, _, err := h.QueryRecords(context.Background(), nil, QueryRecordsParams{
		Search:  "automation",
		Sort:    "Most impact",
		Filters: record.Filters{Category: "Automation"},
		Limit:   1,
	})
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Equal(t, record.SortMostImpact, got.Sort)
	require.Equal(t, "automation", got.Search)
	require.Equal(t, "Automation", got.Filters.Category)

	var resp QueryRecordsResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	require.Len(t, resp.Records, 1)
	require.Equal(t, 2, resp.Total)
	require.Equal(t, record.ComputeKPIs(record.SampleRecords()), resp.KPIs)
}

func TestHandler_GetRecordNotFound(t *testing.T) {
	h := NewHandler(Services{Records: recordStub{
		getFn: func(context.Context, string) (*record.Record, error) {
			return nil, record.ErrRecordNotFound
		},
	}}, nil)

	result, _, err := h.GetRecord(context.Background(), nil, RecordIDParams{ID: "missing"})
	require.NoError(t, err)
	require.Equal(t, "RECORD_NOT_FOUND", decodeAPIError(t, result).Code)
}

func TestHandler_SaveRecordPassesForm(t *testing.T) {
	var got record.SaveFormRequest
	h := NewHandler(Services{Records: recordStub{
		saveFormFn: func(_ context.Context, req record.SaveFormRequest) (*record.Record, error) {
			got = req
			rec := record.SampleRecords()[0]
			return &rec, nil
		},
	}}, nil)

	result, _, err := h.SaveRecord(context.Background(), nil, SaveRecordParams{
		ID:     "sample-1",
		Form:   record.FormValues{ProjectName: "Edited"},
		Impact: []record.ImpactRow{{Metric: "Error rate", Improvement: "-90%"}},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Equal(t, "sample-1", got.ID)
	require.Equal(t, "Edited", got.Form.ProjectName)
	require.Len(t, got.Impact, 1)
}

func TestHandler_SuggestBullet(t *testing.T) {
	h := NewHandler(Services{}, nil)

	result, _, err := h.SuggestBullet(context.Background(), nil, SuggestBulletParams{
		Form: record.FormValues{ProjectName: "X", Languages: "Go", HoursSavedPerMonth: "5"},
	})
	require.NoError(t, err)

	var resp BulletResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &resp))
	require.Equal(t, "Automated X using Go, saving ~5 hours/month", resp.Bullet)
}

func TestHandler_AppraisalSummaryNoStarred(t *testing.T) {
	h := NewHandler(Services{Records: recordStub{
		summaryFn: func(context.Context) (string, error) { return "", record.ErrNoStarred },
	}}, nil)

	result, _, err := h.AppraisalSummary(context.Background(), nil, EmptyParams{})
	require.NoError(t, err)
	require.Equal(t, "NO_STARRED_RECORDS", decodeAPIError(t, result).Code)
}

func TestHandler_ExportCSVLogsActivity(t *testing.T) {
	acts := &activityStub{}
	h := NewHandler(Services{
		Records: recordStub{
			queryFn: func(context.Context, record.Query) ([]record.Record, error) {
				return record.SampleRecords(), nil
			},
		},
		Activity: acts,
	}, nil)

	result, _, err := h.ExportRecords(context.Background(), nil, ExportParams{Format: "csv"})
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Contains(t, resultText(t, result), `"Language Automation Fix"`)
	require.Equal(t, []string{"csv"}, acts.exports)
}

func TestHandler_ExportPDFEmbedsDocument(t *testing.T) {
	h := NewHandler(Services{
		Records: recordStub{
			queryFn: func(context.Context, record.Query) ([]record.Record, error) {
				return record.SampleRecords(), nil
			},
		},
		Activity: &activityStub{},
	}, nil)

	result, _, err := h.ExportRecords(context.Background(), nil, ExportParams{Format: "pdf"})
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Len(t, result.Content, 2)

	embedded, ok := result.Content[1].(*sdkmcp.EmbeddedResource)
	require.True(t, ok)
	require.Equal(t, "application/pdf", embedded.Resource.MIMEType)
	require.Equal(t, "impact://exports/impact-records.pdf", embedded.Resource.URI)
	require.True(t, len(embedded.Resource.Blob) > 4)
	require.Equal(t, "%PDF", string(embedded.Resource.Blob[:4]))
}

func TestHandler_ExportErrors(t *testing.T) {
	acts := &activityStub{}
	h := NewHandler(Services{
		Records: recordStub{
			queryFn: func(context.Context, record.Query) ([]record.Record, error) {
				return nil, nil
			},
		},
		Activity: acts,
	}, nil)
	ctx := context.Background()

	result, _, err := h.ExportRecords(ctx, nil, ExportParams{Format: "docx"})
	require.NoError(t, err)
	require.Equal(t, "UNKNOWN_FORMAT", decodeAPIError(t, result).Code)

	result, _, err = h.ExportRecords(ctx, nil, ExportParams{Format: "pdf"})
	require.NoError(t, err)
	require.Equal(t, "EMPTY_VIEW", decodeAPIError(t, result).Code)

	result, _, err = h.ExportRecords(ctx, nil, ExportParams{Format: "csv", ID: "sample-1"})
	require.NoError(t, err)
	require.Equal(t, "INVALID_INPUT", decodeAPIError(t, result).Code)

	require.Empty(t, acts.exports)
}

func TestMapError(t *testing.T) {
	require.Nil(t, MapError(nil))
	require.Equal(t, "INVALID_INPUT", MapError(record.ErrInvalidInput).Code)

	custom := &APIError{Code: "CUSTOM", Message: "x"}
	require.Same(t, custom, MapError(custom))
}
