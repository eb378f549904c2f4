package transport

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rpggio/impact/internal/domain/record"
	"github.com/stretchr/testify/require"
)

type memoryRecords struct {
	records []record.Record
}

func (m *memoryRecords) Get(_ context.Context, id string) (*record.Record, error) {
	for _, r := range m.records {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, record.ErrRecordNotFound
}

func (m *memoryRecords) Query(_ context.Context, q record.Query) ([]record.Record, error) {
	return q.Run(m.records), nil
}

type exportLog struct {
	formats []string
	counts  []int
}

func (e *exportLog) LogExport(_ context.Context, format string, count int) {
	e.formats = append(e.formats, format)
	e.counts = append(e.counts, count)
}

func newTestServer(t *testing.T) (*httptest.Server, *exportLog) {
	t.Helper()
	exports := &exportLog{}
	server := httptest.NewServer(NewServer(Config{
		Records: &memoryRecords{records: record.SampleRecords()},
		Exports: exports,
		MCP: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}),
	}))
	t.Cleanup(server.Close)
	return server, exports
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHTTPServer_Health(t *testing.T) {
	server, _ := newTestServer(t)

	resp := get(t, server.URL+"/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHTTPServer_Records(t *testing.T) {
	server, _ := newTestServer(t)

	resp := get(t, server.URL+"/api/records?sort=Most+impact")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body RecordsResponse
	decodeBody(t, resp, &body)
	require.Equal(t, 2, body.Total)
	require.Equal(t, "sample-2", body.Records[0].ID)
	require.Equal(t, record.ComputeKPIs(record.SampleRecords()), body.KPIs)

	resp = get(t, server.URL+"/api/records?category=AI&min_hours=1000")
	body = RecordsResponse{}
	decodeBody(t, resp, &body)
	require.Zero(t, body.Total)
	require.NotNil(t, body.Records)

	resp = get(t, server.URL+"/api/records?limit=1")
	body = RecordsResponse{}
	decodeBody(t, resp, &body)
	require.Len(t, body.Records, 1)
	require.Equal(t, 2, body.Total)
}

func TestHTTPServer_RecordNotFound(t *testing.T) {
	server, _ := newTestServer(t)

	resp := get(t, server.URL+"/api/records/missing")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var body ErrorBody
	decodeBody(t, resp, &body)
	require.Equal(t, "RECORD_NOT_FOUND", body.Error.Code)
	require.NotEmpty(t, body.Error.RequestID)
}

func TestHTTPServer_KPIs(t *testing.T) {
	server, _ := newTestServer(t)

	resp := get(t, server.URL+"/api/kpis?tech=playwright")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body KPIsResponse
	decodeBody(t, resp, &body)
	require.Equal(t, 1, body.Records)
	require.Equal(t, 18.0, body.KPIs.TotalHoursSaved)
	require.Equal(t, 1, body.KPIs.TotalAutomations)
}

func TestHTTPServer_ExportCSV(t *testing.T) {
	server, exports := newTestServer(t)

	resp := get(t, server.URL+"/api/export/csv?q=doc")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "text/csv;charset=utf-8", resp.Header.Get("Content-Type"))
	require.Equal(t, `attachment; filename=impact-records.csv`, resp.Header.Get("Content-Disposition"))

	rows, err := csv.NewReader(resp.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "Doc Processing AI", rows[1][0])

	require.Equal(t, []string{"csv"}, exports.formats)
	require.Equal(t, []int{1}, exports.counts)
}

func TestHTTPServer_ExportErrors(t *testing.T) {
	server, exports := newTestServer(t)

	resp := get(t, server.URL+"/api/export/docx")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = get(t, server.URL+"/api/export/pdf?q=no-such-record")
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var body ErrorBody
	decodeBody(t, resp, &body)
	require.Equal(t, "EMPTY_VIEW", body.Error.Code)

	require.Empty(t, exports.formats)
}

func TestHTTPServer_RecordPDF(t *testing.T) {
	server, exports := newTestServer(t)

	resp := get(t, server.URL+"/api/records/sample-1/pdf")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	require.Equal(t, `attachment; filename=language-automation-fix.pdf`, resp.Header.Get("Content-Disposition"))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "%PDF", string(data[:4]))
	require.Equal(t, []int{1}, exports.counts)
}

func TestHTTPServer_MountsMCP(t *testing.T) {
	server, _ := newTestServer(t)

	resp, err := http.Post(server.URL+"/mcp", "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusTeapot, resp.StatusCode)
}
