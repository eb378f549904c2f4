package export

import (
	"strings"
	"testing"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/rpggio/impact/internal/domain/record"
	"github.com/stretchr/testify/require"
)

func TestPDF_OnePagePerRecord(t *testing.T) {
	view := record.SampleRecords()
	doc := newPDFDocument(view)
	require.NoError(t, doc.Error())
	require.Equal(t, len(view), doc.PageNo())
}

func TestPDF_EmptyViewIsNoDocument(t *testing.T) {
	data, err := PDF(nil)
	require.NoError(t, err)
	require.Nil(t, data)
}

func TestPDF_SparseRecord(t *testing.T) {
	data, err := PDF([]record.Record{{ProjectName: "Only a name"}})
	require.NoError(t, err)
	require.NotEmpty(t, data)
}

func TestKeyMetrics(t *testing.T) {
	require.Empty(t, keyMetrics(record.Record{}))
	require.Equal(t,
		"Hours saved/month: 18 | Users impacted: 6 | Manual steps eliminated: 4 | Bugs fixed: 3",
		keyMetrics(record.SampleRecords()[0]),
	)
	require.Equal(t, "Bugs fixed: 0", keyMetrics(record.Record{BugsFixed: record.Float(0)}))
}

func TestNewestTimestamp(t *testing.T) {
	require.Equal(t, time.Unix(0, 0).UTC(), newestTimestamp([]record.Record{{}}))
	require.Equal(t,
		time.Date(2024, 3, 26, 9, 30, 0, 0, time.UTC),
		newestTimestamp(record.SampleRecords()),
	)
}

func newTestPage() *pdfPage {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	return &pdfPage{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor(""), y: pdfTop}
}

func TestPDF_NonASCIIText(t *testing.T) {
	rec := record.Record{
		ProjectName:  "Café rollout – phase 2",
		Category:     record.CategoryAI,
		Status:       record.StatusPoC,
		Problem:      record.Problem{What: "Ops didn’t trust the “nightly” report"},
		Contribution: record.Contribution{Summary: "为团队构建了自动化流程 with naïve fallbacks"},
		Impact:       []record.ImpactRow{{Metric: "Fehlerquote", Before: "5 %", After: "1 %", Improvement: "−80 %"}},
		FinalBullet:  "Shipped Café rollout for ¥0 extra spend",
	}

	var data []byte
	require.NotPanics(t, func() {
		var err error
		data, err = PDF([]record.Record{rec})
		require.NoError(t, err)
	})
	require.NotEmpty(t, data)

	p := newTestPage()
	p.doc.SetFont(pdfFontFamily, "", pdfBodySize)
	require.Equal(t, []string{p.tr("Café")}, p.lines("Café"))
}

func TestPDF_SparseRecordLayout(t *testing.T) {
	p := newTestPage()
	p.render(record.Record{ProjectName: "Only a name"})
	require.NoError(t, p.doc.Error())

	// Title and the category line only.
	require.InDelta(t, pdfTop+pdfTitleGap+pdfLineHeight, p.y, 1e-9)
}

func TestPDF_WrapsLongParagraphs(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("Automated the nightly reconciliation job for finance. ", 20))

	measure := newTestPage()
	measure.doc.SetFont(pdfFontFamily, "", pdfBodySize)
	lines := measure.lines(long)
	require.Greater(t, len(lines), 1)
	for _, line := range lines {
		require.LessOrEqual(t, measure.doc.GetStringWidth(line), pdfTextWidth)
	}
	require.Equal(t, long, strings.Join(lines, " "))

	p := newTestPage()
	p.render(record.Record{
		ProjectName:  "Recon",
		Problem:      record.Problem{What: long},
		Contribution: record.Contribution{Summary: long},
		FinalBullet:  long,
	})
	require.NoError(t, p.doc.Error())

	header := pdfTop + pdfTitleGap + pdfLineHeight
	section := 2*pdfSectionGap + float64(len(lines))*pdfLineHeight
	require.InDelta(t, header+3*section, p.y, 1e-9)
}
