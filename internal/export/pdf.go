package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/rpggio/impact/internal/domain/record"
)

// Page geometry in millimetres.
const (
	pdfMarginX     = 10.0
	pdfTop         = 10.0
	pdfTextWidth   = 190.0
	pdfLineHeight  = 6.0
	pdfTitleGap    = 8.0
	pdfSectionGap  = 4.0
	pdfTitleSize   = 14.0
	pdfMetaSize    = 10.0
	pdfHeadingSize = 11.0
	pdfBodySize    = 9.0
	pdfFontFamily  = "Helvetica"
)

// The core fonts are cp1252 and have no arrow glyph.
var pdfArrow = strings.NewReplacer("→", "->")

// PDF renders a view with one A4 page per record. An empty view produces no
// document and a nil slice. The creation date is taken from the records
// themselves so the same view always yields the same bytes.
func PDF(view []record.Record) ([]byte, error) {
	if len(view) == 0 {
		return nil, nil
	}

	doc := newPDFDocument(view)
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func newPDFDocument(view []record.Record) *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCatalogSort(true)
	doc.SetCreationDate(newestTimestamp(view))
	doc.SetAutoPageBreak(false, 0)
	doc.SetTitle("Impact records", true)

	tr := doc.UnicodeTranslatorFromDescriptor("")
	for _, r := range view {
		doc.AddPage()
		p := &pdfPage{doc: doc, tr: tr, y: pdfTop}
		p.render(r)
	}
	return doc
}

// pdfPage writes one record top to bottom, tracking the baseline of the next
// line.
type pdfPage struct {
	doc *fpdf.Fpdf
	tr  func(string) string
	y   float64
}

func (p *pdfPage) render(r record.Record) {
	p.doc.SetFont(pdfFontFamily, "", pdfTitleSize)
	p.doc.Text(pdfMarginX, p.y, p.text(r.ProjectName))
	p.y += pdfTitleGap

	p.doc.SetFont(pdfFontFamily, "", pdfMetaSize)
	p.wrapped(fmt.Sprintf("Category: %s | Status: %s", r.Category, r.Status))
	if r.StartDate != "" || r.EndDate != "" {
		p.wrapped(fmt.Sprintf("Dates: %s → %s", r.StartDate, r.EndDate))
	}

	if r.Problem.What != "" {
		p.section("Problem", r.Problem.What)
	}
	if r.Contribution.Summary != "" {
		p.section("Contribution", r.Contribution.Summary)
	}
	if len(r.Impact) > 0 {
		rows := make([]string, 0, len(r.Impact))
		for _, row := range r.Impact {
			rows = append(rows, fmt.Sprintf("%s: %s → %s (%s)",
				row.Metric, orDash(row.Before), orDash(row.After), row.Improvement))
		}
		p.section("Quantifiable Impact", rows...)
	}
	if metrics := keyMetrics(r); metrics != "" {
		p.section("Key Metrics", metrics)
	}
	if r.FinalBullet != "" {
		p.section("Summary Bullet", r.FinalBullet)
	}
}

func (p *pdfPage) section(heading string, paragraphs ...string) {
	p.y += pdfSectionGap
	p.doc.SetFont(pdfFontFamily, "", pdfHeadingSize)
	p.doc.Text(pdfMarginX, p.y, heading)
	p.y += pdfSectionGap
	p.doc.SetFont(pdfFontFamily, "", pdfBodySize)
	for _, para := range paragraphs {
		p.wrapped(para)
	}
}

func (p *pdfPage) wrapped(s string) {
	for _, line := range p.lines(s) {
		p.doc.Text(pdfMarginX, p.y, line)
		p.y += pdfLineHeight
	}
}

// lines splits s to the text width and returns cp1252 encoded lines.
// SplitText indexes the 256-entry font width table by rune, so the encoded
// bytes are widened to runes below 256 for measuring and narrowed back after.
func (p *pdfPage) lines(s string) []string {
	encoded := p.text(s)
	wide := make([]rune, len(encoded))
	for i := 0; i < len(encoded); i++ {
		wide[i] = rune(encoded[i])
	}
	split := p.doc.SplitText(string(wide), pdfTextWidth)
	out := make([]string, 0, len(split))
	for _, line := range split {
		narrow := make([]byte, 0, len(line))
		for _, r := range line {
			narrow = append(narrow, byte(r))
		}
		out = append(out, string(narrow))
	}
	return out
}

func (p *pdfPage) text(s string) string {
	return p.tr(pdfArrow.Replace(s))
}

func keyMetrics(r record.Record) string {
	var pieces []string
	if r.HoursSavedPerMonth != nil {
		pieces = append(pieces, "Hours saved/month: "+record.FormatNumber(r.HoursSavedPerMonth))
	}
	if r.UsersImpacted != nil {
		pieces = append(pieces, "Users impacted: "+record.FormatNumber(r.UsersImpacted))
	}
	if r.ManualStepsEliminated != nil {
		pieces = append(pieces, "Manual steps eliminated: "+record.FormatNumber(r.ManualStepsEliminated))
	}
	if r.BugsFixed != nil {
		pieces = append(pieces, "Bugs fixed: "+record.FormatNumber(r.BugsFixed))
	}
	return strings.Join(pieces, " | ")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func newestTimestamp(view []record.Record) time.Time {
	var newest time.Time
	for _, r := range view {
		if t := r.LastTouched(); t.After(newest) {
			newest = t
		}
	}
	if newest.IsZero() {
		return time.Unix(0, 0).UTC()
	}
	return newest.UTC()
}
