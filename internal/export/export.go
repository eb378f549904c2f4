// Package export renders views of impact records as downloadable documents.
package export

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rpggio/impact/internal/domain/record"
)

// Format names a supported document format.
type Format string

const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
	FormatPDF      Format = "pdf"
)

// Formats lists the supported formats.
var Formats = []Format{FormatCSV, FormatMarkdown, FormatPDF}

var (
	// ErrEmptyView is returned when a paginated export is asked for no records.
	ErrEmptyView = errors.New("nothing to export")
	// ErrUnknownFormat is returned for an unsupported format name.
	ErrUnknownFormat = errors.New("unknown export format")
)

const (
	defaultBaseName   = "impact-records"
	defaultRecordName = "impact-record"
)

// Document is a rendered export ready to be written or downloaded.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ParseFormat maps a user supplied name onto a Format. "md" is accepted for
// Markdown.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "md", "markdown":
		return FormatMarkdown, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Render serializes a view in the given format. A PDF of an empty view is
// not produced; ErrEmptyView is returned instead.
func Render(format Format, view []record.Record) (*Document, error) {
	switch format {
	case FormatCSV:
		return &Document{
			Filename:    defaultBaseName + ".csv",
			ContentType: "text/csv;charset=utf-8",
			Data:        CSV(view),
		}, nil
	case FormatMarkdown:
		return &Document{
			Filename:    defaultBaseName + ".md",
			ContentType: "text/markdown;charset=utf-8",
			Data:        Markdown(view),
		}, nil
	case FormatPDF:
		data, err := PDF(view)
		if err != nil {
			return nil, err
		}
		if data == nil {
			return nil, ErrEmptyView
		}
		return &Document{
			Filename:    defaultBaseName + ".pdf",
			ContentType: "application/pdf",
			Data:        data,
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// RenderRecordPDF exports a single record as a one page PDF named after the
// project.
func RenderRecordPDF(rec record.Record) (*Document, error) {
	data, err := PDF([]record.Record{rec})
	if err != nil {
		return nil, err
	}
	return &Document{
		Filename:    Slug(rec.ProjectName) + ".pdf",
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases name and collapses every run of other characters into a
// single dash. A name with nothing left becomes "impact-record".
func Slug(name string) string {
	slug := strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if slug == "" {
		return defaultRecordName
	}
	return slug
}
