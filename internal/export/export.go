// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package export renders a record as a downloadable TXT or CSV document.
package export

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-joycribe/models"
)

// Format is an export document format.
type Format string

const (
	FormatTXT Format = "txt"
	FormatCSV Format = "csv"
)

// ErrUnknownFormat is returned for a format other than txt or csv.
var ErrUnknownFormat = errors.New("unknown export format")

// csvHeader is the fixed column list of the CSV export.
var csvHeader = []string{"FileName", "Date", "Persona", "Sentiment", "Summary", "Keywords", "Topics", "Tags", "Notes", "Transcript"}

const listSeparator = ", "

var unsafeFileNameChars = regexp.MustCompile(`(?i)[^a-z0-9]`)

// Document is a rendered export ready to be downloaded or copied.
type Document struct {
	FileName    string
	ContentType string
	Data        []byte
}

// NewDocument renders record in format f together with its download name
// and content type.
func NewDocument(record models.Record, f Format) (Document, error) {
	data, err := Render(record, f)
	if err != nil {
		return Document{}, err
	}

	return Document{
		FileName:    FileName(record, f),
		ContentType: f.ContentType(),
		Data:        data,
	}, nil
}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTXT, FormatCSV:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ContentType returns the MIME type of documents in format f.
func (f Format) ContentType() string {
	if f == FormatCSV {
		return "text/csv;charset=utf-8;"
	}
	return "text/plain;charset=utf-8"
}

// Render renders record in format f.
func Render(record models.Record, f Format) ([]byte, error) {
	switch f {
	case FormatTXT:
		return []byte(TXT(record)), nil
	case FormatCSV:
		return []byte(CSV(record)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// TXT renders the plain-text dump of record.
func TXT(record models.Record) string {
	a := analysisOf(record)

	notes := record.Notes
	if notes == "" {
		notes = "N/A"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analysis for: %s\n", record.FileName)
	fmt.Fprintf(&b, "Date: %s\n", record.Date)
	fmt.Fprintf(&b, "Persona: %s\n", record.Persona.Label())
	fmt.Fprintf(&b, "Sentiment: %s\n\n", a.Sentiment)
	fmt.Fprintf(&b, "--- Summary ---\n%s\n\n", a.Summary)
	fmt.Fprintf(&b, "--- Keywords ---\n%s\n\n", strings.Join(a.Keywords, listSeparator))
	fmt.Fprintf(&b, "--- Topics ---\n%s\n\n", strings.Join(a.Topics, listSeparator))
	fmt.Fprintf(&b, "--- Tags ---\n%s\n\n", strings.Join(record.Tags, listSeparator))
	fmt.Fprintf(&b, "--- Notes ---\n%s\n\n", notes)
	fmt.Fprintf(&b, "--- Full Transcript ---\n%s", record.Transcript)

	return b.String()
}

// CSV renders the header line and a single data row. Every field is quoted.
func CSV(record models.Record) string {
	a := analysisOf(record)

	row := []string{
		record.FileName,
		record.Date,
		record.Persona.Label(),
		string(a.Sentiment),
		a.Summary,
		strings.Join(a.Keywords, listSeparator),
		strings.Join(a.Topics, listSeparator),
		strings.Join(record.Tags, listSeparator),
		record.Notes,
		record.Transcript,
	}
	for i, field := range row {
		row[i] = quote(field)
	}

	return strings.Join(csvHeader, ",") + "\r\n" + strings.Join(row, ",")
}

// FileName returns the download name of record in format f: the file name
// lowercased, with every character outside [a-z0-9] replaced by "_".
func FileName(record models.Record, f Format) string {
	base := unsafeFileNameChars.ReplaceAllString(record.FileName, "_")
	return strings.ToLower(base) + "_analysis." + string(f)
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func analysisOf(record models.Record) models.Analysis {
	if record.Analysis == nil {
		return models.Analysis{}
	}
	return *record.Analysis
}
