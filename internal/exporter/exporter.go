package exporter

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"orgpulse/internal/config"
)

// Supported export formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ErrUnsupportedFormat is returned for formats other than csv and xlsx.
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Write encodes the tables in the given format. CSV output carries a BOM
// so that spreadsheet tools detect UTF-8.
func Write(w io.Writer, format string, tables ...Table) error {
	switch format {
	case FormatCSV:
		return EncodeCSV(w, CSVOptions{BOMPrefix: true}, tables...)
	case FormatXLSX:
		return EncodeXLSX(w, tables...)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ContentType returns the MIME type of a format.
func ContentType(format string) (string, error) {
	switch format {
	case FormatCSV:
		return config.ContentTypeCSV, nil
	case FormatXLSX:
		return config.ContentTypeXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// FileName returns the download name of a chart export, e.g.
// "graph_finance.xlsx".
func FileName(chart, department, format string) string {
	if department == "" {
		return fmt.Sprintf("%s.%s", chart, format)
	}
	return fmt.Sprintf("%s_%s.%s", chart, slug(department), format)
}

func slug(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			out = append(out, c)
		case c >= 'A' && c <= 'Z':
			out = append(out, c+'a'-'A')
		case c == '&':
			out = append(out, 'n')
		default:
			if len(out) > 0 && out[len(out)-1] != '-' {
				out = append(out, '-')
			}
		}
	}
	return strings.Trim(string(out), "-")
}
