// Package tabular adapts CSV and spreadsheet files to the core table model.
package tabular

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/odourcollect/ocdata/pkg/core"
)

// Format is a file type hint for the loader.
type Format string

const (
	// FormatAuto derives the format from the file's extension.
	FormatAuto Format = "auto"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Detect derives a format from a file path's extension. ".xls" is treated
// as xlsx-like.
func Detect(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV
	case ".xlsx", ".xls":
		return FormatXLSX
	}
	return Format(strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."))
}

// ParseFormat converts a user-supplied hint into a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatAuto:
		return FormatAuto, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatXLSX, "xls":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("%w: %q (expected auto, csv or xlsx)", core.ErrUnsupportedFormat, s)
}
