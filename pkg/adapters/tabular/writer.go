package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/odourcollect/ocdata/pkg/core"
)

// Writer serializes a table to one output format. There is no bit-exact
// format contract beyond "valid file with the current column set and
// values".
type Writer interface {
	Write(w io.Writer, t *core.Table) error
}

// DefaultWriters returns the standard set of writers.
func DefaultWriters() map[Format]Writer {
	return map[Format]Writer{
		FormatCSV:  &CSVWriter{},
		FormatXLSX: &XLSXWriter{},
	}
}

// Export writes the table to path, picking the writer by extension.
func Export(path string, t *core.Table) error {
	writer, ok := DefaultWriters()[Detect(path)]
	if !ok {
		return fmt.Errorf("%w: %q (expected .csv or .xlsx)", core.ErrUnsupportedFormat, path)
	}
	handle, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := writer.Write(handle, t); err != nil {
		handle.Close()
		return err
	}
	return handle.Close()
}

// CSVWriter writes the table as comma-separated text with a header row.
type CSVWriter struct{}

func (c *CSVWriter) Write(w io.Writer, t *core.Table) error {
	out := csv.NewWriter(w)
	if err := out.Write(t.Names()); err != nil {
		return err
	}
	cols := t.Columns()
	for i := 0; i < t.Rows(); i++ {
		record := make([]string, len(cols))
		for j, col := range cols {
			record[j] = formatCell(col.Cells[i], col.Kind)
		}
		if err := out.Write(record); err != nil {
			return err
		}
	}
	out.Flush()
	return out.Error()
}

// XLSXWriter writes the table as a single-sheet spreadsheet.
type XLSXWriter struct{}

func (x *XLSXWriter) Write(w io.Writer, t *core.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := setRow(f, sheet, 1, anySlice(t.Names())); err != nil {
		return err
	}
	cols := t.Columns()
	for i := 0; i < t.Rows(); i++ {
		row := make([]any, len(cols))
		for j, col := range cols {
			// Everything goes out as text so a re-load stays literal.
			row[j] = formatCell(col.Cells[i], col.Kind)
		}
		if err := setRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func setRow(f *excelize.File, sheet string, n int, cells []any) error {
	ref, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, ref, &cells)
}

func anySlice(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// formatCell renders one typed cell back to text. Minutes render as
// "d days HH:MM:SS" so an exported table can be re-ingested with the
// analysis profile.
func formatCell(v any, kind core.Kind) string {
	switch cell := v.(type) {
	case string:
		return cell
	case bool:
		if cell {
			return "Yes"
		}
		return "No"
	case int:
		if kind == core.KindMinutes {
			return formatMinutes(cell)
		}
		return strconv.Itoa(cell)
	case time.Time:
		return cell.Format("2006-01-02")
	}
	return fmt.Sprintf("%v", v)
}

func formatMinutes(minutes int) string {
	days := minutes / 1440
	minutes -= days * 1440
	return fmt.Sprintf("%d days %02d:%02d:00", days, minutes/60, minutes%60)
}
