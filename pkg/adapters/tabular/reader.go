package tabular

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/odourcollect/ocdata/pkg/core"
)

// Reader parses one tabular format into a text-only table. The first row
// names the columns; every cell stays literal text apart from the optional
// true/false token recognition.
type Reader interface {
	Parse(r io.Reader, opts ParseOptions) (*core.Table, error)
}

// ParseOptions tunes parsing shared by all readers.
type ParseOptions struct {
	// TrueTokens and FalseTokens are literal cell values recognized as
	// boolean markers at load time. The load performs no other coercion.
	TrueTokens  []string
	FalseTokens []string
}

// DefaultParseOptions recognizes the "Yes"/"No" markers found in
// OdourCollect exports.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		TrueTokens:  []string{"Yes"},
		FalseTokens: []string{"No"},
	}
}

// DefaultReaders returns the standard set of readers.
func DefaultReaders() map[Format]Reader {
	return map[Format]Reader{
		FormatCSV:  &CSVReader{},
		FormatXLSX: &XLSXReader{},
	}
}

// --- CSV Reader ---

// CSVReader reads comma-separated files with a header row.
type CSVReader struct{}

func (c *CSVReader) Parse(r io.Reader, opts ParseOptions) (*core.Table, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	t, err := core.NewTable(header)
	if err != nil {
		return nil, err
	}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}
		if err := t.AppendRow(record); err != nil {
			return nil, err
		}
	}

	markBoolTokens(t, opts)
	return t, nil
}

// --- XLSX Reader ---

// XLSXReader reads spreadsheet files. Only the first sheet is read; this
// is a documented limitation, not a defect.
type XLSXReader struct{}

func (x *XLSXReader) Parse(r io.Reader, opts ParseOptions) (*core.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheets[0])
	}

	header := rows[0]
	t, err := core.NewTable(header)
	if err != nil {
		return nil, err
	}
	for _, row := range rows[1:] {
		// excelize trims trailing empty cells; pad back to table width.
		for len(row) < len(header) {
			row = append(row, "")
		}
		if err := t.AppendRow(row[:len(header)]); err != nil {
			return nil, err
		}
	}

	markBoolTokens(t, opts)
	return t, nil
}

// markBoolTokens tags cells matching the configured true/false tokens as
// boolean markers. Columns that end up all-boolean are tagged KindBool.
func markBoolTokens(t *core.Table, opts ParseOptions) {
	if len(opts.TrueTokens) == 0 && len(opts.FalseTokens) == 0 {
		return
	}
	tokens := make(map[string]bool, len(opts.TrueTokens)+len(opts.FalseTokens))
	for _, tok := range opts.TrueTokens {
		tokens[tok] = true
	}
	for _, tok := range opts.FalseTokens {
		tokens[tok] = false
	}

	for _, col := range t.Columns() {
		all := len(col.Cells) > 0
		for i, cell := range col.Cells {
			text, ok := cell.(string)
			if !ok {
				all = false
				continue
			}
			if v, ok := tokens[text]; ok {
				col.Cells[i] = v
			} else {
				all = false
			}
		}
		if all {
			col.Kind = core.KindBool
		}
	}
}
