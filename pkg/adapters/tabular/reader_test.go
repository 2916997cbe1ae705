package tabular

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odourcollect/ocdata/pkg/core"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"export.csv", FormatCSV},
		{"export.CSV", FormatCSV},
		{"export.xlsx", FormatXLSX},
		{"export.xls", FormatXLSX},
		{"export.pdf", Format("pdf")},
		{"export", Format("")},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, Detect(tc.path))
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"auto", "csv", "xlsx", "xls", "XLSX"} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, "%q should parse", s)
	}

	_, err := ParseFormat("pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrUnsupportedFormat)
}

func TestCSVReader_AllCellsAreText(t *testing.T) {
	input := "Day,Intensity,Annoy\n2023-05-01,4,-3\n2023-05-02,0,0\n"

	tbl, err := (&CSVReader{}).Parse(strings.NewReader(input), ParseOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{"Day", "Intensity", "Annoy"}, tbl.Names())
	assert.Equal(t, 2, tbl.Rows())
	col, _ := tbl.Column("Intensity")
	assert.Equal(t, core.KindText, col.Kind)
	assert.Equal(t, "4", col.Cells[0], "no numeric inference at load time")
}

func TestCSVReader_BoolTokens(t *testing.T) {
	input := "Day,Confirmed\n2023-05-01,Yes\n2023-05-02,No\n"

	tbl, err := (&CSVReader{}).Parse(strings.NewReader(input), DefaultParseOptions())
	require.NoError(t, err)

	col, _ := tbl.Column("Confirmed")
	assert.Equal(t, core.KindBool, col.Kind)
	assert.Equal(t, []any{true, false}, col.Cells)

	// Mixed columns keep their text and stay KindText.
	day, _ := tbl.Column("Day")
	assert.Equal(t, core.KindText, day.Kind)
}

func TestCSVReader_EmptyCellsStayEmpty(t *testing.T) {
	input := "User,Annoy\n,Neutral\n"

	tbl, err := (&CSVReader{}).Parse(strings.NewReader(input), ParseOptions{})
	require.NoError(t, err)

	col, _ := tbl.Column("User")
	assert.Equal(t, "", col.Cells[0])
}

func TestCSVReader_MalformedHeader(t *testing.T) {
	_, err := (&CSVReader{}).Parse(strings.NewReader(""), ParseOptions{})
	require.Error(t, err)
}
