package filters_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odourcollect/ocdata/pkg/core"
	"github.com/odourcollect/ocdata/pkg/filters"
)

func TestAddAnalystFields(t *testing.T) {
	tbl := makeTable(t, []string{"Type", "Zone"},
		[]string{"Waste", "Residential"},
		[]string{"Industry", "Rural"})

	out, err := filters.AddAnalystFields(tbl)
	require.NoError(t, err)

	for _, name := range []string{"Typeoverride", "Subtypeoverride", "Intensityoverride", "Annoyoverride", "Analystcomments"} {
		col, ok := out.Column(name)
		require.True(t, ok, "missing analyst field %s", name)
		require.Len(t, col.Cells, 2)
		assert.Equal(t, "", col.Cells[0])
	}
	assert.Equal(t, 2, out.Rows())
}

func TestAddAnalystFields_SchemaConflict(t *testing.T) {
	tbl := makeTable(t, []string{"Type", "Analystcomments"},
		[]string{"Waste", "reviewed"})

	_, err := filters.AddAnalystFields(tbl)
	require.Error(t, err)
	assert.True(t, errors.Is(err, core.ErrSchemaConflict), "expected ErrSchemaConflict, got %v", err)

	// The failed call must not mutate the table's columns.
	assert.Equal(t, []string{"Type", "Analystcomments"}, tbl.Names())
	col, _ := tbl.Column("Analystcomments")
	assert.Equal(t, "reviewed", col.Cells[0])
}
