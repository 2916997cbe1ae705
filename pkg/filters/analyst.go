package filters

import (
	"fmt"

	"github.com/odourcollect/ocdata/pkg/core"
)

// analystFields are extra columns for data analyst work, absent from raw
// citizen-submitted exports.
var analystFields = []string{
	"Typeoverride",
	"Subtypeoverride",
	"Intensityoverride",
	"Annoyoverride",
	"Analystcomments",
}

// AddAnalystFields appends the analyst-only columns, initialized to empty
// text. The input is expected to be a regular observations export; if any
// of the fields is already present the data is an analysis file, which is
// a caller error. The conflict check runs before any mutation so a failed
// call leaves the table untouched.
func AddAnalystFields(t *core.Table) (*core.Table, error) {
	for _, name := range analystFields {
		if t.Has(name) {
			return nil, fmt.Errorf("%w: column %q already present, data looks like an analysis file, not an observations file",
				core.ErrSchemaConflict, name)
		}
	}
	for _, name := range analystFields {
		if err := t.Add(name, core.KindText, ""); err != nil {
			return nil, err
		}
	}
	return t, nil
}
