package filters

import "github.com/odourcollect/ocdata/pkg/core"

// typoRenames corrects known column-naming defects in OdourCollect export
// files ("Intentity" being the long-standing one).
var typoRenames = map[string]string{
	"Intentity": "Intensity",
	"day":       "Day",
	"time":      "Time",
}

// FixTypos renames historically mis-named columns. A rename applies only
// when the source name is present; absence is not an error. Must run
// before any filter that depends on canonical column names.
func FixTypos(t *core.Table) (*core.Table, error) {
	for from, to := range typoRenames {
		if !t.Has(from) {
			continue
		}
		if err := t.Rename(from, to); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// FixUserIDs injects an empty "User" column when missing. Export files
// generated by non-superadmins don't include user ids; this homogenizes
// the structure.
func FixUserIDs(t *core.Table) (*core.Table, error) {
	if t.Has("User") {
		return t, nil
	}
	if err := t.Add("User", core.KindText, ""); err != nil {
		return nil, err
	}
	return t, nil
}
