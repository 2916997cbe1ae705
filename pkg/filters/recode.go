package filters

import (
	"fmt"
	"log/slog"

	"github.com/odourcollect/ocdata/pkg/core"
)

// UnmappedPolicy decides what the recoding filter does with literal values
// outside its mapping tables.
type UnmappedPolicy int

const (
	// PassThrough leaves unrecognized literals unchanged, silently. This is
	// the historical behavior and a known data-quality risk surface.
	PassThrough UnmappedPolicy = iota
	// Warn leaves them unchanged but logs each occurrence.
	Warn
	// Fail aborts the filter run on the first unrecognized literal.
	Fail
)

// Odour annoyance (hedonic tone) conversion, -4 .. 4.
var annoyMapping = map[string]string{
	"Extremely unpleasant": "-4",
	"Very unpleasant":      "-3",
	"Unpleasant":           "-2",
	"Slightly unpleasant":  "-1",
	"Neutral":              "0",
	"Slightly pleasant":    "1",
	"Pleasant":             "2",
	"Very pleasant":        "3",
	"Extremely pleasant":   "4",
	"":                     "0", // empty should not be there, but just in case
}

// Odour intensity conversion, 0 .. 6.
var intensityMapping = map[string]string{
	"Extremely strong": "6",
	"Very strong":      "5",
	"Strong":           "4",
	"Distinct":         "3",
	"Weak":             "2",
	"Very weak":        "1",
	"Not perceptible":  "0",
	"":                 "0",
}

// Duration conversion from categoric phrases to duration-shaped text, so
// the casting filter can turn them into minutes.
var durationMapping = map[string]string{
	"Continuous odor throughout the day": "1 day 00:00:00",
	"Continuous odor in the last hour":   "01:00:00",
	"Punctual odor":                      "00:05:00",
	"":                                   "00:00:00",
}

// bastardAnnoyMapping corrects labels that were mis-typed or merged in
// older OdourCollect versions. Applied to the Annoy column only, after the
// main mapping ("Extremely pleasan" really is missing its t).
var bastardAnnoyMapping = map[string]string{
	"Moderate unpleasant": "-3",
	"Moderate pleasant":   "3",
	"Extremely pleasan":   "4",
}

// OdourLiteralsToNumbers builds the recoding filter: three independent
// column-scoped literal substitutions (Intensity, Annoy, Duration), with
// the Annoy-only historical corrections applied after the main mapping.
// Relies on fix_typos having canonicalized column names.
func OdourLiteralsToNumbers(policy UnmappedPolicy, logger *slog.Logger) core.Filter {
	return func(t *core.Table) (*core.Table, error) {
		columns := []struct {
			name     string
			mapping  map[string]string
			fallback map[string]string
		}{
			{"Intensity", intensityMapping, nil},
			{"Annoy", annoyMapping, bastardAnnoyMapping},
			{"Duration", durationMapping, nil},
		}
		for _, c := range columns {
			col, ok := t.Column(c.name)
			if !ok {
				continue
			}
			for i, cell := range col.Cells {
				literal, ok := cell.(string)
				if !ok {
					continue
				}
				if code, ok := c.mapping[literal]; ok {
					col.Cells[i] = code
					continue
				}
				if code, ok := c.fallback[literal]; ok {
					col.Cells[i] = code
					continue
				}
				switch policy {
				case Fail:
					return nil, fmt.Errorf("unrecognized %s literal %q (row %d)", c.name, literal, i)
				case Warn:
					if logger != nil {
						logger.Warn("unrecognized literal passed through", "column", c.name, "value", literal, "row", i)
					}
				}
			}
		}
		return t, nil
	}
}
