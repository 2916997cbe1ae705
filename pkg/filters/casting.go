package filters

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/odourcollect/ocdata/pkg/core"
)

// Per-column casting tables. The override fields must allow empty values,
// so they stay categorical instead of int.
var (
	categoryColumns = []string{
		"Type", "Subtype", "Zone", "Status", "Origin", "User",
		"Intensityoverride", "Annoyoverride", "Duration",
	}
	dateColumns     = []string{"Day"}
	durationColumns = []string{"Time", "Duration"}
	intColumns      = []string{"Intensity", "Annoy"}
)

// Accepted calendar date layouts for the Day column. The OdourCollect
// backend emits ISO dates; the slashed variants show up in older exports.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
}

// "1 day 00:00:00" as produced by the duration recoding.
var dayPrefix = regexp.MustCompile(`^(\d+)\s+days?\s+(.+)$`)

// TypeCasting converts normalized text columns to typed representations
// using a fixed per-column-name mapping. Intended to be the very last
// filter run.
//
// Duration appears in both the categorical and the duration tables; the
// checks run in the fixed order categorical, date, duration, int, and a
// later coercion overrides an earlier one, so Duration ends up as integer
// minutes. Cells that already hold the target type are left alone, which
// makes re-running this filter on an analysis dataset a no-op.
func TypeCasting(t *core.Table) (*core.Table, error) {
	for _, col := range t.Columns() {
		if member(categoryColumns, col.Name) {
			col.Kind = core.KindCategory
		}
		if member(dateColumns, col.Name) {
			if err := castDates(col); err != nil {
				return nil, err
			}
		}
		if member(durationColumns, col.Name) {
			if err := castDurations(col); err != nil {
				return nil, err
			}
		}
		if member(intColumns, col.Name) {
			if err := castInts(col); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}

func member(set []string, name string) bool {
	for _, s := range set {
		if s == name {
			return true
		}
	}
	return false
}

func castDates(col *core.Column) error {
	for i, cell := range col.Cells {
		text, ok := cell.(string)
		if !ok {
			continue // already typed
		}
		parsed, err := parseDate(text)
		if err != nil {
			return fmt.Errorf("%w: column %q value %q (row %d)", core.ErrMalformedDate, col.Name, text, i)
		}
		col.Cells[i] = parsed
	}
	col.Kind = core.KindDate
	return nil
}

func parseDate(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, text); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("no layout matches %q", text)
}

func castDurations(col *core.Column) error {
	for i, cell := range col.Cells {
		text, ok := cell.(string)
		if !ok {
			continue
		}
		minutes, err := parseMinutes(text)
		if err != nil {
			return fmt.Errorf("%w: column %q value %q (row %d)", core.ErrMalformedDuration, col.Name, text, i)
		}
		col.Cells[i] = minutes
	}
	col.Kind = core.KindMinutes
	return nil
}

// parseMinutes converts "[N day[s] ]HH:MM[:SS]" text to a count of
// minutes, rounded to the nearest whole minute.
func parseMinutes(text string) (int, error) {
	text = strings.TrimSpace(text)

	days := 0
	if m := dayPrefix.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return 0, err
		}
		days = n
		text = m[2]
	}

	parts := strings.Split(text, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("expected HH:MM[:SS], got %q", text)
	}
	numbers := make([]int, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("bad component %q", part)
		}
		numbers[i] = n
	}

	seconds := days*86400 + numbers[0]*3600 + numbers[1]*60
	if len(numbers) == 3 {
		seconds += numbers[2]
	}
	return int(math.Round(float64(seconds) / 60)), nil
}

func castInts(col *core.Column) error {
	for i, cell := range col.Cells {
		text, ok := cell.(string)
		if !ok {
			continue
		}
		// Stray internal whitespace is common in older exports.
		n, err := strconv.Atoi(strings.ReplaceAll(text, " ", ""))
		if err != nil {
			return fmt.Errorf("%w: column %q value %q (row %d)", core.ErrMalformedInteger, col.Name, text, i)
		}
		col.Cells[i] = n
	}
	col.Kind = core.KindInt
	return nil
}
