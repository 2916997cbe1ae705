package core

import (
	"context"
	"fmt"
	"log/slog"
)

// Source loads a raw table from some backing store. Adhering to this
// interface keeps the core independent of file formats (CSV, XLSX, ...).
type Source interface {
	// Load reads the whole source into a table with all cells as text.
	Load(ctx context.Context) (*Table, error)

	// Name identifies the source for logging and diagnostics (e.g. a file path).
	Name() string
}

// Dataset owns exactly one table plus the profile that produced its
// current state. It is built once; the core never mutates it afterward.
type Dataset struct {
	name    string
	profile Profile
	table   *Table
}

// NewDataset loads the source and runs the profile's filter list over the
// raw table. A dataset whose construction failed must be discarded; there
// is no partial recovery.
func NewDataset(ctx context.Context, src Source, profile Profile, reg *Registry, logger *slog.Logger) (*Dataset, error) {
	names := profile.FilterList()
	if names == nil {
		return nil, fmt.Errorf("unknown profile %q", profile)
	}

	t, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", src.Name(), err)
	}
	if logger != nil {
		logger.Debug("table loaded", "source", src.Name(), "rows", t.Rows(), "columns", t.Width())
	}

	t, err = reg.Run(t, names, logger)
	if err != nil {
		return nil, err
	}

	return &Dataset{name: src.Name(), profile: profile, table: t}, nil
}

// Name returns the source name the dataset was built from.
func (d *Dataset) Name() string { return d.name }

// Profile returns the profile that produced the dataset's current state.
func (d *Dataset) Profile() Profile { return d.profile }

// Table returns the normalized, typed table.
func (d *Dataset) Table() *Table { return d.table }
