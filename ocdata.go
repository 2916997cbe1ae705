package ocdata

import (
	"log/slog"

	"github.com/odourcollect/ocdata/internal/platform"
	"github.com/odourcollect/ocdata/pkg/adapters/tabular"
	"github.com/odourcollect/ocdata/pkg/core"
	"github.com/odourcollect/ocdata/pkg/filters"
)

// Version exposes the version of the library.
const Version = "0.3.0"

// --- Types ---

// Dataset is a public alias for the core dataset.
type Dataset = core.Dataset

// Table is a public alias for the core table.
type Table = core.Table

// Profile is a public alias for the core profile.
type Profile = core.Profile

const (
	ProfileObservation = core.ProfileObservation
	ProfileAnalysis    = core.ProfileAnalysis
)

// Format is a public alias for the loader's file type hint.
type Format = tabular.Format

const (
	FormatAuto = tabular.FormatAuto
	FormatCSV  = tabular.FormatCSV
	FormatXLSX = tabular.FormatXLSX
)

// Unmapped-literal policies for the recoding filter.
const (
	PassThrough = filters.PassThrough
	Warn        = filters.Warn
	Fail        = filters.Fail
)

// --- Configuration ---

// Option defines a functional option for dataset construction.
type Option = platform.Option

// WithFormat sets the file type hint (auto, csv, xlsx).
func WithFormat(format Format) Option {
	return platform.WithFormat(format)
}

// WithProfile selects which ordered filter list runs at construction.
func WithProfile(profile Profile) Option {
	return platform.WithProfile(profile)
}

// WithUnmappedPolicy decides what the recoding filter does with literals
// outside its mapping tables.
func WithUnmappedPolicy(policy filters.UnmappedPolicy) Option {
	return platform.WithUnmappedPolicy(policy)
}

// WithBoolTokens overrides the true/false cell markers recognized on load.
func WithBoolTokens(trueTokens, falseTokens []string) Option {
	return platform.WithBoolTokens(trueTokens, falseTokens)
}

// WithLogger sets the logger used during loading and filter runs.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRegistry injects a custom filter catalog.
func WithRegistry(reg *core.Registry) Option {
	return platform.WithRegistry(reg)
}

// --- Factory ---

// Load builds a dataset from a CSV or spreadsheet file, running the
// selected profile's filters once at construction.
func Load(path string, opts ...Option) (*Dataset, error) {
	return platform.Load(path, opts...)
}

// LoadGlob builds one dataset per file matching the doublestar pattern.
func LoadGlob(pattern string, opts ...Option) ([]*Dataset, error) {
	return platform.LoadGlob(pattern, opts...)
}

// --- Operations ---

// Export writes a table to a .csv or .xlsx file.
func Export(path string, t *Table) error {
	return tabular.Export(path, t)
}
