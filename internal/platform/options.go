// Package platform is the composition root: it wires the tabular adapters
// and the filter catalog into the core domain.
package platform

import (
	"log/slog"

	"github.com/odourcollect/ocdata/pkg/adapters/tabular"
	"github.com/odourcollect/ocdata/pkg/core"
	"github.com/odourcollect/ocdata/pkg/filters"
)

// options holds the internal configuration for dataset construction.
type options struct {
	format      tabular.Format
	profile     core.Profile
	registry    *core.Registry
	unmapped    filters.UnmappedPolicy
	trueTokens  []string
	falseTokens []string
	logger      *slog.Logger
}

// Option defines a functional option for dataset construction.
type Option func(*options)

// defaultOptions returns the default configuration: observation profile,
// format autodetection, pass-through recoding, "Yes"/"No" markers.
func defaultOptions() *options {
	parse := tabular.DefaultParseOptions()
	return &options{
		format:      tabular.FormatAuto,
		profile:     core.ProfileObservation,
		registry:    nil,
		unmapped:    filters.PassThrough,
		trueTokens:  parse.TrueTokens,
		falseTokens: parse.FalseTokens,
		logger:      nil,
	}
}

// WithFormat sets the file type hint (auto, csv, xlsx).
func WithFormat(format tabular.Format) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithProfile selects which ordered filter list runs at construction.
func WithProfile(profile core.Profile) Option {
	return func(o *options) {
		o.profile = profile
	}
}

// WithUnmappedPolicy decides what the recoding filter does with literal
// values outside its mapping tables.
func WithUnmappedPolicy(policy filters.UnmappedPolicy) Option {
	return func(o *options) {
		o.unmapped = policy
	}
}

// WithBoolTokens overrides the literal cell values recognized as boolean
// markers at load time. Pass two empty slices to disable recognition.
func WithBoolTokens(trueTokens, falseTokens []string) Option {
	return func(o *options) {
		o.trueTokens = trueTokens
		o.falseTokens = falseTokens
	}
}

// WithLogger sets the logger used during loading and filter runs.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRegistry injects a custom filter catalog. If provided, the standard
// catalog (and the unmapped policy option) is skipped.
func WithRegistry(reg *core.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}
