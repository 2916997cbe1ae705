// Package filters holds the fixed catalog of data prep routines applied to
// OdourCollect exports right after loading.
package filters

import (
	"log/slog"

	"github.com/odourcollect/ocdata/pkg/core"
)

// Config adjusts the behavior of the standard catalog.
type Config struct {
	// Unmapped decides what happens to literal values the recoding filter
	// does not recognize. The zero value is PassThrough, the historical
	// behavior.
	Unmapped UnmappedPolicy
	Logger   *slog.Logger
}

// NewRegistry builds the standard filter catalog with the given config.
func NewRegistry(cfg Config) *core.Registry {
	r := core.NewRegistry()
	// Registration order doubles as catalog order; these never collide.
	_ = r.Register(core.FilterFixTypos, FixTypos)
	_ = r.Register(core.FilterFixUserIDs, FixUserIDs)
	_ = r.Register(core.FilterOdourLiteralsToNumbers, OdourLiteralsToNumbers(cfg.Unmapped, cfg.Logger))
	_ = r.Register(core.FilterAddAnalystFields, AddAnalystFields)
	_ = r.Register(core.FilterTypeCasting, TypeCasting)
	return r
}

// DefaultRegistry builds the standard catalog with default behavior.
func DefaultRegistry() *core.Registry {
	return NewRegistry(Config{})
}
