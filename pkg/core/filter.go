package core

import (
	"fmt"
	"log/slog"
	"strings"
)

// Filter is a named transformation step. It consumes a whole table and
// returns the transformed table. Filters are not idempotent in general
// (re-adding columns errors), so callers run each filter at most once
// per dataset lifecycle.
type Filter func(t *Table) (*Table, error)

// Registry is a statically declared catalog of named filters.
// Membership validation is a lookup against this table.
type Registry struct {
	names   []string
	filters map[string]Filter
}

// NewRegistry creates an empty filter registry.
func NewRegistry() *Registry {
	return &Registry{filters: make(map[string]Filter)}
}

// Register adds a filter under the given name.
func (r *Registry) Register(name string, f Filter) error {
	if _, ok := r.filters[name]; ok {
		return fmt.Errorf("filter %q already registered", name)
	}
	r.names = append(r.names, name)
	r.filters[name] = f
	return nil
}

// Names returns the registered filter names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Lookup returns the filter registered under name.
func (r *Registry) Lookup(name string) (Filter, bool) {
	f, ok := r.filters[name]
	return f, ok
}

// Validate checks that every requested name is registered. On failure the
// error names the offending entries and lists what is available.
func (r *Registry) Validate(requested []string) error {
	var unknown []string
	for _, name := range requested {
		if _, ok := r.filters[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("%w: %s (available: %s)",
			ErrUnknownFilter, strings.Join(unknown, ", "), strings.Join(r.names, ", "))
	}
	return nil
}

// Run validates the requested list and applies the filters strictly in
// order, threading the table through: the output of filter i is the input
// of filter i+1. There is no rollback; when a filter fails the table is
// left in whatever partial state that filter produced, and the caller must
// discard it.
func (r *Registry) Run(t *Table, requested []string, logger *slog.Logger) (*Table, error) {
	if err := r.Validate(requested); err != nil {
		return nil, err
	}
	for _, name := range requested {
		if logger != nil {
			logger.Debug("running filter", "name", name)
		}
		out, err := r.filters[name](t)
		if err != nil {
			return nil, fmt.Errorf("filter %q: %w", name, err)
		}
		t = out
	}
	return t, nil
}
