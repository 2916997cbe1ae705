package core

import (
	"github.com/aretw0/introspection"
)

// DatasetState exposes internal state for observability.
type DatasetState struct {
	Name    string   `json:"name"`
	Profile string   `json:"profile"`
	Rows    int      `json:"rows"`
	Columns []string `json:"columns"`
}

// State implements introspection.Introspectable.
func (d *Dataset) State() any {
	return DatasetState{
		Name:    d.name,
		Profile: string(d.profile),
		Rows:    d.table.Rows(),
		Columns: d.table.Names(),
	}
}

// ComponentType implements introspection.Component.
func (d *Dataset) ComponentType() string {
	return "dataset"
}

var _ introspection.Introspectable = (*Dataset)(nil)
var _ introspection.Component = (*Dataset)(nil)
