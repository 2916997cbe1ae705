package mapconf

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Dir     string   `json:"dir"`
	Configs []string `json:"configs,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	names, _ := s.List()
	return StoreState{Dir: s.dir, Configs: names}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "mapconf"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
