package kv

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Prefix     string `json:"prefix"`
	Available  bool   `json:"available"`
	MediumType string `json:"medium_type"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	mediumType := "medium"
	if comp, ok := s.medium.(introspection.Component); ok {
		mediumType = comp.ComponentType()
	}

	return StoreState{
		Prefix:     s.prefix,
		Available:  s.Available(),
		MediumType: mediumType,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "kv-store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
