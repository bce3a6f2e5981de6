package file

import (
	"github.com/aretw0/introspection"
)

// MediumState exposes internal state for observability.
type MediumState struct {
	Dir      string `json:"dir"`
	MaxBytes int64  `json:"max_bytes"`
	Keys     int    `json:"keys"`
}

// State implements introspection.Introspectable.
func (m *Medium) State() any {
	keys, _ := m.Keys()
	return MediumState{
		Dir:      m.dir,
		MaxBytes: m.maxBytes,
		Keys:     len(keys),
	}
}

// ComponentType implements introspection.Component.
func (m *Medium) ComponentType() string {
	return "file-medium"
}

var _ introspection.Introspectable = (*Medium)(nil)
var _ introspection.Component = (*Medium)(nil)
