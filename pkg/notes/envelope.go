package notes

import (
	"encoding/json"

	"github.com/Vintermom/my-music-notes/pkg/core"
)

// The persisted collection evolved from a bare array to a versioned
// envelope. The union is resolved once here, at the read boundary, into a
// tagged variant; nothing downstream re-sniffs the shape.

// storagePayload is the current write shape: {version, notes}.
type storagePayload struct {
	Version int         `json:"version"`
	Notes   []core.Note `json:"notes"`
}

type envelopeKind int

const (
	envelopeEmpty envelopeKind = iota
	envelopeLegacyArray
	envelopeVersioned
)

// resolvedEnvelope is the discriminated result of decoding stored bytes.
// items holds untyped note candidates for the collection validator.
type resolvedEnvelope struct {
	kind    envelopeKind
	version int
	items   []any
}

func resolveEnvelope(raw []byte) resolvedEnvelope {
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return resolvedEnvelope{kind: envelopeEmpty}
	}

	switch v := data.(type) {
	case []any:
		return resolvedEnvelope{kind: envelopeLegacyArray, items: v}
	case map[string]any:
		items, _ := v["notes"].([]any)
		if items == nil {
			return resolvedEnvelope{kind: envelopeEmpty}
		}
		return resolvedEnvelope{
			kind:    envelopeVersioned,
			version: core.StorageVersion(v),
			items:   items,
		}
	default:
		return resolvedEnvelope{kind: envelopeEmpty}
	}
}
