package notes

import (
	"log/slog"

	"github.com/Vintermom/my-music-notes/pkg/core"
	"github.com/Vintermom/my-music-notes/pkg/kv"
)

// SettingsKey is the logical key the settings record lives under.
const SettingsKey = "settings"

// settingsPayload is the current write shape: {version, settings}.
type settingsPayload struct {
	Version  int           `json:"version"`
	Settings core.Settings `json:"settings"`
}

// legacyThemes maps theme values from earlier revisions onto the canonical
// enum. The settings key shipped several incompatible theme sets over time;
// anything not in this table (and not already canonical) falls back to
// "system".
var legacyThemes = map[string]core.ThemeOption{
	"light":   core.ThemeN,
	"dark":    core.ThemeD,
	"theme-b": core.ThemeC,
}

// SettingsRepository owns the singleton settings record.
type SettingsRepository struct {
	store  *kv.Store
	logger *slog.Logger
}

// NewSettingsRepository creates a settings repository over the given store.
func NewSettingsRepository(store *kv.Store, logger *slog.Logger) *SettingsRepository {
	return &SettingsRepository{store: store, logger: logger}
}

// GetSettings reads the settings record, accepting both the bare legacy
// shape and the versioned envelope. A legacy record is migrated in place:
// old theme values map through a lookup with a safe fallback and the
// envelope version is bumped on the write-back.
func (s *SettingsRepository) GetSettings() core.Settings {
	raw, present := s.store.GetRaw(SettingsKey)
	if !present || core.IsCorruptJSON(raw, present) {
		return core.DefaultSettings()
	}

	data := kv.Get[any](s.store, SettingsKey, nil)
	m, ok := data.(map[string]any)
	if !ok {
		return core.DefaultSettings()
	}

	if inner, ok := m["settings"].(map[string]any); ok {
		// Current envelope shape.
		return core.ValidateSettings(inner)
	}

	// Bare legacy record: migrate the theme and persist the envelope.
	migrated := migrateLegacySettings(m)
	if !s.SaveSettings(migrated) && s.logger != nil {
		s.logger.Warn("settings migration write failed, will retry next read")
	}
	return migrated
}

func migrateLegacySettings(m map[string]any) core.Settings {
	if theme, ok := m["theme"].(string); ok {
		if mapped, legacy := legacyThemes[theme]; legacy {
			m["theme"] = string(mapped)
		}
	}
	return core.ValidateSettings(m)
}

// SaveSettings persists the settings wrapped in the versioned envelope.
func (s *SettingsRepository) SaveSettings(settings core.Settings) bool {
	return kv.Set(s.store, SettingsKey, settingsPayload{
		Version:  core.StorageSchemaVersion,
		Settings: settings,
	})
}

// SettingsPatch carries partial settings updates; nil means "keep".
type SettingsPatch struct {
	Theme       *core.ThemeOption
	DefaultSort *core.SortOption
}

// UpdateSettings merges a patch onto the current record and persists the
// result. The merged settings are returned even if the write failed, so a
// degraded host still sees a consistent in-memory view.
func (s *SettingsRepository) UpdateSettings(patch SettingsPatch) core.Settings {
	current := s.GetSettings()
	if patch.Theme != nil {
		current.Theme = *patch.Theme
	}
	if patch.DefaultSort != nil {
		current.DefaultSort = *patch.DefaultSort
	}

	validated := core.ValidateSettings(map[string]any{
		"theme":       string(current.Theme),
		"defaultSort": string(current.DefaultSort),
	})
	s.SaveSettings(validated)
	return validated
}
