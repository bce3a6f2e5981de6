package core

import "encoding/json"

// Sanitization favors graceful degradation for internal data: a field going
// slightly over its limit must not destroy the whole note, so strings are
// truncated and collections capped instead of rejected. The import boundary
// is the opposite: identity and timestamps are never trusted.

// Truncate clamps s to at most max runes.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

// TruncateValue coerces an untyped value to a bounded string.
// Non-strings become the empty string.
func TruncateValue(v any, max int) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return Truncate(s, max)
}

// IsCorruptJSON reports whether a raw stored value is unparseable.
// An absent value is not corruption.
func IsCorruptJSON(raw string, present bool) bool {
	if !present {
		return false
	}
	return !json.Valid([]byte(raw))
}

func sanitizeColor(v any) NoteColor {
	s, ok := v.(string)
	if !ok {
		return ColorDefault
	}
	for _, c := range ValidNoteColors {
		if NoteColor(s) == c {
			return c
		}
	}
	return ColorDefault
}

// SanitizeColor coerces a color to the palette, falling back to the default.
func SanitizeColor(c NoteColor) NoteColor {
	return sanitizeColor(string(c))
}

// SanitizeTags filters non-strings, truncates each tag and caps the count.
// Duplicates are permitted at the storage layer.
func SanitizeTags(raw []any) []string {
	tags := make([]string, 0, len(raw))
	for _, t := range raw {
		s, ok := t.(string)
		if !ok {
			continue
		}
		tags = append(tags, Truncate(s, LimitTagSingle))
		if len(tags) == LimitTagsMax {
			break
		}
	}
	return tags
}

// SanitizeTagList applies the tag limits to an already-typed tag slice.
func SanitizeTagList(raw []string) []string {
	tags := raw
	if len(tags) > LimitTagsMax {
		tags = tags[:LimitTagsMax]
	}
	out := make([]string, len(tags))
	for i, t := range tags {
		out[i] = Truncate(t, LimitTagSingle)
	}
	return out
}

func sanitizeTimeline(v any) []TimelineEntry {
	raw, ok := v.([]any)
	if !ok {
		return []TimelineEntry{}
	}
	entries := make([]TimelineEntry, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		ts, ok := m["timestamp"].(float64)
		if !ok {
			continue
		}
		action, _ := m["action"].(string)
		if action != string(TimelineCreated) && action != string(TimelineUpdated) {
			continue
		}
		entries = append(entries, TimelineEntry{
			Timestamp: int64(ts),
			Action:    TimelineAction(action),
		})
	}
	return CapTimeline(entries)
}

// CapTimeline keeps the last LimitTimeline entries, dropping the oldest.
func CapTimeline(entries []TimelineEntry) []TimelineEntry {
	if len(entries) > LimitTimeline {
		return entries[len(entries)-LimitTimeline:]
	}
	return entries
}

// ValidateNote turns an arbitrary decoded JSON value into a fully-populated
// Note, or nil. Rejection is reserved for broken identity (missing id,
// non-positive timestamps); every other field is sanitized in place.
func ValidateNote(data any) *Note {
	m, ok := data.(map[string]any)
	if !ok {
		return nil
	}

	id, ok := m["id"].(string)
	if !ok || id == "" {
		return nil
	}
	createdAt, ok := m["createdAt"].(float64)
	if !ok || createdAt <= 0 {
		return nil
	}
	updatedAt, ok := m["updatedAt"].(float64)
	if !ok || updatedAt <= 0 {
		return nil
	}

	var tags []string
	if raw, ok := m["tags"].([]any); ok {
		tags = SanitizeTags(raw)
	} else {
		tags = []string{}
	}

	pinned, _ := m["isPinned"].(bool)

	return &Note{
		ID:        id,
		Title:     TruncateValue(m["title"], LimitTitle),
		Composer:  TruncateValue(m["composer"], LimitComposer),
		Lyrics:    TruncateValue(m["lyrics"], LimitLyrics),
		Style:     TruncateValue(m["style"], LimitStyle),
		ExtraInfo: TruncateValue(m["extraInfo"], LimitExtraInfo),
		Tags:      tags,
		Color:     sanitizeColor(m["color"]),
		IsPinned:  pinned,
		CreatedAt: int64(createdAt),
		UpdatedAt: int64(updatedAt),
		Timeline:  sanitizeTimeline(m["timeline"]),
	}
}

// SanitizeNote applies the same rules as ValidateNote to an already-typed
// Note, for revalidating merged updates without a JSON round trip.
// Returns false when identity is broken.
func SanitizeNote(n Note) (Note, bool) {
	if n.ID == "" || n.CreatedAt <= 0 || n.UpdatedAt <= 0 {
		return Note{}, false
	}

	n.Title = Truncate(n.Title, LimitTitle)
	n.Composer = Truncate(n.Composer, LimitComposer)
	n.Lyrics = Truncate(n.Lyrics, LimitLyrics)
	n.Style = Truncate(n.Style, LimitStyle)
	n.ExtraInfo = Truncate(n.ExtraInfo, LimitExtraInfo)
	n.Tags = SanitizeTagList(n.Tags)
	if n.Tags == nil {
		n.Tags = []string{}
	}
	n.Color = SanitizeColor(n.Color)
	n.Timeline = CapTimeline(n.Timeline)
	if n.Timeline == nil {
		n.Timeline = []TimelineEntry{}
	}
	return n, true
}

// ValidateNotesArray maps ValidateNote over a decoded array, dropping
// invalid entries and deduplicating by id (first occurrence wins). The
// dedup guards against a corrupted collection containing id collisions
// after a faulty write.
func ValidateNotesArray(data any) []Note {
	raw, ok := data.([]any)
	if !ok {
		return []Note{}
	}

	valid := make([]Note, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, item := range raw {
		n := ValidateNote(item)
		if n == nil {
			continue
		}
		if _, dup := seen[n.ID]; dup {
			continue
		}
		seen[n.ID] = struct{}{}
		valid = append(valid, *n)
	}
	return valid
}

// ValidateImportedNote sanitizes a decoded value crossing the import
// boundary. Identity, timestamps and timeline are deliberately dropped
// (the repository reassigns them) and pinning is forced off. Returns nil
// only when the input is not an object.
func ValidateImportedNote(data any) *Partial {
	m, ok := data.(map[string]any)
	if !ok {
		return nil
	}

	var tags []string
	if raw, ok := m["tags"].([]any); ok {
		tags = SanitizeTags(raw)
	} else {
		tags = []string{}
	}

	color := sanitizeColor(m["color"])
	pinned := false

	return &Partial{
		Title:     StringPtr(TruncateValue(m["title"], LimitTitle)),
		Composer:  StringPtr(TruncateValue(m["composer"], LimitComposer)),
		Lyrics:    StringPtr(TruncateValue(m["lyrics"], LimitLyrics)),
		Style:     StringPtr(TruncateValue(m["style"], LimitStyle)),
		ExtraInfo: StringPtr(TruncateValue(m["extraInfo"], LimitExtraInfo)),
		Tags:      tags,
		Color:     &color,
		IsPinned:  &pinned,
	}
}

// ValidateSettings coerces a decoded value into a well-formed Settings,
// falling back to defaults field by field.
func ValidateSettings(data any) Settings {
	def := DefaultSettings()
	m, ok := data.(map[string]any)
	if !ok {
		return def
	}

	out := def
	if theme, ok := m["theme"].(string); ok {
		switch ThemeOption(theme) {
		case ThemeSystem, ThemeN, ThemeA, ThemeC, ThemeD:
			out.Theme = ThemeOption(theme)
		}
	}
	if sort, ok := m["defaultSort"].(string); ok {
		switch SortOption(sort) {
		case SortUpdatedDesc, SortCreatedDesc, SortTitleAsc:
			out.DefaultSort = SortOption(sort)
		}
	}
	return out
}

// StorageVersion extracts the schema version tag from a decoded envelope.
// Anything without a numeric version reads as 0.
func StorageVersion(data any) int {
	m, ok := data.(map[string]any)
	if !ok {
		return 0
	}
	v, ok := m["version"].(float64)
	if !ok {
		return 0
	}
	return int(v)
}
