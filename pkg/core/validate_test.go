package core

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var data any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		t.Fatalf("test fixture is not valid JSON: %v", err)
	}
	return data
}

func validRaw() string {
	return `{
		"id": "note_1",
		"title": "My Song",
		"composer": "Me",
		"lyrics": "la la la",
		"style": "pop",
		"extraInfo": "",
		"tags": ["demo"],
		"color": "blue",
		"isPinned": true,
		"createdAt": 1000,
		"updatedAt": 2000,
		"timeline": [{"timestamp": 1000, "action": "created"}]
	}`
}

func TestValidateNote(t *testing.T) {
	t.Run("Accepts Well-Formed Note", func(t *testing.T) {
		n := ValidateNote(decode(t, validRaw()))
		if n == nil {
			t.Fatal("expected a note, got nil")
		}
		if n.ID != "note_1" || n.Title != "My Song" || n.Color != ColorBlue {
			t.Errorf("unexpected note: %+v", n)
		}
		if !n.IsPinned || n.CreatedAt != 1000 || n.UpdatedAt != 2000 {
			t.Errorf("unexpected note: %+v", n)
		}
	})

	t.Run("Rejects Non-Object", func(t *testing.T) {
		for _, raw := range []string{`null`, `42`, `"x"`, `[1]`} {
			if n := ValidateNote(decode(t, raw)); n != nil {
				t.Errorf("expected nil for %s, got %+v", raw, n)
			}
		}
	})

	t.Run("Rejects Broken Identity", func(t *testing.T) {
		cases := []string{
			`{"title": "x", "createdAt": 1, "updatedAt": 1}`,
			`{"id": "", "createdAt": 1, "updatedAt": 1}`,
			`{"id": 7, "createdAt": 1, "updatedAt": 1}`,
			`{"id": "a", "createdAt": 0, "updatedAt": 1}`,
			`{"id": "a", "createdAt": 1, "updatedAt": -5}`,
			`{"id": "a", "createdAt": "1", "updatedAt": 1}`,
		}
		for _, raw := range cases {
			if n := ValidateNote(decode(t, raw)); n != nil {
				t.Errorf("expected nil for %s, got %+v", raw, n)
			}
		}
	})

	t.Run("Sanitizes Instead Of Rejecting", func(t *testing.T) {
		raw := `{
			"id": "a", "createdAt": 1, "updatedAt": 1,
			"title": 42,
			"color": "neon",
			"tags": ["ok", 7, null, "also ok"],
			"timeline": [{"timestamp": 1, "action": "created"}, {"timestamp": "x", "action": "created"}, {"action": "deleted", "timestamp": 2}]
		}`
		n := ValidateNote(decode(t, raw))
		if n == nil {
			t.Fatal("expected a note, got nil")
		}
		if n.Title != "" {
			t.Errorf("non-string title should become empty, got %q", n.Title)
		}
		if n.Color != ColorDefault {
			t.Errorf("unknown color should coerce to default, got %q", n.Color)
		}
		if !reflect.DeepEqual(n.Tags, []string{"ok", "also ok"}) {
			t.Errorf("tags should be filtered to strings, got %v", n.Tags)
		}
		if len(n.Timeline) != 1 || n.Timeline[0].Action != TimelineCreated {
			t.Errorf("timeline should keep only well-shaped entries, got %v", n.Timeline)
		}
	})

	t.Run("Caps Collections", func(t *testing.T) {
		tags := make([]string, 0, 30)
		for i := 0; i < 30; i++ {
			tags = append(tags, `"t"`)
		}
		timeline := make([]string, 0, 60)
		for i := 0; i < 60; i++ {
			timeline = append(timeline, `{"timestamp": 1, "action": "updated"}`)
		}
		raw := `{"id": "a", "createdAt": 1, "updatedAt": 1,
			"tags": [` + strings.Join(tags, ",") + `],
			"timeline": [` + strings.Join(timeline, ",") + `]}`

		n := ValidateNote(decode(t, raw))
		if n == nil {
			t.Fatal("expected a note, got nil")
		}
		if len(n.Tags) != LimitTagsMax {
			t.Errorf("expected %d tags, got %d", LimitTagsMax, len(n.Tags))
		}
		if len(n.Timeline) != LimitTimeline {
			t.Errorf("expected %d timeline entries, got %d", LimitTimeline, len(n.Timeline))
		}
	})
}

func TestTruncationInvariant(t *testing.T) {
	cases := []struct {
		s     string
		limit int
	}{
		{"", 10},
		{"short", 200},
		{strings.Repeat("x", 500), 200},
		{strings.Repeat("å", 300), 200}, // multi-byte runes count as one
		{"exact", 5},
	}
	for _, c := range cases {
		got := Truncate(c.s, c.limit)
		want := len([]rune(c.s))
		if want > c.limit {
			want = c.limit
		}
		if len([]rune(got)) != want {
			t.Errorf("Truncate(%d runes, %d) = %d runes", len([]rune(c.s)), c.limit, len([]rune(got)))
		}
	}
}

// Sanitizing an already-sanitized note must be a no-op, even after a trip
// through the storage envelope.
func TestSanitizeIdempotent(t *testing.T) {
	first := ValidateNote(decode(t, validRaw()))
	if first == nil {
		t.Fatal("expected a note")
	}

	data, err := json.Marshal(first)
	if err != nil {
		t.Fatal(err)
	}
	second := ValidateNote(decode(t, string(data)))
	if second == nil {
		t.Fatal("expected a note after round trip")
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("sanitize is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestValidateNotesArray(t *testing.T) {
	t.Run("Drops Invalid And Dedupes By ID", func(t *testing.T) {
		raw := `[
			{"id": "a", "createdAt": 1, "updatedAt": 1, "title": "first"},
			{"id": "b", "createdAt": 1, "updatedAt": 1},
			"garbage",
			{"id": "a", "createdAt": 9, "updatedAt": 9, "title": "second"}
		]`
		got := ValidateNotesArray(decode(t, raw))
		if len(got) != 2 {
			t.Fatalf("expected 2 notes, got %d", len(got))
		}
		if got[0].ID != "a" || got[0].Title != "first" {
			t.Errorf("dedup should keep the first occurrence, got %+v", got[0])
		}
	})

	t.Run("Non-Array Yields Empty", func(t *testing.T) {
		if got := ValidateNotesArray(decode(t, `{"notes": []}`)); len(got) != 0 {
			t.Errorf("expected empty, got %v", got)
		}
	})
}

func TestValidateImportedNote(t *testing.T) {
	t.Run("Drops Identity And Forces Unpinned", func(t *testing.T) {
		raw := `{
			"id": "attacker-chosen",
			"createdAt": 1, "updatedAt": 1,
			"timeline": [{"timestamp": 1, "action": "created"}],
			"isPinned": true,
			"title": "Imported",
			"tags": ["a"]
		}`
		p := ValidateImportedNote(decode(t, raw))
		if p == nil {
			t.Fatal("expected a partial")
		}
		if *p.Title != "Imported" {
			t.Errorf("expected title to survive, got %q", *p.Title)
		}
		if p.IsPinned == nil || *p.IsPinned {
			t.Error("imported notes must be unpinned")
		}
	})

	t.Run("Rejects Non-Object Only", func(t *testing.T) {
		if p := ValidateImportedNote(decode(t, `[1]`)); p != nil {
			t.Error("expected nil for array input")
		}
		if p := ValidateImportedNote(decode(t, `{}`)); p == nil {
			t.Error("an empty object is still an importable (blank) note")
		}
	})
}

func TestValidateSettings(t *testing.T) {
	def := DefaultSettings()

	got := ValidateSettings(decode(t, `{"theme": "theme-a", "defaultSort": "titleAsc"}`))
	if got.Theme != ThemeA || got.DefaultSort != SortTitleAsc {
		t.Errorf("unexpected settings: %+v", got)
	}

	got = ValidateSettings(decode(t, `{"theme": "neon", "defaultSort": "bogus"}`))
	if got != def {
		t.Errorf("unknown values should fall back to defaults, got %+v", got)
	}

	if got := ValidateSettings(nil); got != def {
		t.Errorf("nil input should yield defaults, got %+v", got)
	}
}

func TestIsCorruptJSON(t *testing.T) {
	if IsCorruptJSON("", false) {
		t.Error("absent value is not corruption")
	}
	if IsCorruptJSON(`{"ok": true}`, true) {
		t.Error("valid JSON is not corruption")
	}
	if !IsCorruptJSON(`{"ok": tru`, true) {
		t.Error("truncated JSON is corruption")
	}
}
