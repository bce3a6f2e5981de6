package core

// NoteColor is the closed palette a note card can take.
// Unknown values coerce to ColorDefault during sanitization.
type NoteColor string

const (
	ColorDefault NoteColor = "default"
	ColorCream   NoteColor = "cream"
	ColorPink    NoteColor = "pink"
	ColorBlue    NoteColor = "blue"
	ColorGreen   NoteColor = "green"
	ColorYellow  NoteColor = "yellow"
	ColorPurple  NoteColor = "purple"
	ColorOrange  NoteColor = "orange"
)

// ValidNoteColors lists the full palette, in display order.
var ValidNoteColors = []NoteColor{
	ColorDefault, ColorCream, ColorPink, ColorBlue,
	ColorGreen, ColorYellow, ColorPurple, ColorOrange,
}

// SortOption selects one of the three supported orderings.
type SortOption string

const (
	SortUpdatedDesc SortOption = "updatedDesc"
	SortCreatedDesc SortOption = "createdDesc"
	SortTitleAsc    SortOption = "titleAsc"
)

// ThemeOption is the canonical theme enum. "system" follows the OS,
// "theme-n" is neutral light, the rest are manual picks.
type ThemeOption string

const (
	ThemeSystem ThemeOption = "system"
	ThemeN      ThemeOption = "theme-n"
	ThemeA      ThemeOption = "theme-a"
	ThemeC      ThemeOption = "theme-c"
	ThemeD      ThemeOption = "theme-d"
)

// StorageSchemaVersion tags every persisted envelope for forward migration.
const StorageSchemaVersion = 1

// Field limits for anti-freeze protection. Oversized fields are truncated
// during sanitization, never rejected.
const (
	LimitTitle     = 200
	LimitComposer  = 200
	LimitExtraInfo = 1000
	LimitTagSingle = 50
	LimitTagsMax   = 20
	LimitLyrics    = 50000
	LimitStyle     = 2000
	LimitTimeline  = 50
)

// Product constants. These have no derivation beyond the pricing page;
// keep them named and overridable rather than inlined.
const (
	DefaultPinLimit        = 6
	DefaultDailyImports    = 2
	DefaultImportMaxBytes  = 3 * 1024 * 1024
	ExportFilenameMaxRunes = 100
)

// TimelineAction is the kind of event recorded in a note's timeline.
type TimelineAction string

const (
	TimelineCreated TimelineAction = "created"
	TimelineUpdated TimelineAction = "updated"
)

// TimelineEntry is one row of a note's append-only history log.
type TimelineEntry struct {
	Timestamp int64          `json:"timestamp"`
	Action    TimelineAction `json:"action"`
}

// Note is the central entity of the domain: a single song/lyric document.
// Notes are created through the repository, never constructed by callers;
// the repository owns id generation and timestamping.
type Note struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Composer  string          `json:"composer"`
	Lyrics    string          `json:"lyrics"`
	Style     string          `json:"style"`
	ExtraInfo string          `json:"extraInfo"`
	Tags      []string        `json:"tags"`
	Color     NoteColor       `json:"color"`
	IsPinned  bool            `json:"isPinned"`
	CreatedAt int64           `json:"createdAt"`
	UpdatedAt int64           `json:"updatedAt"`
	Timeline  []TimelineEntry `json:"timeline"`
}

// Partial carries caller-supplied note fields for create/update/import.
// Nil pointers mean "not provided"; the repository sanitizes whatever is set.
type Partial struct {
	Title     *string
	Composer  *string
	Lyrics    *string
	Style     *string
	ExtraInfo *string
	Tags      []string
	Color     *NoteColor
	IsPinned  *bool
}

// Settings is the singleton preferences record.
type Settings struct {
	Theme       ThemeOption `json:"theme"`
	DefaultSort SortOption  `json:"defaultSort"`
}

// DefaultSettings returns the settings used when nothing is stored yet.
func DefaultSettings() Settings {
	return Settings{
		Theme:       ThemeSystem,
		DefaultSort: SortUpdatedDesc,
	}
}

// DefaultNote returns the zero-value field set applied under a Partial
// during creation.
func DefaultNote() Note {
	return Note{
		Tags:  []string{},
		Color: ColorDefault,
	}
}

// StringPtr is a convenience for building Partial values.
func StringPtr(s string) *string { return &s }

// ColorPtr is a convenience for building Partial values.
func ColorPtr(c NoteColor) *NoteColor { return &c }

// BoolPtr is a convenience for building Partial values.
func BoolPtr(b bool) *bool { return &b }
