package notes

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Vintermom/my-music-notes/pkg/core"
)

// titleCollator orders titles the way a locale-aware comparison does,
// case-sensitively. Und is the root collation.
var titleCollator = collate.New(language.Und)

// SortNotes returns a sorted copy of notes. All three orderings are stable:
// ties keep their original relative order, so empty titles group together
// instead of scattering.
func SortNotes(in []core.Note, option core.SortOption) []core.Note {
	sorted := append([]core.Note(nil), in...)

	switch option {
	case core.SortUpdatedDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].UpdatedAt > sorted[j].UpdatedAt
		})
	case core.SortCreatedDesc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt > sorted[j].CreatedAt
		})
	case core.SortTitleAsc:
		sort.SliceStable(sorted, func(i, j int) bool {
			return titleCollator.CompareString(sorted[i].Title, sorted[j].Title) < 0
		})
	}

	return sorted
}

// SearchNotes filters notes by a case-insensitive substring match against
// title, composer, lyrics and tags. An empty or whitespace-only query is a
// no-op and returns the input unchanged.
func SearchNotes(in []core.Note, query string) []core.Note {
	if strings.TrimSpace(query) == "" {
		return in
	}

	q := strings.ToLower(query)
	matched := make([]core.Note, 0, len(in))
	for _, n := range in {
		fields := make([]string, 0, 3+len(n.Tags))
		for _, f := range append([]string{n.Title, n.Composer, n.Lyrics}, n.Tags...) {
			if f != "" {
				fields = append(fields, f)
			}
		}
		if strings.Contains(strings.ToLower(strings.Join(fields, " ")), q) {
			matched = append(matched, n)
		}
	}
	return matched
}
