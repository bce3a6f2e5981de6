package importer

import (
	"time"

	"github.com/Vintermom/my-music-notes/pkg/kv"
)

// TrackingKey is the logical key the daily import counter lives under.
const TrackingKey = "import_tracking"

// tracking is the persisted {date, count} record. The date is the local
// calendar day; a record from a different day reads as a fresh counter.
type tracking struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type quota struct {
	store *kv.Store
	limit int
	now   func() time.Time
}

func (q *quota) today() string {
	return q.now().Format("2006-01-02")
}

func (q *quota) current() tracking {
	today := q.today()
	t := kv.Get(q.store, TrackingKey, tracking{Date: today})
	if t.Date != today {
		return tracking{Date: today}
	}
	return t
}

// Remaining returns how many notes may still be imported today.
func (q *quota) Remaining() int {
	rem := q.limit - q.current().Count
	if rem < 0 {
		return 0
	}
	return rem
}

// Record adds n to today's counter. Called with the number of notes
// actually created, not attempted.
func (q *quota) Record(n int) {
	t := q.current()
	t.Count += n
	kv.Set(q.store, TrackingKey, t)
}
