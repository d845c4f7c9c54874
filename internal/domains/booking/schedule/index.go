package schedule

import (
	"errors"
	"sort"
	"time"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

var (
	ErrConflict          = errors.New("date range overlaps an active booking")
	ErrInvalidRange      = errors.New("check-out date must be after check-in date")
	ErrNotInIndex        = errors.New("booking is not in the index")
	ErrInvalidTransition = errors.New("illegal booking status transition")
)

// Entry is one reserved date range of a room. Start is the check-in day
// (inclusive) and End the check-out day (exclusive), so a checkout and a
// check-in on the same day do not collide.
type Entry struct {
	Start     time.Time
	End       time.Time
	BookingID string
	Status    string
}

func (e Entry) active() bool {
	return e.Status == StatusPending || e.Status == StatusConfirmed
}

// Index holds the reserved ranges of a single room ordered by start date.
// Lookups are binary searches; inserts shift the tail of the backing slice.
// The zero value is ready to use.
type Index struct {
	entries []Entry
}

func (x *Index) Len() int {
	return len(x.entries)
}

// Entries returns a copy of the index contents in start order.
func (x *Index) Entries() []Entry {
	out := make([]Entry, len(x.entries))
	copy(out, x.entries)

	return out
}

// search returns the position of the first entry whose Start is not before t.
func (x *Index) search(t time.Time) int {
	return sort.Search(len(x.entries), func(i int) bool {
		return !x.entries[i].Start.Before(t)
	})
}

// Overlaps reports whether [start, end) intersects any active entry.
func (x *Index) Overlaps(start, end time.Time) bool {
	// Entries starting at or after end cannot intersect; walk backwards from
	// there. Active ranges are pairwise disjoint, so the first active entry
	// that ends at or before start also bounds every earlier active entry.
	for i := x.search(end) - 1; i >= 0; i-- {
		entry := x.entries[i]
		if !entry.active() {
			continue
		}

		return entry.End.After(start)
	}

	return false
}

// Insert adds a range for the given booking. It fails with ErrInvalidRange on
// an empty or reversed range and with ErrConflict if the range intersects an
// active entry. The index is unchanged on failure.
func (x *Index) Insert(start, end time.Time, bookingID, status string) error {
	if !end.After(start) {
		return ErrInvalidRange
	}

	if x.Overlaps(start, end) {
		return ErrConflict
	}

	pos := x.search(start)
	x.entries = append(x.entries, Entry{})
	copy(x.entries[pos+1:], x.entries[pos:])
	x.entries[pos] = Entry{
		Start:     start,
		End:       end,
		BookingID: bookingID,
		Status:    status,
	}

	return nil
}

// Remove drops the entry of the given booking regardless of its status.
// It reports whether an entry was removed.
func (x *Index) Remove(bookingID string) bool {
	for i, entry := range x.entries {
		if entry.BookingID == bookingID {
			x.entries = append(x.entries[:i], x.entries[i+1:]...)

			return true
		}
	}

	return false
}

// UpdateStatus changes an entry's status in place. The range is untouched, so
// no overlap re-validation is needed: confirming a pending range cannot create
// a conflict, and a cancelled entry simply drops out of overlap consideration.
func (x *Index) UpdateStatus(bookingID, status string) error {
	for i := range x.entries {
		if x.entries[i].BookingID == bookingID {
			x.entries[i].Status = status

			return nil
		}
	}

	return ErrNotInIndex
}

// Get returns the entry of the given booking, if present.
func (x *Index) Get(bookingID string) (Entry, bool) {
	for _, entry := range x.entries {
		if entry.BookingID == bookingID {
			return entry, true
		}
	}

	return Entry{}, false
}
