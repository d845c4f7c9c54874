package schedule

import (
	"context"
	"sync"
	"time"
)

// Loader fetches the persisted active entries of a room so its index can be
// rebuilt the first time the room is touched after startup.
type Loader func(ctx context.Context, roomID string) ([]Entry, error)

// Board keys one Index per room and serializes all booking mutations for a
// room behind that room's own lock. Operations on different rooms never
// contend: the board-level lock is only taken to locate or create a slot.
type Board struct {
	mu    sync.RWMutex
	rooms map[string]*slot
	load  Loader
}

type slot struct {
	mu     sync.Mutex
	loaded bool
	index  Index
}

func NewBoard(load Loader) *Board {
	return &Board{
		rooms: make(map[string]*slot),
		load:  load,
	}
}

func (b *Board) room(roomID string) *slot {
	b.mu.RLock()
	s, ok := b.rooms[roomID]
	b.mu.RUnlock()

	if ok {
		return s
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if s, ok = b.rooms[roomID]; !ok {
		s = &slot{}
		b.rooms[roomID] = s
	}

	return s
}

// prime rebuilds the slot's index from persistence. Caller holds s.mu.
func (b *Board) prime(ctx context.Context, roomID string, s *slot) error {
	if s.loaded {
		return nil
	}

	entries, err := b.load(ctx, roomID)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := s.index.Insert(entry.Start, entry.End, entry.BookingID, entry.Status); err != nil {
			// Persisted active ranges are pairwise disjoint by invariant;
			// a conflict here means the store was corrupted outside the
			// admission path.
			return err
		}
	}

	s.loaded = true

	return nil
}

// WithRoom runs fn with exclusive access to the room's index. The check-then-
// act sequence of an admission must happen entirely inside fn.
func (b *Board) WithRoom(ctx context.Context, roomID string, fn func(ix *Index) error) error {
	s := b.room(roomID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := b.prime(ctx, roomID, s); err != nil {
		return err
	}

	return fn(&s.index)
}

// QueryOverlap reports whether [start, end) intersects an active booking of
// the room. It never mutates booking state and is safe to call repeatedly.
func (b *Board) QueryOverlap(ctx context.Context, roomID string, start, end time.Time) (bool, error) {
	overlaps := false

	err := b.WithRoom(ctx, roomID, func(ix *Index) error {
		overlaps = ix.Overlaps(start, end)

		return nil
	})

	return overlaps, err
}

// Forget drops a room's slot so the next touch rebuilds it from persistence.
// Used when a room is deleted.
func (b *Board) Forget(roomID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.rooms, roomID)
}
