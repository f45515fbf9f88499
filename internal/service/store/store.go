package store

import (
	"github.com/KasumiMercury/alo-bubble-scheduler/internal/domain"
)

// Store is the ordered set of visible notifications, keyed by id.
// It is not safe for concurrent use; the session controller serializes access.
type Store struct {
	items []domain.Notification
}

func New() *Store {
	return &Store{}
}

// Append adds n at the end. If an entry with the same id is already present it
// is replaced in place so ids stay unique.
func (s *Store) Append(n domain.Notification) {
	for i := range s.items {
		if s.items[i].ID == n.ID {
			s.items[i] = n
			return
		}
	}
	s.items = append(s.items, n)
}

// Remove deletes the entry with the given id and reports whether one existed.
func (s *Store) Remove(id int64) bool {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return true
		}
	}
	return false
}

// Clear empties the store and returns the removed entries.
func (s *Store) Clear() []domain.Notification {
	removed := s.items
	s.items = nil
	return removed
}

func (s *Store) Snapshot() []domain.Notification {
	out := make([]domain.Notification, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int {
	return len(s.items)
}
