package domain

import (
	"time"
)

// Notification is a single bubble alert. Values are never mutated after
// creation; only their membership in a store changes.
type Notification struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Category  Category  `json:"category"`
	Icon      Icon      `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
}

func NewNotification(id int64, text string, category Category, icon Icon, createdAt time.Time) Notification {
	return Notification{
		ID:        id,
		Text:      text,
		Category:  category,
		Icon:      icon,
		CreatedAt: createdAt.UTC(),
	}
}

// IDSequence issues notification ids derived from the creation time in
// milliseconds. Two ids issued in the same millisecond (or with a clock that
// went backwards) are bumped past the previous one so they never collide.
//
// IDSequence is not safe for concurrent use.
type IDSequence struct {
	last int64
}

func (s *IDSequence) Next(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.last {
		id = s.last + 1
	}
	s.last = id
	return id
}
