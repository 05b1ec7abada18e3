package entity

import (
	"time"
)

// JournalEntry is one visited location in a user's travel journal. Every entry
// has exactly one owner and is only ever visible to that owner.
type JournalEntry struct {
	ID          int64
	UserID      string
	City        string
	Country     string
	Latitude    float64
	Longitude   float64
	VisitedDate time.Time // calendar date, no time component
	Title       string
	Description *string
	Companions  *string
	Rating      *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// JournalEntryPatch carries a partial update. Nil fields keep their prior
// values; the merge happens inside the repository under a row lock.
type JournalEntryPatch struct {
	City        *string
	Country     *string
	Latitude    *float64
	Longitude   *float64
	VisitedDate *time.Time
	Title       *string
	Description *string
	Companions  *string
	Rating      *string
}
