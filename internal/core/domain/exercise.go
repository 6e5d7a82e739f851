package domain

import "time"

// Exercise is a single logged activity. UserID is a weak reference to the
// owning User; it is validated at creation time, not enforced by the store.
// Date is always a canonical YYYY-MM-DD string. CreatedAt is the explicit
// insertion-sequence key: log reads sort on it so that "first N" under a
// limit means insertion order, not whatever the store happens to iterate.
type Exercise struct {
	ID          string    `json:"-" bson:"_id,omitempty"`
	UserID      string    `json:"-" bson:"user_id"`
	Description string    `json:"description" bson:"description"`
	Duration    int       `json:"duration" bson:"duration"`
	Date        string    `json:"date" bson:"date"`
	CreatedAt   time.Time `json:"-" bson:"created_at"`
}

// LogEntry is the projection of an Exercise exposed in log responses.
// Internal ids and the user reference are stripped deliberately.
type LogEntry struct {
	Description string `json:"description" bson:"description"`
	Duration    int    `json:"duration" bson:"duration"`
	Date        string `json:"date" bson:"date"`
}
