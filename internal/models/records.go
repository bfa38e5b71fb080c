package models

import "github.com/haven-app/haven/internal/constants"

// JournalEntry is a free-form diary entry. Timestamp is the logical event
// time and is distinct from CreatedAt; ordering is always by Timestamp.
type JournalEntry struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"` // RFC3339, logical event time
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Intention is a short note of intent. Same shape as JournalEntry; the
// "current" intention is the most recent by Timestamp.
type Intention struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// DailyCheckIn records one check-in per calendar day. Date is a YYYY-MM-DD
// string and unique at the storage level.
type DailyCheckIn struct {
	ID        int64                 `json:"id"`
	Goal      string                `json:"goal"`
	Energy    constants.EnergyLevel `json:"energy"`
	Tone      constants.MoodTone    `json:"tone"`
	Thankful  string                `json:"thankful"`
	Date      string                `json:"date"`
	CreatedAt string                `json:"createdAt"`
}

// SOSLog is one panic-relief screen activation. Append-only audit trail.
type SOSLog struct {
	ID        int64  `json:"id"`
	Timestamp string `json:"timestamp"`
	CreatedAt string `json:"createdAt"`
}

// Encouragement is one message from the pre-seeded catalog. Only Seen mutates.
type Encouragement struct {
	ID        int64  `json:"id"`
	Message   string `json:"message"`
	Seen      bool   `json:"seen"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// EncouragementStats summarizes catalog progress for the export document and UI.
type EncouragementStats struct {
	Total  int `json:"total"`
	Seen   int `json:"seen"`
	Unseen int `json:"unseen"`
}
