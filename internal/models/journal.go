package models

import (
	"time"

	"github.com/google/uuid"
)

// Privacy levels for journal entries.
const (
	PrivacyPrivate   = "private"
	PrivacyAnonymous = "anonymous"
)

type JournalEntry struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Content      string    `json:"content"`
	MoodScore    float64   `json:"mood_score"`
	Sentiment    string    `json:"sentiment"`
	Tags         []string  `json:"tags"`
	AIInsights   string    `json:"ai_insights"`
	PrivacyLevel string    `json:"privacy_level"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewJournalEntry builds an entry with a fresh id and UTC timestamp.
// Derived fields (mood score, sentiment, insights) are filled by the caller
// before the entry is persisted; they are never updated afterward.
func NewJournalEntry(userID, content string, tags []string, privacyLevel string) *JournalEntry {
	if tags == nil {
		tags = []string{}
	}
	if privacyLevel == "" {
		privacyLevel = PrivacyPrivate
	}
	return &JournalEntry{
		ID:           uuid.NewString(),
		UserID:       userID,
		Content:      content,
		Tags:         tags,
		PrivacyLevel: privacyLevel,
		CreatedAt:    time.Now().UTC(),
	}
}
