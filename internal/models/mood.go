package models

import (
	"time"

	"github.com/google/uuid"
)

// MoodCheckIn records a quick self-assessment. The three levels are on a
// 1-5 scale by contract; the type itself does not enforce the bounds.
type MoodCheckIn struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	MoodLevel   int       `json:"mood_level"`
	StressLevel int       `json:"stress_level"`
	EnergyLevel int       `json:"energy_level"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewMoodCheckIn(userID string, mood, stress, energy int, notes string) *MoodCheckIn {
	return &MoodCheckIn{
		ID:          uuid.NewString(),
		UserID:      userID,
		MoodLevel:   mood,
		StressLevel: stress,
		EnergyLevel: energy,
		Notes:       notes,
		CreatedAt:   time.Now().UTC(),
	}
}
