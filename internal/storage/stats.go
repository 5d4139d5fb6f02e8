package storage

import (
	"context"

	"serenity/internal/models"
)

// StatsStorage bundles the reads the analytics engine needs.
type StatsStorage struct {
	journal *JournalStorage
	mood    *MoodStorage
}

func NewStatsStorage(journal *JournalStorage, mood *MoodStorage) *StatsStorage {
	return &StatsStorage{journal: journal, mood: mood}
}

func (s *StatsStorage) CountEntries(ctx context.Context, userID string) (int64, error) {
	return s.journal.CountEntries(ctx, userID)
}

func (s *StatsStorage) RecentCheckIns(ctx context.Context, userID string, limit int) ([]models.MoodCheckIn, error) {
	return s.mood.GetCheckIns(ctx, userID, limit)
}
