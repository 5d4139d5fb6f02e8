package storage

import (
	"context"

	apperrors "serenity/internal/errors"
	"serenity/internal/models"
)

type MoodStorage struct {
	store *DocStore
}

func NewMoodStorage(store *DocStore) *MoodStorage {
	return &MoodStorage{store: store}
}

func (s *MoodStorage) CreateCheckIn(ctx context.Context, checkin *models.MoodCheckIn) error {
	return s.store.Insert(ctx, CollectionMoodCheckins, moodToDoc(checkin))
}

// GetCheckIns returns the owner's check-ins, newest first.
func (s *MoodStorage) GetCheckIns(ctx context.Context, userID string, limit int) ([]models.MoodCheckIn, error) {
	op := "storage.GetCheckIns"

	docs, err := s.store.Find(ctx, CollectionMoodCheckins, map[string]any{"user_id": userID}, SortNewestFirst, limit)
	if err != nil {
		return nil, err
	}

	checkins := make([]models.MoodCheckIn, 0, len(docs))
	for _, doc := range docs {
		checkin, err := moodFromDoc(doc)
		if err != nil {
			return nil, apperrors.NewStore(op, err)
		}
		checkins = append(checkins, checkin)
	}
	return checkins, nil
}

func moodToDoc(checkin *models.MoodCheckIn) map[string]any {
	return map[string]any{
		"id":           checkin.ID,
		"user_id":      checkin.UserID,
		"mood_level":   checkin.MoodLevel,
		"stress_level": checkin.StressLevel,
		"energy_level": checkin.EnergyLevel,
		"notes":        checkin.Notes,
		"created_at":   formatTimestamp(checkin.CreatedAt),
	}
}

func moodFromDoc(doc map[string]any) (models.MoodCheckIn, error) {
	createdAt, err := docTime(doc, "created_at")
	if err != nil {
		return models.MoodCheckIn{}, err
	}
	return models.MoodCheckIn{
		ID:          docString(doc, "id"),
		UserID:      docString(doc, "user_id"),
		MoodLevel:   docInt(doc, "mood_level"),
		StressLevel: docInt(doc, "stress_level"),
		EnergyLevel: docInt(doc, "energy_level"),
		Notes:       docString(doc, "notes"),
		CreatedAt:   createdAt,
	}, nil
}
