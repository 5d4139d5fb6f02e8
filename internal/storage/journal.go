package storage

import (
	"context"

	apperrors "serenity/internal/errors"
	"serenity/internal/models"
)

type JournalStorage struct {
	store *DocStore
}

func NewJournalStorage(store *DocStore) *JournalStorage {
	return &JournalStorage{store: store}
}

func (s *JournalStorage) CreateEntry(ctx context.Context, entry *models.JournalEntry) error {
	return s.store.Insert(ctx, CollectionJournalEntries, journalToDoc(entry))
}

// GetEntries returns the owner's entries, newest first.
func (s *JournalStorage) GetEntries(ctx context.Context, userID string, limit int) ([]models.JournalEntry, error) {
	op := "storage.GetEntries"

	docs, err := s.store.Find(ctx, CollectionJournalEntries, map[string]any{"user_id": userID}, SortNewestFirst, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]models.JournalEntry, 0, len(docs))
	for _, doc := range docs {
		entry, err := journalFromDoc(doc)
		if err != nil {
			return nil, apperrors.NewStore(op, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (s *JournalStorage) CountEntries(ctx context.Context, userID string) (int64, error) {
	return s.store.Count(ctx, CollectionJournalEntries, map[string]any{"user_id": userID})
}

func journalToDoc(entry *models.JournalEntry) map[string]any {
	return map[string]any{
		"id":            entry.ID,
		"user_id":       entry.UserID,
		"content":       entry.Content,
		"mood_score":    entry.MoodScore,
		"sentiment":     entry.Sentiment,
		"tags":          entry.Tags,
		"ai_insights":   entry.AIInsights,
		"privacy_level": entry.PrivacyLevel,
		"created_at":    formatTimestamp(entry.CreatedAt),
	}
}

func journalFromDoc(doc map[string]any) (models.JournalEntry, error) {
	createdAt, err := docTime(doc, "created_at")
	if err != nil {
		return models.JournalEntry{}, err
	}
	return models.JournalEntry{
		ID:           docString(doc, "id"),
		UserID:       docString(doc, "user_id"),
		Content:      docString(doc, "content"),
		MoodScore:    docFloat(doc, "mood_score"),
		Sentiment:    docString(doc, "sentiment"),
		Tags:         docStrings(doc, "tags"),
		AIInsights:   docString(doc, "ai_insights"),
		PrivacyLevel: docString(doc, "privacy_level"),
		CreatedAt:    createdAt,
	}, nil
}
