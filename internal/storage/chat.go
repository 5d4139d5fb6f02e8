package storage

import (
	"context"

	apperrors "serenity/internal/errors"
	"serenity/internal/models"
)

type ChatStorage struct {
	store *DocStore
}

func NewChatStorage(store *DocStore) *ChatStorage {
	return &ChatStorage{store: store}
}

func (s *ChatStorage) CreateTurn(ctx context.Context, turn *models.ChatTurn) error {
	return s.store.Insert(ctx, CollectionChatMessages, chatToDoc(turn))
}

// GetHistory returns one session's turns, oldest first.
func (s *ChatStorage) GetHistory(ctx context.Context, userID, sessionID string, limit int) ([]models.ChatTurn, error) {
	op := "storage.GetHistory"

	filter := map[string]any{"user_id": userID, "session_id": sessionID}
	docs, err := s.store.Find(ctx, CollectionChatMessages, filter, SortOldestFirst, limit)
	if err != nil {
		return nil, err
	}

	turns := make([]models.ChatTurn, 0, len(docs))
	for _, doc := range docs {
		turn, err := chatFromDoc(doc)
		if err != nil {
			return nil, apperrors.NewStore(op, err)
		}
		turns = append(turns, turn)
	}
	return turns, nil
}

func chatToDoc(turn *models.ChatTurn) map[string]any {
	return map[string]any{
		"id":         turn.ID,
		"user_id":    turn.UserID,
		"session_id": turn.SessionID,
		"message":    turn.Message,
		"response":   turn.Response,
		"sentiment":  turn.Sentiment,
		"created_at": formatTimestamp(turn.CreatedAt),
	}
}

func chatFromDoc(doc map[string]any) (models.ChatTurn, error) {
	createdAt, err := docTime(doc, "created_at")
	if err != nil {
		return models.ChatTurn{}, err
	}
	return models.ChatTurn{
		ID:        docString(doc, "id"),
		UserID:    docString(doc, "user_id"),
		SessionID: docString(doc, "session_id"),
		Message:   docString(doc, "message"),
		Response:  docString(doc, "response"),
		Sentiment: docString(doc, "sentiment"),
		CreatedAt: createdAt,
	}, nil
}
