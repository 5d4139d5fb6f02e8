package models

import (
	"time"

	"github.com/google/uuid"
)

// ChatTurn is one user message plus the companion's reply within a session.
type ChatTurn struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	SessionID string    `json:"session_id"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Sentiment string    `json:"sentiment"`
	CreatedAt time.Time `json:"created_at"`
}

func NewChatTurn(userID, sessionID, message, response, sentiment string) *ChatTurn {
	return &ChatTurn{
		ID:        uuid.NewString(),
		UserID:    userID,
		SessionID: sessionID,
		Message:   message,
		Response:  response,
		Sentiment: sentiment,
		CreatedAt: time.Now().UTC(),
	}
}
