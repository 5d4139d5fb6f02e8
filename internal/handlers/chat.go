package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	apperrors "serenity/internal/errors"
	"serenity/internal/models"
)

type companionResponder interface {
	Respond(ctx context.Context, sessionID, message string) (string, error)
}

type chatStore interface {
	CreateTurn(ctx context.Context, turn *models.ChatTurn) error
	GetHistory(ctx context.Context, userID, sessionID string, limit int) ([]models.ChatTurn, error)
}

type ChatHandler struct {
	storage   chatStore
	companion companionResponder
	analyzer  sentimentAnalyzer
}

func NewChatHandler(storage chatStore, companion companionResponder, analyzer sentimentAnalyzer) *ChatHandler {
	return &ChatHandler{storage: storage, companion: companion, analyzer: analyzer}
}

type chatRequest struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

// HandleChat produces exactly one turn: one companion reply plus one
// sentiment pass over the user's message. A companion failure aborts the
// request; a sentiment failure does not.
func (ch *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewValidation("body", "invalid JSON"), "")
		return
	}
	if req.UserID == "" {
		writeError(w, apperrors.NewValidation("user_id", "required"), "")
		return
	}
	if req.SessionID == "" {
		writeError(w, apperrors.NewValidation("session_id", "required"), "")
		return
	}
	if req.Message == "" {
		writeError(w, apperrors.NewValidation("message", "required"), "")
		return
	}

	response, err := ch.companion.Respond(r.Context(), req.SessionID, req.Message)
	if err != nil {
		writeError(w, err, "Failed to process chat message")
		return
	}

	analysis := ch.analyzer.Analyze(r.Context(), req.Message)

	turn := models.NewChatTurn(req.UserID, req.SessionID, req.Message, response, analysis.Sentiment)
	if err := ch.storage.CreateTurn(r.Context(), turn); err != nil {
		writeError(w, err, "Failed to store chat message")
		return
	}

	writeJSON(w, http.StatusOK, turn)
}

func (ch *ChatHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	sessionID := r.PathValue("session_id")
	limit := parseLimit(r, 50)

	turns, err := ch.storage.GetHistory(r.Context(), userID, sessionID, limit)
	if err != nil {
		writeError(w, err, "Failed to fetch chat history")
		return
	}

	writeJSON(w, http.StatusOK, turns)
}
