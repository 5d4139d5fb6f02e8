package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	apperrors "serenity/internal/errors"
	"serenity/internal/models"
)

type sentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) models.SentimentResult
}

type journalStore interface {
	CreateEntry(ctx context.Context, entry *models.JournalEntry) error
	GetEntries(ctx context.Context, userID string, limit int) ([]models.JournalEntry, error)
}

type JournalHandler struct {
	storage  journalStore
	analyzer sentimentAnalyzer
}

func NewJournalHandler(storage journalStore, analyzer sentimentAnalyzer) *JournalHandler {
	return &JournalHandler{storage: storage, analyzer: analyzer}
}

type createEntryRequest struct {
	UserID       string   `json:"user_id"`
	Content      string   `json:"content"`
	Tags         []string `json:"tags"`
	PrivacyLevel string   `json:"privacy_level"`
}

// HandleCreateEntry analyzes the text, fills the derived fields, and only
// then persists the entry. Analysis never fails; it degrades to defaults.
func (jh *JournalHandler) HandleCreateEntry(w http.ResponseWriter, r *http.Request) {
	var req createEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewValidation("body", "invalid JSON"), "")
		return
	}
	if req.UserID == "" {
		writeError(w, apperrors.NewValidation("user_id", "required"), "")
		return
	}
	if req.Content == "" {
		writeError(w, apperrors.NewValidation("content", "required"), "")
		return
	}

	analysis := jh.analyzer.Analyze(r.Context(), req.Content)

	entry := models.NewJournalEntry(req.UserID, req.Content, req.Tags, req.PrivacyLevel)
	entry.MoodScore = analysis.MoodScore
	entry.Sentiment = analysis.Sentiment
	entry.AIInsights = analysis.Insight

	if err := jh.storage.CreateEntry(r.Context(), entry); err != nil {
		writeError(w, err, "Failed to create journal entry")
		return
	}

	writeJSON(w, http.StatusCreated, entry)
}

func (jh *JournalHandler) HandleGetEntries(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	limit := parseLimit(r, 20)

	entries, err := jh.storage.GetEntries(r.Context(), userID, limit)
	if err != nil {
		writeError(w, err, "Failed to fetch journal entries")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
