package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	apperrors "serenity/internal/errors"
	"serenity/internal/models"
)

type moodStore interface {
	CreateCheckIn(ctx context.Context, checkin *models.MoodCheckIn) error
	GetCheckIns(ctx context.Context, userID string, limit int) ([]models.MoodCheckIn, error)
}

type MoodHandler struct {
	storage moodStore
}

func NewMoodHandler(storage moodStore) *MoodHandler {
	return &MoodHandler{storage: storage}
}

// Pointer fields distinguish an absent level from a literal zero. The 1-5
// range itself is contractual and not enforced here.
type createCheckInRequest struct {
	UserID      string `json:"user_id"`
	MoodLevel   *int   `json:"mood_level"`
	StressLevel *int   `json:"stress_level"`
	EnergyLevel *int   `json:"energy_level"`
	Notes       string `json:"notes"`
}

func (mh *MoodHandler) HandleCreateCheckIn(w http.ResponseWriter, r *http.Request) {
	var req createCheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.NewValidation("body", "invalid JSON"), "")
		return
	}
	if req.UserID == "" {
		writeError(w, apperrors.NewValidation("user_id", "required"), "")
		return
	}
	if req.MoodLevel == nil || req.StressLevel == nil || req.EnergyLevel == nil {
		writeError(w, apperrors.NewValidation("levels", "mood_level, stress_level and energy_level are required"), "")
		return
	}

	checkin := models.NewMoodCheckIn(req.UserID, *req.MoodLevel, *req.StressLevel, *req.EnergyLevel, req.Notes)
	if err := mh.storage.CreateCheckIn(r.Context(), checkin); err != nil {
		writeError(w, err, "Failed to create mood check-in")
		return
	}

	writeJSON(w, http.StatusCreated, checkin)
}

func (mh *MoodHandler) HandleGetCheckIns(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")
	limit := parseLimit(r, 30)

	checkins, err := mh.storage.GetCheckIns(r.Context(), userID, limit)
	if err != nil {
		writeError(w, err, "Failed to fetch mood check-ins")
		return
	}

	writeJSON(w, http.StatusOK, checkins)
}
