package handlers

import (
	"context"
	"net/http"

	"serenity/internal/models"
)

type statsComputer interface {
	ComputeStats(ctx context.Context, userID string) (models.UserStats, error)
}

type StatsHandler struct {
	engine statsComputer
}

func NewStatsHandler(engine statsComputer) *StatsHandler {
	return &StatsHandler{engine: engine}
}

func (sh *StatsHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")

	stats, err := sh.engine.ComputeStats(r.Context(), userID)
	if err != nil {
		writeError(w, err, "Failed to fetch user statistics")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
