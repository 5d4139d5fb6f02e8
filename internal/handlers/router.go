package handlers

import "net/http"

// NewRouter assembles the /api surface using Go 1.22 route patterns and
// wraps it with CORS.
func NewRouter(journal *JournalHandler, chat *ChatHandler, mood *MoodHandler, stats *StatsHandler, corsOrigins []string) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/{$}", handleRoot)
	mux.HandleFunc("POST /api/journal", journal.HandleCreateEntry)
	mux.HandleFunc("GET /api/journal/{user_id}", journal.HandleGetEntries)
	mux.HandleFunc("POST /api/chat", chat.HandleChat)
	mux.HandleFunc("GET /api/chat/{user_id}/{session_id}", chat.HandleGetHistory)
	mux.HandleFunc("POST /api/mood-checkin", mood.HandleCreateCheckIn)
	mux.HandleFunc("GET /api/mood-checkin/{user_id}", mood.HandleGetCheckIns)
	mux.HandleFunc("GET /api/stats/{user_id}", stats.HandleGetStats)

	return corsMiddleware(corsOrigins, mux)
}

func handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Serenity Student API - Your AI-powered wellness companion",
	})
}
