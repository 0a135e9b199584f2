package handler

import "net/http"

// HandleIndex handles GET / requests with a status banner and endpoint list.
func HandleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "online",
		"message": "Puresoul AI Backend is running",
		"endpoints": []string{
			"/api/register",
			"/api/login",
			"/api/credits",
			"/api/credits/use",
			"/api/credits/buy",
			"/api/get-response",
			"/api/text-to-speech",
		},
	})
}
