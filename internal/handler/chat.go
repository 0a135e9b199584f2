package handler

import (
	"errors"
	"net/http"

	"github.com/puresoul/puresoul-go/internal/middleware"
	"github.com/puresoul/puresoul-go/internal/model"
	"github.com/puresoul/puresoul-go/internal/service"
)

// ChatHandler handles HTTP requests for assistant replies.
type ChatHandler struct {
	service *service.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(svc *service.ChatService) *ChatHandler {
	return &ChatHandler{service: svc}
}

// HandleGetResponse handles POST /api/get-response requests.
func (h *ChatHandler) HandleGetResponse(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.ChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reply, err := h.service.GetResponse(r.Context(), user, req)
	if err != nil {
		if errors.Is(err, service.ErrInsufficientCredits) {
			writeJSON(w, http.StatusForbidden, map[string]string{
				"error":   "Insufficient credits",
				"message": "Your credits are used up 💛",
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("failed to get a response from the AI"))
		return
	}

	writeJSON(w, http.StatusOK, model.ChatResponse{TherapistResponse: reply})
}
