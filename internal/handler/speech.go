package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/puresoul/puresoul-go/internal/model"
	"github.com/puresoul/puresoul-go/internal/service"
)

// SpeechHandler handles HTTP requests for text-to-speech synthesis.
type SpeechHandler struct {
	service *service.SpeechService
}

// NewSpeechHandler creates a new SpeechHandler.
func NewSpeechHandler(svc *service.SpeechService) *SpeechHandler {
	return &SpeechHandler{service: svc}
}

// HandleTextToSpeech handles POST /api/text-to-speech requests. On success
// the response body is the raw audio byte stream, not JSON.
func (h *SpeechHandler) HandleTextToSpeech(w http.ResponseWriter, r *http.Request) {
	var req model.SpeechRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	audio, mimeType, err := h.service.Synthesize(r.Context(), req.Text)
	if err != nil {
		if errors.Is(err, service.ErrTextRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse("text is required"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("failed to generate speech"))
		return
	}

	w.Header().Set("Content-Type", mimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(audio)))
	w.WriteHeader(http.StatusOK)
	w.Write(audio)
}
