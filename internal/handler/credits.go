package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/puresoul/puresoul-go/internal/middleware"
	"github.com/puresoul/puresoul-go/internal/model"
	"github.com/puresoul/puresoul-go/internal/service"
)

// CreditHandler handles HTTP requests for the credit ledger.
type CreditHandler struct {
	service *service.CreditService
}

// NewCreditHandler creates a new CreditHandler.
func NewCreditHandler(svc *service.CreditService) *CreditHandler {
	return &CreditHandler{service: svc}
}

// HandleGetCredits handles GET /api/credits requests. The middleware loads
// a fresh user row per request, so the context user's balance is current.
func (h *CreditHandler) HandleGetCredits(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	writeJSON(w, http.StatusOK, model.CreditsResponse{
		Username: user.Username,
		Credits:  user.Credits,
	})
}

// HandleUseCredit handles POST /api/credits/use requests.
func (h *CreditHandler) HandleUseCredit(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	remaining, err := h.service.UseCredit(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrInsufficientCredits) {
			writeJSON(w, http.StatusForbidden, model.UseCreditResponse{
				Success: false,
				Message: "Insufficient credits",
				Credits: 0,
			})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.UseCreditResponse{
		Success: true,
		Message: "Credit deducted",
		Credits: remaining,
	})
}

// HandleBuyCredits handles POST /api/credits/buy requests.
func (h *CreditHandler) HandleBuyCredits(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	var req model.BuyCreditsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	balance, err := h.service.BuyCredits(r.Context(), user.ID, req.Amount)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			writeJSON(w, http.StatusBadRequest, errorResponse("invalid amount"))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, model.BuyCreditsResponse{
		Message: fmt.Sprintf("Successfully purchased %d credits!", req.Amount),
		Credits: balance,
	})
}
