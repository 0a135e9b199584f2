package service

import (
	"context"
	"errors"

	"github.com/puresoul/puresoul-go/internal/repository"
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientCredits is returned when a debit (or a chat response
	// requiring a positive balance) is attempted at balance zero.
	ErrInsufficientCredits = errors.New("insufficient credits")
)

// CreditService meters the per-user credit balance. Balance mutations are
// delegated to the store, which applies them as single atomic updates.
type CreditService struct {
	store UserStore
}

// NewCreditService creates a new CreditService.
func NewCreditService(store UserStore) *CreditService {
	return &CreditService{store: store}
}

// UseCredit debits exactly one credit and returns the new balance. At
// balance zero it fails with ErrInsufficientCredits and mutates nothing.
func (s *CreditService) UseCredit(ctx context.Context, userID int64) (int, error) {
	remaining, err := s.store.DeductCredit(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientCredits) {
			return 0, ErrInsufficientCredits
		}
		return 0, err
	}
	return remaining, nil
}

// BuyCredits adds amount to the balance and the lifetime-purchased counter
// and returns the new balance. The amount is a trusted quantity; payment
// settlement is outside this service.
func (s *CreditService) BuyCredits(ctx context.Context, userID int64, amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	return s.store.AddCredits(ctx, userID, amount)
}
