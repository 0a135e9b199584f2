package service

import (
	"context"

	"github.com/puresoul/puresoul-go/internal/model"
)

// UserStore is the subset of the user repository the services depend on.
// *repository.UserRepository satisfies it; tests substitute an in-memory fake.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	DeductCredit(ctx context.Context, userID int64) (int, error)
	AddCredits(ctx context.Context, userID int64, amount int) (int, error)
}
