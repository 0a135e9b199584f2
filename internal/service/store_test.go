package service

import (
	"context"

	"github.com/puresoul/puresoul-go/internal/model"
	"github.com/puresoul/puresoul-go/internal/repository"
)

// fakeStore is an in-memory UserStore returning the same sentinel errors as
// the MySQL repository.
type fakeStore struct {
	users  map[int64]*model.User
	nextID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: make(map[int64]*model.User)}
}

func (f *fakeStore) Create(_ context.Context, user *model.User) error {
	for _, u := range f.users {
		if u.Email == user.Email || u.Username == user.Username {
			return repository.ErrDuplicateUser
		}
	}
	f.nextID++
	user.ID = f.nextID
	stored := *user
	f.users[user.ID] = &stored
	return nil
}

func (f *fakeStore) GetByIdentifier(_ context.Context, identifier string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == identifier || u.Username == identifier {
			found := *u
			return &found, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeStore) GetByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	found := *u
	return &found, nil
}

func (f *fakeStore) DeductCredit(_ context.Context, userID int64) (int, error) {
	u, ok := f.users[userID]
	if !ok {
		return 0, repository.ErrUserNotFound
	}
	if u.Credits <= 0 {
		return 0, repository.ErrInsufficientCredits
	}
	u.Credits--
	return u.Credits, nil
}

func (f *fakeStore) AddCredits(_ context.Context, userID int64, amount int) (int, error) {
	u, ok := f.users[userID]
	if !ok {
		return 0, repository.ErrUserNotFound
	}
	u.Credits += amount
	u.TotalCreditsPurchased += amount
	return u.Credits, nil
}
