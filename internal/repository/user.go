package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/puresoul/puresoul-go/internal/model"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrDuplicateUser       = errors.New("email or username already exists")
	ErrInsufficientCredits = errors.New("insufficient credits")
)

const userColumns = `id, name, email, username, password_hash, credits, total_credits_purchased, created_at, updated_at`

// UserRepository handles user persistence operations.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user and sets the generated ID on the user struct.
// Email and username uniqueness is enforced by database unique keys.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (name, email, username, password_hash, credits) VALUES (?, ?, ?, ?, ?)`

	result, err := r.db.ExecContext(ctx, query,
		user.Name, user.Email, user.Username, user.PasswordHash, user.Credits,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateUser
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.ID = id
	return nil
}

// GetByIdentifier retrieves a user whose email or username matches the
// identifier. Callers pass the identifier lowercased; rows are stored
// lowercased at registration.
func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ? OR username = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, identifier, identifier))
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// DeductCredit decrements the user's balance by exactly one. The guard and
// the decrement are a single conditional UPDATE, so two concurrent calls can
// never both spend the last credit and the balance never goes negative.
func (r *UserRepository) DeductCredit(ctx context.Context, userID int64) (int, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET credits = credits - 1 WHERE id = ? AND credits > 0`, userID)
	if err != nil {
		return 0, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		// No row matched: either the user is gone or the balance is zero.
		if _, err := r.GetByID(ctx, userID); err != nil {
			return 0, err
		}
		return 0, ErrInsufficientCredits
	}

	return r.credits(ctx, userID)
}

// AddCredits increases the balance and the lifetime-purchased counter by
// amount and returns the new balance. The caller validates amount > 0.
func (r *UserRepository) AddCredits(ctx context.Context, userID int64, amount int) (int, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET credits = credits + ?, total_credits_purchased = total_credits_purchased + ? WHERE id = ?`,
		amount, amount, userID)
	if err != nil {
		return 0, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, ErrUserNotFound
	}

	return r.credits(ctx, userID)
}

func (r *UserRepository) credits(ctx context.Context, userID int64) (int, error) {
	var credits int
	err := r.db.QueryRowContext(ctx, `SELECT credits FROM users WHERE id = ?`, userID).Scan(&credits)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrUserNotFound
		}
		return 0, err
	}
	return credits, nil
}

func (r *UserRepository) scanOne(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.Username, &user.PasswordHash,
		&user.Credits, &user.TotalCreditsPurchased, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// isDuplicateEntryError checks if a MySQL error is a duplicate entry error (code 1062).
func isDuplicateEntryError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
