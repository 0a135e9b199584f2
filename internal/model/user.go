package model

import "time"

// User represents a registered account in the database.
type User struct {
	ID                    int64
	Name                  string
	Email                 string
	Username              string
	PasswordHash          string
	Credits               int
	TotalCreditsPurchased int
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// RegisterRequest represents a registration request.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents a login request. Identifier is an email address
// or a username.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

// RegisterResponse is returned after a successful registration.
type RegisterResponse struct {
	Message string `json:"message"`
	Credits int    `json:"credits"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Token    string       `json:"token"`
	Username string       `json:"username"`
	Credits  int          `json:"credits"`
	User     UserResponse `json:"user"`
}

// UserResponse represents user data safe for API responses (no sensitive fields).
type UserResponse struct {
	ID                    int64     `json:"id"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email"`
	Username              string    `json:"username"`
	Credits               int       `json:"credits"`
	TotalCreditsPurchased int       `json:"total_credits_purchased"`
	CreatedAt             time.Time `json:"created_at"`
}

// ToResponse converts a User into its API-safe representation.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:                    u.ID,
		Name:                  u.Name,
		Email:                 u.Email,
		Username:              u.Username,
		Credits:               u.Credits,
		TotalCreditsPurchased: u.TotalCreditsPurchased,
		CreatedAt:             u.CreatedAt,
	}
}
