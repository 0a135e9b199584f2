package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/puresoul/puresoul-go/internal/crypto"
	"github.com/puresoul/puresoul-go/internal/model"
)

func validRegisterRequest() model.RegisterRequest {
	return model.RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Username: "alice",
		Password: "Abcd1234!",
	}
}

func newTestAuthService(store UserStore) *AuthService {
	return NewAuthService(store, "test-secret", 24*time.Hour)
}

func TestRegister_Success(t *testing.T) {
	store := newFakeStore()
	svc := newTestAuthService(store)

	resp, err := svc.Register(context.Background(), validRegisterRequest())
	if err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}
	if resp.Credits != StartingCredits {
		t.Errorf("Register() credits = %d, want %d", resp.Credits, StartingCredits)
	}

	user, err := store.GetByIdentifier(context.Background(), "alice")
	if err != nil {
		t.Fatalf("stored user not found: %v", err)
	}
	if user.Credits != StartingCredits {
		t.Errorf("stored credits = %d, want %d", user.Credits, StartingCredits)
	}
	if user.PasswordHash == "Abcd1234!" || strings.Contains(user.PasswordHash, "Abcd1234!") {
		t.Error("stored password hash contains the plaintext password")
	}
}

func TestRegister_LowercasesEmailAndUsername(t *testing.T) {
	store := newFakeStore()
	svc := newTestAuthService(store)

	req := validRegisterRequest()
	req.Email = "  A@X.Com "
	req.Username = " Alice "

	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	user, err := store.GetByIdentifier(context.Background(), "alice")
	if err != nil {
		t.Fatalf("stored user not found: %v", err)
	}
	if user.Email != "a@x.com" {
		t.Errorf("stored email = %q, want %q", user.Email, "a@x.com")
	}
	if user.Username != "alice" {
		t.Errorf("stored username = %q, want %q", user.Username, "alice")
	}
}

func TestRegister_InvalidUsername(t *testing.T) {
	svc := newTestAuthService(newFakeStore())

	req := validRegisterRequest()
	req.Username = "a!"

	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Register() error = %v, want ErrValidation", err)
	}
}

func TestRegister_InvalidEmail(t *testing.T) {
	svc := newTestAuthService(newFakeStore())

	req := validRegisterRequest()
	req.Email = "not-an-email"

	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Register() error = %v, want ErrValidation", err)
	}
}

func TestRegister_WeakPassword(t *testing.T) {
	svc := newTestAuthService(newFakeStore())

	req := validRegisterRequest()
	req.Password = "short"

	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Register() error = %v, want ErrValidation", err)
	}
}

func TestRegister_DuplicateIsCaseInsensitive(t *testing.T) {
	store := newFakeStore()
	svc := newTestAuthService(store)

	if _, err := svc.Register(context.Background(), validRegisterRequest()); err != nil {
		t.Fatalf("first Register() unexpected error: %v", err)
	}

	req := validRegisterRequest()
	req.Email = "A@X.COM"
	req.Username = "ALICE"

	_, err := svc.Register(context.Background(), req)
	if !errors.Is(err, ErrUserExists) {
		t.Errorf("Register() error = %v, want ErrUserExists", err)
	}
	if len(store.users) != 1 {
		t.Errorf("store has %d users after rejected duplicate, want 1", len(store.users))
	}
}

func TestLogin_ByUsernameAndByEmail(t *testing.T) {
	store := newFakeStore()
	svc := newTestAuthService(store)

	if _, err := svc.Register(context.Background(), validRegisterRequest()); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	for _, identifier := range []string{"alice", "a@x.com", "ALICE"} {
		resp, err := svc.Login(context.Background(), model.LoginRequest{
			Identifier: identifier,
			Password:   "Abcd1234!",
		})
		if err != nil {
			t.Fatalf("Login(%q) unexpected error: %v", identifier, err)
		}
		if resp.Token == "" {
			t.Errorf("Login(%q) returned empty token", identifier)
		}
		if resp.Username != "alice" {
			t.Errorf("Login(%q) username = %q, want %q", identifier, resp.Username, "alice")
		}
		if resp.Credits != StartingCredits {
			t.Errorf("Login(%q) credits = %d, want %d", identifier, resp.Credits, StartingCredits)
		}

		claims, err := crypto.ValidateToken(resp.Token, "test-secret")
		if err != nil {
			t.Fatalf("issued token does not validate: %v", err)
		}
		if claims.Username != "alice" {
			t.Errorf("token username = %q, want %q", claims.Username, "alice")
		}
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestAuthService(newFakeStore())

	if _, err := svc.Register(context.Background(), validRegisterRequest()); err != nil {
		t.Fatalf("Register() unexpected error: %v", err)
	}

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Identifier: "alice",
		Password:   "WrongPass1!",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownUserSameError(t *testing.T) {
	svc := newTestAuthService(newFakeStore())

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Identifier: "nobody",
		Password:   "Abcd1234!",
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}
