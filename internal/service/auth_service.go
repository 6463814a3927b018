package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"go-calc-api/internal/model"
	"go-calc-api/pkg/apierror"
)

const bcryptCost = 10

// errInvalidCredentials is shared by the unknown-email and the
// wrong-password paths so the two are indistinguishable to callers.
var errInvalidCredentials = apierror.New("INVALID_CREDENTIALS", "invalid credentials", "", http.StatusBadRequest)

type tokenIssuer interface {
	Issue(userID string, email string) (string, error)
}

type AuthService struct {
	users  UserStore
	tokens tokenIssuer
}

func NewAuthService(users UserStore, tokens tokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates a user with a bcrypt-hashed password. The response
// never carries the password or its hash.
func (s *AuthService) Register(ctx context.Context, email string, password string) (model.AuthUser, error) {
	email = strings.TrimSpace(email)

	if email == "" || password == "" {
		return model.AuthUser{}, apierror.Validation("email and password are required", "")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return model.AuthUser{}, fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrDuplicateEmail) {
			return model.AuthUser{}, apierror.New("DUPLICATE_EMAIL", "email already registered", "", http.StatusBadRequest)
		}
		return model.AuthUser{}, fmt.Errorf("create user: %w", err)
	}

	return model.AuthUser{ID: user.ID, Email: user.Email}, nil
}

// Login verifies the credentials and mints a bearer token. Unknown
// email and wrong password return the identical error.
func (s *AuthService) Login(ctx context.Context, email string, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, model.ErrUserNotFound) {
		return "", errInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}

	// Any bcrypt failure counts as a mismatch, never as success.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return signed, nil
}
