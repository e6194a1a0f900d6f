package user

import (
	"context"

	"vedicjivan/models"
)

// RegisterInput carries the fields submitted at registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

// TokenPair is the issued access/refresh tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// UserService is the auth and account surface consumed by handlers.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (*TokenPair, error)
	Authenticate(ctx context.Context, email, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

var _ UserService = (*DefaultUserService)(nil)
