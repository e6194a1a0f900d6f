package user

import (
	"context"
	"errors"
	"fmt"

	userRepo "vedicjivan/database/repository/user"
	"vedicjivan/models"
	"vedicjivan/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Sentinel errors surfaced to the request boundary.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// DefaultUserService implements UserService against the user repository.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

// Register creates a user account and issues a token pair. Duplicate
// emails are rejected.
func (s *DefaultUserService) Register(ctx context.Context, input RegisterInput) (*TokenPair, error) {
	existing, err := s.Repo.GetByEmail(ctx, input.Email)
	if err != nil {
		s.Logger.Error("Register: failed to check email", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Phone:        input.Phone,
		Role:         models.RoleUser,
	}
	if err := s.Repo.Create(ctx, usr); err != nil {
		return nil, err
	}

	s.Logger.Info("user registered", zap.String("userID", usr.ID))
	return s.issueTokens(usr.ID)
}

// Authenticate verifies credentials and issues a token pair. Failures are
// reported generically so callers cannot probe for registered emails.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*TokenPair, error) {
	usr, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		s.Logger.Error("Authenticate: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(usr.ID)
}

// Refresh validates a refresh token and issues a fresh token pair.
func (s *DefaultUserService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	subject, err := utils.ExtractSubjectFromToken(refreshToken, utils.TokenTypeRefresh)
	if err != nil {
		return nil, ErrInvalidToken
	}

	usr, err := s.Repo.GetByID(ctx, subject)
	if err != nil {
		return nil, err
	}
	if usr == nil {
		return nil, ErrInvalidToken
	}

	return s.issueTokens(usr.ID)
}

// GetByID fetches a user by id. Returns nil when absent.
func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultUserService) issueTokens(subject string) (*TokenPair, error) {
	access, err := utils.GenerateAccessToken(subject)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := utils.GenerateRefreshToken(subject)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, TokenType: "bearer"}, nil
}
