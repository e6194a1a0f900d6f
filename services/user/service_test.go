package user

import (
	"context"
	"testing"

	"vedicjivan/config"
	"vedicjivan/models"
	"vedicjivan/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func newStubUserRepo(seed ...*models.User) *stubUserRepo {
	repo := &stubUserRepo{byID: map[string]*models.User{}, byEmail: map[string]*models.User{}}
	for _, u := range seed {
		repo.byID[u.ID] = u
		repo.byEmail[u.Email] = u
	}
	return repo
}

func (r *stubUserRepo) Create(ctx context.Context, usr *models.User) error {
	r.byID[usr.ID] = usr
	r.byEmail[usr.Email] = usr
	return nil
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.byID[id], nil
}

func (r *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.byEmail[email], nil
}

func (r *stubUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func newTestUserService(repo *stubUserRepo) *DefaultUserService {
	config.AppConfig.JWTSecret = "test_jwt_secret"
	config.AppConfig.AccessTokenMinutes = 15
	config.AppConfig.RefreshTokenDays = 7
	return &DefaultUserService{Repo: repo, Logger: zap.NewNop()}
}

func seedUser(t *testing.T) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.User{
		ID:           "u1",
		Name:         "Asha",
		Email:        "asha@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
}

func TestRegisterIssuesTokens(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	tokens, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Equal(t, "bearer", tokens.TokenType)

	created := repo.byEmail["asha@example.com"]
	require.NotNil(t, created)
	assert.Equal(t, models.RoleUser, created.Role)
	// Plaintext password never lands in the record.
	assert.NotEqual(t, "correct-horse", created.PasswordHash)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newStubUserRepo(seedUser(t))
	svc := newTestUserService(repo)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Other",
		Email:    "asha@example.com",
		Password: "hunter2hunter2",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthenticate(t *testing.T) {
	repo := newStubUserRepo(seedUser(t))
	svc := newTestUserService(repo)
	ctx := context.Background()

	tokens, err := svc.Authenticate(ctx, "asha@example.com", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)

	_, err = svc.Authenticate(ctx, "asha@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown emails fail with the same error as bad passwords.
	_, err = svc.Authenticate(ctx, "nobody@example.com", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshRotatesTokens(t *testing.T) {
	repo := newStubUserRepo(seedUser(t))
	svc := newTestUserService(repo)
	ctx := context.Background()

	issued, err := svc.Authenticate(ctx, "asha@example.com", "correct-horse")
	require.NoError(t, err)

	tokens, err := svc.Refresh(ctx, issued.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	repo := newStubUserRepo(seedUser(t))
	svc := newTestUserService(repo)
	ctx := context.Background()

	issued, err := svc.Authenticate(ctx, "asha@example.com", "correct-horse")
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, issued.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshRejectsGarbageAndDeletedUsers(t *testing.T) {
	repo := newStubUserRepo(seedUser(t))
	svc := newTestUserService(repo)
	ctx := context.Background()

	_, err := svc.Refresh(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	issued, err := svc.Authenticate(ctx, "asha@example.com", "correct-horse")
	require.NoError(t, err)

	delete(repo.byID, "u1")
	_, err = svc.Refresh(ctx, issued.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuedAccessTokenCarriesSubject(t *testing.T) {
	repo := newStubUserRepo(seedUser(t))
	svc := newTestUserService(repo)

	issued, err := svc.Authenticate(context.Background(), "asha@example.com", "correct-horse")
	require.NoError(t, err)

	subject, err := utils.ExtractSubjectFromToken(issued.AccessToken, utils.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "u1", subject)
}
