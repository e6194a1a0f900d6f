package availability

import (
	"context"
	"testing"

	"vedicjivan/models"
	"vedicjivan/services/scheduling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type stubUnavailRepo struct {
	blocks    map[string]*models.UnavailabilityBlock
	created   []*models.UnavailabilityBlock
	deleteErr error
}

func newStubUnavailRepo() *stubUnavailRepo {
	return &stubUnavailRepo{blocks: map[string]*models.UnavailabilityBlock{}}
}

func (r *stubUnavailRepo) Create(ctx context.Context, block *models.UnavailabilityBlock) error {
	r.created = append(r.created, block)
	r.blocks[block.ID] = block
	return nil
}

func (r *stubUnavailRepo) Delete(ctx context.Context, id string) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.blocks[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(r.blocks, id)
	return nil
}

func (r *stubUnavailRepo) HasHoliday(ctx context.Context, date string) (bool, error) {
	for _, b := range r.blocks {
		if b.Date == date && b.IsHoliday {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUnavailRepo) BlackoutsForDate(ctx context.Context, date string) ([]models.UnavailabilityBlock, error) {
	return nil, nil
}

func (r *stubUnavailRepo) ListForDate(ctx context.Context, date string) ([]models.UnavailabilityBlock, error) {
	var out []models.UnavailabilityBlock
	for _, b := range r.blocks {
		if b.Date == date {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *stubUnavailRepo) ListRange(ctx context.Context, startDate, endDate string) ([]models.UnavailabilityBlock, error) {
	return nil, nil
}

func (r *stubUnavailRepo) HolidaysInRange(ctx context.Context, startDate, endDate string) ([]string, error) {
	var out []string
	for _, b := range r.blocks {
		if b.IsHoliday && b.Date >= startDate && b.Date <= endDate {
			out = append(out, b.Date)
		}
	}
	return out, nil
}

type stubSettingsRepo struct {
	hours    *models.BusinessHours
	replaced *models.BusinessHours
}

func (r *stubSettingsRepo) GetBusinessHours(ctx context.Context) (*models.BusinessHours, error) {
	return r.hours, nil
}

func (r *stubSettingsRepo) ReplaceBusinessHours(ctx context.Context, hours models.BusinessHours) error {
	r.replaced = &hours
	return nil
}

func newTestAvailabilityService(blocks *stubUnavailRepo, settings *stubSettingsRepo) *DefaultAvailabilityService {
	engine := &scheduling.DefaultSchedulingEngine{
		Settings: settings,
		Blocks:   blocks,
		Clock:    scheduling.SystemClock(),
		Logger:   zap.NewNop(),
	}
	return &DefaultAvailabilityService{
		Engine:   engine,
		Blocks:   blocks,
		Settings: settings,
		Logger:   zap.NewNop(),
	}
}

func TestAddBlockHoliday(t *testing.T) {
	repo := newStubUnavailRepo()
	svc := newTestAvailabilityService(repo, &stubSettingsRepo{})

	block, err := svc.AddBlock(context.Background(), AddBlockInput{
		Date:      "2026-03-10",
		IsHoliday: true,
		Reason:    "Holi",
	})
	require.NoError(t, err)
	assert.True(t, block.IsHoliday)
	assert.Empty(t, block.StartTime)
	require.Len(t, repo.created, 1)
}

func TestAddBlockDuplicateHolidayRejected(t *testing.T) {
	repo := newStubUnavailRepo()
	svc := newTestAvailabilityService(repo, &stubSettingsRepo{})
	ctx := context.Background()

	_, err := svc.AddBlock(ctx, AddBlockInput{Date: "2026-03-10", IsHoliday: true})
	require.NoError(t, err)

	_, err = svc.AddBlock(ctx, AddBlockInput{Date: "2026-03-10", IsHoliday: true})
	assert.Error(t, err)
	assert.Len(t, repo.created, 1)
}

func TestAddBlockPartialRequiresOrderedTimes(t *testing.T) {
	repo := newStubUnavailRepo()
	svc := newTestAvailabilityService(repo, &stubSettingsRepo{})
	ctx := context.Background()

	_, err := svc.AddBlock(ctx, AddBlockInput{Date: "2026-03-10", StartTime: "12:00"})
	assert.Error(t, err)

	_, err = svc.AddBlock(ctx, AddBlockInput{Date: "2026-03-10", StartTime: "13:00", EndTime: "12:00"})
	assert.Error(t, err)

	block, err := svc.AddBlock(ctx, AddBlockInput{Date: "2026-03-10", StartTime: "12:00", EndTime: "13:00"})
	require.NoError(t, err)
	assert.Equal(t, "12:00", block.StartTime)
	assert.Equal(t, "13:00", block.EndTime)
}

func TestRemoveBlock(t *testing.T) {
	repo := newStubUnavailRepo()
	svc := newTestAvailabilityService(repo, &stubSettingsRepo{})
	ctx := context.Background()

	block, err := svc.AddBlock(ctx, AddBlockInput{Date: "2026-03-10", StartTime: "12:00", EndTime: "13:00"})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveBlock(ctx, block.ID))
	assert.ErrorIs(t, svc.RemoveBlock(ctx, block.ID), ErrBlockNotFound)
}

func TestUpdateBusinessHoursValidates(t *testing.T) {
	settings := &stubSettingsRepo{}
	svc := newTestAvailabilityService(newStubUnavailRepo(), settings)
	ctx := context.Background()

	bad := models.DefaultBusinessHours()
	bad.Timezone = "Mars/Olympus"
	assert.Error(t, svc.UpdateBusinessHours(ctx, bad))
	assert.Nil(t, settings.replaced)

	good := models.DefaultBusinessHours()
	require.NoError(t, svc.UpdateBusinessHours(ctx, good))
	require.NotNil(t, settings.replaced)
	assert.Equal(t, good, *settings.replaced)
}

func TestHolidaysInRange(t *testing.T) {
	repo := newStubUnavailRepo()
	svc := newTestAvailabilityService(repo, &stubSettingsRepo{})
	ctx := context.Background()

	_, err := svc.AddBlock(ctx, AddBlockInput{Date: "2026-03-10", IsHoliday: true})
	require.NoError(t, err)
	_, err = svc.AddBlock(ctx, AddBlockInput{Date: "2026-05-01", IsHoliday: true})
	require.NoError(t, err)

	holidays, err := svc.HolidaysInRange(ctx, "2026-03-01", "2026-03-31")
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-10"}, holidays)
}
