package booking

import (
	"context"
	"fmt"
	"time"

	"vedicjivan/services/scheduling"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// slotLockTTL bounds how long a creation attempt may hold a slot lock.
const slotLockTTL = 10 * time.Second

// acquireSlotLock takes a short-lived lock on (date, start) so two
// concurrent creation attempts for the same slot cannot both pass
// validation. Returns a release func. When Redis is unavailable the
// service degrades to validate-then-insert with a warning.
func (s *DefaultBookingService) acquireSlotLock(ctx context.Context, date, startTime string) (func(), error) {
	if s.Lock == nil {
		return func() {}, nil
	}

	key := fmt.Sprintf("slotlock:%s:%s", date, startTime)
	ok, err := s.Lock.SetNX(ctx, key, 1, slotLockTTL).Result()
	if err != nil {
		if err != redis.Nil {
			s.Logger.Warn("slot lock unavailable, proceeding without it",
				zap.String("key", key), zap.Error(err))
		}
		return func() {}, nil
	}
	if !ok {
		// Another creation attempt holds the slot right now.
		return nil, scheduling.NewConflictError(scheduling.CodeSlotTaken, "this time slot is already booked")
	}

	release := func() {
		if err := s.Lock.Del(context.Background(), key).Err(); err != nil {
			s.Logger.Warn("failed to release slot lock", zap.String("key", key), zap.Error(err))
		}
	}
	return release, nil
}
