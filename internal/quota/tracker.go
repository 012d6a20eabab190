package quota

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/threadgenius/threadgenius/internal/users"
)

// ErrQuotaUnavailable means the usage store could not be read. Checks fail
// closed on it: no generation runs without a limit check.
var ErrQuotaUnavailable = errors.New("quota store unavailable")

// Tracker enforces the per-user daily generation limit.
type Tracker struct {
	store          Store
	freeDailyLimit int
}

func NewTracker(store Store, freeDailyLimit int) *Tracker {
	return &Tracker{
		store:          store,
		freeDailyLimit: freeDailyLimit,
	}
}

// limitFor returns the daily limit for a plan, -1 meaning unlimited.
func (t *Tracker) limitFor(plan users.Plan) int {
	if plan == users.PlanPro {
		return -1
	}
	return t.freeDailyLimit
}

// CheckLimit reports whether the user may generate and how many generations
// remain in the current window. It only mutates state to reset a stale
// window; a check is never a usage event. Store failures surface as
// ErrQuotaUnavailable, except for unlimited plans where there is no limit
// to enforce and the check degrades to an allow.
func (t *Tracker) CheckLimit(ctx context.Context, userID uuid.UUID, plan users.Plan) (Status, error) {
	limit := t.limitFor(plan)

	if _, err := t.store.ResetIfStale(ctx, userID); err != nil {
		if limit < 0 {
			slog.Warn("quota: stale-window reset failed for unlimited plan, allowing", "error", err, "user_id", userID)
		} else {
			return Status{}, fmt.Errorf("%w: %v", ErrQuotaUnavailable, err)
		}
	}

	rec, err := t.store.GetOrCreate(ctx, userID)
	if err != nil {
		if limit < 0 {
			slog.Warn("quota: usage read failed for unlimited plan, allowing", "error", err, "user_id", userID)
			return Status{CanGenerate: true, Remaining: -1, Limit: -1, Unlimited: true}, nil
		}
		return Status{}, fmt.Errorf("%w: %v", ErrQuotaUnavailable, err)
	}

	if limit < 0 {
		return Status{
			CanGenerate: true,
			Remaining:   -1,
			Used:        rec.GenerationCount,
			Limit:       -1,
			Unlimited:   true,
			WindowStart: rec.WindowStart,
		}, nil
	}

	remaining := limit - rec.GenerationCount
	if remaining < 0 {
		remaining = 0
	}
	return Status{
		CanGenerate: remaining > 0,
		Remaining:   remaining,
		Used:        rec.GenerationCount,
		Limit:       limit,
		WindowStart: rec.WindowStart,
	}, nil
}

// RecordGeneration charges one generation against the current window and
// returns the remaining count read back from the store after the increment
// (-1 for unlimited plans). Callers treat a failure here as best-effort
// accounting: the generated content has already been produced and is still
// returned to the user.
func (t *Tracker) RecordGeneration(ctx context.Context, userID uuid.UUID, plan users.Plan) (int, error) {
	if _, err := t.store.ResetIfStale(ctx, userID); err != nil {
		return 0, fmt.Errorf("resetting window before increment: %w", err)
	}

	rec, err := t.store.Increment(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("recording generation: %w", err)
	}

	limit := t.limitFor(plan)
	if limit < 0 {
		return -1, nil
	}
	remaining := limit - rec.GenerationCount
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}
