package quota

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store is the durable counter behind the tracker. Increment must be atomic
// in the store itself; the tracker never read-modify-writes counts in
// process memory, since concurrent requests for the same user race on it.
type Store interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*UsageRecord, error)
	ResetIfStale(ctx context.Context, userID uuid.UUID) (bool, error)
	Increment(ctx context.Context, userID uuid.UUID) (*UsageRecord, error)
}

type postgresStore struct {
	pool *pgxpool.Pool
}

// NewStore creates the PostgreSQL-backed usage store.
func NewStore(pool *pgxpool.Pool) Store {
	return &postgresStore{pool: pool}
}

// GetOrCreate returns the user's usage row, creating a fresh window if none
// exists yet.
func (s *postgresStore) GetOrCreate(ctx context.Context, userID uuid.UUID) (*UsageRecord, error) {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO user_usage (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		return nil, fmt.Errorf("ensuring usage row: %w", err)
	}

	var rec UsageRecord
	err = s.pool.QueryRow(ctx,
		`SELECT user_id, generation_count, window_start, updated_at
		 FROM user_usage WHERE user_id = $1`, userID,
	).Scan(&rec.UserID, &rec.GenerationCount, &rec.WindowStart, &rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("fetching usage row: %w", err)
	}
	return &rec, nil
}

// ResetIfStale zeroes the counter and restarts the window if the window
// began more than 24 hours ago. Returns true if a reset was performed.
func (s *postgresStore) ResetIfStale(ctx context.Context, userID uuid.UUID) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		`UPDATE user_usage
		 SET generation_count = 0,
		     window_start = NOW(),
		     updated_at = NOW()
		 WHERE user_id = $1 AND window_start < NOW() - INTERVAL '24 hours'`, userID)
	if err != nil {
		return false, fmt.Errorf("resetting usage window: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Increment adds one generation to the current window and returns the
// updated row. The upsert keeps it a single atomic statement, so concurrent
// increments for the same user never lose counts.
func (s *postgresStore) Increment(ctx context.Context, userID uuid.UUID) (*UsageRecord, error) {
	var rec UsageRecord
	err := s.pool.QueryRow(ctx,
		`INSERT INTO user_usage (user_id, generation_count)
		 VALUES ($1, 1)
		 ON CONFLICT (user_id) DO UPDATE
		 SET generation_count = user_usage.generation_count + 1,
		     updated_at = NOW()
		 RETURNING user_id, generation_count, window_start, updated_at`, userID,
	).Scan(&rec.UserID, &rec.GenerationCount, &rec.WindowStart, &rec.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("incrementing usage: %w", err)
	}
	return &rec, nil
}
