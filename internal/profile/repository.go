package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Get(ctx context.Context, userID uuid.UUID) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
	UpdateNicheTopics(ctx context.Context, userID uuid.UUID, niche, topics string) error
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Get(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	query := `SELECT user_id, writing_style, niche, topics, updated_at
	          FROM user_profiles WHERE user_id = $1`

	p := &Profile{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.WritingStyle, &p.Niche, &p.Topics, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying profile: %w", err)
	}
	return p, nil
}

func (r *postgresRepository) Upsert(ctx context.Context, p *Profile) error {
	query := `
		INSERT INTO user_profiles (user_id, writing_style, niche, topics, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET writing_style = EXCLUDED.writing_style,
		    niche = EXCLUDED.niche,
		    topics = EXCLUDED.topics,
		    updated_at = NOW()`

	_, err := r.pool.Exec(ctx, query, p.UserID, p.WritingStyle, p.Niche, p.Topics)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	return nil
}

func (r *postgresRepository) UpdateNicheTopics(ctx context.Context, userID uuid.UUID, niche, topics string) error {
	query := `
		INSERT INTO user_profiles (user_id, niche, topics, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET niche = EXCLUDED.niche,
		    topics = EXCLUDED.topics,
		    updated_at = NOW()`

	_, err := r.pool.Exec(ctx, query, userID, niche, topics)
	if err != nil {
		return fmt.Errorf("updating profile niche: %w", err)
	}
	return nil
}
