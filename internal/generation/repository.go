package generation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository persists generated content and the idea backlog.
type Repository interface {
	InsertContent(ctx context.Context, c *Content) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Content, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
	RecentTexts(ctx context.Context, userID uuid.UUID, n int) ([]string, error)
	InsertIdeas(ctx context.Context, userID uuid.UUID, texts []string) ([]Idea, error)
	ListIdeas(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Idea, error)
	CountIdeas(ctx context.Context, userID uuid.UUID) (int64, error)
	UpdateIdeaStatus(ctx context.Context, userID, ideaID uuid.UUID, status IdeaStatus) (*Idea, error)
}

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) InsertContent(ctx context.Context, c *Content) error {
	query := `
		INSERT INTO generated_content (id, user_id, content_type, prompt, generated_text, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at`

	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	err := r.pool.QueryRow(ctx, query, c.ID, c.UserID, c.Type, c.Prompt, c.GeneratedText).
		Scan(&c.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert generated content: %w", err)
	}
	return nil
}

func (r *postgresRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Content, error) {
	query := `
		SELECT id, user_id, content_type, prompt, generated_text, created_at
		FROM generated_content
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list generated content: %w", err)
	}
	defer rows.Close()

	var out []*Content
	for rows.Next() {
		var c Content
		if err := rows.Scan(&c.ID, &c.UserID, &c.Type, &c.Prompt, &c.GeneratedText, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan generated content: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

func (r *postgresRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM generated_content WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count generated content: %w", err)
	}
	return count, nil
}

// RecentTexts returns the newest generated texts for prompt context,
// newest first.
func (r *postgresRepository) RecentTexts(ctx context.Context, userID uuid.UUID, n int) ([]string, error) {
	query := `
		SELECT generated_text
		FROM generated_content
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, n)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent content: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("failed to scan recent content: %w", err)
		}
		out = append(out, text)
	}
	return out, rows.Err()
}

func (r *postgresRepository) InsertIdeas(ctx context.Context, userID uuid.UUID, texts []string) ([]Idea, error) {
	query := `
		INSERT INTO content_ideas (id, user_id, idea_text, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at`

	ideas := make([]Idea, 0, len(texts))
	for _, text := range texts {
		idea := Idea{ID: uuid.New(), UserID: userID, Text: text, Status: IdeaNew}
		err := r.pool.QueryRow(ctx, query, idea.ID, userID, text, idea.Status).
			Scan(&idea.CreatedAt, &idea.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to insert idea: %w", err)
		}
		ideas = append(ideas, idea)
	}
	return ideas, nil
}

func (r *postgresRepository) ListIdeas(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Idea, error) {
	query := `
		SELECT id, user_id, idea_text, status, created_at, updated_at
		FROM content_ideas
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	defer rows.Close()

	var out []Idea
	for rows.Next() {
		var i Idea
		if err := rows.Scan(&i.ID, &i.UserID, &i.Text, &i.Status, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan idea: %w", err)
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (r *postgresRepository) CountIdeas(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM content_ideas WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count ideas: %w", err)
	}
	return count, nil
}

// UpdateIdeaStatus returns nil, nil when the idea does not exist or belongs
// to another user.
func (r *postgresRepository) UpdateIdeaStatus(ctx context.Context, userID, ideaID uuid.UUID, status IdeaStatus) (*Idea, error) {
	query := `
		UPDATE content_ideas
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, idea_text, status, created_at, updated_at`

	var i Idea
	err := r.pool.QueryRow(ctx, query, ideaID, userID, status).
		Scan(&i.ID, &i.UserID, &i.Text, &i.Status, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update idea status: %w", err)
	}
	return &i, nil
}
