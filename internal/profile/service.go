package profile

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Get returns the user's profile, or an empty profile if none has been
// saved yet. Profiles are created lazily on first update.
func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return &Profile{UserID: userID}, nil
	}
	return p, nil
}

func (s *Service) Update(ctx context.Context, userID uuid.UUID, req *UpdateRequest) (*Profile, error) {
	current, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.WritingStyle != nil {
		current.WritingStyle = *req.WritingStyle
	}
	if req.Niche != nil {
		current.Niche = *req.Niche
	}
	if req.Topics != nil {
		current.Topics = *req.Topics
	}
	current.UserID = userID

	if err := s.repo.Upsert(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// RememberNiche records the niche and topics a user last generated ideas
// for, so the next onboarding round-trip can prefill them.
func (s *Service) RememberNiche(ctx context.Context, userID uuid.UUID, niche, topics string) error {
	return s.repo.UpdateNicheTopics(ctx, userID, niche, topics)
}
