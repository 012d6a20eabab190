package profile

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

type memRepo struct {
	profiles map[uuid.UUID]*Profile
}

func newMemRepo() *memRepo {
	return &memRepo{profiles: make(map[uuid.UUID]*Profile)}
}

func (r *memRepo) Get(_ context.Context, userID uuid.UUID) (*Profile, error) {
	if p, ok := r.profiles[userID]; ok {
		out := *p
		return &out, nil
	}
	return nil, nil
}

func (r *memRepo) Upsert(_ context.Context, p *Profile) error {
	stored := *p
	r.profiles[p.UserID] = &stored
	return nil
}

func (r *memRepo) UpdateNicheTopics(_ context.Context, userID uuid.UUID, niche, topics string) error {
	p, ok := r.profiles[userID]
	if !ok {
		p = &Profile{UserID: userID}
		r.profiles[userID] = p
	}
	p.Niche = niche
	p.Topics = topics
	return nil
}

func strptr(s string) *string { return &s }

func TestGetReturnsEmptyProfileWhenMissing(t *testing.T) {
	svc := NewService(newMemRepo())
	userID := uuid.New()

	p, err := svc.Get(context.Background(), userID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if p.UserID != userID || p.WritingStyle != "" {
		t.Errorf("unexpected profile: %+v", p)
	}
	if p.HasWritingStyle() {
		t.Error("empty profile reports a writing style")
	}
}

func TestUpdateMergesFields(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()
	userID := uuid.New()

	if _, err := svc.Update(ctx, userID, &UpdateRequest{
		WritingStyle: strptr("dry humor"),
		Niche:        strptr("tech"),
	}); err != nil {
		t.Fatalf("first update failed: %v", err)
	}

	// Updating only topics must not wipe the writing style.
	p, err := svc.Update(ctx, userID, &UpdateRequest{Topics: strptr("Go, SQL")})
	if err != nil {
		t.Fatalf("second update failed: %v", err)
	}
	if p.WritingStyle != "dry humor" {
		t.Errorf("writing style lost on partial update: %q", p.WritingStyle)
	}
	if p.Niche != "tech" || p.Topics != "Go, SQL" {
		t.Errorf("unexpected profile after merge: %+v", p)
	}
}

func TestRememberNichePreservesWritingStyle(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	ctx := context.Background()
	userID := uuid.New()

	if _, err := svc.Update(ctx, userID, &UpdateRequest{WritingStyle: strptr("terse")}); err != nil {
		t.Fatalf("seeding profile failed: %v", err)
	}

	if err := svc.RememberNiche(ctx, userID, "finance", "crypto"); err != nil {
		t.Fatalf("RememberNiche failed: %v", err)
	}

	p, err := svc.Get(ctx, userID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if p.WritingStyle != "terse" {
		t.Errorf("writing style lost: %q", p.WritingStyle)
	}
	if p.Niche != "finance" || p.Topics != "crypto" {
		t.Errorf("niche not remembered: %+v", p)
	}
}
