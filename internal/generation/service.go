package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/threadgenius/threadgenius/internal/config"
	"github.com/threadgenius/threadgenius/internal/llm"
	"github.com/threadgenius/threadgenius/internal/metrics"
	"github.com/threadgenius/threadgenius/internal/presets"
	"github.com/threadgenius/threadgenius/internal/profile"
	"github.com/threadgenius/threadgenius/internal/quota"
	"github.com/threadgenius/threadgenius/internal/users"
)

var (
	// ErrLimitExceeded means the user's daily quota is spent.
	ErrLimitExceeded = errors.New("daily generation limit reached")

	// ErrProfileIncomplete means a style-dependent route was called before
	// the user saved a writing style.
	ErrProfileIncomplete = errors.New("writing style not set")

	// ErrIdeaNotFound means the idea does not exist or belongs to someone else.
	ErrIdeaNotFound = errors.New("idea not found")
)

// DefaultThreadLength is used when a thread request omits the length field.
const DefaultThreadLength = 3

// recentContextSize is how many past generations feed the ideas prompt.
const recentContextSize = 5

// Service orchestrates content generation: quota gate, prompt assembly,
// completion call, segmentation, and best-effort persistence.
type Service struct {
	repo        Repository
	profiles    *profile.Service
	tracker     *quota.Tracker
	completer   llm.Completer
	temperature float64
	maxTokens   int
}

func NewService(repo Repository, profiles *profile.Service, tracker *quota.Tracker, completer llm.Completer, cfg config.OpenAIConfig) *Service {
	return &Service{
		repo:        repo,
		profiles:    profiles,
		tracker:     tracker,
		completer:   completer,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
	}
}

// gate loads the profile and checks the quota before any completion call.
// It returns the pre-generation quota status so remaining can be derived
// even if the post-generation record fails.
func (s *Service) gate(ctx context.Context, userID uuid.UUID, plan users.Plan, needStyle bool) (*profile.Profile, quota.Status, error) {
	prof, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, quota.Status{}, fmt.Errorf("loading profile: %w", err)
	}
	if needStyle && !prof.HasWritingStyle() {
		return nil, quota.Status{}, ErrProfileIncomplete
	}

	status, err := s.tracker.CheckLimit(ctx, userID, plan)
	if err != nil {
		return nil, quota.Status{}, err
	}
	if !status.CanGenerate {
		metrics.QuotaExhaustedTotal.Inc()
		return nil, quota.Status{}, ErrLimitExceeded
	}
	return prof, status, nil
}

// complete runs one completion call and records its latency.
func (s *Service) complete(ctx context.Context, ctype ContentType, system, prompt string) (string, error) {
	start := time.Now()
	text, err := s.completer.Complete(ctx, llm.CompletionRequest{
		System:      system,
		Prompt:      prompt,
		Temperature: s.temperature,
		MaxTokens:   s.maxTokens,
	})
	metrics.CompletionDuration.WithLabelValues(string(ctype)).Observe(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, llm.ErrTimeout) {
			metrics.GenerationsTotal.WithLabelValues(string(ctype), "timeout").Inc()
		} else {
			metrics.GenerationsTotal.WithLabelValues(string(ctype), "failed").Inc()
		}
		return "", err
	}
	metrics.GenerationsTotal.WithLabelValues(string(ctype), "success").Inc()
	return text, nil
}

// finish persists the generation and charges the quota. Both steps are
// best effort: a failure is logged but never turns a delivered generation
// into a client-facing error. The context is detached so a client that
// disconnects mid-write does not abort either step.
func (s *Service) finish(ctx context.Context, userID uuid.UUID, plan users.Plan, status quota.Status, ctype ContentType, prompt, text string) int {
	ctx = context.WithoutCancel(ctx)

	c := &Content{UserID: userID, Type: ctype, Prompt: prompt, GeneratedText: text}
	if err := s.repo.InsertContent(ctx, c); err != nil {
		slog.Warn("failed to save generation history",
			"user_id", userID, "type", ctype, "error", err)
	}

	remaining, err := s.tracker.RecordGeneration(ctx, userID, plan)
	if err != nil {
		slog.Warn("failed to record generation",
			"user_id", userID, "type", ctype, "error", err)
		// Fall back to the pre-generation read so the response still
		// carries a plausible count.
		if status.Unlimited {
			return -1
		}
		if r := status.Remaining - 1; r > 0 {
			return r
		}
		return 0
	}
	return remaining
}

func (s *Service) GenerateTweet(ctx context.Context, userID uuid.UUID, plan users.Plan, req *TweetRequest) (*TweetResult, error) {
	tone, preset, err := presets.LookupTone(req.Tone)
	if err != nil {
		return nil, err
	}

	_, status, err := s.gate(ctx, userID, plan, false)
	if err != nil {
		return nil, err
	}

	system, prompt := buildTweetPrompt(req.Prompt, tone, preset)
	text, err := s.complete(ctx, ContentTweet, system, prompt)
	if err != nil {
		return nil, err
	}

	remaining := s.finish(ctx, userID, plan, status, ContentTweet, req.Prompt, text)
	return &TweetResult{Tweet: strings.TrimSpace(text), Remaining: remaining}, nil
}

func (s *Service) GenerateThread(ctx context.Context, userID uuid.UUID, plan users.Plan, req *ThreadRequest) (*ThreadResult, error) {
	tone, preset, err := presets.LookupTone(req.Tone)
	if err != nil {
		return nil, err
	}
	length := req.Length
	if length == 0 {
		length = DefaultThreadLength
	}

	_, status, err := s.gate(ctx, userID, plan, false)
	if err != nil {
		return nil, err
	}

	system, prompt := buildThreadPrompt(req.Prompt, tone, preset, length)
	text, err := s.complete(ctx, ContentThread, system, prompt)
	if err != nil {
		return nil, err
	}

	// A thread that does not split cleanly is discarded whole: nothing is
	// persisted and nothing is charged.
	tweets, err := SplitThread(text, length)
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(string(ContentThread), "malformed").Inc()
		return nil, fmt.Errorf("segmenting thread: %w", err)
	}

	remaining := s.finish(ctx, userID, plan, status, ContentThread, req.Prompt, text)
	return &ThreadResult{Tweets: tweets, Remaining: remaining}, nil
}

func (s *Service) GenerateBio(ctx context.Context, userID uuid.UUID, plan users.Plan, req *BioRequest) (*BioResult, error) {
	tone, preset, err := presets.LookupTone(req.Tone)
	if err != nil {
		return nil, err
	}

	prof, status, err := s.gate(ctx, userID, plan, true)
	if err != nil {
		return nil, err
	}

	system, prompt := buildBioPrompt(req.Keywords, prof.WritingStyle, tone, preset)
	text, err := s.complete(ctx, ContentBio, system, prompt)
	if err != nil {
		return nil, err
	}

	remaining := s.finish(ctx, userID, plan, status, ContentBio, req.Keywords, text)
	return &BioResult{Bio: strings.TrimSpace(text), Remaining: remaining}, nil
}

func (s *Service) GenerateIdeas(ctx context.Context, userID uuid.UUID, plan users.Plan, req *IdeasRequest) (*IdeasResult, error) {
	niche, preset, err := presets.LookupNiche(req.Niche)
	if err != nil {
		return nil, err
	}

	prof, status, err := s.gate(ctx, userID, plan, true)
	if err != nil {
		return nil, err
	}

	// Recent generations give the model style context. Losing them only
	// degrades the prompt, so errors are not fatal.
	recent, err := s.repo.RecentTexts(ctx, userID, recentContextSize)
	if err != nil {
		slog.Warn("failed to load recent content for ideas prompt",
			"user_id", userID, "error", err)
		recent = nil
	}

	system, prompt := buildIdeasPrompt(prof.WritingStyle, niche, preset, req.Topics, recent)
	text, err := s.complete(ctx, ContentIdeas, system, prompt)
	if err != nil {
		return nil, err
	}

	segs, err := SplitLenient(text)
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(string(ContentIdeas), "malformed").Inc()
		return nil, fmt.Errorf("segmenting ideas: %w", err)
	}

	detached := context.WithoutCancel(ctx)

	// The last niche and topics feed the next session's defaults.
	if err := s.profiles.RememberNiche(detached, userID, string(niche), req.Topics); err != nil {
		slog.Warn("failed to remember niche", "user_id", userID, "error", err)
	}

	texts := make([]string, len(segs))
	for i, seg := range segs {
		texts[i] = seg.Text
	}
	ideas, err := s.repo.InsertIdeas(detached, userID, texts)
	if err != nil {
		slog.Warn("failed to save idea backlog", "user_id", userID, "error", err)
		ideas = make([]Idea, len(texts))
		for i, t := range texts {
			ideas[i] = Idea{Text: t, Status: IdeaNew}
		}
	}

	historyPrompt := fmt.Sprintf("Content ideas for %s", niche)
	remaining := s.finish(ctx, userID, plan, status, ContentIdeas, historyPrompt, text)
	return &IdeasResult{Ideas: ideas, Remaining: remaining}, nil
}

// History returns a page of the user's generated content plus the total count.
func (s *Service) History(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Content, int64, error) {
	items, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// Ideas returns a page of the user's idea backlog plus the total count.
func (s *Service) Ideas(ctx context.Context, userID uuid.UUID, limit, offset int) ([]Idea, int64, error) {
	items, err := s.repo.ListIdeas(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.CountIdeas(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// UpdateIdeaStatus marks an idea used or archived. Ownership is enforced
// in the query, so another user's idea reads as not found.
func (s *Service) UpdateIdeaStatus(ctx context.Context, userID, ideaID uuid.UUID, status IdeaStatus) (*Idea, error) {
	idea, err := s.repo.UpdateIdeaStatus(ctx, userID, ideaID, status)
	if err != nil {
		return nil, err
	}
	if idea == nil {
		return nil, ErrIdeaNotFound
	}
	return idea, nil
}
