package generation

import (
	"time"

	"github.com/google/uuid"
)

// ContentType identifies which generation route produced a record.
type ContentType string

const (
	ContentTweet  ContentType = "tweet"
	ContentThread ContentType = "thread"
	ContentBio    ContentType = "bio"
	ContentIdeas  ContentType = "ideas"
)

func (t ContentType) Valid() bool {
	switch t {
	case ContentTweet, ContentThread, ContentBio, ContentIdeas:
		return true
	}
	return false
}

// Content is one persisted generation. GeneratedText stores the raw
// completion before any segmentation.
type Content struct {
	ID            uuid.UUID   `json:"id"`
	UserID        uuid.UUID   `json:"user_id"`
	Type          ContentType `json:"type"`
	Prompt        string      `json:"prompt"`
	GeneratedText string      `json:"generated_text"`
	CreatedAt     time.Time   `json:"created_at"`
}

// IdeaStatus tracks what the user did with a generated idea.
type IdeaStatus string

const (
	IdeaNew      IdeaStatus = "new"
	IdeaUsed     IdeaStatus = "used"
	IdeaArchived IdeaStatus = "archived"
)

func (s IdeaStatus) Valid() bool {
	switch s {
	case IdeaNew, IdeaUsed, IdeaArchived:
		return true
	}
	return false
}

// Idea is one row of the idea backlog. ID is uuid.Nil when the backlog
// write failed and the idea only exists in the response.
type Idea struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"-"`
	Text      string     `json:"text"`
	Status    IdeaStatus `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"-"`
}

type TweetRequest struct {
	Prompt string `json:"prompt" validate:"required,min=1,max=2000"`
	Tone   string `json:"tone" validate:"omitempty,max=50"`
}

type ThreadRequest struct {
	Prompt string `json:"prompt" validate:"required,min=1,max=2000"`
	Tone   string `json:"tone" validate:"omitempty,max=50"`
	Length int    `json:"length" validate:"omitempty,oneof=3 5 7"`
}

type BioRequest struct {
	Keywords string `json:"keywords" validate:"required,min=1,max=500"`
	Tone     string `json:"tone" validate:"omitempty,max=50"`
}

type IdeasRequest struct {
	Niche  string `json:"niche" validate:"required,max=100"`
	Topics string `json:"topics" validate:"omitempty,max=1000"`
}

type UpdateIdeaRequest struct {
	Status IdeaStatus `json:"status" validate:"required,oneof=new used archived"`
}

// Remaining is -1 on all results when the caller's plan is unlimited.

type TweetResult struct {
	Tweet     string `json:"tweet"`
	Remaining int    `json:"remaining"`
}

type ThreadResult struct {
	Tweets    []Segment `json:"tweets"`
	Remaining int       `json:"remaining"`
}

type BioResult struct {
	Bio       string `json:"bio"`
	Remaining int    `json:"remaining"`
}

type IdeasResult struct {
	Ideas     []Idea `json:"ideas"`
	Remaining int    `json:"remaining"`
}
