package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a user's stored writing identity. WritingStyle is injected
// verbatim into prompts for routes that personalize output.
type Profile struct {
	UserID       uuid.UUID `json:"user_id"`
	WritingStyle string    `json:"writing_style"`
	Niche        string    `json:"niche"`
	Topics       string    `json:"topics"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasWritingStyle reports whether the profile can serve style-dependent
// generation routes.
func (p *Profile) HasWritingStyle() bool {
	return p != nil && p.WritingStyle != ""
}

type UpdateRequest struct {
	WritingStyle *string `json:"writing_style" validate:"omitempty,min=1,max=5000"`
	Niche        *string `json:"niche" validate:"omitempty,max=100"`
	Topics       *string `json:"topics" validate:"omitempty,max=1000"`
}
