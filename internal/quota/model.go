package quota

import (
	"time"

	"github.com/google/uuid"
)

// Window is the rolling period over which a user's generation count
// accumulates before resetting.
const Window = 24 * time.Hour

// UsageRecord matches the user_usage table schema.
type UsageRecord struct {
	UserID          uuid.UUID `json:"user_id"`
	GenerationCount int       `json:"generation_count"`
	WindowStart     time.Time `json:"window_start"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Status is the API view of a user's quota. Remaining is -1 for unlimited
// plans; clients key off Unlimited rather than the sentinel.
type Status struct {
	CanGenerate bool      `json:"can_generate"`
	Remaining   int       `json:"remaining"`
	Used        int       `json:"used"`
	Limit       int       `json:"limit"`
	Unlimited   bool      `json:"unlimited"`
	WindowStart time.Time `json:"window_start"`
}
