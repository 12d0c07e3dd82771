package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuthorProfile is the influence snapshot of a content author at scoring
// time. The engagement, originality and message-activity fields were
// simulated placeholders in early prototypes; they are explicit inputs now
// so score computation stays deterministic. All numeric fields default to
// zero when unknown - missing data degrades the score, it never errors.
type AuthorProfile struct {
	UserID        uuid.UUID `json:"user_id"`
	Role          Role      `json:"role"`
	PartyID       string    `json:"party_id,omitempty"`
	Verified      bool      `json:"verified"`
	FollowerCount int64     `json:"follower_count"`
	Occupation    string    `json:"occupation"`
	Province      string    `json:"province"`
	// RecentEngagementAvg is the author's average likes+comments over their
	// recent content, supplied by the content store.
	RecentEngagementAvg float64 `json:"recent_engagement_avg"`
	// OriginalContentRatio is the fraction [0,1] of the author's recent
	// content that is not a repost.
	OriginalContentRatio float64 `json:"original_content_ratio"`
	// MessageActivity is a 0-100 direct-message activity score supplied by
	// the messaging subsystem. Default 0 when the subsystem is absent.
	MessageActivity float64   `json:"message_activity"`
	Score           int64     `json:"score"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Actor derives the interaction-scoring view of this profile.
func (p AuthorProfile) Actor() Actor {
	return Actor{Role: p.Role, PartyID: p.PartyID, Verified: p.Verified}
}
