package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContentType is the media kind of a content item.
type ContentType string

const (
	ContentText       ContentType = "text"
	ContentPhoto      ContentType = "photo"
	ContentVideo      ContentType = "video"
	ContentLivestream ContentType = "livestream"
	ContentPoll       ContentType = "poll"
)

// ValidContentType reports whether t is a known content type.
func ValidContentType(t ContentType) bool {
	switch t {
	case ContentText, ContentPhoto, ContentVideo, ContentLivestream, ContentPoll:
		return true
	}
	return false
}

// TopicCategory is the editorial topic classification of a content item.
type TopicCategory string

const (
	TopicEconomy       TopicCategory = "economy"
	TopicEducation     TopicCategory = "education"
	TopicHealth        TopicCategory = "health"
	TopicForeignPolicy TopicCategory = "foreign_policy"
	TopicSecurity      TopicCategory = "security"
	TopicEnvironment   TopicCategory = "environment"
	TopicTransport     TopicCategory = "transport"
	TopicTechnology    TopicCategory = "technology"
	TopicAgriculture   TopicCategory = "agriculture"
	TopicSports        TopicCategory = "sports"
	TopicCulture       TopicCategory = "culture"
)

// ValidTopicCategory reports whether c is a known topic category.
func ValidTopicCategory(c TopicCategory) bool {
	switch c {
	case TopicEconomy, TopicEducation, TopicHealth, TopicForeignPolicy, TopicSecurity,
		TopicEnvironment, TopicTransport, TopicTechnology, TopicAgriculture, TopicSports, TopicCulture:
		return true
	}
	return false
}

// Sentiment is the editorial/AI-assigned tone annotation of a content item.
type Sentiment string

const (
	SentimentCritical      Sentiment = "critical"
	SentimentSupportive    Sentiment = "supportive"
	SentimentControversial Sentiment = "controversial"
	SentimentCrisis        Sentiment = "crisis"
	SentimentNeutral       Sentiment = "neutral"
)

// ValidSentiment reports whether s is a known sentiment annotation.
func ValidSentiment(s Sentiment) bool {
	switch s {
	case SentimentCritical, SentimentSupportive, SentimentControversial, SentimentCrisis, SentimentNeutral:
		return true
	}
	return false
}

// Counters holds the engagement counters of a content item. They are
// monotonically non-decreasing and mutated only by the counter store;
// the scoring engine just reads a snapshot.
type Counters struct {
	Views    int64 `json:"views"`
	Likes    int64 `json:"likes"`
	Comments int64 `json:"comments"`
	Shares   int64 `json:"shares"`
}

// ContentItem is one piece of content with its static scoring attributes
// and the counter snapshot current at read time.
type ContentItem struct {
	ID             uuid.UUID     `json:"id"`
	AuthorID       uuid.UUID     `json:"author_id"`
	ContentType    ContentType   `json:"content_type"`
	TopicCategory  TopicCategory `json:"topic_category"`
	Sentiment      Sentiment     `json:"sentiment"`
	TensionLevel   float64       `json:"tension_level"`
	IsRepost       bool          `json:"is_repost"`
	Counters       Counters      `json:"counters"`
	PublishedScore int64         `json:"published_score"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
