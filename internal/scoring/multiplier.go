package scoring

import (
	"github.com/polithane/polithane/internal/domain"
)

// contentTypeMultipliers is a fixed lookup; enum-bounded, no interpolation.
var contentTypeMultipliers = map[domain.ContentType]float64{
	domain.ContentText:       1.0,
	domain.ContentPhoto:      1.3,
	domain.ContentVideo:      1.8,
	domain.ContentPoll:       1.5,
	domain.ContentLivestream: 3.0,
}

// sentimentFactors scales for the tone annotation; neutral is a no-op.
var sentimentFactors = map[domain.Sentiment]float64{
	domain.SentimentCritical:      1.5,
	domain.SentimentControversial: 1.8,
	domain.SentimentCrisis:        2.5,
	domain.SentimentSupportive:    1.2,
	domain.SentimentNeutral:       1.0,
}

// highTensionCategories get an extra 1.4x bonus.
var highTensionCategories = map[domain.TopicCategory]bool{
	domain.TopicEconomy:       true,
	domain.TopicForeignPolicy: true,
	domain.TopicSecurity:      true,
}

const highTensionCategoryBonus = 1.4

// ContentMultiplier returns the fixed multiplier for a content type.
// Unknown values fall back to the text multiplier 1.0.
func ContentMultiplier(contentType domain.ContentType) float64 {
	if m, ok := contentTypeMultipliers[contentType]; ok {
		return m
	}
	return 1.0
}

// TensionMultiplier composes three independent factors onto a running
// multiplier starting at 1.0: the sentiment factor, the high-tension
// topic-category bonus, and the continuous tension factor
// (1 + tensionLevel/100). tensionLevel is clamped to [0,100] before use so
// out-of-range input never produces a negative or runaway multiplier.
func TensionMultiplier(sentiment domain.Sentiment, category domain.TopicCategory, tensionLevel float64) float64 {
	multiplier := 1.0

	if factor, ok := sentimentFactors[sentiment]; ok {
		multiplier *= factor
	}
	if highTensionCategories[category] {
		multiplier *= highTensionCategoryBonus
	}

	multiplier *= 1 + clampTension(tensionLevel)/100

	return multiplier
}

func clampTension(level float64) float64 {
	if level < 0 {
		return 0
	}
	if level > 100 {
		return 100
	}
	return level
}
