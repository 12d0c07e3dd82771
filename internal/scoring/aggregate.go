package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/polithane/polithane/internal/domain"
)

// historyWeights decay the author's recent content scores positionally,
// newest first. Positions beyond the available history contribute 0.
var historyWeights = [5]float64{0.25, 0.20, 0.15, 0.10, 0.05}

// Layer weights of the final score formula. Must sum to exactly 1.0;
// validated at init and again in tests.
const (
	weightHistory       = 0.25
	weightProfile       = 0.20
	weightContentType   = 0.15
	weightTension       = 0.10
	weightTiming        = 0.05
	weightRawEngagement = 0.25
)

func init() {
	sum := weightHistory + weightProfile + weightContentType + weightTension + weightTiming + weightRawEngagement
	if math.Abs(sum-1.0) > 1e-9 {
		panic(fmt.Sprintf("scoring: layer weights sum to %v, want 1.0", sum))
	}
}

const followerLogScale = 50.0

// occupationMultipliers boost the profile layer for public-facing
// occupations. Keys are normalized lower-case; unrecognized occupations
// fall back to 1.0.
var occupationMultipliers = map[string]float64{
	"journalist":    1.3,
	"academic":      1.25,
	"lawyer":        1.2,
	"doctor":        1.15,
	"teacher":       1.15,
	"civil servant": 1.1,
	"engineer":      1.1,
	"student":       1.05,
}

// regionMultipliers boost the profile layer for high-population provinces.
// Unrecognized provinces fall back to 1.0.
var regionMultipliers = map[string]float64{
	"istanbul":  1.5,
	"ankara":    1.4,
	"izmir":     1.3,
	"bursa":     1.2,
	"antalya":   1.2,
	"adana":     1.1,
	"konya":     1.1,
	"gaziantep": 1.1,
}

func occupationMultiplier(occupation string) float64 {
	if m, ok := occupationMultipliers[strings.ToLower(strings.TrimSpace(occupation))]; ok {
		return m
	}
	return 1.0
}

func regionMultiplier(province string) float64 {
	if m, ok := regionMultipliers[strings.ToLower(strings.TrimSpace(province))]; ok {
		return m
	}
	return 1.0
}

// ComputeContentScore derives the full layered score of one content item
// from its current inputs. Pure and deterministic: no cached state, no
// clock - every call recomputes the breakdown from scratch.
//
// recentAuthorScores are the author's prior content scores, newest first;
// only the first five positions carry weight. Missing inputs (empty
// history, zero followers, unrecognized occupation or province) degrade to
// documented defaults rather than erroring, since score computation must
// never fail a content read path.
func ComputeContentScore(author domain.AuthorProfile, content domain.ContentItem, recentAuthorScores []float64, trend domain.TrendInputs) domain.ScoreBreakdown {
	historyLayer := historyLayer(recentAuthorScores)
	profileLayer := profileLayer(author)

	baseScore := (historyLayer + profileLayer) / 2
	contentTypeLayer := ContentMultiplier(content.ContentType) * baseScore
	tensionLayer := TensionMultiplier(content.Sentiment, content.TopicCategory, content.TensionLevel) * contentTypeLayer

	timingLayer := trend.ElectionPeriodFactor*100 +
		trend.TopicMatchScore*0.5 +
		trend.ViralPotentialScore*0.3

	rawEngagementLayer := rawEngagementLayer(content.Counters)

	final := historyLayer*weightHistory +
		profileLayer*weightProfile +
		contentTypeLayer*weightContentType +
		tensionLayer*weightTension +
		timingLayer*weightTiming +
		rawEngagementLayer*weightRawEngagement

	return domain.ScoreBreakdown{
		HistoryLayer:       historyLayer,
		ProfileLayer:       profileLayer,
		ContentTypeLayer:   contentTypeLayer,
		TensionLayer:       tensionLayer,
		TimingLayer:        timingLayer,
		RawEngagementLayer: rawEngagementLayer,
		FinalScore:         int64(math.Round(final)),
	}
}

// historyLayer is the positionally decayed sum over the author's recent
// content scores. Extra entries beyond the weight table are ignored;
// weights are never wrapped or reused.
func historyLayer(recentScores []float64) float64 {
	total := 0.0
	for i, score := range recentScores {
		if i >= len(historyWeights) {
			break
		}
		total += score * historyWeights[i]
	}
	return total
}

// profileLayer is the arithmetic mean of four influence sub-terms: the
// occupation- and region-boosted follower term, the recent engagement
// term, the originality term, and the message-activity term. The mean
// keeps the layer's magnitude comparable to the history layer.
func profileLayer(author domain.AuthorProfile) float64 {
	followers := author.FollowerCount
	if followers < 0 {
		followers = 0
	}

	followerTerm := math.Log10(float64(followers)+1) * followerLogScale *
		occupationMultiplier(author.Occupation) *
		regionMultiplier(author.Province)
	engagementTerm := author.RecentEngagementAvg * 0.1
	originalityTerm := author.OriginalContentRatio * 100
	activityTerm := author.MessageActivity

	return (followerTerm + engagementTerm + originalityTerm + activityTerm) / 4
}

// rawEngagementLayer weighs the current counters directly.
func rawEngagementLayer(c domain.Counters) float64 {
	return float64(c.Likes)*2 + float64(c.Comments)*3 + float64(c.Shares)*2 + float64(c.Views)*0.1
}
