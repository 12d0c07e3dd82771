package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/polithane/polithane/internal/domain"
)

func TestLayerWeightsSumToOne(t *testing.T) {
	sum := weightHistory + weightProfile + weightContentType + weightTension + weightTiming + weightRawEngagement
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestHistoryLayer_PositionalWeights(t *testing.T) {
	scores := []float64{100, 80, 60, 40, 20}
	// 100*0.25 + 80*0.20 + 60*0.15 + 40*0.10 + 20*0.05
	assert.InDelta(t, 55.0, historyLayer(scores), 1e-9)
}

func TestHistoryLayer_EmptyContributesZero(t *testing.T) {
	assert.Zero(t, historyLayer(nil))
	assert.Zero(t, historyLayer([]float64{}))
}

func TestHistoryLayer_TruncatesBeyondFive(t *testing.T) {
	base := []float64{100, 80, 60, 40, 20}
	padded := append(append([]float64{}, base...), 9999, 12345)
	assert.Equal(t, historyLayer(base), historyLayer(padded))
}

func TestProfileLayer_MeanOfFourSubTerms(t *testing.T) {
	author := domain.AuthorProfile{
		FollowerCount:        999, // log10(1000) = 3 -> follower base 150
		Occupation:           "Journalist",
		Province:             "Istanbul",
		RecentEngagementAvg:  40,
		OriginalContentRatio: 0.8,
		MessageActivity:      20,
	}

	// (150*1.3*1.5 + 40*0.1 + 0.8*100 + 20) / 4 = (292.5 + 4 + 80 + 20) / 4
	assert.InDelta(t, 99.125, profileLayer(author), 1e-9)
}

func TestProfileLayer_DefaultsForUnknownInputs(t *testing.T) {
	// Unrecognized occupation and province multiply by 1.0; missing
	// followers count as zero.
	author := domain.AuthorProfile{
		FollowerCount: 9, // log10(10) = 1 -> follower base 50
		Occupation:    "astronaut",
		Province:      "atlantis",
	}
	assert.InDelta(t, 12.5, profileLayer(author), 1e-9)

	negative := domain.AuthorProfile{FollowerCount: -100}
	assert.Zero(t, profileLayer(negative))
}

func TestProfileLayer_NormalizesLookupKeys(t *testing.T) {
	a := domain.AuthorProfile{FollowerCount: 999, Occupation: "JOURNALIST", Province: "  Ankara "}
	b := domain.AuthorProfile{FollowerCount: 999, Occupation: "journalist", Province: "ankara"}
	assert.Equal(t, profileLayer(b), profileLayer(a))
}

func TestRawEngagementLayer(t *testing.T) {
	c := domain.Counters{Views: 1000, Likes: 100, Comments: 50, Shares: 25}
	// 100*2 + 50*3 + 25*2 + 1000*0.1
	assert.InDelta(t, 500.0, rawEngagementLayer(c), 1e-9)
}

func TestComputeContentScore_EmptyHistoryZeroCounters(t *testing.T) {
	author := domain.AuthorProfile{}
	content := domain.ContentItem{
		ContentType:   domain.ContentText,
		TopicCategory: domain.TopicHealth,
		Sentiment:     domain.SentimentNeutral,
	}
	trend := domain.TrendInputs{ElectionPeriodFactor: 1.5}

	got := ComputeContentScore(author, content, nil, trend)

	assert.Zero(t, got.HistoryLayer)
	assert.Zero(t, got.ProfileLayer)
	assert.Zero(t, got.ContentTypeLayer)
	assert.Zero(t, got.TensionLayer)
	assert.Zero(t, got.RawEngagementLayer)
	assert.InDelta(t, 150.0, got.TimingLayer, 1e-9)
	// round(150 * 0.05) = 8
	assert.Equal(t, int64(8), got.FinalScore)
}

func TestComputeContentScore_FullBreakdown(t *testing.T) {
	author := domain.AuthorProfile{
		FollowerCount:        999,
		Occupation:           "journalist",
		Province:             "istanbul",
		RecentEngagementAvg:  40,
		OriginalContentRatio: 0.8,
		MessageActivity:      20,
	}
	content := domain.ContentItem{
		ContentType:   domain.ContentVideo,
		TopicCategory: domain.TopicEconomy,
		Sentiment:     domain.SentimentCritical,
		TensionLevel:  50,
		Counters:      domain.Counters{Views: 1000, Likes: 100, Comments: 50, Shares: 25},
	}
	recent := []float64{100, 80, 60, 40, 20}
	trend := domain.TrendInputs{TopicMatchScore: 60, ViralPotentialScore: 40, ElectionPeriodFactor: 1.0}

	got := ComputeContentScore(author, content, recent, trend)

	assert.InDelta(t, 55.0, got.HistoryLayer, 1e-9)
	assert.InDelta(t, 99.125, got.ProfileLayer, 1e-9)
	// video 1.8 x (55 + 99.125)/2
	assert.InDelta(t, 138.7125, got.ContentTypeLayer, 1e-9)
	// critical 1.5 x economy 1.4 x tension-50 1.5 = 3.15
	assert.InDelta(t, 436.944375, got.TensionLayer, 1e-6)
	// 1.0*100 + 60*0.5 + 40*0.3
	assert.InDelta(t, 142.0, got.TimingLayer, 1e-9)
	assert.InDelta(t, 500.0, got.RawEngagementLayer, 1e-9)
	assert.Equal(t, int64(230), got.FinalScore)
}

func TestComputeContentScore_Deterministic(t *testing.T) {
	author := domain.AuthorProfile{FollowerCount: 5000, Occupation: "teacher", Province: "izmir"}
	content := domain.ContentItem{
		ContentType:   domain.ContentPoll,
		TopicCategory: domain.TopicSecurity,
		Sentiment:     domain.SentimentControversial,
		TensionLevel:  72.5,
		Counters:      domain.Counters{Views: 12, Likes: 3, Comments: 1},
	}
	recent := []float64{41, 12, 7}
	trend := domain.TrendInputs{TopicMatchScore: 11, ViralPotentialScore: 91, ElectionPeriodFactor: 2}

	first := ComputeContentScore(author, content, recent, trend)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ComputeContentScore(author, content, recent, trend))
	}
}

func TestComputeContentScore_RoundTripShiftsHistoryWeights(t *testing.T) {
	author := domain.AuthorProfile{FollowerCount: 100}
	content := domain.ContentItem{
		ContentType:   domain.ContentText,
		TopicCategory: domain.TopicCulture,
		Sentiment:     domain.SentimentNeutral,
	}
	trend := domain.TrendInputs{ElectionPeriodFactor: 1}
	recent := []float64{90, 70, 50, 30, 10}

	first := ComputeContentScore(author, content, recent, trend)

	// Feeding the final score back as the newest entry must shift every
	// older entry down one weight position, dropping the oldest.
	shifted := append([]float64{float64(first.FinalScore)}, recent[:4]...)
	second := ComputeContentScore(author, content, shifted, trend)

	want := float64(first.FinalScore)*0.25 + 90*0.20 + 70*0.15 + 50*0.10 + 30*0.05
	assert.InDelta(t, want, second.HistoryLayer, 1e-9)
}
