package scoring

import (
	"math"
)

// userScoreWindow bounds the rolling window over a user's recent content
// scores, newest first.
const userScoreWindow = 30

// UpdateUserScore derives a user's rolling influence score from their
// recent content scores. The average over the up-to-30 newest scores is
// boosted by follower reach (1 + followerCount/10000 * 0.1) and rounded.
//
// An empty history returns previousScore unchanged: dormant accounts keep
// their score rather than collapsing to zero.
func UpdateUserScore(previousScore int64, recentContentScores []float64, followerCount int64) int64 {
	if len(recentContentScores) == 0 {
		return previousScore
	}

	window := recentContentScores
	if len(window) > userScoreWindow {
		window = window[:userScoreWindow]
	}

	total := 0.0
	for _, score := range window {
		total += score
	}
	average := total / float64(len(window))

	if followerCount < 0 {
		followerCount = 0
	}
	reach := 1 + float64(followerCount)/10000*0.1

	return int64(math.Round(average * reach))
}
