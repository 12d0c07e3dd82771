package domain

// TrendInputs carries the externally supplied timing/trend signals for one
// score computation. ElectionPeriodFactor comes from the election calendar
// collaborator; the engine never consults a clock itself.
type TrendInputs struct {
	TopicMatchScore      float64 `json:"topic_match_score"`
	ViralPotentialScore  float64 `json:"viral_potential_score"`
	ElectionPeriodFactor float64 `json:"election_period_factor"`
}

// ScoreBreakdown is the layered result of one content score computation.
// The per-layer sub-totals exist for auditability: the same inputs always
// reproduce the same breakdown.
type ScoreBreakdown struct {
	HistoryLayer       float64 `json:"history_layer"`
	ProfileLayer       float64 `json:"profile_layer"`
	ContentTypeLayer   float64 `json:"content_type_layer"`
	TensionLayer       float64 `json:"tension_layer"`
	TimingLayer        float64 `json:"timing_layer"`
	RawEngagementLayer float64 `json:"raw_engagement_layer"`
	FinalScore         int64   `json:"final_score"`
}

// ScoreUpdate is the message published to live score subscribers after a
// content item's score is recomputed.
type ScoreUpdate struct {
	FinalScore int64  `json:"final_score"`
	Status     string `json:"status"`
}
