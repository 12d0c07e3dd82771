package calendar

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/polithane/polithane/internal/domain"
)

// TrendSource assembles trend inputs for the scoring engine. The election
// factor comes from the calendar at the injected clock's current time; the
// topic-match and viral-potential scores come from whatever upstream
// subsystem is wired in, with static defaults when there is none.
type TrendSource struct {
	calendar  domain.ElectionCalendar
	clock     clockwork.Clock
	topicFn   func(ctx context.Context, content *domain.ContentItem) (float64, error)
	viralFn   func(ctx context.Context, content *domain.ContentItem) (float64, error)
	topicBase float64
	viralBase float64
}

func NewTrendSource(cal domain.ElectionCalendar, clock clockwork.Clock, topicBase, viralBase float64) *TrendSource {
	return &TrendSource{calendar: cal, clock: clock, topicBase: topicBase, viralBase: viralBase}
}

// WithTopicMatcher plugs in an external topic-matching subsystem.
func (s *TrendSource) WithTopicMatcher(fn func(ctx context.Context, content *domain.ContentItem) (float64, error)) *TrendSource {
	s.topicFn = fn
	return s
}

// WithViralScorer plugs in an external virality subsystem.
func (s *TrendSource) WithViralScorer(fn func(ctx context.Context, content *domain.ContentItem) (float64, error)) *TrendSource {
	s.viralFn = fn
	return s
}

func (s *TrendSource) TrendInputs(ctx context.Context, content *domain.ContentItem) (domain.TrendInputs, error) {
	inputs := domain.TrendInputs{
		TopicMatchScore:      s.topicBase,
		ViralPotentialScore:  s.viralBase,
		ElectionPeriodFactor: s.calendar.Factor(s.clock.Now()),
	}

	if s.topicFn != nil {
		score, err := s.topicFn(ctx, content)
		if err != nil {
			return domain.TrendInputs{}, err
		}
		inputs.TopicMatchScore = score
	}
	if s.viralFn != nil {
		score, err := s.viralFn(ctx, content)
		if err != nil {
			return domain.TrendInputs{}, err
		}
		inputs.ViralPotentialScore = score
	}

	return inputs, nil
}
