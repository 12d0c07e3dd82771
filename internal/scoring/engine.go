package scoring

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/polithane/polithane/internal/domain"
	"github.com/polithane/polithane/internal/metrics"
)

// ErrProfileNotFound is returned by RefreshUserScore for unknown users.
var ErrProfileNotFound = errors.New("author profile not found")

const (
	recomputeInterval = 2 * time.Second
	historyWindow     = 5
)

// --- Command types ---

type engineCmd interface{ engineCmd() }

type cmdProcessEvent struct {
	event domain.InteractionEvent
}

func (cmdProcessEvent) engineCmd() {}

type cmdTick struct{}

func (cmdTick) engineCmd() {}

type cmdSetBroadcaster struct {
	b domain.ScoreBroadcaster
}

func (cmdSetBroadcaster) engineCmd() {}

type cmdStop struct {
	doneCh chan struct{}
}

func (cmdStop) engineCmd() {}

// --- Engine ---

// Engine consumes interaction events and keeps published scores current.
// It is a single-goroutine actor: events score synchronously against the
// rule table, counters accumulate atomically in the counter store, and the
// affected contents are marked dirty for recomputation on the next tick.
// All score math delegates to the pure functions in this package.
type Engine struct {
	cmdCh       chan engineCmd
	contents    domain.ContentRepository
	profiles    domain.ProfileRepository
	counters    domain.CounterStore
	trends      domain.TrendSource
	clock       clockwork.Clock
	broadcaster domain.ScoreBroadcaster
	// dirty maps content IDs touched since the last tick to their author.
	dirty  map[uuid.UUID]uuid.UUID
	stopCh chan struct{}
}

func NewEngine(contents domain.ContentRepository, profiles domain.ProfileRepository, counters domain.CounterStore, trends domain.TrendSource, clock clockwork.Clock) *Engine {
	return &Engine{
		cmdCh:    make(chan engineCmd, 512),
		contents: contents,
		profiles: profiles,
		counters: counters,
		trends:   trends,
		clock:    clock,
		dirty:    make(map[uuid.UUID]uuid.UUID),
		stopCh:   make(chan struct{}),
	}
}

// SetBroadcaster sets the broadcaster for the engine. Used to resolve the
// circular dependency where Engine needs the hub for score updates but the
// hub needs Engine for recompute callbacks. Must be called before Start().
func (e *Engine) SetBroadcaster(b domain.ScoreBroadcaster) {
	e.cmdCh <- cmdSetBroadcaster{b: b}
}

// Start begins the engine's background goroutines (ticker and actor).
func (e *Engine) Start() {
	go e.tickerLoop()
	go e.run()
}

func (e *Engine) run() {
	ctx := context.Background()
	for cmd := range e.cmdCh {
		switch c := cmd.(type) {
		case cmdSetBroadcaster:
			e.broadcaster = c.b

		case cmdProcessEvent:
			e.handleProcessEvent(ctx, c.event)

		case cmdTick:
			e.handleTick(ctx)

		case cmdStop:
			close(e.stopCh)
			close(c.doneCh)
			return
		}
	}
}

func (e *Engine) handleProcessEvent(ctx context.Context, ev domain.InteractionEvent) {
	points, rule := scoreWithRule(ev)
	metrics.InteractionEventsTotal.WithLabelValues(string(ev.Action), rule).Inc()
	metrics.InteractionPointsTotal.WithLabelValues(string(ev.Action)).Add(float64(points))

	if err := e.counters.Increment(ctx, ev.Content.ID, ev.Action); err != nil {
		slog.Error("Counter increment failed", "content_id", ev.Content.ID, "action", ev.Action, "error", err)
		metrics.CounterOpsTotal.WithLabelValues("increment", "error").Inc()
		return
	}
	metrics.CounterOpsTotal.WithLabelValues("increment", "ok").Inc()

	e.dirty[ev.Content.ID] = ev.Content.AuthorID
	metrics.DirtyContents.Set(float64(len(e.dirty)))

	slog.Debug("Interaction scored", "content_id", ev.Content.ID, "action", ev.Action, "rule", rule, "points", points)
}

func (e *Engine) handleTick(ctx context.Context) {
	if len(e.dirty) == 0 {
		return
	}

	authors := make(map[uuid.UUID]struct{}, len(e.dirty))
	for contentID, authorID := range e.dirty {
		breakdown, err := e.Recompute(ctx, contentID)
		if err != nil {
			slog.Error("Score recompute failed", "content_id", contentID, "error", err)
			metrics.ScoresRecomputedTotal.WithLabelValues("error").Inc()
			continue
		}
		metrics.ScoresRecomputedTotal.WithLabelValues("ok").Inc()
		authors[authorID] = struct{}{}

		if e.broadcaster != nil {
			e.broadcaster.Broadcast(contentID, domain.ScoreUpdate{FinalScore: breakdown.FinalScore, Status: "active"})
		}
	}

	// A changed content set shifts the author's rolling score too.
	for authorID := range authors {
		if _, err := e.RefreshUserScore(ctx, authorID); err != nil {
			slog.Error("User score refresh failed", "user_id", authorID, "error", err)
		}
	}

	e.dirty = make(map[uuid.UUID]uuid.UUID)
	metrics.DirtyContents.Set(0)
}

func (e *Engine) tickerLoop() {
	ticker := e.clock.NewTicker(recomputeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			e.cmdCh <- cmdTick{}
		case <-e.stopCh:
			return
		}
	}
}

// --- Public API ---

// ProcessEvent enqueues one interaction event for scoring and counter
// accumulation. Non-blocking for the caller as long as the command buffer
// has room.
func (e *Engine) ProcessEvent(ev domain.InteractionEvent) {
	e.cmdCh <- cmdProcessEvent{event: ev}
}

// Recompute derives a content item's full score breakdown from current
// inputs and persists the final score. Safe to call from any goroutine:
// the computation itself is pure and the stores handle their own
// synchronization.
func (e *Engine) Recompute(ctx context.Context, contentID uuid.UUID) (domain.ScoreBreakdown, error) {
	timer := prometheus.NewTimer(metrics.ScoreComputeDuration)
	defer timer.ObserveDuration()

	content, err := e.contents.GetByID(ctx, contentID)
	if err != nil {
		return domain.ScoreBreakdown{}, err
	}

	profile, err := e.profiles.GetByUserID(ctx, content.AuthorID)
	if err != nil {
		return domain.ScoreBreakdown{}, err
	}
	if profile == nil {
		// Unknown author degrades to a zero profile, never an error.
		profile = &domain.AuthorProfile{UserID: content.AuthorID}
	}

	snapshot, err := e.counters.Snapshot(ctx, contentID)
	if err != nil {
		slog.Warn("Counter snapshot failed, scoring with persisted counters", "content_id", contentID, "error", err)
		metrics.CounterOpsTotal.WithLabelValues("snapshot", "error").Inc()
	} else {
		metrics.CounterOpsTotal.WithLabelValues("snapshot", "ok").Inc()
		content.Counters = snapshot
	}

	recentScores, err := e.contents.RecentScoresByAuthor(ctx, content.AuthorID, contentID, historyWindow)
	if err != nil {
		slog.Warn("Recent score lookup failed, scoring with empty history", "author_id", content.AuthorID, "error", err)
		recentScores = nil
	}

	trend, err := e.trends.TrendInputs(ctx, content)
	if err != nil {
		slog.Warn("Trend lookup failed, scoring with zero trend inputs", "content_id", contentID, "error", err)
		trend = domain.TrendInputs{}
	}

	breakdown := ComputeContentScore(*profile, *content, recentScores, trend)

	if err := e.contents.UpdatePublishedScore(ctx, contentID, breakdown.FinalScore); err != nil {
		return domain.ScoreBreakdown{}, err
	}

	return breakdown, nil
}

// RefreshUserScore recomputes the author's rolling score over their 30 most
// recent content scores and persists it.
func (e *Engine) RefreshUserScore(ctx context.Context, userID uuid.UUID) (int64, error) {
	profile, err := e.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	if profile == nil {
		return 0, ErrProfileNotFound
	}

	recentScores, err := e.contents.RecentScoresByAuthor(ctx, userID, uuid.Nil, userScoreWindow)
	if err != nil {
		return 0, err
	}

	newScore := UpdateUserScore(profile.Score, recentScores, profile.FollowerCount)
	if newScore != profile.Score {
		if err := e.profiles.UpdateScore(ctx, userID, newScore); err != nil {
			return 0, err
		}
	}
	metrics.UserScoresRefreshedTotal.Inc()

	return newScore, nil
}

// Stop drains the actor loop and stops the ticker.
func (e *Engine) Stop() {
	doneCh := make(chan struct{})
	e.cmdCh <- cmdStop{doneCh: doneCh}
	<-doneCh
}
