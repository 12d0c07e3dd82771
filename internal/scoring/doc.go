// Package scoring implements the influence score engine.
//
// The pure core is three composable stages: the interaction scorer (ordered
// role-relationship rule table), the content multiplier stack, and the
// layered aggregator producing an auditable ScoreBreakdown. All three are
// deterministic functions over their inputs - no clocks, no randomness, no
// hidden state - and are safe to call concurrently.
//
// The Engine wraps the pure core with event consumption: it scores incoming
// interaction events, accumulates counters, and recomputes published scores
// on a tick (delegates all I/O to the injected stores).
package scoring
