// Package calendar resolves the election-period factor from configured
// election windows. The scoring engine never consults a clock itself; it
// receives the factor as an explicit trend input produced here.
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Window is one election period with its timing factor. End is inclusive
// at day granularity.
type Window struct {
	Start  time.Time
	End    time.Time
	Factor float64
}

// Calendar holds the configured election windows.
type Calendar struct {
	windows []Window
}

func New(windows []Window) *Calendar {
	return &Calendar{windows: windows}
}

// Factor returns the timing factor for the given instant: the factor of
// the first matching window, or 1.0 outside any election period.
func (c *Calendar) Factor(at time.Time) float64 {
	for _, w := range c.windows {
		if !at.Before(w.Start) && at.Before(w.End.AddDate(0, 0, 1)) {
			return w.Factor
		}
	}
	return 1.0
}

// ParseWindows parses the ELECTION_WINDOWS config format:
// "2026-05-01..2026-06-15=2.0,2026-10-01..2026-11-03=2.5".
// An empty spec yields an empty calendar (factor always 1.0).
func ParseWindows(spec string) ([]Window, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return nil, nil
	}

	var windows []Window
	for _, part := range strings.Split(spec, ",") {
		rangeSpec, factorSpec, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return nil, fmt.Errorf("election window %q: missing factor", part)
		}
		startSpec, endSpec, ok := strings.Cut(rangeSpec, "..")
		if !ok {
			return nil, fmt.Errorf("election window %q: missing date range", part)
		}

		start, err := time.Parse(dateLayout, strings.TrimSpace(startSpec))
		if err != nil {
			return nil, fmt.Errorf("election window %q: invalid start date: %w", part, err)
		}
		end, err := time.Parse(dateLayout, strings.TrimSpace(endSpec))
		if err != nil {
			return nil, fmt.Errorf("election window %q: invalid end date: %w", part, err)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("election window %q: end before start", part)
		}

		factor, err := strconv.ParseFloat(strings.TrimSpace(factorSpec), 64)
		if err != nil {
			return nil, fmt.Errorf("election window %q: invalid factor: %w", part, err)
		}
		if factor <= 0 {
			return nil, fmt.Errorf("election window %q: factor must be positive", part)
		}

		windows = append(windows, Window{Start: start, End: end, Factor: factor})
	}

	return windows, nil
}
