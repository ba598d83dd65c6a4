// Package fuel derives the fuel stage level from live document counters.
package fuel

import (
	"context"
	"time"

	apperrors "github.com/louisbranch/liftoff.space/internal/platform/errors"
)

// ErrCountersUnavailable indicates the counter source could not produce a
// snapshot. Callers must treat this as "level unknown" and skip
// reconciliation instead of assuming zero counters.
var ErrCountersUnavailable = apperrors.New(apperrors.CodeFuelCountersUnavailable, "fuel counters are unavailable")

// Counters is the latest known snapshot of a team's document statistics.
// Counters are externally supplied and read-only to the engine; updates may
// arrive out of order, so values are snapshots rather than deltas.
type Counters struct {
	FullySyncedDocuments  int
	PendingClassification int
	CategoryCount         int
	Categories            []string
	DriveConnected        bool
}

// CounterSource supplies counter snapshots for a team. Implementations live
// outside the engine (document store aggregate queries, push-notification
// caches).
type CounterSource interface {
	FuelCounters(ctx context.Context, teamID string) (Counters, error)
	TeamCategories(ctx context.Context, teamID string) ([]string, error)
}

// CachedCounters is one explicit freshness-tracked cache entry. The caller
// owns the entry and its expiry; the calculator itself stays pure.
type CachedCounters struct {
	Counters  Counters
	FetchedAt time.Time
	TTL       time.Duration
}

// Fresh reports whether the cached snapshot is still within its TTL.
func (c CachedCounters) Fresh(now time.Time) bool {
	if c.FetchedAt.IsZero() || c.TTL <= 0 {
		return false
	}
	return now.Before(c.FetchedAt.Add(c.TTL))
}
