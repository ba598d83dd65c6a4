package app

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	apperrors "github.com/louisbranch/liftoff.space/internal/platform/errors"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/fuel"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/progress"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// EventKind classifies an external change notification.
type EventKind int

const (
	EventUnspecified EventKind = iota
	// EventCounterChanged signals new document or category counts.
	EventCounterChanged
	// EventDelegationChanged signals a delegation status transition.
	EventDelegationChanged
	// EventSyncChanged signals sync session counter movement.
	EventSyncChanged
)

// Label returns the wire identifier for the event kind.
func (k EventKind) Label() string {
	switch k {
	case EventCounterChanged:
		return "counters"
	case EventDelegationChanged:
		return "delegation"
	case EventSyncChanged:
		return "sync"
	default:
		return "unspecified"
	}
}

// EventKindFromLabel parses a wire identifier into an EventKind.
func EventKindFromLabel(label string) EventKind {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "counters":
		return EventCounterChanged
	case "delegation":
		return EventDelegationChanged
	case "sync":
		return EventSyncChanged
	default:
		return EventUnspecified
	}
}

// Event is one push notification that the fuel level may have moved for a
// team admin.
type Event struct {
	Kind   EventKind
	TeamID string
	UserID string
}

// Reconciler funnels counter changes into the progression engine. It keeps
// one freshness-tracked counter cache entry per team so bursts of events
// don't hammer the counter source.
type Reconciler struct {
	source fuel.CounterSource
	engine *progress.Engine
	ttl    time.Duration
	clock  func() time.Time
	tracer trace.Tracer

	mu    sync.Mutex
	cache map[string]fuel.CachedCounters
}

const defaultCounterTTL = 30 * time.Second

// NewReconciler constructs a reconciler over the counter source and engine.
func NewReconciler(source fuel.CounterSource, engine *progress.Engine, ttl time.Duration, clock func() time.Time) *Reconciler {
	if ttl <= 0 {
		ttl = defaultCounterTTL
	}
	if clock == nil {
		clock = time.Now
	}
	return &Reconciler{
		source: source,
		engine: engine,
		ttl:    ttl,
		clock:  clock,
		tracer: otel.Tracer("launchprep/app"),
		cache:  make(map[string]fuel.CachedCounters),
	}
}

// Refresh recomputes the fuel level for one team admin and reconciles their
// stored progression. With force set, the cached counter snapshot is
// bypassed. Counter source failures leave the stored level untouched.
func (r *Reconciler) Refresh(ctx context.Context, teamID, userID string, force bool) (progress.StageProgress, error) {
	ctx, span := r.tracer.Start(ctx, "launchprep.refresh_fuel_level",
		trace.WithAttributes(attribute.String("team.id", teamID)))
	defer span.End()

	counters, err := r.counters(ctx, teamID, force)
	if err != nil {
		span.RecordError(err)
		return progress.StageProgress{}, err
	}

	computed := fuel.ComputeLevel(counters)
	span.SetAttributes(attribute.Int("fuel.computed_level", computed))

	updated, err := r.engine.Reconcile(ctx, userID, teamID, computed)
	if err != nil {
		span.RecordError(err)
		return progress.StageProgress{}, err
	}
	return updated, nil
}

// Snapshot returns the team's current counter snapshot, from cache when
// fresh unless force is set.
func (r *Reconciler) Snapshot(ctx context.Context, teamID string, force bool) (fuel.Counters, error) {
	return r.counters(ctx, teamID, force)
}

// Invalidate drops the team's cached counter snapshot.
func (r *Reconciler) Invalidate(teamID string) {
	r.mu.Lock()
	delete(r.cache, teamID)
	r.mu.Unlock()
}

func (r *Reconciler) counters(ctx context.Context, teamID string, force bool) (fuel.Counters, error) {
	now := r.clock().UTC()
	if !force {
		r.mu.Lock()
		entry, ok := r.cache[teamID]
		r.mu.Unlock()
		if ok && entry.Fresh(now) {
			return entry.Counters, nil
		}
	}

	counters, err := r.source.FuelCounters(ctx, teamID)
	if err != nil {
		return fuel.Counters{}, apperrors.Wrap(apperrors.CodeFuelCountersUnavailable, "fetch fuel counters", err)
	}
	if len(counters.Categories) == 0 {
		categories, err := r.source.TeamCategories(ctx, teamID)
		if err != nil {
			return fuel.Counters{}, apperrors.Wrap(apperrors.CodeFuelCountersUnavailable, "fetch team categories", err)
		}
		counters.Categories = categories
	}
	if len(counters.Categories) > counters.CategoryCount {
		counters.CategoryCount = len(counters.Categories)
	}

	r.mu.Lock()
	r.cache[teamID] = fuel.CachedCounters{Counters: counters, FetchedAt: now, TTL: r.ttl}
	r.mu.Unlock()
	return counters, nil
}

// Loop consumes change events and periodically re-polls counters for every
// team it has seen, so dropped or missed push notifications heal on the
// next tick.
type Loop struct {
	reconciler *Reconciler
	interval   time.Duration
	events     chan Event

	mu      sync.Mutex
	watched map[string]string
}

const (
	defaultRefreshInterval = time.Minute
	eventBuffer            = 64
)

// NewLoop constructs the event loop.
func NewLoop(reconciler *Reconciler, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &Loop{
		reconciler: reconciler,
		interval:   interval,
		events:     make(chan Event, eventBuffer),
		watched:    make(map[string]string),
	}
}

// Notify enqueues an event without blocking. When the buffer is full the
// event is dropped; the periodic refresh picks the change up instead.
func (l *Loop) Notify(event Event) bool {
	select {
	case l.events <- event:
		return true
	default:
		return false
	}
}

// NotifyChange enqueues an event from its wire labels. It reports whether
// the event was buffered; an unknown kind is rejected.
func (l *Loop) NotifyChange(kind, teamID, userID string) (bool, error) {
	k := EventKindFromLabel(kind)
	if k == EventUnspecified {
		return false, apperrors.WithMetadata(
			apperrors.CodeEventKindUnknown,
			"unknown change notification kind",
			map[string]string{"Kind": kind},
		)
	}
	return l.Notify(Event{Kind: k, TeamID: teamID, UserID: userID}), nil
}

// Run processes events until the context ends.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-l.events:
			l.handle(ctx, event)
		case <-ticker.C:
			l.refreshWatched(ctx)
		}
	}
}

func (l *Loop) handle(ctx context.Context, event Event) {
	teamID := strings.TrimSpace(event.TeamID)
	userID := strings.TrimSpace(event.UserID)
	if teamID == "" || userID == "" {
		return
	}
	l.mu.Lock()
	l.watched[teamID] = userID
	l.mu.Unlock()

	switch event.Kind {
	case EventCounterChanged, EventSyncChanged:
		// Push notifications carry no payload; force a fresh snapshot.
		if _, err := l.reconciler.Refresh(ctx, teamID, userID, true); err != nil {
			logRefreshError(teamID, err)
		}
	case EventDelegationChanged:
		// A completed or cancelled delegation lifts the reconcile hold, so
		// a cached snapshot is good enough to catch up from.
		l.reconciler.Invalidate(teamID)
		if _, err := l.reconciler.Refresh(ctx, teamID, userID, false); err != nil {
			logRefreshError(teamID, err)
		}
	}
}

func (l *Loop) refreshWatched(ctx context.Context) {
	l.mu.Lock()
	teams := make(map[string]string, len(l.watched))
	for teamID, userID := range l.watched {
		teams[teamID] = userID
	}
	l.mu.Unlock()

	for teamID, userID := range teams {
		if ctx.Err() != nil {
			return
		}
		if _, err := l.reconciler.Refresh(ctx, teamID, userID, false); err != nil {
			logRefreshError(teamID, err)
		}
	}
}

func logRefreshError(teamID string, err error) {
	log.Printf("refresh fuel level for team %s: %v", teamID, err)
}
