package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/louisbranch/liftoff.space/internal/platform/errors"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/delegation"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/fuel"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/ingest"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/progress"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/stage"
	launchprepsqlite "github.com/louisbranch/liftoff.space/internal/services/launchprep/storage/sqlite"
)

type fakeCounterSource struct {
	counters   fuel.Counters
	categories []string
	fetches    int
	fail       bool
}

func (f *fakeCounterSource) FuelCounters(_ context.Context, _ string) (fuel.Counters, error) {
	f.fetches++
	if f.fail {
		return fuel.Counters{}, errors.New("document service down")
	}
	return f.counters, nil
}

func (f *fakeCounterSource) TeamCategories(_ context.Context, _ string) ([]string, error) {
	if f.fail {
		return nil, errors.New("document service down")
	}
	return f.categories, nil
}

type fakeDirectory struct{}

func (fakeDirectory) LookupUserByEmail(_ context.Context, _ string) (delegation.User, error) {
	return delegation.User{}, apperrors.New(apperrors.CodeNotFound, "no account")
}

type fakeInvites struct{}

func (fakeInvites) SendDelegationInvite(_ context.Context, _, _ string) error { return nil }

func openTempStore(t *testing.T) *launchprepsqlite.Store {
	t.Helper()
	store, err := launchprepsqlite.Open(filepath.Join(t.TempDir(), "launchprep.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return store
}

func TestRefreshReconcilesFuelLevel(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	engine := progress.NewEngine(store, store, nil)
	source := &fakeCounterSource{
		counters:   fuel.Counters{FullySyncedDocuments: 6, DriveConnected: true},
		categories: []string{"contracts", "invoices"},
	}
	reconciler := NewReconciler(source, engine, time.Minute, nil)

	updated, err := reconciler.Refresh(context.Background(), "team-1", "user-1", false)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if updated.Level != 2 {
		t.Fatalf("level = %d, want 2", updated.Level)
	}

	stored, err := store.StageProgress(context.Background(), "user-1", stage.Fuel)
	if err != nil {
		t.Fatalf("get stage progress: %v", err)
	}
	if stored.Level != 2 || len(stored.Achievements) != 2 {
		t.Fatalf("stored = %+v", stored)
	}
}

func TestRefreshUsesCachedCountersWithinTTL(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	engine := progress.NewEngine(store, store, nil)
	source := &fakeCounterSource{counters: fuel.Counters{FullySyncedDocuments: 1}}
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	current := now
	reconciler := NewReconciler(source, engine, time.Minute, func() time.Time { return current })

	if _, err := reconciler.Refresh(context.Background(), "team-1", "user-1", false); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if _, err := reconciler.Refresh(context.Background(), "team-1", "user-1", false); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if source.fetches != 1 {
		t.Fatalf("fetches = %d, want 1 within TTL", source.fetches)
	}

	// Forcing bypasses the cache, and expiry refetches.
	if _, err := reconciler.Refresh(context.Background(), "team-1", "user-1", true); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if source.fetches != 2 {
		t.Fatalf("fetches = %d, want 2 after force", source.fetches)
	}
	current = now.Add(2 * time.Minute)
	if _, err := reconciler.Refresh(context.Background(), "team-1", "user-1", false); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if source.fetches != 3 {
		t.Fatalf("fetches = %d, want 3 after expiry", source.fetches)
	}
}

func TestRefreshSkipsReconcileWhenCountersUnavailable(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	engine := progress.NewEngine(store, store, nil)

	// Reach level 1 first.
	source := &fakeCounterSource{counters: fuel.Counters{FullySyncedDocuments: 1}}
	reconciler := NewReconciler(source, engine, time.Nanosecond, nil)
	if _, err := reconciler.Refresh(context.Background(), "team-1", "user-1", false); err != nil {
		t.Fatalf("refresh: %v", err)
	}

	source.fail = true
	_, err := reconciler.Refresh(context.Background(), "team-1", "user-1", true)
	if !apperrors.IsCode(err, apperrors.CodeFuelCountersUnavailable) {
		t.Fatalf("expected counters unavailable, got %v", err)
	}

	// The stored level is untouched: unavailable is not zero.
	stored, err := store.StageProgress(context.Background(), "user-1", stage.Fuel)
	if err != nil {
		t.Fatalf("get stage progress: %v", err)
	}
	if stored.Level != 1 {
		t.Fatalf("level = %d, want 1", stored.Level)
	}
}

func TestLoopHandleForcesRefreshOnCounterEvents(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	engine := progress.NewEngine(store, store, nil)
	source := &fakeCounterSource{counters: fuel.Counters{FullySyncedDocuments: 1}}
	reconciler := NewReconciler(source, engine, time.Hour, nil)
	loop := NewLoop(reconciler, time.Hour)

	loop.handle(context.Background(), Event{Kind: EventCounterChanged, TeamID: "team-1", UserID: "user-1"})
	if source.fetches != 1 {
		t.Fatalf("fetches = %d, want 1", source.fetches)
	}
	// Counter events bypass the one-hour cache.
	loop.handle(context.Background(), Event{Kind: EventSyncChanged, TeamID: "team-1", UserID: "user-1"})
	if source.fetches != 2 {
		t.Fatalf("fetches = %d, want 2", source.fetches)
	}

	stored, err := store.StageProgress(context.Background(), "user-1", stage.Fuel)
	if err != nil {
		t.Fatalf("get stage progress: %v", err)
	}
	if stored.Level != 1 {
		t.Fatalf("level = %d, want 1", stored.Level)
	}
}

func TestLoopTickRefreshesWatchedTeams(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	engine := progress.NewEngine(store, store, nil)
	source := &fakeCounterSource{counters: fuel.Counters{FullySyncedDocuments: 1}}
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	current := now
	reconciler := NewReconciler(source, engine, time.Minute, func() time.Time { return current })
	loop := NewLoop(reconciler, time.Hour)

	loop.handle(context.Background(), Event{Kind: EventCounterChanged, TeamID: "team-1", UserID: "user-1"})

	// The counters grow between events; the periodic sweep picks it up.
	source.counters = fuel.Counters{FullySyncedDocuments: 6, CategoryCount: 2}
	current = now.Add(5 * time.Minute)
	loop.refreshWatched(context.Background())

	stored, err := store.StageProgress(context.Background(), "user-1", stage.Fuel)
	if err != nil {
		t.Fatalf("get stage progress: %v", err)
	}
	if stored.Level != 2 {
		t.Fatalf("level = %d, want 2 after sweep", stored.Level)
	}
}

func TestLoopNotifyDropsWhenBufferFull(t *testing.T) {
	t.Parallel()

	loop := NewLoop(NewReconciler(&fakeCounterSource{}, nil, 0, nil), 0)
	event := Event{Kind: EventCounterChanged, TeamID: "team-1", UserID: "user-1"}
	for i := 0; i < eventBuffer; i++ {
		if !loop.Notify(event) {
			t.Fatalf("notify %d rejected before buffer filled", i)
		}
	}
	if loop.Notify(event) {
		t.Fatal("expected notify to drop once the buffer is full")
	}
}

func TestBuildValidatesDependencies(t *testing.T) {
	t.Parallel()

	base := RuntimeConfig{
		Counters: &fakeCounterSource{},
		Users:    fakeDirectory{},
		Invites:  fakeInvites{},
	}

	missingCounters := base
	missingCounters.Counters = nil
	if _, err := Build(missingCounters); err == nil {
		t.Fatal("expected counter source requirement")
	}
	missingUsers := base
	missingUsers.Users = nil
	if _, err := Build(missingUsers); err == nil {
		t.Fatal("expected user directory requirement")
	}
	missingInvites := base
	missingInvites.Invites = nil
	if _, err := Build(missingInvites); err == nil {
		t.Fatal("expected invite sender requirement")
	}
}

func TestBuildWiresComponents(t *testing.T) {
	t.Parallel()

	cfg := RuntimeConfig{
		DBPath:   filepath.Join(t.TempDir(), "launchprep.db"),
		Counters: &fakeCounterSource{},
		Users:    fakeDirectory{},
		Invites:  fakeInvites{},
	}
	runtime, err := Build(cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	t.Cleanup(func() {
		if err := runtime.Close(); err != nil {
			t.Fatalf("close runtime: %v", err)
		}
	})

	if runtime.Engine == nil || runtime.Workflow == nil || runtime.Tracker == nil ||
		runtime.Flows == nil || runtime.Reconciler == nil || runtime.Loop == nil {
		t.Fatalf("runtime missing components: %+v", runtime)
	}

	// The sqlite store backs every domain boundary.
	if _, err := runtime.Tracker.Start(context.Background(), "team-1", ingest.SyncTypeInitial); err != nil {
		t.Fatalf("tracker start: %v", err)
	}
}
