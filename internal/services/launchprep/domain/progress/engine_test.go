package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/louisbranch/liftoff.space/internal/platform/errors"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/stage"
)

type fakeStore struct {
	records  map[string]StageProgress
	awaiting map[string]bool
	entries  map[string]PointsEntry
	failPuts int
	putCount int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		records:  map[string]StageProgress{},
		awaiting: map[string]bool{},
		entries:  map[string]PointsEntry{},
	}
}

func progressKey(userID string, s stage.Stage) string {
	return userID + "/" + s.Label()
}

func (f *fakeStore) StageProgress(_ context.Context, userID string, s stage.Stage) (StageProgress, error) {
	record, ok := f.records[progressKey(userID, s)]
	if !ok {
		return StageProgress{}, ErrNotFound
	}
	return record, nil
}

func (f *fakeStore) PutStageProgress(_ context.Context, p StageProgress) error {
	f.putCount++
	if f.failPuts > 0 && f.putCount > f.failPuts {
		return errors.New("disk full")
	}
	f.records[progressKey(p.UserID, p.Stage)] = p
	return nil
}

func (f *fakeStore) ResetStageProgress(_ context.Context, userID string) error {
	for _, s := range stage.All() {
		delete(f.records, progressKey(userID, s))
	}
	return nil
}

func (f *fakeStore) AwaitingSetup(_ context.Context, userID string) (bool, error) {
	return f.awaiting[userID], nil
}

func (f *fakeStore) SetAwaitingSetup(_ context.Context, userID string, awaiting bool) error {
	f.awaiting[userID] = awaiting
	return nil
}

func (f *fakeStore) AppendPointsEntry(_ context.Context, entry PointsEntry) error {
	key := entry.UserID + "/" + entry.AchievementKey
	if _, exists := f.entries[key]; exists {
		return nil
	}
	f.entries[key] = entry
	return nil
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestReconcileWalksEveryIntermediateLevel(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	engine := NewEngine(store, store, fixedClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)))

	// Counters already qualify for level 3; every intermediate achievement
	// must still be recorded.
	updated, err := engine.Reconcile(context.Background(), "user-1", "team-1", 3)
	if err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if updated.Level != 3 {
		t.Fatalf("level = %d, want 3", updated.Level)
	}
	wantKeys := []string{"fuel_level_1", "fuel_level_2", "fuel_level_3"}
	if len(updated.Achievements) != len(wantKeys) {
		t.Fatalf("achievements = %v, want %v", updated.Achievements, wantKeys)
	}
	for i, key := range wantKeys {
		if updated.Achievements[i] != key {
			t.Fatalf("achievement[%d] = %q, want %q", i, updated.Achievements[i], key)
		}
	}
	if updated.Points != stage.PointsThrough(stage.Fuel, 3) {
		t.Fatalf("points = %d, want %d", updated.Points, stage.PointsThrough(stage.Fuel, 3))
	}
	if len(store.entries) != 3 {
		t.Fatalf("ledger entries = %d, want 3", len(store.entries))
	}
}

func TestReconcileIsIdempotent(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	engine := NewEngine(store, store, fixedClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)))

	first, err := engine.Reconcile(context.Background(), "user-1", "team-1", 2)
	if err != nil {
		t.Fatalf("first reconcile: %v", err)
	}
	second, err := engine.Reconcile(context.Background(), "user-1", "team-1", 2)
	if err != nil {
		t.Fatalf("second reconcile: %v", err)
	}
	if second.Level != first.Level || second.Points != first.Points {
		t.Fatalf("repeat reconcile changed state: %+v vs %+v", first, second)
	}
	if len(second.Achievements) != len(first.Achievements) {
		t.Fatalf("repeat reconcile duplicated achievements: %v", second.Achievements)
	}
	if len(store.entries) != 2 {
		t.Fatalf("ledger entries = %d, want 2", len(store.entries))
	}
}

func TestReconcileNeverLowersLevel(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	engine := NewEngine(store, store, fixedClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)))

	if _, err := engine.Reconcile(context.Background(), "user-1", "team-1", 4); err != nil {
		t.Fatalf("reconcile up: %v", err)
	}

	// A counter rollback computes a lower level; the stored level is a
	// ratchet and must not move.
	updated, err := engine.Reconcile(context.Background(), "user-1", "team-1", 1)
	if err != nil {
		t.Fatalf("reconcile down: %v", err)
	}
	if updated.Level != 4 {
		t.Fatalf("level after rollback = %d, want 4", updated.Level)
	}
}

func TestReconcileRejectsOutOfRangeLevel(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	engine := NewEngine(store, store, nil)

	if _, err := engine.Reconcile(context.Background(), "user-1", "team-1", stage.MaxLevel+1); !errors.Is(err, ErrLevelOutOfRange) {
		t.Fatalf("expected level out of range error, got %v", err)
	}
	if _, err := engine.Reconcile(context.Background(), "user-1", "team-1", -1); !errors.Is(err, ErrLevelOutOfRange) {
		t.Fatalf("expected level out of range error, got %v", err)
	}
}

func TestReconcilePausedWhileAwaitingSetup(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	engine := NewEngine(store, store, fixedClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)))
	if err := store.SetAwaitingSetup(context.Background(), "user-1", true); err != nil {
		t.Fatalf("set awaiting: %v", err)
	}

	updated, err := engine.Reconcile(context.Background(), "user-1", "team-1", 3)
	if err != nil {
		t.Fatalf("reconcile while delegated: %v", err)
	}
	if updated.Level != 0 || len(updated.Achievements) != 0 {
		t.Fatalf("delegated user progressed: %+v", updated)
	}
	if len(store.records) != 0 {
		t.Fatal("expected no persisted progress while awaiting setup")
	}
}

func TestReconcileRetryAfterPartialFailure(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	engine := NewEngine(store, store, fixedClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)))

	// First write succeeds, second fails, leaving level 1 committed.
	store.failPuts = 1
	if _, err := engine.Reconcile(context.Background(), "user-1", "team-1", 3); err == nil {
		t.Fatal("expected write failure")
	}

	// A wholesale retry resumes from the committed level without re-granting.
	store.failPuts = 0
	store.putCount = 0
	updated, err := engine.Reconcile(context.Background(), "user-1", "team-1", 3)
	if err != nil {
		t.Fatalf("retry reconcile: %v", err)
	}
	if updated.Level != 3 {
		t.Fatalf("level after retry = %d, want 3", updated.Level)
	}
	if len(updated.Achievements) != 3 {
		t.Fatalf("achievements after retry = %v", updated.Achievements)
	}
	if len(store.entries) != 3 {
		t.Fatalf("ledger entries after retry = %d, want 3", len(store.entries))
	}
	if updated.Points != stage.PointsThrough(stage.Fuel, 3) {
		t.Fatalf("points after retry = %d", updated.Points)
	}
}

func TestCompleteAchievementIdempotent(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	engine := NewEngine(store, store, fixedClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)))

	first, newly, err := engine.CompleteAchievement(context.Background(), "user-1", "team-1", stage.Boosters, "boosters_level_1")
	if err != nil {
		t.Fatalf("complete achievement: %v", err)
	}
	if !newly {
		t.Fatal("expected first grant to be newly applied")
	}

	second, newly, err := engine.CompleteAchievement(context.Background(), "user-1", "team-1", stage.Boosters, "boosters_level_1")
	if err != nil {
		t.Fatalf("repeat complete achievement: %v", err)
	}
	if newly {
		t.Fatal("expected repeat grant to be a no-op")
	}
	if len(second.Achievements) != len(first.Achievements) {
		t.Fatalf("repeat grant duplicated achievements: %v", second.Achievements)
	}
}

func TestCompleteAchievementRejectsMismatchedKey(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	engine := NewEngine(store, store, nil)

	if _, _, err := engine.CompleteAchievement(context.Background(), "user-1", "team-1", stage.Boosters, "guidance_level_1"); !errors.Is(err, ErrInvalidAchievementKey) {
		t.Fatalf("expected invalid key error, got %v", err)
	}
	if _, _, err := engine.CompleteAchievement(context.Background(), "user-1", "team-1", stage.Boosters, "boosters_level_9"); !errors.Is(err, ErrInvalidAchievementKey) {
		t.Fatalf("expected invalid key error, got %v", err)
	}
}

func TestCompleteAchievementRejectsFuel(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	engine := NewEngine(store, store, nil)

	if _, _, err := engine.CompleteAchievement(context.Background(), "user-1", "team-1", stage.Fuel, "fuel_level_1"); !errors.Is(err, ErrStageUnknown) {
		t.Fatalf("expected stage rejection for fuel, got %v", err)
	}
	if _, err := store.StageProgress(context.Background(), "user-1", stage.Fuel); !errors.Is(err, ErrNotFound) {
		t.Fatalf("rejected grant must not persist a record, got %v", err)
	}
}

func TestAdvanceLevelNoopAtOrBelowCurrent(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	engine := NewEngine(store, store, fixedClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)))

	if _, err := engine.AdvanceLevel(context.Background(), "user-1", "team-1", stage.Boosters, 2); err != nil {
		t.Fatalf("advance: %v", err)
	}
	updated, err := engine.AdvanceLevel(context.Background(), "user-1", "team-1", stage.Boosters, 1)
	if err != nil {
		t.Fatalf("advance to lower target: %v", err)
	}
	if updated.Level != 2 {
		t.Fatalf("level = %d, want 2", updated.Level)
	}
}

func TestAdvanceLevelRejectsFuel(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	engine := NewEngine(store, store, nil)

	if _, err := engine.AdvanceLevel(context.Background(), "user-1", "team-1", stage.Fuel, 1); !errors.Is(err, ErrStageUnknown) {
		t.Fatalf("expected stage rejection for fuel, got %v", err)
	}
}

func TestPointsAlwaysDerivableFromLevel(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	engine := NewEngine(store, store, fixedClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)))

	for target := 1; target <= stage.MaxLevel; target++ {
		updated, err := engine.AdvanceLevel(context.Background(), "user-1", "team-1", stage.Guidance, target)
		if err != nil {
			t.Fatalf("advance to %d: %v", target, err)
		}
		if updated.Points != stage.PointsThrough(stage.Guidance, updated.Level) {
			t.Fatalf("points at level %d = %d, want %d", updated.Level, updated.Points, stage.PointsThrough(stage.Guidance, updated.Level))
		}
	}
}

func TestInheritGuidanceFromAdmin(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	engine := NewEngine(store, store, fixedClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)))

	// Admin at level 3; the member catches up to level 2 exactly.
	updated, err := engine.InheritGuidanceFromAdmin(context.Background(), "member-1", "team-1", 3)
	if err != nil {
		t.Fatalf("inherit: %v", err)
	}
	if updated.Level != 2 {
		t.Fatalf("member level = %d, want 2", updated.Level)
	}
	wantKeys := []string{"guidance_level_1", "guidance_level_2"}
	for i, key := range wantKeys {
		if updated.Achievements[i] != key {
			t.Fatalf("achievement[%d] = %q, want %q", i, updated.Achievements[i], key)
		}
	}
}

func TestInheritGuidanceDoesNotRunTwiceOrLowerLevels(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	engine := NewEngine(store, store, fixedClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)))

	// Member already past the catch-up point.
	if _, err := engine.AdvanceLevel(context.Background(), "member-1", "team-1", stage.Guidance, 4); err != nil {
		t.Fatalf("advance member: %v", err)
	}
	updated, err := engine.InheritGuidanceFromAdmin(context.Background(), "member-1", "team-1", 5)
	if err != nil {
		t.Fatalf("inherit: %v", err)
	}
	if updated.Level != 4 {
		t.Fatalf("member level = %d, want 4 untouched", updated.Level)
	}

	// Admin below level 2 grants nothing.
	fresh, err := engine.InheritGuidanceFromAdmin(context.Background(), "member-2", "team-1", 1)
	if err != nil {
		t.Fatalf("inherit below threshold: %v", err)
	}
	if fresh.Level != 0 {
		t.Fatalf("member level = %d, want 0", fresh.Level)
	}
}

func TestIsReadyForFinalStage(t *testing.T) {
	t.Parallel()

	ready := IsReadyForFinalStage(
		StageProgress{Stage: stage.Fuel, Level: 1},
		StageProgress{Stage: stage.Boosters, Level: 4},
		StageProgress{Stage: stage.Guidance, Level: 2},
	)
	if !ready {
		t.Fatal("expected ready at minimum thresholds")
	}

	notReady := IsReadyForFinalStage(
		StageProgress{Stage: stage.Fuel, Level: 5},
		StageProgress{Stage: stage.Boosters, Level: 3},
		StageProgress{Stage: stage.Guidance, Level: 5},
	)
	if notReady {
		t.Fatal("expected not ready while boosters below 4")
	}
}

func TestParseAchievementKey(t *testing.T) {
	t.Parallel()

	for _, s := range stage.All() {
		for level := 1; level <= stage.MaxLevel; level++ {
			key := AchievementKey(s, level)
			gotStage, gotLevel, ok := ParseAchievementKey(key)
			if !ok || gotStage != s || gotLevel != level {
				t.Fatalf("parse %q = (%v, %d, %t)", key, gotStage, gotLevel, ok)
			}
		}
	}
	for _, bad := range []string{"", "fuel", "fuel_level_", "fuel_level_0", "fuel_level_6", "warp_level_1"} {
		if _, _, ok := ParseAchievementKey(bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestProgressFirstAccessSynthesizesLevelZero(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	engine := NewEngine(store, store, fixedClock(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)))

	record, err := engine.Progress(context.Background(), "user-9", "team-1", stage.Fuel)
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if record.Level != 0 || record.Points != 0 || len(record.Achievements) != 0 {
		t.Fatalf("first access record = %+v, want zeroed", record)
	}
	if len(store.records) != 0 {
		t.Fatal("first access must not persist a row")
	}
}

func TestProgressValidation(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	engine := NewEngine(store, store, nil)

	if _, err := engine.Progress(context.Background(), "  ", "team-1", stage.Fuel); !errors.Is(err, ErrEmptyUserID) {
		t.Fatalf("expected empty user id error, got %v", err)
	}
	if _, err := engine.Progress(context.Background(), "user-1", "team-1", stage.Unspecified); !errors.Is(err, ErrStageUnknown) {
		t.Fatalf("expected unknown stage error, got %v", err)
	}
	if got := apperrors.GetCode(ErrStageUnknown); got != apperrors.CodeStageUnknown {
		t.Fatalf("stage unknown code = %q", got)
	}
}

func TestAchievementKeyFormat(t *testing.T) {
	t.Parallel()

	if got := AchievementKey(stage.Guidance, 2); got != "guidance_level_2" {
		t.Fatalf("key = %q", got)
	}
	if got := AchievementKey(stage.Fuel, 5); got != "fuel_level_5" {
		t.Fatalf("key = %q", got)
	}
}
