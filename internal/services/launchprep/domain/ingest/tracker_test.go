package ingest

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/louisbranch/liftoff.space/internal/platform/errors"
)

type fakeStore struct {
	sessions map[string]Session
	order    []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{sessions: map[string]Session{}}
}

func (f *fakeStore) SyncSession(_ context.Context, sessionID string) (Session, error) {
	s, ok := f.sessions[sessionID]
	if !ok {
		return Session{}, ErrNotFound
	}
	return s, nil
}

func (f *fakeStore) ActiveSyncSession(_ context.Context, teamID string) (Session, error) {
	// Most recently started first.
	for i := len(f.order) - 1; i >= 0; i-- {
		s := f.sessions[f.order[i]]
		if s.TeamID == teamID && s.Status == StatusInProgress {
			return s, nil
		}
	}
	return Session{}, ErrNotFound
}

func (f *fakeStore) PutSyncSession(_ context.Context, session Session) error {
	if _, ok := f.sessions[session.ID]; !ok {
		f.order = append(f.order, session.ID)
	}
	f.sessions[session.ID] = session
	return nil
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestProgressFormula(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		counters Counters
		want     int
	}{
		{"nothing discovered", Counters{}, 0},
		{"all phases done", Counters{TotalFilesDiscovered: 100, FilesStored: 100, FilesClassified: 100}, 100},
		{"half stored nothing classified", Counters{TotalFilesDiscovered: 100, FilesStored: 50, FilesClassified: 0}, 30},
		{"discovery only", Counters{TotalFilesDiscovered: 1}, 10},
		{"stored exceeds discovered", Counters{TotalFilesDiscovered: 10, FilesStored: 25, FilesClassified: 0}, 50},
		{"classified exceeds stored", Counters{TotalFilesDiscovered: 10, FilesStored: 10, FilesClassified: 99}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Session{Counters: tt.counters}.Progress()
			if got != tt.want {
				t.Fatalf("Progress() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStartRejectsSecondActiveSession(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	tracker := NewTracker(store, fixedClock(now))

	first, err := tracker.Start(context.Background(), "team-1", SyncTypeInitial)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if first.Status != StatusInProgress {
		t.Fatalf("status = %v, want in progress", first.Status)
	}
	if first.Counters != (Counters{}) {
		t.Fatalf("counters = %+v, want zero", first.Counters)
	}

	if _, err := tracker.Start(context.Background(), "team-1", SyncTypeManual); !apperrors.IsCode(err, apperrors.CodeSyncActiveExists) {
		t.Fatalf("expected active session rejection, got %v", err)
	}

	// A different team is unaffected.
	if _, err := tracker.Start(context.Background(), "team-2", SyncTypeInitial); err != nil {
		t.Fatalf("start other team: %v", err)
	}
}

func TestStartValidation(t *testing.T) {
	t.Parallel()

	tracker := NewTracker(newFakeStore(), nil)

	if _, err := tracker.Start(context.Background(), "  ", SyncTypeInitial); !apperrors.IsCode(err, apperrors.CodeSyncEmptyTeamID) {
		t.Fatalf("expected empty team rejection, got %v", err)
	}
	if _, err := tracker.Start(context.Background(), "team-1", SyncTypeUnspecified); !apperrors.IsCode(err, apperrors.CodeSyncInvalidType) {
		t.Fatalf("expected invalid type rejection, got %v", err)
	}
}

func TestUpdateCountersMergesHighWaterMark(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	tracker := NewTracker(store, fixedClock(now))

	session, err := tracker.Start(context.Background(), "team-1", SyncTypeInitial)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	updated, err := tracker.UpdateCounters(context.Background(), session.ID, Counters{TotalFilesDiscovered: 80, FilesStored: 40})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Counters.TotalFilesDiscovered != 80 || updated.Counters.FilesStored != 40 {
		t.Fatalf("counters = %+v", updated.Counters)
	}

	// A stale snapshot delivered late never lowers a counter.
	updated, err = tracker.UpdateCounters(context.Background(), session.ID, Counters{TotalFilesDiscovered: 60, FilesStored: 45, FilesClassified: 10})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	want := Counters{TotalFilesDiscovered: 80, FilesStored: 45, FilesClassified: 10}
	if updated.Counters != want {
		t.Fatalf("counters = %+v, want %+v", updated.Counters, want)
	}
}

func TestTerminalSessionsAreImmutable(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	tracker := NewTracker(store, fixedClock(now))

	session, err := tracker.Start(context.Background(), "team-1", SyncTypeIncremental)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	final := Counters{TotalFilesDiscovered: 10, FilesStored: 10, FilesClassified: 10}
	completed, err := tracker.Complete(context.Background(), session.ID, &final)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if completed.Status != StatusCompleted {
		t.Fatalf("status = %v, want completed", completed.Status)
	}
	if completed.Counters != final {
		t.Fatalf("counters = %+v, want final snapshot", completed.Counters)
	}
	if completed.EndedAt != now {
		t.Fatalf("ended at = %v", completed.EndedAt)
	}

	if _, err := tracker.UpdateCounters(context.Background(), session.ID, Counters{FilesClassified: 99}); !apperrors.IsCode(err, apperrors.CodeSyncSessionTerminal) {
		t.Fatalf("expected terminal rejection for update, got %v", err)
	}
	if _, err := tracker.Complete(context.Background(), session.ID, nil); !apperrors.IsCode(err, apperrors.CodeSyncSessionTerminal) {
		t.Fatalf("expected terminal rejection for complete, got %v", err)
	}
	if _, err := tracker.Fail(context.Background(), session.ID, "late failure"); !apperrors.IsCode(err, apperrors.CodeSyncSessionTerminal) {
		t.Fatalf("expected terminal rejection for fail, got %v", err)
	}

	// The team can start a fresh run once the previous one ended.
	if _, err := tracker.Start(context.Background(), "team-1", SyncTypeIncremental); err != nil {
		t.Fatalf("start after complete: %v", err)
	}
}

func TestFailRecordsReasonAndClearsCurrent(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	tracker := NewTracker(store, fixedClock(now))

	session, err := tracker.Start(context.Background(), "team-1", SyncTypeManual)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := tracker.UpdateCounters(context.Background(), session.ID, Counters{TotalFilesDiscovered: 5, FilesStored: 3}); err != nil {
		t.Fatalf("update: %v", err)
	}

	failed, err := tracker.Fail(context.Background(), session.ID, " drive token revoked ")
	if err != nil {
		t.Fatalf("fail: %v", err)
	}
	if failed.Status != StatusFailed {
		t.Fatalf("status = %v, want failed", failed.Status)
	}
	if failed.Reason != "drive token revoked" {
		t.Fatalf("reason = %q", failed.Reason)
	}
	if failed.Counters.FilesStored != 3 {
		t.Fatalf("counters lost on failure: %+v", failed.Counters)
	}

	if _, err := tracker.Current(context.Background(), "team-1"); !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected no current session, got %v", err)
	}
}

func TestCurrentReturnsMostRecentlyStarted(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	tracker := NewTracker(store, fixedClock(now))

	first, err := tracker.Start(context.Background(), "team-1", SyncTypeInitial)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := tracker.Fail(context.Background(), first.ID, "restart"); err != nil {
		t.Fatalf("fail: %v", err)
	}
	second, err := tracker.Start(context.Background(), "team-1", SyncTypeIncremental)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	current, err := tracker.Current(context.Background(), "team-1")
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current.ID != second.ID {
		t.Fatalf("current = %s, want %s", current.ID, second.ID)
	}
}

func TestLabelRoundTrips(t *testing.T) {
	t.Parallel()

	for _, st := range []SyncType{SyncTypeInitial, SyncTypeIncremental, SyncTypeManual} {
		if got := SyncTypeFromLabel(st.Label()); got != st {
			t.Fatalf("sync type round trip for %v = %v", st, got)
		}
	}
	for _, s := range []Status{StatusInProgress, StatusCompleted, StatusFailed} {
		if got := StatusFromLabel(s.Label()); got != s {
			t.Fatalf("status round trip for %v = %v", s, got)
		}
	}
	if SyncTypeFromLabel("bulk") != SyncTypeUnspecified {
		t.Fatal("expected unspecified for unknown sync type label")
	}
}
