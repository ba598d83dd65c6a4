package flowstate

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/louisbranch/liftoff.space/internal/platform/errors"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/stage"
)

type fakeStore struct {
	states map[string]State
}

func newFakeStore() *fakeStore {
	return &fakeStore{states: map[string]State{}}
}

func key(userID string, s stage.Stage) string {
	return userID + "/" + s.Label()
}

func (f *fakeStore) FlowState(_ context.Context, userID string, s stage.Stage) (State, error) {
	state, ok := f.states[key(userID, s)]
	if !ok {
		return State{}, ErrNotFound
	}
	return state, nil
}

func (f *fakeStore) PutFlowState(_ context.Context, state State) error {
	f.states[key(state.UserID, state.Stage)] = state
	return nil
}

func (f *fakeStore) DeleteFlowState(_ context.Context, userID string, s stage.Stage) error {
	delete(f.states, key(userID, s))
	return nil
}

func TestBeginAdvanceResumeClear(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	m := NewManager(store, func() time.Time { return now })

	begun, err := m.Begin(context.Background(), "user-1", stage.Fuel, "choose_provider", "google_drive")
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	if begun.Step != "choose_provider" || begun.Provider != "google_drive" {
		t.Fatalf("begun = %+v", begun)
	}

	advanced, err := m.Advance(context.Background(), "user-1", stage.Fuel, "await_authorization", `{"state":"tok-1"}`)
	if err != nil {
		t.Fatalf("advance: %v", err)
	}
	if advanced.Provider != "google_drive" {
		t.Fatalf("advance dropped provider: %+v", advanced)
	}

	resumed, err := m.Resume(context.Background(), "user-1", stage.Fuel)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if resumed.Step != "await_authorization" || resumed.Payload != `{"state":"tok-1"}` {
		t.Fatalf("resumed = %+v", resumed)
	}

	if err := m.Clear(context.Background(), "user-1", stage.Fuel); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := m.Resume(context.Background(), "user-1", stage.Fuel); !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected not found after clear, got %v", err)
	}
}

func TestStaleFlowClearedOnResume(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	current := now
	m := NewManager(store, func() time.Time { return current })

	if _, err := m.Begin(context.Background(), "user-1", stage.Fuel, "choose_provider", "google_drive"); err != nil {
		t.Fatalf("begin: %v", err)
	}

	current = now.Add(staleAfter + time.Minute)
	if _, err := m.Resume(context.Background(), "user-1", stage.Fuel); !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected stale flow reported missing, got %v", err)
	}
	if len(store.states) != 0 {
		t.Fatal("expected stale row deleted")
	}
}

func TestBeginRestartsExistingFlow(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	m := NewManager(store, func() time.Time { return now })

	if _, err := m.Begin(context.Background(), "user-1", stage.Fuel, "choose_provider", "google_drive"); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if _, err := m.Advance(context.Background(), "user-1", stage.Fuel, "await_authorization", "tok"); err != nil {
		t.Fatalf("advance: %v", err)
	}

	restarted, err := m.Begin(context.Background(), "user-1", stage.Fuel, "choose_provider", "sharepoint")
	if err != nil {
		t.Fatalf("restart: %v", err)
	}
	if restarted.Provider != "sharepoint" || restarted.Payload != "" {
		t.Fatalf("restarted = %+v", restarted)
	}
}

func TestValidation(t *testing.T) {
	t.Parallel()

	m := NewManager(newFakeStore(), nil)

	if _, err := m.Begin(context.Background(), " ", stage.Fuel, "step", ""); !apperrors.IsCode(err, apperrors.CodeProgressEmptyUserID) {
		t.Fatalf("expected empty user rejection, got %v", err)
	}
	if _, err := m.Begin(context.Background(), "user-1", stage.Unspecified, "step", ""); !apperrors.IsCode(err, apperrors.CodeStageUnknown) {
		t.Fatalf("expected unknown stage rejection, got %v", err)
	}
	if _, err := m.Begin(context.Background(), "user-1", stage.Fuel, "  ", ""); !apperrors.IsCode(err, apperrors.CodeFlowStateEmptyStep) {
		t.Fatalf("expected empty step rejection, got %v", err)
	}
	if err := m.Clear(context.Background(), "", stage.Fuel); !apperrors.IsCode(err, apperrors.CodeProgressEmptyUserID) {
		t.Fatalf("expected empty user rejection for clear, got %v", err)
	}
}
