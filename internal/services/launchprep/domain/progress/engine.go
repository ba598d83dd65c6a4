package progress

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/louisbranch/liftoff.space/internal/platform/errors"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/stage"
)

var (
	// ErrLevelOutOfRange indicates a target level outside 0..MaxLevel.
	ErrLevelOutOfRange = apperrors.New(apperrors.CodeProgressLevelOutOfRange, "level is out of range")
	// ErrInvalidAchievementKey indicates a malformed or mismatched key.
	ErrInvalidAchievementKey = apperrors.New(apperrors.CodeProgressAchievementKey, "invalid achievement key")
	// ErrStoreNotConfigured indicates the engine is missing persistence wiring.
	ErrStoreNotConfigured = apperrors.New(apperrors.CodeStorageUnavailable, "progress store is not configured")
)

// Engine owns stage level state and the rules for raising it. Levels are a
// ratchet: reconciliation and action completion only ever move them up, one
// level at a time, so every intermediate achievement is recorded.
type Engine struct {
	store  Store
	ledger LedgerStore
	clock  func() time.Time
}

// NewEngine constructs the progression engine. The ledger is optional; when
// nil, grants skip the activity log.
func NewEngine(store Store, ledger LedgerStore, clock func() time.Time) *Engine {
	if clock == nil {
		clock = time.Now
	}
	return &Engine{
		store:  store,
		ledger: ledger,
		clock:  clock,
	}
}

// Progress loads the user's record for one stage, synthesizing a level-0
// record on first access. The synthesized record is not persisted until the
// first grant mutates it.
func (e *Engine) Progress(ctx context.Context, userID, teamID string, s stage.Stage) (StageProgress, error) {
	if e == nil || e.store == nil {
		return StageProgress{}, ErrStoreNotConfigured
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return StageProgress{}, ErrEmptyUserID
	}
	if !s.Valid() {
		return StageProgress{}, ErrStageUnknown
	}

	current, err := e.store.StageProgress(ctx, userID, s)
	if err == nil {
		return current, nil
	}
	if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		return StageProgress{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "load stage progress", err)
	}

	now := e.clock().UTC()
	return StageProgress{
		UserID:    userID,
		TeamID:    strings.TrimSpace(teamID),
		Stage:     s,
		Level:     0,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Reconcile compares the computed fuel level against the stored level and
// raises the stored level to match, granting every intermediate achievement
// along the way. It never lowers the stored level: counter rollbacks are
// ignored. While the user has an active setup delegation the stored record
// is returned untouched, so a cancellation always wins over an in-flight
// reconciliation.
func (e *Engine) Reconcile(ctx context.Context, userID, teamID string, computedLevel int) (StageProgress, error) {
	if computedLevel < 0 || computedLevel > stage.MaxLevel {
		return StageProgress{}, ErrLevelOutOfRange
	}

	current, err := e.Progress(ctx, userID, teamID, stage.Fuel)
	if err != nil {
		return StageProgress{}, err
	}
	if computedLevel <= current.Level {
		return current, nil
	}

	held, err := e.delegationHeld(ctx, current.UserID)
	if err != nil {
		return StageProgress{}, err
	}
	if held {
		return current, nil
	}

	return e.advanceTo(ctx, current, computedLevel)
}

// CompleteAchievement idempotently grants one achievement key without
// changing the level. It returns the updated record and whether the grant
// was newly applied. Fuel is rejected: its achievements are granted only by
// Reconcile, never by discrete user actions.
func (e *Engine) CompleteAchievement(ctx context.Context, userID, teamID string, s stage.Stage, key string) (StageProgress, bool, error) {
	if s != stage.Boosters && s != stage.Guidance {
		return StageProgress{}, false, ErrStageUnknown
	}
	keyStage, _, ok := ParseAchievementKey(key)
	if !ok || keyStage != s {
		return StageProgress{}, false, ErrInvalidAchievementKey
	}

	current, err := e.Progress(ctx, userID, teamID, s)
	if err != nil {
		return StageProgress{}, false, err
	}
	if current.HasAchievement(key) {
		return current, false, nil
	}

	updated := current
	updated.Achievements = append(append([]string(nil), current.Achievements...), key)
	updated.UpdatedAt = e.clock().UTC()
	if err := e.persist(ctx, updated, key); err != nil {
		return StageProgress{}, false, err
	}
	return updated, true, nil
}

// AdvanceLevel raises a boosters or guidance level to targetLevel, walking
// strictly level by level so each intermediate achievement is granted.
// Targets at or below the current level are a no-op, never an error: levels
// do not decrease.
func (e *Engine) AdvanceLevel(ctx context.Context, userID, teamID string, s stage.Stage, targetLevel int) (StageProgress, error) {
	if s != stage.Boosters && s != stage.Guidance {
		return StageProgress{}, ErrStageUnknown
	}
	if targetLevel < 0 || targetLevel > stage.MaxLevel {
		return StageProgress{}, ErrLevelOutOfRange
	}

	current, err := e.Progress(ctx, userID, teamID, s)
	if err != nil {
		return StageProgress{}, err
	}
	if targetLevel <= current.Level {
		return current, nil
	}

	held, err := e.delegationHeld(ctx, current.UserID)
	if err != nil {
		return StageProgress{}, err
	}
	if held {
		return current, nil
	}

	return e.advanceTo(ctx, current, targetLevel)
}

// InheritGuidanceFromAdmin passively raises a member's guidance level to 2
// once the team admin has reached at least level 2. The catch-up is one-way
// and one-time: it never lowers a level and never runs once the member is at
// level 2 or above, regardless of how far the admin has progressed.
func (e *Engine) InheritGuidanceFromAdmin(ctx context.Context, memberID, teamID string, adminLevel int) (StageProgress, error) {
	const inheritedLevel = 2

	current, err := e.Progress(ctx, memberID, teamID, stage.Guidance)
	if err != nil {
		return StageProgress{}, err
	}
	if adminLevel < inheritedLevel || current.Level >= inheritedLevel {
		return current, nil
	}
	return e.advanceTo(ctx, current, inheritedLevel)
}

// IsUnlocked reports whether the stage is navigable given the three current
// levels. Pure function of the progress records.
func IsUnlocked(s stage.Stage, fuelLevel, boostersLevel int) bool {
	return stage.Unlocked(s, fuelLevel, boostersLevel)
}

// IsReadyForFinalStage reports whether every stage has reached the minimum
// level that exposes the terminal "ready to launch" state: fuel at 1 or
// more, boosters at 4 or more, guidance at 2 or more. Pure function of the
// three records.
func IsReadyForFinalStage(fuelProgress, boostersProgress, guidanceProgress StageProgress) bool {
	return fuelProgress.Level >= 1 && boostersProgress.Level >= 4 && guidanceProgress.Level >= 2
}

// advanceTo raises the record level strictly one level at a time. Each step
// grants the missing achievement, recomputes points from the threshold
// table, and persists the whole record as one unit; a failed write leaves
// the previous step committed so a wholesale retry resumes without
// re-granting.
func (e *Engine) advanceTo(ctx context.Context, current StageProgress, targetLevel int) (StageProgress, error) {
	updated := current
	for level := current.Level + 1; level <= targetLevel; level++ {
		key := AchievementKey(updated.Stage, level)
		newlyGranted := !updated.HasAchievement(key)
		if newlyGranted {
			updated.Achievements = append(append([]string(nil), updated.Achievements...), key)
		}
		updated.Level = level
		updated.Points = stage.PointsThrough(updated.Stage, level)
		updated.UpdatedAt = e.clock().UTC()

		grantedKey := ""
		if newlyGranted {
			grantedKey = key
		}
		if err := e.persist(ctx, updated, grantedKey); err != nil {
			return StageProgress{}, err
		}
	}
	return updated, nil
}

// persist writes the progress row and, for new grants, appends the points
// activity entry. Ledger appends are idempotent per key, so retrying the
// whole unit after a partial failure cannot double-count.
func (e *Engine) persist(ctx context.Context, p StageProgress, grantedKey string) error {
	if err := e.store.PutStageProgress(ctx, p); err != nil {
		return apperrors.Wrap(apperrors.CodeStorageUnavailable, "persist stage progress", err)
	}
	if grantedKey == "" || e.ledger == nil {
		return nil
	}
	points := 0
	if _, level, ok := ParseAchievementKey(grantedKey); ok {
		if t, found := stage.LookupThreshold(p.Stage, level); found {
			points = t.Points
		}
	}
	entry := PointsEntry{
		UserID:         p.UserID,
		Stage:          p.Stage,
		AchievementKey: grantedKey,
		Points:         points,
		RecordedAt:     e.clock().UTC(),
	}
	if err := e.ledger.AppendPointsEntry(ctx, entry); err != nil {
		return apperrors.Wrap(apperrors.CodeStorageUnavailable, "append points entry", err)
	}
	return nil
}

// AwaitingSetup reports whether the user handed setup to a delegate and is
// waiting for the handoff to finish.
func (e *Engine) AwaitingSetup(ctx context.Context, userID string) (bool, error) {
	return e.delegationHeld(ctx, userID)
}

func (e *Engine) delegationHeld(ctx context.Context, userID string) (bool, error) {
	held, err := e.store.AwaitingSetup(ctx, userID)
	if err != nil {
		return false, apperrors.Wrap(apperrors.CodeStorageUnavailable, "check awaiting setup", err)
	}
	return held, nil
}
