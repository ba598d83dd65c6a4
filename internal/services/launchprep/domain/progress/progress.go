// Package progress owns per-user stage progression state: levels,
// achievements, and derived point totals.
package progress

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	apperrors "github.com/louisbranch/liftoff.space/internal/platform/errors"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/stage"
)

var (
	// ErrEmptyUserID indicates a missing user ID.
	ErrEmptyUserID = apperrors.New(apperrors.CodeProgressEmptyUserID, "user id is required")
	// ErrStageUnknown indicates an unrecognized stage.
	ErrStageUnknown = apperrors.New(apperrors.CodeStageUnknown, "unknown stage")
	// ErrNotFound indicates a progress record does not exist yet.
	ErrNotFound = apperrors.New(apperrors.CodeNotFound, "stage progress not found")
)

// StageProgress is the per (user, stage) progression record. Level only ever
// increases, achievements are append-only, and points are fully derived from
// level via the threshold table.
type StageProgress struct {
	UserID       string
	TeamID       string
	Stage        stage.Stage
	Level        int
	Achievements []string
	Points       int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasAchievement reports whether the achievement key was already granted.
func (p StageProgress) HasAchievement(key string) bool {
	for _, granted := range p.Achievements {
		if granted == key {
			return true
		}
	}
	return false
}

// AchievementKey builds the canonical one-per-level achievement key,
// "{stage}_level_{n}".
func AchievementKey(s stage.Stage, level int) string {
	return fmt.Sprintf("%s_level_%d", s.Label(), level)
}

// ParseAchievementKey splits an achievement key back into its stage and
// level. It returns false for malformed keys.
func ParseAchievementKey(key string) (stage.Stage, int, bool) {
	parts := strings.Split(strings.TrimSpace(key), "_level_")
	if len(parts) != 2 {
		return stage.Unspecified, 0, false
	}
	s := stage.FromLabel(parts[0])
	if !s.Valid() {
		return stage.Unspecified, 0, false
	}
	level, err := strconv.Atoi(parts[1])
	if err != nil || level < 1 || level > stage.MaxLevel {
		return stage.Unspecified, 0, false
	}
	return s, level, true
}

// PointsEntry is one append-only activity-log row recording an achievement
// grant. The ledger is a non-authoritative audit trail; point totals are
// always recomputed from level and the threshold table.
type PointsEntry struct {
	UserID         string
	Stage          stage.Stage
	AchievementKey string
	Points         int
	RecordedAt     time.Time
}

// Store is the persistence boundary for progression state.
type Store interface {
	// StageProgress loads one record, returning ErrNotFound when the user has
	// no recorded progress for that stage yet.
	StageProgress(ctx context.Context, userID string, s stage.Stage) (StageProgress, error)
	PutStageProgress(ctx context.Context, p StageProgress) error
	// ResetStageProgress drops every stage record for the user so each stage
	// reads as level 0 with no achievements and no points.
	ResetStageProgress(ctx context.Context, userID string) error
	// AwaitingSetup reports whether the user delegated setup and is waiting
	// on the invited admin.
	AwaitingSetup(ctx context.Context, userID string) (bool, error)
	SetAwaitingSetup(ctx context.Context, userID string, awaiting bool) error
}

// LedgerStore appends points activity entries. Appends must be idempotent
// per (user, achievement key) so a retried grant never double-counts.
type LedgerStore interface {
	AppendPointsEntry(ctx context.Context, entry PointsEntry) error
}
