package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/progress"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/stage"
)

// StageProgress loads one (user, stage) progression record.
func (s *Store) StageProgress(ctx context.Context, userID string, st stage.Stage) (progress.StageProgress, error) {
	if err := ctx.Err(); err != nil {
		return progress.StageProgress{}, err
	}
	if s == nil || s.sqlDB == nil {
		return progress.StageProgress{}, fmt.Errorf("storage is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return progress.StageProgress{}, progress.ErrEmptyUserID
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT user_id, team_id, stage, level, achievements, points, created_at, updated_at
		   FROM stage_progress
		  WHERE user_id = ? AND stage = ?`,
		userID,
		st.Label(),
	)

	var record progress.StageProgress
	var stageLabel string
	var achievements string
	var createdAt int64
	var updatedAt int64
	err := row.Scan(
		&record.UserID,
		&record.TeamID,
		&stageLabel,
		&record.Level,
		&achievements,
		&record.Points,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return progress.StageProgress{}, progress.ErrNotFound
		}
		return progress.StageProgress{}, fmt.Errorf("get stage progress: %w", err)
	}

	record.Stage = stage.FromLabel(stageLabel)
	record.Achievements, err = decodeAchievements(achievements)
	if err != nil {
		return progress.StageProgress{}, fmt.Errorf("get stage progress: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}

// PutStageProgress inserts or replaces one progression record.
func (s *Store) PutStageProgress(ctx context.Context, record progress.StageProgress) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	userID := strings.TrimSpace(record.UserID)
	if userID == "" {
		return progress.ErrEmptyUserID
	}
	if !record.Stage.Valid() {
		return progress.ErrStageUnknown
	}

	achievements, err := encodeAchievements(record.Achievements)
	if err != nil {
		return fmt.Errorf("put stage progress: %w", err)
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO stage_progress (
		   user_id, team_id, stage, level, achievements, points, created_at, updated_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, stage) DO UPDATE SET
		   team_id = excluded.team_id,
		   level = excluded.level,
		   achievements = excluded.achievements,
		   points = excluded.points,
		   updated_at = excluded.updated_at`,
		userID,
		strings.TrimSpace(record.TeamID),
		record.Stage.Label(),
		record.Level,
		achievements,
		record.Points,
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put stage progress: %w", err)
	}
	return nil
}

// ResetStageProgress removes every stage record for the user. The next read
// synthesizes level 0 with no achievements and no points.
func (s *Store) ResetStageProgress(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return progress.ErrEmptyUserID
	}

	if _, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM stage_progress WHERE user_id = ?`,
		userID,
	); err != nil {
		return fmt.Errorf("reset stage progress: %w", err)
	}
	return nil
}

// AwaitingSetup reports whether the user delegated setup and is waiting on
// the invited admin. Missing rows read as false.
func (s *Store) AwaitingSetup(ctx context.Context, userID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if s == nil || s.sqlDB == nil {
		return false, fmt.Errorf("storage is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return false, progress.ErrEmptyUserID
	}

	var awaiting int
	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT awaiting FROM awaiting_setup WHERE user_id = ?`,
		userID,
	)
	if err := row.Scan(&awaiting); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("get awaiting setup: %w", err)
	}
	return awaiting != 0, nil
}

// SetAwaitingSetup records the user's awaiting-setup routing flag.
func (s *Store) SetAwaitingSetup(ctx context.Context, userID string, awaiting bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return progress.ErrEmptyUserID
	}

	value := 0
	if awaiting {
		value = 1
	}
	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO awaiting_setup (user_id, awaiting, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET
		   awaiting = excluded.awaiting,
		   updated_at = excluded.updated_at`,
		userID,
		value,
		toMillis(nowUTC()),
	)
	if err != nil {
		return fmt.Errorf("set awaiting setup: %w", err)
	}
	return nil
}

// AppendPointsEntry appends one activity-log row. Re-appending the same
// (user, achievement key) is a no-op so retried grants never double-count.
func (s *Store) AppendPointsEntry(ctx context.Context, entry progress.PointsEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	userID := strings.TrimSpace(entry.UserID)
	if userID == "" {
		return progress.ErrEmptyUserID
	}
	key := strings.TrimSpace(entry.AchievementKey)
	if key == "" {
		return fmt.Errorf("achievement key is required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT OR IGNORE INTO points_ledger (user_id, achievement_key, stage, points, recorded_at)
		 VALUES (?, ?, ?, ?, ?)`,
		userID,
		key,
		entry.Stage.Label(),
		entry.Points,
		toMillis(entry.RecordedAt),
	)
	if err != nil {
		return fmt.Errorf("append points entry: %w", err)
	}
	return nil
}

// PointsEntries lists the user's activity log, oldest first.
func (s *Store) PointsEntries(ctx context.Context, userID string) ([]progress.PointsEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, progress.ErrEmptyUserID
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT user_id, achievement_key, stage, points, recorded_at
		   FROM points_ledger
		  WHERE user_id = ?
		  ORDER BY recorded_at ASC, achievement_key ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list points entries: %w", err)
	}
	defer rows.Close()

	var entries []progress.PointsEntry
	for rows.Next() {
		var entry progress.PointsEntry
		var stageLabel string
		var recordedAt int64
		if err := rows.Scan(
			&entry.UserID,
			&entry.AchievementKey,
			&stageLabel,
			&entry.Points,
			&recordedAt,
		); err != nil {
			return nil, fmt.Errorf("list points entries: %w", err)
		}
		entry.Stage = stage.FromLabel(stageLabel)
		entry.RecordedAt = fromMillis(recordedAt)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list points entries: %w", err)
	}
	return entries, nil
}
