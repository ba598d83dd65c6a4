package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/flowstate"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/stage"
)

// FlowState returns the user's persisted flow position for one stage.
func (s *Store) FlowState(ctx context.Context, userID string, st stage.Stage) (flowstate.State, error) {
	if err := ctx.Err(); err != nil {
		return flowstate.State{}, err
	}
	if s == nil || s.sqlDB == nil {
		return flowstate.State{}, fmt.Errorf("storage is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return flowstate.State{}, flowstate.ErrEmptyUserID
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT user_id, stage, step, provider, payload, updated_at
		   FROM flow_states
		  WHERE user_id = ? AND stage = ?`,
		userID,
		st.Label(),
	)

	var state flowstate.State
	var stageLabel string
	var updatedAt int64
	err := row.Scan(
		&state.UserID,
		&stageLabel,
		&state.Step,
		&state.Provider,
		&state.Payload,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return flowstate.State{}, flowstate.ErrNotFound
		}
		return flowstate.State{}, fmt.Errorf("get flow state: %w", err)
	}
	state.Stage = stage.FromLabel(stageLabel)
	state.UpdatedAt = fromMillis(updatedAt)
	return state, nil
}

// PutFlowState inserts or replaces the user's flow position for one stage.
func (s *Store) PutFlowState(ctx context.Context, state flowstate.State) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	userID := strings.TrimSpace(state.UserID)
	if userID == "" {
		return flowstate.ErrEmptyUserID
	}
	if !state.Stage.Valid() {
		return flowstate.ErrStageUnknown
	}
	step := strings.TrimSpace(state.Step)
	if step == "" {
		return flowstate.ErrEmptyStep
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO flow_states (user_id, stage, step, provider, payload, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, stage) DO UPDATE SET
		   step = excluded.step,
		   provider = excluded.provider,
		   payload = excluded.payload,
		   updated_at = excluded.updated_at`,
		userID,
		state.Stage.Label(),
		step,
		strings.TrimSpace(state.Provider),
		state.Payload,
		toMillis(state.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("put flow state: %w", err)
	}
	return nil
}

// DeleteFlowState removes the user's flow position for one stage.
func (s *Store) DeleteFlowState(ctx context.Context, userID string, st stage.Stage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return flowstate.ErrEmptyUserID
	}

	if _, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM flow_states WHERE user_id = ? AND stage = ?`,
		userID,
		st.Label(),
	); err != nil {
		return fmt.Errorf("delete flow state: %w", err)
	}
	return nil
}
