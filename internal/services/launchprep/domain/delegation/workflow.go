package delegation

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/louisbranch/liftoff.space/internal/platform/errors"
	"github.com/louisbranch/liftoff.space/internal/platform/id"
)

const defaultInviteTTL = 7 * 24 * time.Hour

// CreateInput describes a delegation request from the current admin.
type CreateInput struct {
	TeamID           string
	TeamName         string
	DelegatingUserID string
	DelegatorEmail   string
	DelegateEmail    string
}

// Workflow orchestrates the delegation state machine: guard checks, invite
// delivery, and the delegator's progress reset and restoration.
type Workflow struct {
	store     Store
	users     UserDirectory
	invites   InviteSender
	progress  ProgressResetter
	notify    Notifier
	clock     func() time.Time
	newID     func() (string, error)
	inviteTTL time.Duration
}

// WorkflowOption configures optional workflow behavior.
type WorkflowOption func(*Workflow)

// WithInviteTTL overrides the invite expiry window.
func WithInviteTTL(ttl time.Duration) WorkflowOption {
	return func(w *Workflow) {
		if ttl > 0 {
			w.inviteTTL = ttl
		}
	}
}

// WithNotifier wires completion notifications for the delegator.
func WithNotifier(n Notifier) WorkflowOption {
	return func(w *Workflow) {
		w.notify = n
	}
}

// NewWorkflow constructs the delegation workflow.
func NewWorkflow(store Store, users UserDirectory, invites InviteSender, progress ProgressResetter, opts ...WorkflowOption) *Workflow {
	w := &Workflow{
		store:     store,
		users:     users,
		invites:   invites,
		progress:  progress,
		clock:     time.Now,
		newID:     id.NewID,
		inviteTTL: defaultInviteTTL,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// WithClock overrides the workflow clock. Test seam.
func WithClock(clock func() time.Time) WorkflowOption {
	return func(w *Workflow) {
		if clock != nil {
			w.clock = clock
		}
	}
}

// WithIDGenerator overrides the ID generator. Test seam.
func WithIDGenerator(newID func() (string, error)) WorkflowOption {
	return func(w *Workflow) {
		if newID != nil {
			w.newID = newID
		}
	}
}

// Create starts a new delegation. It rejects a second active delegation for
// the team, self-delegation, and delegates that already own an account, since
// delegation only invites brand-new admins. On success the delegator's
// progression is reset to zero and they are flagged as awaiting setup.
func (w *Workflow) Create(ctx context.Context, input CreateInput) (Delegation, error) {
	teamID := strings.TrimSpace(input.TeamID)
	if teamID == "" {
		return Delegation{}, ErrEmptyTeamID
	}
	delegateEmail := normalizeEmail(input.DelegateEmail)
	if delegateEmail == "" {
		return Delegation{}, ErrEmptyEmail
	}
	if delegateEmail == normalizeEmail(input.DelegatorEmail) {
		return Delegation{}, apperrors.New(apperrors.CodeDelegationSelfEmail, "cannot delegate setup to yourself")
	}

	if _, err := w.users.LookupUserByEmail(ctx, delegateEmail); err == nil {
		return Delegation{}, apperrors.WithMetadata(
			apperrors.CodeDelegationEmailTaken,
			"delegate email already has an account",
			map[string]string{"Email": delegateEmail},
		)
	} else if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		return Delegation{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "lookup delegate email", err)
	}

	if existing, err := w.store.ActiveDelegation(ctx, teamID); err == nil {
		return Delegation{}, apperrors.WithMetadata(
			apperrors.CodeDelegationActiveExists,
			"an active delegation already exists for the team",
			map[string]string{"DelegationID": existing.ID},
		)
	} else if !apperrors.IsCode(err, apperrors.CodeNotFound) {
		return Delegation{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "check active delegation", err)
	}

	delegationID, err := w.newID()
	if err != nil {
		return Delegation{}, apperrors.Wrap(apperrors.CodeUnknown, "generate delegation id", err)
	}

	now := w.clock().UTC()
	created := Delegation{
		ID:               delegationID,
		TeamID:           teamID,
		DelegatingUserID: strings.TrimSpace(input.DelegatingUserID),
		DelegatedToEmail: delegateEmail,
		Status:           StatusPendingInvite,
		CreatedAt:        now,
		UpdatedAt:        now,
		ExpiresAt:        now.Add(w.inviteTTL),
	}

	// The reset and the awaiting flag land before the delegation row. Every
	// step up to and including the persist is retryable wholesale: a failure
	// leaves no active delegation behind, so a repeat call passes the
	// active-delegation guard and redoes the idempotent reset.
	if err := w.progress.ResetStageProgress(ctx, created.DelegatingUserID); err != nil {
		return Delegation{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "reset delegator progress", err)
	}
	if err := w.progress.SetAwaitingSetup(ctx, created.DelegatingUserID, true); err != nil {
		return Delegation{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "flag delegator awaiting setup", err)
	}
	if err := w.store.PutDelegation(ctx, created); err != nil {
		if clearErr := w.progress.SetAwaitingSetup(ctx, created.DelegatingUserID, false); clearErr != nil {
			return Delegation{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "clear awaiting setup after failed persist", clearErr)
		}
		return Delegation{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "persist delegation", err)
	}

	if err := w.invites.SendDelegationInvite(ctx, delegateEmail, strings.TrimSpace(input.TeamName)); err != nil {
		// The delegation stays pending; the invite can be resent.
		return created, apperrors.Wrap(apperrors.CodeStorageUnavailable, "send delegation invite", err)
	}
	return created, nil
}

// Accept moves a pending invite to accepted once the delegate signed up and
// opened the flow. Expired invites are rejected until resent.
func (w *Workflow) Accept(ctx context.Context, delegationID string) (Delegation, error) {
	current, err := w.load(ctx, delegationID)
	if err != nil {
		return Delegation{}, err
	}
	if current.Expired(w.clock().UTC()) {
		return Delegation{}, apperrors.New(apperrors.CodeDelegationExpired, "delegation invite expired")
	}
	return w.transition(ctx, current, StatusAccepted)
}

// Begin marks the delegate as actively working through setup.
func (w *Workflow) Begin(ctx context.Context, delegationID string) (Delegation, error) {
	current, err := w.load(ctx, delegationID)
	if err != nil {
		return Delegation{}, err
	}
	return w.transition(ctx, current, StatusInProgress)
}

// Complete finishes the delegation: the awaiting-setup flag clears so the
// delegator resumes normal navigation, and they are notified by the
// delegate's name.
func (w *Workflow) Complete(ctx context.Context, delegationID, delegateName string) (Delegation, error) {
	current, err := w.load(ctx, delegationID)
	if err != nil {
		return Delegation{}, err
	}
	updated, err := w.transition(ctx, current, StatusCompleted)
	if err != nil {
		return Delegation{}, err
	}
	if err := w.progress.SetAwaitingSetup(ctx, updated.DelegatingUserID, false); err != nil {
		return Delegation{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "clear awaiting setup", err)
	}
	if w.notify != nil {
		if err := w.notify.DelegationCompleted(ctx, updated.DelegatingUserID, strings.TrimSpace(delegateName)); err != nil {
			return Delegation{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "notify delegator", err)
		}
	}
	return updated, nil
}

// Cancel withdraws a non-terminal delegation. The awaiting-setup flag
// clears but the delegator's progress stays at the reset state: they resume
// completing setup themselves from level zero.
func (w *Workflow) Cancel(ctx context.Context, delegationID string) (Delegation, error) {
	current, err := w.load(ctx, delegationID)
	if err != nil {
		return Delegation{}, err
	}
	updated, err := w.transition(ctx, current, StatusCancelled)
	if err != nil {
		return Delegation{}, err
	}
	if err := w.progress.SetAwaitingSetup(ctx, updated.DelegatingUserID, false); err != nil {
		return Delegation{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "clear awaiting setup", err)
	}
	return updated, nil
}

// Resend re-delivers the invite for a pending delegation and restarts its
// expiry window.
func (w *Workflow) Resend(ctx context.Context, delegationID, teamName string) (Delegation, error) {
	current, err := w.load(ctx, delegationID)
	if err != nil {
		return Delegation{}, err
	}
	if current.Status != StatusPendingInvite {
		return Delegation{}, transitionError(current.Status, StatusPendingInvite)
	}

	now := w.clock().UTC()
	updated := current
	updated.ExpiresAt = now.Add(w.inviteTTL)
	updated.UpdatedAt = now
	if err := w.store.PutDelegation(ctx, updated); err != nil {
		return Delegation{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "persist delegation", err)
	}
	if err := w.invites.SendDelegationInvite(ctx, updated.DelegatedToEmail, strings.TrimSpace(teamName)); err != nil {
		return updated, apperrors.Wrap(apperrors.CodeStorageUnavailable, "resend delegation invite", err)
	}
	return updated, nil
}

// Active returns the team's current non-terminal delegation.
func (w *Workflow) Active(ctx context.Context, teamID string) (Delegation, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return Delegation{}, ErrEmptyTeamID
	}
	return w.store.ActiveDelegation(ctx, teamID)
}

func (w *Workflow) load(ctx context.Context, delegationID string) (Delegation, error) {
	delegationID = strings.TrimSpace(delegationID)
	if delegationID == "" {
		return Delegation{}, ErrNotFound
	}
	current, err := w.store.Delegation(ctx, delegationID)
	if err != nil {
		if apperrors.IsCode(err, apperrors.CodeNotFound) {
			return Delegation{}, err
		}
		return Delegation{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "load delegation", err)
	}
	return current, nil
}

func (w *Workflow) transition(ctx context.Context, current Delegation, to Status) (Delegation, error) {
	if !CanTransition(current.Status, to) {
		return Delegation{}, transitionError(current.Status, to)
	}
	updated := current
	updated.Status = to
	updated.UpdatedAt = w.clock().UTC()
	if err := w.store.PutDelegation(ctx, updated); err != nil {
		return Delegation{}, apperrors.Wrap(apperrors.CodeStorageUnavailable, "persist delegation", err)
	}
	return updated, nil
}

func transitionError(from, to Status) error {
	return apperrors.WithMetadata(
		apperrors.CodeDelegationInvalidStatusTransition,
		"invalid delegation status transition",
		map[string]string{"FromStatus": from.Label(), "ToStatus": to.Label()},
	)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
