package launchprep

import (
	"context"
	"strings"

	launchprepv1 "github.com/louisbranch/liftoff.space/api/launchprep/v1"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/delegation"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CreateDelegation hands stage setup to an invited admin, resetting and
// holding the delegator's progress until the handoff resolves.
func (s *Service) CreateDelegation(ctx context.Context, in *launchprepv1.CreateDelegationRequest) (*launchprepv1.DelegationResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "create delegation request is required")
	}
	if s == nil || s.workflow == nil {
		return nil, status.Error(codes.Internal, "delegation workflow is not configured")
	}

	created, err := s.workflow.Create(ctx, delegation.CreateInput{
		TeamID:           strings.TrimSpace(in.TeamId),
		TeamName:         strings.TrimSpace(in.TeamName),
		DelegatingUserID: strings.TrimSpace(in.DelegatingUserId),
		DelegatorEmail:   strings.TrimSpace(in.DelegatorEmail),
		DelegateEmail:    strings.TrimSpace(in.DelegateEmail),
	})
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.DelegationResponse{Delegation: toProtoDelegation(created, s.now())}, nil
}

// AcceptDelegation records that the invited delegate created an account.
func (s *Service) AcceptDelegation(ctx context.Context, in *launchprepv1.AcceptDelegationRequest) (*launchprepv1.DelegationResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "accept delegation request is required")
	}
	if s == nil || s.workflow == nil {
		return nil, status.Error(codes.Internal, "delegation workflow is not configured")
	}
	delegationID := strings.TrimSpace(in.DelegationId)
	if delegationID == "" {
		return nil, status.Error(codes.InvalidArgument, "delegation id is required")
	}

	updated, err := s.workflow.Accept(ctx, delegationID)
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.DelegationResponse{Delegation: toProtoDelegation(updated, s.now())}, nil
}

// BeginDelegation records that the delegate started working through setup.
func (s *Service) BeginDelegation(ctx context.Context, in *launchprepv1.BeginDelegationRequest) (*launchprepv1.DelegationResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "begin delegation request is required")
	}
	if s == nil || s.workflow == nil {
		return nil, status.Error(codes.Internal, "delegation workflow is not configured")
	}
	delegationID := strings.TrimSpace(in.DelegationId)
	if delegationID == "" {
		return nil, status.Error(codes.InvalidArgument, "delegation id is required")
	}

	updated, err := s.workflow.Begin(ctx, delegationID)
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.DelegationResponse{Delegation: toProtoDelegation(updated, s.now())}, nil
}

// CompleteDelegation finishes the handoff and releases the delegator's
// progress hold.
func (s *Service) CompleteDelegation(ctx context.Context, in *launchprepv1.CompleteDelegationRequest) (*launchprepv1.DelegationResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "complete delegation request is required")
	}
	if s == nil || s.workflow == nil {
		return nil, status.Error(codes.Internal, "delegation workflow is not configured")
	}
	delegationID := strings.TrimSpace(in.DelegationId)
	if delegationID == "" {
		return nil, status.Error(codes.InvalidArgument, "delegation id is required")
	}

	updated, err := s.workflow.Complete(ctx, delegationID, strings.TrimSpace(in.DelegateName))
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.DelegationResponse{Delegation: toProtoDelegation(updated, s.now())}, nil
}

// CancelDelegation withdraws the delegation and releases the delegator's
// progress hold.
func (s *Service) CancelDelegation(ctx context.Context, in *launchprepv1.CancelDelegationRequest) (*launchprepv1.DelegationResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "cancel delegation request is required")
	}
	if s == nil || s.workflow == nil {
		return nil, status.Error(codes.Internal, "delegation workflow is not configured")
	}
	delegationID := strings.TrimSpace(in.DelegationId)
	if delegationID == "" {
		return nil, status.Error(codes.InvalidArgument, "delegation id is required")
	}

	updated, err := s.workflow.Cancel(ctx, delegationID)
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.DelegationResponse{Delegation: toProtoDelegation(updated, s.now())}, nil
}

// ResendDelegationInvite re-delivers a pending invite with a fresh expiry.
func (s *Service) ResendDelegationInvite(ctx context.Context, in *launchprepv1.ResendDelegationInviteRequest) (*launchprepv1.DelegationResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "resend delegation invite request is required")
	}
	if s == nil || s.workflow == nil {
		return nil, status.Error(codes.Internal, "delegation workflow is not configured")
	}
	delegationID := strings.TrimSpace(in.DelegationId)
	if delegationID == "" {
		return nil, status.Error(codes.InvalidArgument, "delegation id is required")
	}

	updated, err := s.workflow.Resend(ctx, delegationID, strings.TrimSpace(in.TeamName))
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.DelegationResponse{Delegation: toProtoDelegation(updated, s.now())}, nil
}

// GetActiveDelegation returns the team's single non-terminal delegation.
func (s *Service) GetActiveDelegation(ctx context.Context, in *launchprepv1.GetActiveDelegationRequest) (*launchprepv1.DelegationResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get active delegation request is required")
	}
	if s == nil || s.workflow == nil {
		return nil, status.Error(codes.Internal, "delegation workflow is not configured")
	}
	teamID := strings.TrimSpace(in.TeamId)
	if teamID == "" {
		return nil, status.Error(codes.InvalidArgument, "team id is required")
	}

	active, err := s.workflow.Active(ctx, teamID)
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.DelegationResponse{Delegation: toProtoDelegation(active, s.now())}, nil
}
