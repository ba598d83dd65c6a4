package launchprep

import (
	"context"
	"strings"

	launchprepv1 "github.com/louisbranch/liftoff.space/api/launchprep/v1"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/stage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// BeginFlow checkpoints the first step of a multi-step flow.
func (s *Service) BeginFlow(ctx context.Context, in *launchprepv1.BeginFlowRequest) (*launchprepv1.FlowStateResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "begin flow request is required")
	}
	if s == nil || s.flows == nil {
		return nil, status.Error(codes.Internal, "flow manager is not configured")
	}
	userID := strings.TrimSpace(in.UserId)
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user id is required")
	}
	st := stage.FromLabel(in.Stage)
	if !st.Valid() {
		return nil, status.Error(codes.InvalidArgument, "stage is required")
	}

	state, err := s.flows.Begin(ctx, userID, st, strings.TrimSpace(in.Step), strings.TrimSpace(in.Provider))
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.FlowStateResponse{Flow: toProtoFlowState(state)}, nil
}

// AdvanceFlow moves the checkpoint to the next step, replacing the payload.
func (s *Service) AdvanceFlow(ctx context.Context, in *launchprepv1.AdvanceFlowRequest) (*launchprepv1.FlowStateResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "advance flow request is required")
	}
	if s == nil || s.flows == nil {
		return nil, status.Error(codes.Internal, "flow manager is not configured")
	}
	userID := strings.TrimSpace(in.UserId)
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user id is required")
	}
	st := stage.FromLabel(in.Stage)
	if !st.Valid() {
		return nil, status.Error(codes.InvalidArgument, "stage is required")
	}

	state, err := s.flows.Advance(ctx, userID, st, strings.TrimSpace(in.Step), in.Payload)
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.FlowStateResponse{Flow: toProtoFlowState(state)}, nil
}

// ResumeFlow returns the saved checkpoint, discarding it when stale.
func (s *Service) ResumeFlow(ctx context.Context, in *launchprepv1.ResumeFlowRequest) (*launchprepv1.FlowStateResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "resume flow request is required")
	}
	if s == nil || s.flows == nil {
		return nil, status.Error(codes.Internal, "flow manager is not configured")
	}
	userID := strings.TrimSpace(in.UserId)
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user id is required")
	}
	st := stage.FromLabel(in.Stage)
	if !st.Valid() {
		return nil, status.Error(codes.InvalidArgument, "stage is required")
	}

	state, err := s.flows.Resume(ctx, userID, st)
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.FlowStateResponse{Flow: toProtoFlowState(state)}, nil
}

// ClearFlow discards the saved checkpoint.
func (s *Service) ClearFlow(ctx context.Context, in *launchprepv1.ClearFlowRequest) (*launchprepv1.ClearFlowResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "clear flow request is required")
	}
	if s == nil || s.flows == nil {
		return nil, status.Error(codes.Internal, "flow manager is not configured")
	}
	userID := strings.TrimSpace(in.UserId)
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user id is required")
	}
	st := stage.FromLabel(in.Stage)
	if !st.Valid() {
		return nil, status.Error(codes.InvalidArgument, "stage is required")
	}

	if err := s.flows.Clear(ctx, userID, st); err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.ClearFlowResponse{}, nil
}

// NotifyChange pushes one change notification into the background refresh
// loop. A full buffer drops the event; the periodic sweep covers it.
func (s *Service) NotifyChange(ctx context.Context, in *launchprepv1.NotifyChangeRequest) (*launchprepv1.NotifyChangeResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "notify change request is required")
	}
	if s == nil || s.events == nil {
		return nil, status.Error(codes.Internal, "event sink is not configured")
	}
	teamID := strings.TrimSpace(in.TeamId)
	if teamID == "" {
		return nil, status.Error(codes.InvalidArgument, "team id is required")
	}

	accepted, err := s.events.NotifyChange(in.Kind, teamID, strings.TrimSpace(in.UserId))
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.NotifyChangeResponse{Accepted: accepted}, nil
}
