package launchprep

import (
	"context"
	"strings"

	launchprepv1 "github.com/louisbranch/liftoff.space/api/launchprep/v1"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/ingest"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// StartSyncSession opens one ingestion run for the team.
func (s *Service) StartSyncSession(ctx context.Context, in *launchprepv1.StartSyncSessionRequest) (*launchprepv1.SyncSessionResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "start sync session request is required")
	}
	if s == nil || s.tracker == nil {
		return nil, status.Error(codes.Internal, "sync tracker is not configured")
	}

	session, err := s.tracker.Start(ctx, strings.TrimSpace(in.TeamId), ingest.SyncTypeFromLabel(in.SyncType))
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.SyncSessionResponse{Session: toProtoSyncSession(session)}, nil
}

// UpdateSyncCounters merges a counter snapshot into the running session.
func (s *Service) UpdateSyncCounters(ctx context.Context, in *launchprepv1.UpdateSyncCountersRequest) (*launchprepv1.SyncSessionResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "update sync counters request is required")
	}
	if s == nil || s.tracker == nil {
		return nil, status.Error(codes.Internal, "sync tracker is not configured")
	}
	sessionID := strings.TrimSpace(in.SessionId)
	if sessionID == "" {
		return nil, status.Error(codes.InvalidArgument, "session id is required")
	}
	if in.Counters == nil {
		return nil, status.Error(codes.InvalidArgument, "counters are required")
	}

	session, err := s.tracker.UpdateCounters(ctx, sessionID, fromProtoSyncCounters(in.Counters))
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.SyncSessionResponse{Session: toProtoSyncSession(session)}, nil
}

// CompleteSyncSession ends the session successfully, optionally merging a
// final counter snapshot first.
func (s *Service) CompleteSyncSession(ctx context.Context, in *launchprepv1.CompleteSyncSessionRequest) (*launchprepv1.SyncSessionResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "complete sync session request is required")
	}
	if s == nil || s.tracker == nil {
		return nil, status.Error(codes.Internal, "sync tracker is not configured")
	}
	sessionID := strings.TrimSpace(in.SessionId)
	if sessionID == "" {
		return nil, status.Error(codes.InvalidArgument, "session id is required")
	}

	var final *ingest.Counters
	if in.FinalCounters != nil {
		c := fromProtoSyncCounters(in.FinalCounters)
		final = &c
	}
	session, err := s.tracker.Complete(ctx, sessionID, final)
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.SyncSessionResponse{Session: toProtoSyncSession(session)}, nil
}

// FailSyncSession ends the session with a failure reason.
func (s *Service) FailSyncSession(ctx context.Context, in *launchprepv1.FailSyncSessionRequest) (*launchprepv1.SyncSessionResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "fail sync session request is required")
	}
	if s == nil || s.tracker == nil {
		return nil, status.Error(codes.Internal, "sync tracker is not configured")
	}
	sessionID := strings.TrimSpace(in.SessionId)
	if sessionID == "" {
		return nil, status.Error(codes.InvalidArgument, "session id is required")
	}

	session, err := s.tracker.Fail(ctx, sessionID, strings.TrimSpace(in.Reason))
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.SyncSessionResponse{Session: toProtoSyncSession(session)}, nil
}

// GetCurrentSyncSession returns the team's most recent session.
func (s *Service) GetCurrentSyncSession(ctx context.Context, in *launchprepv1.GetCurrentSyncSessionRequest) (*launchprepv1.SyncSessionResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get current sync session request is required")
	}
	if s == nil || s.tracker == nil {
		return nil, status.Error(codes.Internal, "sync tracker is not configured")
	}
	teamID := strings.TrimSpace(in.TeamId)
	if teamID == "" {
		return nil, status.Error(codes.InvalidArgument, "team id is required")
	}

	session, err := s.tracker.Current(ctx, teamID)
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.SyncSessionResponse{Session: toProtoSyncSession(session)}, nil
}
