package launchprep

import (
	"context"
	"strings"

	launchprepv1 "github.com/louisbranch/liftoff.space/api/launchprep/v1"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/fuel"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/progress"
	"github.com/louisbranch/liftoff.space/internal/services/launchprep/domain/stage"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GetStageProgress returns one per-user, per-stage progression record.
func (s *Service) GetStageProgress(ctx context.Context, in *launchprepv1.GetStageProgressRequest) (*launchprepv1.StageProgressResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get stage progress request is required")
	}
	if s == nil || s.engine == nil {
		return nil, status.Error(codes.Internal, "progression engine is not configured")
	}

	userID := strings.TrimSpace(in.UserId)
	teamID := strings.TrimSpace(in.TeamId)
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user id is required")
	}
	if teamID == "" {
		return nil, status.Error(codes.InvalidArgument, "team id is required")
	}
	st := stage.FromLabel(in.Stage)
	if !st.Valid() {
		return nil, status.Error(codes.InvalidArgument, "stage is required")
	}

	record, err := s.engine.Progress(ctx, userID, teamID, st)
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.StageProgressResponse{Progress: toProtoStageProgress(record)}, nil
}

// GetLaunchStatus aggregates the three stage records into the launch
// readiness view.
func (s *Service) GetLaunchStatus(ctx context.Context, in *launchprepv1.GetLaunchStatusRequest) (*launchprepv1.GetLaunchStatusResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get launch status request is required")
	}
	if s == nil || s.engine == nil {
		return nil, status.Error(codes.Internal, "progression engine is not configured")
	}

	userID := strings.TrimSpace(in.UserId)
	teamID := strings.TrimSpace(in.TeamId)
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user id is required")
	}
	if teamID == "" {
		return nil, status.Error(codes.InvalidArgument, "team id is required")
	}

	records := make(map[stage.Stage]progress.StageProgress, len(stage.All()))
	stages := make([]*launchprepv1.StageProgress, 0, len(stage.All()))
	pointsTotal := 0
	for _, st := range stage.All() {
		record, err := s.engine.Progress(ctx, userID, teamID, st)
		if err != nil {
			return nil, handleDomainError(err)
		}
		records[st] = record
		stages = append(stages, toProtoStageProgress(record))
		pointsTotal += record.Points
	}

	awaiting, err := s.engine.AwaitingSetup(ctx, userID)
	if err != nil {
		return nil, handleDomainError(err)
	}

	fuelLevel := records[stage.Fuel].Level
	boostersLevel := records[stage.Boosters].Level
	return &launchprepv1.GetLaunchStatusResponse{
		Stages:             stages,
		PointsTotal:        int32(pointsTotal),
		ReadyForFinalStage: progress.IsReadyForFinalStage(records[stage.Fuel], records[stage.Boosters], records[stage.Guidance]),
		AwaitingSetup:      awaiting,
		BoostersUnlocked:   progress.IsUnlocked(stage.Boosters, fuelLevel, boostersLevel),
		GuidanceUnlocked:   progress.IsUnlocked(stage.Guidance, fuelLevel, boostersLevel),
	}, nil
}

// RefreshFuelLevel recomputes the counter-derived fuel level and reconciles
// the stage record to it.
func (s *Service) RefreshFuelLevel(ctx context.Context, in *launchprepv1.RefreshFuelLevelRequest) (*launchprepv1.StageProgressResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "refresh fuel level request is required")
	}
	if s == nil || s.reconciler == nil {
		return nil, status.Error(codes.Internal, "fuel reconciler is not configured")
	}

	userID := strings.TrimSpace(in.UserId)
	teamID := strings.TrimSpace(in.TeamId)
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user id is required")
	}
	if teamID == "" {
		return nil, status.Error(codes.InvalidArgument, "team id is required")
	}

	record, err := s.reconciler.Refresh(ctx, teamID, userID, in.Force)
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.StageProgressResponse{Progress: toProtoStageProgress(record)}, nil
}

// GetFuelProgress reports the team's computed fuel level with per-dimension
// movement toward the next threshold.
func (s *Service) GetFuelProgress(ctx context.Context, in *launchprepv1.GetFuelProgressRequest) (*launchprepv1.GetFuelProgressResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "get fuel progress request is required")
	}
	if s == nil || s.reconciler == nil {
		return nil, status.Error(codes.Internal, "fuel reconciler is not configured")
	}

	teamID := strings.TrimSpace(in.TeamId)
	if teamID == "" {
		return nil, status.Error(codes.InvalidArgument, "team id is required")
	}

	counters, err := s.reconciler.Snapshot(ctx, teamID, false)
	if err != nil {
		return nil, handleDomainError(err)
	}
	lp := fuel.Progress(counters)
	return &launchprepv1.GetFuelProgressResponse{
		CurrentLevel: int32(lp.CurrentLevel),
		NextLevel:    int32(lp.NextLevel),
		Documents:    toProtoDimension(lp.Documents),
		Categories:   toProtoDimension(lp.Categories),
	}, nil
}

// CompleteAchievement grants one achievement key on the boosters or
// guidance track.
func (s *Service) CompleteAchievement(ctx context.Context, in *launchprepv1.CompleteAchievementRequest) (*launchprepv1.StageProgressResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "complete achievement request is required")
	}
	if s == nil || s.engine == nil {
		return nil, status.Error(codes.Internal, "progression engine is not configured")
	}

	userID := strings.TrimSpace(in.UserId)
	teamID := strings.TrimSpace(in.TeamId)
	key := strings.TrimSpace(in.AchievementKey)
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user id is required")
	}
	if teamID == "" {
		return nil, status.Error(codes.InvalidArgument, "team id is required")
	}
	if key == "" {
		return nil, status.Error(codes.InvalidArgument, "achievement key is required")
	}

	record, newlyGranted, err := s.engine.CompleteAchievement(ctx, userID, teamID, stage.FromLabel(in.Stage), key)
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.StageProgressResponse{
		Progress:     toProtoStageProgress(record),
		NewlyGranted: newlyGranted,
	}, nil
}

// AdvanceStageLevel raises a boosters or guidance record to the target
// level, granting every intermediate achievement.
func (s *Service) AdvanceStageLevel(ctx context.Context, in *launchprepv1.AdvanceStageLevelRequest) (*launchprepv1.StageProgressResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "advance stage level request is required")
	}
	if s == nil || s.engine == nil {
		return nil, status.Error(codes.Internal, "progression engine is not configured")
	}

	userID := strings.TrimSpace(in.UserId)
	teamID := strings.TrimSpace(in.TeamId)
	if userID == "" {
		return nil, status.Error(codes.InvalidArgument, "user id is required")
	}
	if teamID == "" {
		return nil, status.Error(codes.InvalidArgument, "team id is required")
	}

	record, err := s.engine.AdvanceLevel(ctx, userID, teamID, stage.FromLabel(in.Stage), int(in.TargetLevel))
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.StageProgressResponse{Progress: toProtoStageProgress(record)}, nil
}

// InheritGuidance seeds a member's guidance record from their admin's level.
func (s *Service) InheritGuidance(ctx context.Context, in *launchprepv1.InheritGuidanceRequest) (*launchprepv1.StageProgressResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "inherit guidance request is required")
	}
	if s == nil || s.engine == nil {
		return nil, status.Error(codes.Internal, "progression engine is not configured")
	}

	memberID := strings.TrimSpace(in.MemberId)
	teamID := strings.TrimSpace(in.TeamId)
	if memberID == "" {
		return nil, status.Error(codes.InvalidArgument, "member id is required")
	}
	if teamID == "" {
		return nil, status.Error(codes.InvalidArgument, "team id is required")
	}

	record, err := s.engine.InheritGuidanceFromAdmin(ctx, memberID, teamID, int(in.AdminLevel))
	if err != nil {
		return nil, handleDomainError(err)
	}
	return &launchprepv1.StageProgressResponse{Progress: toProtoStageProgress(record)}, nil
}
