package launchprepv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	LaunchPrepService_GetStageProgress_FullMethodName       = "/launchprep.v1.LaunchPrepService/GetStageProgress"
	LaunchPrepService_GetLaunchStatus_FullMethodName        = "/launchprep.v1.LaunchPrepService/GetLaunchStatus"
	LaunchPrepService_RefreshFuelLevel_FullMethodName       = "/launchprep.v1.LaunchPrepService/RefreshFuelLevel"
	LaunchPrepService_GetFuelProgress_FullMethodName        = "/launchprep.v1.LaunchPrepService/GetFuelProgress"
	LaunchPrepService_CompleteAchievement_FullMethodName    = "/launchprep.v1.LaunchPrepService/CompleteAchievement"
	LaunchPrepService_AdvanceStageLevel_FullMethodName      = "/launchprep.v1.LaunchPrepService/AdvanceStageLevel"
	LaunchPrepService_InheritGuidance_FullMethodName        = "/launchprep.v1.LaunchPrepService/InheritGuidance"
	LaunchPrepService_CreateDelegation_FullMethodName       = "/launchprep.v1.LaunchPrepService/CreateDelegation"
	LaunchPrepService_AcceptDelegation_FullMethodName       = "/launchprep.v1.LaunchPrepService/AcceptDelegation"
	LaunchPrepService_BeginDelegation_FullMethodName        = "/launchprep.v1.LaunchPrepService/BeginDelegation"
	LaunchPrepService_CompleteDelegation_FullMethodName     = "/launchprep.v1.LaunchPrepService/CompleteDelegation"
	LaunchPrepService_CancelDelegation_FullMethodName       = "/launchprep.v1.LaunchPrepService/CancelDelegation"
	LaunchPrepService_ResendDelegationInvite_FullMethodName = "/launchprep.v1.LaunchPrepService/ResendDelegationInvite"
	LaunchPrepService_GetActiveDelegation_FullMethodName    = "/launchprep.v1.LaunchPrepService/GetActiveDelegation"
	LaunchPrepService_StartSyncSession_FullMethodName       = "/launchprep.v1.LaunchPrepService/StartSyncSession"
	LaunchPrepService_UpdateSyncCounters_FullMethodName     = "/launchprep.v1.LaunchPrepService/UpdateSyncCounters"
	LaunchPrepService_CompleteSyncSession_FullMethodName    = "/launchprep.v1.LaunchPrepService/CompleteSyncSession"
	LaunchPrepService_FailSyncSession_FullMethodName        = "/launchprep.v1.LaunchPrepService/FailSyncSession"
	LaunchPrepService_GetCurrentSyncSession_FullMethodName  = "/launchprep.v1.LaunchPrepService/GetCurrentSyncSession"
	LaunchPrepService_BeginFlow_FullMethodName              = "/launchprep.v1.LaunchPrepService/BeginFlow"
	LaunchPrepService_AdvanceFlow_FullMethodName            = "/launchprep.v1.LaunchPrepService/AdvanceFlow"
	LaunchPrepService_ResumeFlow_FullMethodName             = "/launchprep.v1.LaunchPrepService/ResumeFlow"
	LaunchPrepService_ClearFlow_FullMethodName              = "/launchprep.v1.LaunchPrepService/ClearFlow"
	LaunchPrepService_NotifyChange_FullMethodName           = "/launchprep.v1.LaunchPrepService/NotifyChange"
)

// LaunchPrepServiceServer is the server API for LaunchPrepService.
type LaunchPrepServiceServer interface {
	GetStageProgress(context.Context, *GetStageProgressRequest) (*StageProgressResponse, error)
	GetLaunchStatus(context.Context, *GetLaunchStatusRequest) (*GetLaunchStatusResponse, error)
	RefreshFuelLevel(context.Context, *RefreshFuelLevelRequest) (*StageProgressResponse, error)
	GetFuelProgress(context.Context, *GetFuelProgressRequest) (*GetFuelProgressResponse, error)
	CompleteAchievement(context.Context, *CompleteAchievementRequest) (*StageProgressResponse, error)
	AdvanceStageLevel(context.Context, *AdvanceStageLevelRequest) (*StageProgressResponse, error)
	InheritGuidance(context.Context, *InheritGuidanceRequest) (*StageProgressResponse, error)
	CreateDelegation(context.Context, *CreateDelegationRequest) (*DelegationResponse, error)
	AcceptDelegation(context.Context, *AcceptDelegationRequest) (*DelegationResponse, error)
	BeginDelegation(context.Context, *BeginDelegationRequest) (*DelegationResponse, error)
	CompleteDelegation(context.Context, *CompleteDelegationRequest) (*DelegationResponse, error)
	CancelDelegation(context.Context, *CancelDelegationRequest) (*DelegationResponse, error)
	ResendDelegationInvite(context.Context, *ResendDelegationInviteRequest) (*DelegationResponse, error)
	GetActiveDelegation(context.Context, *GetActiveDelegationRequest) (*DelegationResponse, error)
	StartSyncSession(context.Context, *StartSyncSessionRequest) (*SyncSessionResponse, error)
	UpdateSyncCounters(context.Context, *UpdateSyncCountersRequest) (*SyncSessionResponse, error)
	CompleteSyncSession(context.Context, *CompleteSyncSessionRequest) (*SyncSessionResponse, error)
	FailSyncSession(context.Context, *FailSyncSessionRequest) (*SyncSessionResponse, error)
	GetCurrentSyncSession(context.Context, *GetCurrentSyncSessionRequest) (*SyncSessionResponse, error)
	BeginFlow(context.Context, *BeginFlowRequest) (*FlowStateResponse, error)
	AdvanceFlow(context.Context, *AdvanceFlowRequest) (*FlowStateResponse, error)
	ResumeFlow(context.Context, *ResumeFlowRequest) (*FlowStateResponse, error)
	ClearFlow(context.Context, *ClearFlowRequest) (*ClearFlowResponse, error)
	NotifyChange(context.Context, *NotifyChangeRequest) (*NotifyChangeResponse, error)
}

// UnimplementedLaunchPrepServiceServer should be embedded for forward
// compatibility with methods added to the service.
type UnimplementedLaunchPrepServiceServer struct{}

func (UnimplementedLaunchPrepServiceServer) GetStageProgress(context.Context, *GetStageProgressRequest) (*StageProgressResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStageProgress not implemented")
}
func (UnimplementedLaunchPrepServiceServer) GetLaunchStatus(context.Context, *GetLaunchStatusRequest) (*GetLaunchStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLaunchStatus not implemented")
}
func (UnimplementedLaunchPrepServiceServer) RefreshFuelLevel(context.Context, *RefreshFuelLevelRequest) (*StageProgressResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RefreshFuelLevel not implemented")
}
func (UnimplementedLaunchPrepServiceServer) GetFuelProgress(context.Context, *GetFuelProgressRequest) (*GetFuelProgressResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFuelProgress not implemented")
}
func (UnimplementedLaunchPrepServiceServer) CompleteAchievement(context.Context, *CompleteAchievementRequest) (*StageProgressResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompleteAchievement not implemented")
}
func (UnimplementedLaunchPrepServiceServer) AdvanceStageLevel(context.Context, *AdvanceStageLevelRequest) (*StageProgressResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AdvanceStageLevel not implemented")
}
func (UnimplementedLaunchPrepServiceServer) InheritGuidance(context.Context, *InheritGuidanceRequest) (*StageProgressResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method InheritGuidance not implemented")
}
func (UnimplementedLaunchPrepServiceServer) CreateDelegation(context.Context, *CreateDelegationRequest) (*DelegationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateDelegation not implemented")
}
func (UnimplementedLaunchPrepServiceServer) AcceptDelegation(context.Context, *AcceptDelegationRequest) (*DelegationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AcceptDelegation not implemented")
}
func (UnimplementedLaunchPrepServiceServer) BeginDelegation(context.Context, *BeginDelegationRequest) (*DelegationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BeginDelegation not implemented")
}
func (UnimplementedLaunchPrepServiceServer) CompleteDelegation(context.Context, *CompleteDelegationRequest) (*DelegationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompleteDelegation not implemented")
}
func (UnimplementedLaunchPrepServiceServer) CancelDelegation(context.Context, *CancelDelegationRequest) (*DelegationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelDelegation not implemented")
}
func (UnimplementedLaunchPrepServiceServer) ResendDelegationInvite(context.Context, *ResendDelegationInviteRequest) (*DelegationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResendDelegationInvite not implemented")
}
func (UnimplementedLaunchPrepServiceServer) GetActiveDelegation(context.Context, *GetActiveDelegationRequest) (*DelegationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetActiveDelegation not implemented")
}
func (UnimplementedLaunchPrepServiceServer) StartSyncSession(context.Context, *StartSyncSessionRequest) (*SyncSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartSyncSession not implemented")
}
func (UnimplementedLaunchPrepServiceServer) UpdateSyncCounters(context.Context, *UpdateSyncCountersRequest) (*SyncSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateSyncCounters not implemented")
}
func (UnimplementedLaunchPrepServiceServer) CompleteSyncSession(context.Context, *CompleteSyncSessionRequest) (*SyncSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CompleteSyncSession not implemented")
}
func (UnimplementedLaunchPrepServiceServer) FailSyncSession(context.Context, *FailSyncSessionRequest) (*SyncSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FailSyncSession not implemented")
}
func (UnimplementedLaunchPrepServiceServer) GetCurrentSyncSession(context.Context, *GetCurrentSyncSessionRequest) (*SyncSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetCurrentSyncSession not implemented")
}
func (UnimplementedLaunchPrepServiceServer) BeginFlow(context.Context, *BeginFlowRequest) (*FlowStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method BeginFlow not implemented")
}
func (UnimplementedLaunchPrepServiceServer) AdvanceFlow(context.Context, *AdvanceFlowRequest) (*FlowStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AdvanceFlow not implemented")
}
func (UnimplementedLaunchPrepServiceServer) ResumeFlow(context.Context, *ResumeFlowRequest) (*FlowStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResumeFlow not implemented")
}
func (UnimplementedLaunchPrepServiceServer) ClearFlow(context.Context, *ClearFlowRequest) (*ClearFlowResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClearFlow not implemented")
}
func (UnimplementedLaunchPrepServiceServer) NotifyChange(context.Context, *NotifyChangeRequest) (*NotifyChangeResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method NotifyChange not implemented")
}

// RegisterLaunchPrepServiceServer registers srv on s.
func RegisterLaunchPrepServiceServer(s grpc.ServiceRegistrar, srv LaunchPrepServiceServer) {
	s.RegisterService(&LaunchPrepService_ServiceDesc, srv)
}

func _LaunchPrepService_GetStageProgress_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStageProgressRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).GetStageProgress(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_GetStageProgress_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).GetStageProgress(ctx, req.(*GetStageProgressRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_GetLaunchStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLaunchStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).GetLaunchStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_GetLaunchStatus_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).GetLaunchStatus(ctx, req.(*GetLaunchStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_RefreshFuelLevel_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RefreshFuelLevelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).RefreshFuelLevel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_RefreshFuelLevel_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).RefreshFuelLevel(ctx, req.(*RefreshFuelLevelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_GetFuelProgress_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFuelProgressRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).GetFuelProgress(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_GetFuelProgress_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).GetFuelProgress(ctx, req.(*GetFuelProgressRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_CompleteAchievement_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteAchievementRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).CompleteAchievement(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_CompleteAchievement_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).CompleteAchievement(ctx, req.(*CompleteAchievementRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_AdvanceStageLevel_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AdvanceStageLevelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).AdvanceStageLevel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_AdvanceStageLevel_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).AdvanceStageLevel(ctx, req.(*AdvanceStageLevelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_InheritGuidance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(InheritGuidanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).InheritGuidance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_InheritGuidance_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).InheritGuidance(ctx, req.(*InheritGuidanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_CreateDelegation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateDelegationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).CreateDelegation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_CreateDelegation_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).CreateDelegation(ctx, req.(*CreateDelegationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_AcceptDelegation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AcceptDelegationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).AcceptDelegation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_AcceptDelegation_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).AcceptDelegation(ctx, req.(*AcceptDelegationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_BeginDelegation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BeginDelegationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).BeginDelegation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_BeginDelegation_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).BeginDelegation(ctx, req.(*BeginDelegationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_CompleteDelegation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteDelegationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).CompleteDelegation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_CompleteDelegation_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).CompleteDelegation(ctx, req.(*CompleteDelegationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_CancelDelegation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CancelDelegationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).CancelDelegation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_CancelDelegation_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).CancelDelegation(ctx, req.(*CancelDelegationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_ResendDelegationInvite_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResendDelegationInviteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).ResendDelegationInvite(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_ResendDelegationInvite_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).ResendDelegationInvite(ctx, req.(*ResendDelegationInviteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_GetActiveDelegation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetActiveDelegationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).GetActiveDelegation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_GetActiveDelegation_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).GetActiveDelegation(ctx, req.(*GetActiveDelegationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_StartSyncSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartSyncSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).StartSyncSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_StartSyncSession_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).StartSyncSession(ctx, req.(*StartSyncSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_UpdateSyncCounters_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateSyncCountersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).UpdateSyncCounters(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_UpdateSyncCounters_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).UpdateSyncCounters(ctx, req.(*UpdateSyncCountersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_CompleteSyncSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CompleteSyncSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).CompleteSyncSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_CompleteSyncSession_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).CompleteSyncSession(ctx, req.(*CompleteSyncSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_FailSyncSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FailSyncSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).FailSyncSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_FailSyncSession_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).FailSyncSession(ctx, req.(*FailSyncSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_GetCurrentSyncSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetCurrentSyncSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).GetCurrentSyncSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_GetCurrentSyncSession_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).GetCurrentSyncSession(ctx, req.(*GetCurrentSyncSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_BeginFlow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BeginFlowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).BeginFlow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_BeginFlow_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).BeginFlow(ctx, req.(*BeginFlowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_AdvanceFlow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AdvanceFlowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).AdvanceFlow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_AdvanceFlow_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).AdvanceFlow(ctx, req.(*AdvanceFlowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_ResumeFlow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResumeFlowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).ResumeFlow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_ResumeFlow_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).ResumeFlow(ctx, req.(*ResumeFlowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_ClearFlow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClearFlowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).ClearFlow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_ClearFlow_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).ClearFlow(ctx, req.(*ClearFlowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LaunchPrepService_NotifyChange_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NotifyChangeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LaunchPrepServiceServer).NotifyChange(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: LaunchPrepService_NotifyChange_FullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LaunchPrepServiceServer).NotifyChange(ctx, req.(*NotifyChangeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// LaunchPrepService_ServiceDesc is the grpc.ServiceDesc for LaunchPrepService.
var LaunchPrepService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "launchprep.v1.LaunchPrepService",
	HandlerType: (*LaunchPrepServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetStageProgress", Handler: _LaunchPrepService_GetStageProgress_Handler},
		{MethodName: "GetLaunchStatus", Handler: _LaunchPrepService_GetLaunchStatus_Handler},
		{MethodName: "RefreshFuelLevel", Handler: _LaunchPrepService_RefreshFuelLevel_Handler},
		{MethodName: "GetFuelProgress", Handler: _LaunchPrepService_GetFuelProgress_Handler},
		{MethodName: "CompleteAchievement", Handler: _LaunchPrepService_CompleteAchievement_Handler},
		{MethodName: "AdvanceStageLevel", Handler: _LaunchPrepService_AdvanceStageLevel_Handler},
		{MethodName: "InheritGuidance", Handler: _LaunchPrepService_InheritGuidance_Handler},
		{MethodName: "CreateDelegation", Handler: _LaunchPrepService_CreateDelegation_Handler},
		{MethodName: "AcceptDelegation", Handler: _LaunchPrepService_AcceptDelegation_Handler},
		{MethodName: "BeginDelegation", Handler: _LaunchPrepService_BeginDelegation_Handler},
		{MethodName: "CompleteDelegation", Handler: _LaunchPrepService_CompleteDelegation_Handler},
		{MethodName: "CancelDelegation", Handler: _LaunchPrepService_CancelDelegation_Handler},
		{MethodName: "ResendDelegationInvite", Handler: _LaunchPrepService_ResendDelegationInvite_Handler},
		{MethodName: "GetActiveDelegation", Handler: _LaunchPrepService_GetActiveDelegation_Handler},
		{MethodName: "StartSyncSession", Handler: _LaunchPrepService_StartSyncSession_Handler},
		{MethodName: "UpdateSyncCounters", Handler: _LaunchPrepService_UpdateSyncCounters_Handler},
		{MethodName: "CompleteSyncSession", Handler: _LaunchPrepService_CompleteSyncSession_Handler},
		{MethodName: "FailSyncSession", Handler: _LaunchPrepService_FailSyncSession_Handler},
		{MethodName: "GetCurrentSyncSession", Handler: _LaunchPrepService_GetCurrentSyncSession_Handler},
		{MethodName: "BeginFlow", Handler: _LaunchPrepService_BeginFlow_Handler},
		{MethodName: "AdvanceFlow", Handler: _LaunchPrepService_AdvanceFlow_Handler},
		{MethodName: "ResumeFlow", Handler: _LaunchPrepService_ResumeFlow_Handler},
		{MethodName: "ClearFlow", Handler: _LaunchPrepService_ClearFlow_Handler},
		{MethodName: "NotifyChange", Handler: _LaunchPrepService_NotifyChange_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "launchprep/v1/launchprep.proto",
}
