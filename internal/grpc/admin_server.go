//go:build grpcserver

package grpcserver

import (
	"context"

	adminv1 "lostFoundManagement/api/admin/v1"
	userv1 "lostFoundManagement/api/user/v1"
	"lostFoundManagement/internal/auth"
	"lostFoundManagement/repository"
	"lostFoundManagement/service"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AdminServer implements admin.v1.AdminService. Every RPC re-verifies the
// caller's admin role against storage via auth.RequireAdmin.
type AdminServer struct {
	adminv1.UnimplementedAdminServiceServer
	Users     *repository.UserRepository
	Directory *service.UserDirectory
	Registry  *service.AdminRegistry
	Workflow  *service.ReportWorkflow
	Query     *service.ReportQuery
}

// ListUsers returns every registered user.
func (s *AdminServer) ListUsers(ctx context.Context, _ *adminv1.ListUsersRequest) (*adminv1.ListUsersResponse, error) {
	if _, err := auth.RequireAdmin(ctx, s.Users); err != nil {
		return nil, err
	}
	list, err := s.Directory.GetAll(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list users: %v", err)
	}
	out := make([]*userv1.User, 0, len(list))
	for i := range list {
		out = append(out, toProtoUser(&list[i]))
	}
	return &adminv1.ListUsersResponse{Users: out}, nil
}

// DeleteUser removes a user and its admin row in one transaction.
func (s *AdminServer) DeleteUser(ctx context.Context, req *adminv1.DeleteUserRequest) (*adminv1.DeleteUserResponse, error) {
	if _, err := auth.RequireAdmin(ctx, s.Users); err != nil {
		return nil, err
	}
	if req == nil || req.GetUserId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	deleted, err := s.Directory.Delete(ctx, req.GetUserId())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "delete user: %v", err)
	}
	return &adminv1.DeleteUserResponse{Deleted: deleted}, nil
}

// UpdateUserRole promotes or demotes a user; the role column and the
// admins table move together inside the service transaction.
func (s *AdminServer) UpdateUserRole(ctx context.Context, req *adminv1.UpdateUserRoleRequest) (*adminv1.UpdateUserRoleResponse, error) {
	p, err := auth.RequireAdmin(ctx, s.Users)
	if err != nil {
		return nil, err
	}
	if req == nil || req.GetUserId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "user_id is required")
	}
	actor, err := s.Users.GetByEmail(ctx, p.Email)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get actor: %v", err)
	}
	if err := s.Directory.UpdateRole(ctx, actor, req.GetUserId(), req.GetNewRole()); err != nil {
		return nil, toStatus(err, "update role")
	}
	return &adminv1.UpdateUserRoleResponse{}, nil
}

// ListAdmins returns the admin membership rows.
func (s *AdminServer) ListAdmins(ctx context.Context, _ *adminv1.ListAdminsRequest) (*adminv1.ListAdminsResponse, error) {
	if _, err := auth.RequireAdmin(ctx, s.Users); err != nil {
		return nil, err
	}
	list, err := s.Registry.GetAll(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list admins: %v", err)
	}
	out := make([]*adminv1.Admin, 0, len(list))
	for i := range list {
		out = append(out, &adminv1.Admin{
			Id:        list[i].ID,
			UserId:    list[i].UserID,
			AdminRole: list[i].AdminRole,
		})
	}
	return &adminv1.ListAdminsResponse{Admins: out}, nil
}

// ListReports returns every report row for moderation views.
func (s *AdminServer) ListReports(ctx context.Context, _ *adminv1.ListReportsRequest) (*adminv1.ListReportsResponse, error) {
	if _, err := auth.RequireAdmin(ctx, s.Users); err != nil {
		return nil, err
	}
	list, err := s.Query.ListAll(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list reports: %v", err)
	}
	out := make([]*userv1.Report, 0, len(list))
	for i := range list {
		out = append(out, toProtoReport(&list[i]))
	}
	return &adminv1.ListReportsResponse{Reports: out}, nil
}

// DeleteReport removes the report row only; the item stays.
func (s *AdminServer) DeleteReport(ctx context.Context, req *adminv1.DeleteReportRequest) (*adminv1.DeleteReportResponse, error) {
	if _, err := auth.RequireAdmin(ctx, s.Users); err != nil {
		return nil, err
	}
	if req == nil || req.GetReportId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "report_id is required")
	}
	deleted, err := s.Workflow.DeleteReport(ctx, req.GetReportId())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "delete report: %v", err)
	}
	return &adminv1.DeleteReportResponse{Deleted: deleted}, nil
}
