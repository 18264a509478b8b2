//go:build grpcserver

package grpcserver

import (
	"context"
	"errors"
	"time"

	userv1 "lostFoundManagement/api/user/v1"
	"lostFoundManagement/internal/auth"
	"lostFoundManagement/internal/config"
	"lostFoundManagement/models"
	"lostFoundManagement/repository"
	"lostFoundManagement/service"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const tokenTTL = 24 * time.Hour

// UserServer implements user.v1.UserService.
type UserServer struct {
	userv1.UnimplementedUserServiceServer
	Cfg       *config.Config
	Users     *repository.UserRepository
	Directory *service.UserDirectory
	Workflow  *service.ReportWorkflow
	Query     *service.ReportQuery
}

// resolveCurrentUser retrieves the authenticated user from the database.
func (s *UserServer) resolveCurrentUser(ctx context.Context) (*models.User, error) {
	p, err := auth.RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	u, err := s.Users.GetByEmail(ctx, p.Email)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get user: %v", err)
	}
	if u == nil {
		return nil, status.Error(codes.NotFound, "user not found")
	}
	return u, nil
}

// Register creates an account. Role is normalized server-side.
func (s *UserServer) Register(ctx context.Context, req *userv1.RegisterRequest) (*userv1.RegisterResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	id, err := s.Directory.RegisterWithRole(ctx, req.GetName(), req.GetEmail(), req.GetPassword(), req.GetRole(), req.GetContact())
	if err != nil {
		return nil, toStatus(err, "register")
	}
	return &userv1.RegisterResponse{UserId: id}, nil
}

// Login verifies credentials and mints a bearer token.
func (s *UserServer) Login(ctx context.Context, req *userv1.LoginRequest) (*userv1.LoginResponse, error) {
	if req == nil || req.GetEmail() == "" || req.GetPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "email and password are required")
	}
	u, err := s.Directory.Authenticate(ctx, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, toStatus(err, "login")
	}
	token, err := auth.Sign(s.Cfg.Auth.JWTSecret, u.Email, u.Role, tokenTTL)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "sign token: %v", err)
	}
	return &userv1.LoginResponse{Token: token, User: toProtoUser(u)}, nil
}

// CreateReport runs the compound item/subtype/report write for the
// authenticated user and returns the reference numbers.
func (s *UserServer) CreateReport(ctx context.Context, req *userv1.CreateReportRequest) (*userv1.CreateReportResponse, error) {
	u, err := s.resolveCurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	rep, err := s.Workflow.CreateReport(ctx, service.CreateReportParams{
		ReporterID:        u.ID,
		Category:          fromProtoCategory(req.GetCategory()),
		Name:              req.GetName(),
		Description:       req.GetDescription(),
		LastSeenLocation:  req.GetLastSeenLocation(),
		LastSeenDate:      req.GetLastSeenDate(),
		FoundLocation:     req.GetFoundLocation(),
		FoundDate:         req.GetFoundDate(),
		StorageLocation:   req.GetStorageLocation(),
		AdditionalDetails: req.GetAdditionalDetails(),
		ImagePath:         req.GetImagePath(),
	})
	if err != nil {
		return nil, toStatus(err, "create report")
	}
	return &userv1.CreateReportResponse{ReportId: rep.ID, ItemId: rep.ItemID}, nil
}

// ListMyReports returns the authenticated user's report rows.
func (s *UserServer) ListMyReports(ctx context.Context, _ *userv1.ListMyReportsRequest) (*userv1.ListMyReportsResponse, error) {
	u, err := s.resolveCurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.Query.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list reports: %v", err)
	}
	out := make([]*userv1.Report, 0, len(list))
	for i := range list {
		out = append(out, toProtoReport(&list[i]))
	}
	return &userv1.ListMyReportsResponse{Reports: out}, nil
}

// SearchReports returns the denormalized dashboard rows, filtered by the
// query when present.
func (s *UserServer) SearchReports(ctx context.Context, req *userv1.SearchReportsRequest) (*userv1.SearchReportsResponse, error) {
	if _, err := s.resolveCurrentUser(ctx); err != nil {
		return nil, err
	}
	list, err := s.Query.Search(ctx, req.GetQuery())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "search reports: %v", err)
	}
	out := make([]*userv1.ReportDetails, 0, len(list))
	for i := range list {
		d := &list[i]
		out = append(out, &userv1.ReportDetails{
			ReportId:    d.ReportID,
			ItemName:    d.ItemName,
			UserName:    d.UserName,
			UserContact: d.UserContact,
			ReportDate:  d.ReportDate,
			Status:      d.Status,
			Location:    d.Location,
		})
	}
	return &userv1.SearchReportsResponse{Reports: out}, nil
}

func toProtoUser(u *models.User) *userv1.User {
	if u == nil {
		return nil
	}
	return &userv1.User{
		Id:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    u.Role,
		Contact: u.Contact,
	}
}

func toProtoReport(r *models.Report) *userv1.Report {
	if r == nil {
		return nil
	}
	return &userv1.Report{
		Id:         r.ID,
		UserId:     r.ReporterID,
		ItemId:     r.ItemID,
		ReportType: toProtoCategory(r.ReportType),
		ReportDate: r.ReportDate,
	}
}

func toProtoCategory(c models.Category) userv1.Category {
	switch c {
	case models.CategoryLost:
		return userv1.Category_CATEGORY_LOST
	case models.CategoryFound:
		return userv1.Category_CATEGORY_FOUND
	default:
		return userv1.Category_CATEGORY_UNSPECIFIED
	}
}

func fromProtoCategory(c userv1.Category) models.Category {
	switch c {
	case userv1.Category_CATEGORY_LOST:
		return models.CategoryLost
	case userv1.Category_CATEGORY_FOUND:
		return models.CategoryFound
	default:
		return ""
	}
}

// toStatus maps service-layer failures onto gRPC codes.
func toStatus(err error, op string) error {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return status.Error(codes.InvalidArgument, ve.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, service.ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, service.ErrDuplicateEmail), errors.Is(err, service.ErrAlreadyAdmin):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, service.ErrUnknownUser), errors.Is(err, service.ErrUnknownItem):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Errorf(codes.Internal, "%s: %v", op, err)
	}
}
