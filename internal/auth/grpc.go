package auth

import (
	"context"
	"strings"

	"lostFoundManagement/models"
	"lostFoundManagement/repository"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewUnaryAuthInterceptor returns a gRPC unary interceptor that extracts and
// validates a Bearer JWT from incoming metadata and injects the Principal
// into the context. Methods listed in allowUnauthenticated bypass
// authentication (login, registration, health checks).
func NewUnaryAuthInterceptor(secret string, allowUnauthenticated ...string) grpc.UnaryServerInterceptor {
	allow := make(map[string]struct{}, len(allowUnauthenticated))
	for _, m := range allowUnauthenticated {
		allow[strings.TrimSpace(m)] = struct{}{}
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		if _, ok := allow[info.FullMethod]; ok {
			return handler(ctx, req)
		}
		p, err := ParseFromMD(ctx, secret)
		if err != nil {
			return nil, status.Errorf(codes.Unauthenticated, "auth error: %v", err)
		}
		return handler(WithPrincipal(ctx, p), req)
	}
}

// RequirePrincipal ensures a principal is present in context.
func RequirePrincipal(ctx context.Context) (*Principal, error) {
	p, ok := FromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing principal")
	}
	return p, nil
}

// RequireAdmin ensures the caller's token claims the Admin role AND that
// the underlying user still exists in storage with that role. Tokens
// outlive demotions; the storage check closes that window.
func RequireAdmin(ctx context.Context, users *repository.UserRepository) (*Principal, error) {
	p, err := RequirePrincipal(ctx)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(p.Role, models.RoleAdmin) {
		return nil, status.Error(codes.PermissionDenied, "only admin can perform this action")
	}
	if users == nil {
		return nil, status.Error(codes.Internal, "users repository not configured")
	}
	u, err := users.GetByEmail(ctx, p.Email)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "get user: %v", err)
	}
	if !u.IsAdmin() {
		return nil, status.Error(codes.PermissionDenied, "only admin can perform this action")
	}
	return p, nil
}
