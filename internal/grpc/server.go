//go:build grpcserver

package grpcserver

import (
	"context"
	"database/sql"
	"net"

	adminv1 "lostFoundManagement/api/admin/v1"
	userv1 "lostFoundManagement/api/user/v1"
	"lostFoundManagement/internal/auth"
	"lostFoundManagement/internal/config"
	"lostFoundManagement/repository"
	"lostFoundManagement/service"

	"google.golang.org/grpc"
)

const (
	healthCheckMethod = "/grpc.health.v1.Health/Check"
	loginMethod       = "/user.v1.UserService/Login"
	registerMethod    = "/user.v1.UserService/Register"
)

// StartGRPC starts the gRPC server on the configured address and returns a
// shutdown function. Login, Register and health checks bypass the auth
// interceptor; everything else needs a Bearer token.
func StartGRPC(cfg *config.Config, d *sql.DB) (func(context.Context) error, error) {
	if cfg == nil {
		panic("config is required")
	}

	addr := cfg.GRPC.Address
	if addr == "" {
		addr = ":50051"
	}
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	srv := grpc.NewServer(grpc.UnaryInterceptor(
		auth.NewUnaryAuthInterceptor(cfg.Auth.JWTSecret, healthCheckMethod, loginMethod, registerMethod)))

	users := repository.NewUserRepository(d)
	directory := service.NewUserDirectory(d)
	workflow := service.NewReportWorkflow(d)
	query := service.NewReportQuery(d)

	userv1.RegisterUserServiceServer(srv, &UserServer{
		Cfg:       cfg,
		Users:     users,
		Directory: directory,
		Workflow:  workflow,
		Query:     query,
	})
	adminv1.RegisterAdminServiceServer(srv, &AdminServer{
		Users:     users,
		Directory: directory,
		Registry:  service.NewAdminRegistry(d),
		Workflow:  workflow,
		Query:     query,
	})

	go func() { _ = srv.Serve(lis) }()

	return func(ctx context.Context) error {
		done := make(chan struct{})
		go func() { srv.GracefulStop(); close(done) }()
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			srv.Stop()
			return ctx.Err()
		}
	}, nil
}
