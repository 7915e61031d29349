package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/zkpauth/internal/logging"
	pb "github.com/dmitrijs2005/zkpauth/internal/proto"
	"github.com/dmitrijs2005/zkpauth/internal/server/models"
	"google.golang.org/grpc"
)

// authSvc is the verifier surface the handlers call into.
type authSvc interface {
	Register(ctx context.Context, userName string, y1, y2 uint64) (string, error)
	CreateChallenge(ctx context.Context, userName string, r1, r2 uint64) (*models.Challenge, error)
	Verify(ctx context.Context, authID string, resp uint64) (string, error)
}

type GRPCServer struct {
	pb.UnimplementedAuthServer
	address   string
	auth      authSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, as authSvc, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		auth:      as,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.recoveryInterceptor, s.sessionInterceptor, s.loggingInterceptor))
	pb.RegisterAuthServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled,
// then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {

	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
