package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	pb "github.com/dmitrijs2005/zkpauth/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	msg, err := s.auth.Register(ctx, req.GetUser(), req.GetY1(), req.GetY2())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.RegisterResponse{Message: msg}, nil
}

func (s *GRPCServer) CreateAuthenticationChallenge(ctx context.Context, req *pb.AuthenticationChallengeRequest) (*pb.AuthenticationChallengeResponse, error) {

	ch, err := s.auth.CreateChallenge(ctx, req.GetUser(), req.GetR1(), req.GetR2())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.AuthenticationChallengeResponse{AuthId: ch.AuthID, C: ch.C}, nil
}

func (s *GRPCServer) VerifyAuthentication(ctx context.Context, req *pb.AuthenticationAnswerRequest) (*pb.AuthenticationAnswerResponse, error) {

	token, err := s.auth.Verify(ctx, req.GetAuthId(), req.GetS())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.AuthenticationAnswerResponse{SessionId: token}, nil
}

// toStatus maps service errors onto gRPC status codes. Anything unexpected
// is logged and reported as Internal without detail.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrUserNotFound):
		return status.Error(codes.NotFound, "user not found")
	case errors.Is(err, common.ErrChallengeNotFound):
		return status.Error(codes.NotFound, "challenge not found")
	case errors.Is(err, common.ErrAuthenticationFailure):
		return status.Error(codes.Unauthenticated, "authentication failure")
	default:
		s.logger.Error(ctx, err.Error())
		return status.Error(codes.Internal, "internal error")
	}
}
