package grpc

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const sessionUserKey ctxKey = "sessionUser"

// SessionUser returns the user name of the session the call was made
// under, if the caller presented a valid session token.
func SessionUser(ctx context.Context) (string, bool) {
	u, ok := ctx.Value(sessionUserKey).(string)
	return u, ok
}

// sessionInterceptor resolves the optional session token of a client that
// is already logged in. None of the protocol calls require a session, so a
// missing, expired or forged token leaves the call anonymous.
func (s *GRPCServer) sessionInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	var token string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.SessionTokenHeaderName); len(values) > 0 {
			token = values[0]
		}
	}

	if token != "" {
		claims, err := auth.ParseSessionToken(token, s.jwtSecret)
		if err != nil {
			s.logger.Warn(ctx, "ignoring session token", "method", info.FullMethod, "error", err.Error())
		} else {
			ctx = context.WithValue(ctx, sessionUserKey, claims.Subject)
		}
	}

	return handler(ctx, req)
}

// loggingInterceptor records method, outcome code and latency of every
// unary call. Request payloads are not logged.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()

	resp, err := handler(ctx, req)

	code := status.Code(err)
	args := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
	if user, ok := SessionUser(ctx); ok {
		args = append(args, "session_user", user)
	}

	switch code {
	case codes.OK:
		s.logger.Debug(ctx, "request served", args...)
	case codes.Internal, codes.Unknown:
		s.logger.Error(ctx, "request failed", args...)
	default:
		s.logger.Info(ctx, "request rejected", args...)
	}

	return resp, err
}

// recoveryInterceptor turns a handler panic into codes.Internal so one bad
// request cannot take the process down.
func (s *GRPCServer) recoveryInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error(ctx, "panic in handler", "method", info.FullMethod, "panic", fmt.Sprint(r))
			resp, err = nil, status.Error(codes.Internal, "internal error")
		}
	}()
	return handler(ctx, req)
}
