package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	pb "github.com/dmitrijs2005/zkpauth/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.AuthClient

	mu      sync.RWMutex
	session string
}

func withSessionToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.SessionTokenHeaderName)
	md.Set(common.SessionTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// sessionInterceptor attaches the current session token, if any, to every
// outgoing call.
func (s *GRPCClient) sessionInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if token := s.Session(); token != "" {
		ctx = withSessionToken(ctx, token)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

// SetSession sets the token sent with later calls. An empty token stops
// sending one.
func (s *GRPCClient) SetSession(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = token
}

func (s *GRPCClient) Session() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// NewAuthClientService creates a client for endpointURL. A non-positive
// timeout leaves calls bounded only by the caller's context. Extra dial
// options are appended after the defaults.
func NewAuthClientService(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	err := c.InitGRPCClient(opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.sessionInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewAuthClient(conn)
	return nil
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Register(ctx context.Context, userName string, y1, y2 uint64) (string, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.RegisterRequest{User: userName, Y1: y1, Y2: y2}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return "", s.mapError(err, nil)
	}

	return resp.GetMessage(), nil
}

func (s *GRPCClient) CreateChallenge(ctx context.Context, userName string, r1, r2 uint64) (*Challenge, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.AuthenticationChallengeRequest{User: userName, R1: r1, R2: r2}

	resp, err := s.client.CreateAuthenticationChallenge(ctx, req)
	if err != nil {
		return nil, s.mapError(err, ErrUserNotFound)
	}

	return &Challenge{AuthID: resp.GetAuthId(), C: resp.GetC()}, nil
}

func (s *GRPCClient) VerifyAnswer(ctx context.Context, authID string, answer uint64) (string, error) {

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	req := &pb.AuthenticationAnswerRequest{AuthId: authID, S: answer}

	resp, err := s.client.VerifyAuthentication(ctx, req)
	if err != nil {
		return "", s.mapError(err, ErrChallengeNotFound)
	}

	return resp.GetSessionId(), nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

// mapError converts a gRPC status into a package sentinel. notFound is what
// codes.NotFound means for the call at hand; nil means the call has no
// lookup that can miss, so NotFound is reported like any other failure.
func (s *GRPCClient) mapError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.NotFound:
		if notFound != nil {
			return notFound
		}
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	}
	return fmt.Errorf("rpc error: %w", err)
}
