// Package services contains server-side business logic. This file
// implements AuthService, the verifier side of the Chaum–Pedersen
// protocol: Register, CreateChallenge and Verify.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/group"
	"github.com/dmitrijs2005/zkpauth/internal/logging"
	"github.com/dmitrijs2005/zkpauth/internal/server/auth"
	"github.com/dmitrijs2005/zkpauth/internal/server/config"
	"github.com/dmitrijs2005/zkpauth/internal/server/models"
	"github.com/dmitrijs2005/zkpauth/internal/server/repositories/challenges"
	"github.com/dmitrijs2005/zkpauth/internal/server/repositories/credentials"
	"github.com/dmitrijs2005/zkpauth/internal/server/repositories/repomanager"
)

// LoginState is the per-login state. A login moves from StateInit to
// StateChallengeIssued on CreateChallenge and from there exactly once to
// StateVerified or StateFailed on Verify.
type LoginState string

const (
	StateInit            LoginState = "init"
	StateChallengeIssued LoginState = "challenge_issued"
	StateVerified        LoginState = "verified"
	StateFailed          LoginState = "failed"
)

// AuthService runs the three protocol phases against the credential store
// and the challenge ledger. It is safe for concurrent use.
type AuthService struct {
	credentials                  credentials.Repository
	challenges                   challenges.Repository
	params                       group.Params
	jwtSecret                    []byte
	sessionTokenValidityDuration time.Duration
	logger                       logging.Logger
}

// NewAuthService wires an AuthService to the stores owned by m.
func NewAuthService(m repomanager.RepositoryManager, cfg *config.Config, l logging.Logger) *AuthService {
	return &AuthService{
		credentials:                  m.Credentials(),
		challenges:                   m.Challenges(),
		params:                       group.Default,
		jwtSecret:                    []byte(cfg.SecretKey),
		sessionTokenValidityDuration: cfg.SessionTokenValidityDuration,
		logger:                       l.With("module", "auth_service"),
	}
}

// Register binds userName to the commitment pair (y1, y2), replacing any
// earlier registration. No proof of the secret is required here; it is
// proven at login. The returned string is a human-readable acknowledgement.
func (s *AuthService) Register(ctx context.Context, userName string, y1, y2 uint64) (string, error) {
	if userName == "" {
		return "", fmt.Errorf("%w: empty username", common.ErrInvalidInput)
	}
	if !s.params.IsElement(y1) || !s.params.IsElement(y2) {
		return "", fmt.Errorf("%w: commitment out of range [1, %d]", common.ErrInvalidInput, s.params.P-1)
	}

	identity := &models.Identity{UserName: userName, Y1: y1, Y2: y2, RegisteredAt: time.Now()}
	if err := s.credentials.Register(ctx, identity); err != nil {
		return "", fmt.Errorf("error registering user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "username", userName)
	return "New User Registered! " + userName, nil
}

// CreateChallenge records the prover's commitments (r1, r2) for userName
// and returns the issued challenge. Unknown users get common.ErrUserNotFound
// and no record is created.
func (s *AuthService) CreateChallenge(ctx context.Context, userName string, r1, r2 uint64) (*models.Challenge, error) {
	if userName == "" {
		return nil, fmt.Errorf("%w: empty username", common.ErrInvalidInput)
	}
	if !s.params.IsElement(r1) || !s.params.IsElement(r2) {
		return nil, fmt.Errorf("%w: commitment out of range [1, %d]", common.ErrInvalidInput, s.params.P-1)
	}

	ch, err := s.challenges.Create(ctx, userName, r1, r2)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			s.logger.Warn(ctx, "challenge requested for unknown user", "username", userName)
			return nil, err
		}
		return nil, fmt.Errorf("error creating challenge: %w", err)
	}

	s.logger.Info(ctx, "challenge issued", "username", userName, "auth_id", ch.AuthID, "state", StateChallengeIssued)
	return ch, nil
}

// Verify consumes the challenge authID and checks the response s:
//
//	G^s · y1^c ≡ r1 and H^s · y2^c ≡ r2 (mod P)
//
// On success it returns a fresh session token. The challenge is gone
// afterwards whatever the outcome, so an answer can be tried only once.
func (s *AuthService) Verify(ctx context.Context, authID string, resp uint64) (string, error) {
	if !s.params.IsScalar(resp) {
		return "", fmt.Errorf("%w: response out of range [0, %d]", common.ErrInvalidInput, s.params.Q-1)
	}

	ch, err := s.challenges.Consume(ctx, authID)
	if err != nil {
		return "", err
	}

	identity, err := s.credentials.Lookup(ctx, ch.UserName)
	if err != nil {
		s.logger.Warn(ctx, "identity vanished before verification", "username", ch.UserName, "auth_id", authID, "state", StateFailed)
		return "", err
	}

	if !s.check(identity, ch, resp) {
		s.logger.Warn(ctx, "verification failed", "username", ch.UserName, "auth_id", authID, "state", StateFailed)
		return "", common.ErrAuthenticationFailure
	}

	token, err := auth.GenerateSessionToken(ch.UserName, s.jwtSecret, s.sessionTokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrorInternal, err)
	}

	s.logger.Info(ctx, "verified", "username", ch.UserName, "auth_id", authID, "state", StateVerified)
	return token, nil
}

// check evaluates both verification equations before deciding, so the
// outcome does not depend on which one failed.
func (s *AuthService) check(identity *models.Identity, ch *models.Challenge, resp uint64) bool {
	p := s.params

	v1 := group.ModMul(group.ModPow(p.G, resp, p.P), group.ModPow(identity.Y1, ch.C, p.P), p.P)
	v2 := group.ModMul(group.ModPow(p.H, resp, p.P), group.ModPow(identity.Y2, ch.C, p.P), p.P)

	return (v1^ch.R1)|(v2^ch.R2) == 0
}
