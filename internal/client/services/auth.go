// Package services contains application services for the prover CLI.
// This file defines the authentication service: register and the
// three-step login that proves knowledge of the password-derived secret.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/zkpauth/internal/client/client"
	"github.com/dmitrijs2005/zkpauth/internal/prover"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Register: publish y1, y2 for the secret derived from password.
//   - Login: commit, answer the challenge and return the session id.
//     Later calls carry the session id until Logout.
//   - Logout: stop sending the session id.
//   - Close: release underlying client resources.
//
// The password never leaves the process. All methods honor context
// cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, userName string, password []byte) (string, error)
	Login(ctx context.Context, userName string, password []byte) (string, error)
	Logout(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client.
type authService struct {
	client client.Client
}

// NewAuthService constructs an AuthService bound to the given API client.
func NewAuthService(client client.Client) AuthService {
	return &authService{client: client}
}

// Register derives the secret x from (userName, password) and registers
// y1 = G^x, y2 = H^x. Registering again under the same name replaces the
// previous commitments on the server.
func (a *authService) Register(ctx context.Context, userName string, password []byte) (string, error) {
	if userName == "" {
		return "", fmt.Errorf("%w: empty username", client.ErrInvalidInput)
	}

	x := prover.SecretFromPassword(userName, password)
	y1, y2 := prover.Commit(x)

	msg, err := a.client.Register(ctx, userName, y1, y2)
	if err != nil {
		return "", fmt.Errorf("register error: %w", err)
	}
	return msg, nil
}

// Login runs one full protocol round and returns the session id issued on
// success. A fresh k is drawn for every attempt.
func (a *authService) Login(ctx context.Context, userName string, password []byte) (string, error) {
	if userName == "" {
		return "", fmt.Errorf("%w: empty username", client.ErrInvalidInput)
	}

	x := prover.SecretFromPassword(userName, password)

	cm, err := prover.NewCommitment()
	if err != nil {
		return "", fmt.Errorf("commitment error: %w", err)
	}

	ch, err := a.client.CreateChallenge(ctx, userName, cm.R1, cm.R2)
	if err != nil {
		return "", fmt.Errorf("challenge error: %w", err)
	}

	session, err := a.client.VerifyAnswer(ctx, ch.AuthID, prover.Respond(cm.K, ch.C, x))
	if err != nil {
		return "", fmt.Errorf("verification error: %w", err)
	}
	a.client.SetSession(session)
	return session, nil
}

// Logout drops the session id held by the client. The server keeps no
// session state, so nothing is sent.
func (a *authService) Logout(ctx context.Context) error {
	a.client.SetSession("")
	return nil
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
