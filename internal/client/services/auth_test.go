package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/zkpauth/internal/client/client"
	"github.com/dmitrijs2005/zkpauth/internal/group"
	"github.com/dmitrijs2005/zkpauth/internal/prover"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fake client ----

// fakeClient plays the verifier in memory so Login can be checked against
// the real verification equations.
type fakeClient struct {
	CloseErr     error
	RegisterErr  error
	ChallengeErr error
	VerifyErr    error

	C uint64

	users   map[string][2]uint64
	pending map[string][3]uint64 // r1, r2, c
	owner   map[string]string

	session string
	closed  bool
}

func newFakeClient(c uint64) *fakeClient {
	return &fakeClient{
		C:       c,
		users:   map[string][2]uint64{},
		pending: map[string][3]uint64{},
		owner:   map[string]string{},
	}
}

func (f *fakeClient) Close() error {
	f.closed = true
	return f.CloseErr
}

func (f *fakeClient) SetSession(token string) {
	f.session = token
}

func (f *fakeClient) Register(ctx context.Context, userName string, y1, y2 uint64) (string, error) {
	if f.RegisterErr != nil {
		return "", f.RegisterErr
	}
	f.users[userName] = [2]uint64{y1, y2}
	return "New User Registered! " + userName, nil
}

func (f *fakeClient) CreateChallenge(ctx context.Context, userName string, r1, r2 uint64) (*client.Challenge, error) {
	if f.ChallengeErr != nil {
		return nil, f.ChallengeErr
	}
	if _, ok := f.users[userName]; !ok {
		return nil, client.ErrUserNotFound
	}
	id := "auth-" + userName
	f.pending[id] = [3]uint64{r1, r2, f.C}
	f.owner[id] = userName
	return &client.Challenge{AuthID: id, C: f.C}, nil
}

func (f *fakeClient) VerifyAnswer(ctx context.Context, authID string, s uint64) (string, error) {
	if f.VerifyErr != nil {
		return "", f.VerifyErr
	}
	p, ok := f.pending[authID]
	if !ok {
		return "", client.ErrChallengeNotFound
	}
	delete(f.pending, authID)

	y := f.users[f.owner[authID]]
	v1 := group.ModMul(group.ModPow(group.G, s, group.P), group.ModPow(y[0], p[2], group.P), group.P)
	v2 := group.ModMul(group.ModPow(group.H, s, group.P), group.ModPow(y[1], p[2], group.P), group.P)
	if v1 != p[0] || v2 != p[1] {
		return "", client.ErrUnauthorized
	}
	return "session-" + f.owner[authID], nil
}

// ---- tests ----

func TestRegister_SendsCommitments(t *testing.T) {
	f := newFakeClient(7)
	svc := NewAuthService(f)

	msg, err := svc.Register(context.Background(), "alice", []byte("42"))
	require.NoError(t, err)
	assert.Equal(t, "New User Registered! alice", msg)
	assert.Equal(t, [2]uint64{58715, 405029}, f.users["alice"])
}

func TestRegister_DerivedSecret(t *testing.T) {
	f := newFakeClient(7)
	svc := NewAuthService(f)

	_, err := svc.Register(context.Background(), "alice", []byte("correct horse"))
	require.NoError(t, err)

	y1, y2 := prover.Commit(prover.DeriveSecret("alice", []byte("correct horse")))
	assert.Equal(t, [2]uint64{y1, y2}, f.users["alice"])
}

func TestRegister_Errors(t *testing.T) {
	f := newFakeClient(7)
	svc := NewAuthService(f)

	_, err := svc.Register(context.Background(), "", []byte("pw"))
	assert.ErrorIs(t, err, client.ErrInvalidInput)

	f.RegisterErr = client.ErrUnavailable
	_, err = svc.Register(context.Background(), "alice", []byte("pw"))
	assert.ErrorIs(t, err, client.ErrUnavailable)
}

func TestLogin_Success(t *testing.T) {
	for _, c := range []uint64{0, 1, 7, group.Q - 1} {
		f := newFakeClient(c)
		svc := NewAuthService(f)
		ctx := context.Background()

		_, err := svc.Register(ctx, "alice", []byte("hunter2"))
		require.NoError(t, err)

		session, err := svc.Login(ctx, "alice", []byte("hunter2"))
		require.NoError(t, err, "c=%d", c)
		assert.Equal(t, "session-alice", session)
		assert.Equal(t, "session-alice", f.session)
		assert.Empty(t, f.pending)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	f := newFakeClient(7)
	svc := NewAuthService(f)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", []byte("hunter2"))
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", []byte("hunter3"))
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Empty(t, f.session)
}

func TestLogout_DropsSession(t *testing.T) {
	f := newFakeClient(7)
	svc := NewAuthService(f)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", []byte("hunter2"))
	require.NoError(t, err)
	_, err = svc.Login(ctx, "alice", []byte("hunter2"))
	require.NoError(t, err)
	require.Equal(t, "session-alice", f.session)

	require.NoError(t, svc.Logout(ctx))
	assert.Empty(t, f.session)
}

func TestLogin_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("empty username", func(t *testing.T) {
		_, err := NewAuthService(newFakeClient(7)).Login(ctx, "", []byte("pw"))
		assert.ErrorIs(t, err, client.ErrInvalidInput)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := NewAuthService(newFakeClient(7)).Login(ctx, "bob", []byte("pw"))
		assert.ErrorIs(t, err, client.ErrUserNotFound)
	})

	t.Run("challenge transport error", func(t *testing.T) {
		f := newFakeClient(7)
		f.ChallengeErr = client.ErrUnavailable
		_, err := NewAuthService(f).Login(ctx, "bob", []byte("pw"))
		assert.ErrorIs(t, err, client.ErrUnavailable)
	})

	t.Run("verify error", func(t *testing.T) {
		f := newFakeClient(7)
		f.users["bob"] = [2]uint64{1, 1}
		f.VerifyErr = errors.New("boom")
		_, err := NewAuthService(f).Login(ctx, "bob", []byte("pw"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "verification error")
	})
}

func TestClose(t *testing.T) {
	f := newFakeClient(7)
	svc := NewAuthService(f)

	require.NoError(t, svc.Close(context.Background()))
	assert.True(t, f.closed)

	f.CloseErr = errors.New("close")
	assert.Error(t, svc.Close(context.Background()))
}
