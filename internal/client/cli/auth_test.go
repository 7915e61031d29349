package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/dmitrijs2005/zkpauth/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubInputs(t *testing.T, username string, password []byte) {
	t.Helper()
	origPL, origPP := promptLine, promptPassword
	promptLine = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	promptPassword = func(_ *bufio.Reader, _ string, _ io.Writer) ([]byte, error) {
		return append([]byte(nil), password...), nil
	}
	t.Cleanup(func() {
		promptLine = origPL
		promptPassword = origPP
	})
}

type fakeAuth struct {
	regUser string
	regPass []byte
	regMsg  string
	regErr  error

	loginUser    string
	loginPass    []byte
	loginSession string
	loginErr     error

	loggedOut bool
	closed    bool
}

func (f *fakeAuth) Register(_ context.Context, user string, pass []byte) (string, error) {
	f.regUser, f.regPass = user, append([]byte(nil), pass...)
	return f.regMsg, f.regErr
}
func (f *fakeAuth) Login(_ context.Context, user string, pass []byte) (string, error) {
	f.loginUser, f.loginPass = user, append([]byte(nil), pass...)
	return f.loginSession, f.loginErr
}
func (f *fakeAuth) Logout(ctx context.Context) error {
	f.loggedOut = true
	return nil
}
func (f *fakeAuth) Close(ctx context.Context) error {
	f.closed = true
	return nil
}

func newTestApp(f *fakeAuth) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{authService: f, reader: rdr(""), out: &out}, &out
}

func TestRegister_Success(t *testing.T) {
	f := &fakeAuth{regMsg: "New User Registered! alice"}
	a, out := newTestApp(f)
	stubInputs(t, "alice", []byte("secret"))

	require.NoError(t, a.Register(context.Background()))
	assert.Equal(t, "alice", f.regUser)
	assert.Equal(t, []byte("secret"), f.regPass)
	assert.Contains(t, out.String(), "New User Registered! alice")
	assert.False(t, a.isLoggedIn())
}

func TestRegister_Error(t *testing.T) {
	f := &fakeAuth{regErr: client.ErrUnavailable}
	a, _ := newTestApp(f)
	stubInputs(t, "alice", []byte("secret"))

	assert.ErrorIs(t, a.Register(context.Background()), client.ErrUnavailable)
}

func TestRegister_InputError(t *testing.T) {
	f := &fakeAuth{}
	a, _ := newTestApp(f)

	origPP := promptPassword
	promptPassword = func(*bufio.Reader, string, io.Writer) ([]byte, error) { return nil, errors.New("no tty") }
	t.Cleanup(func() { promptPassword = origPP })
	origPL := promptLine
	promptLine = func(*bufio.Reader, string, io.Writer) (string, error) { return "alice", nil }
	t.Cleanup(func() { promptLine = origPL })

	assert.Error(t, a.Register(context.Background()))
	assert.Empty(t, f.regUser)
}

func TestLogin_Success(t *testing.T) {
	f := &fakeAuth{loginSession: "tok"}
	a, out := newTestApp(f)
	stubInputs(t, "alice", []byte("secret"))

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, "alice", f.loginUser)
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(alice)", a.getStatus())
	assert.Contains(t, out.String(), "Session id: tok")
}

func TestLogin_FailureKeepsPreviousSession(t *testing.T) {
	f := &fakeAuth{loginErr: fmt.Errorf("verification error: %w", client.ErrUnauthorized)}
	a, _ := newTestApp(f)
	a.userName, a.sessionID = "bob", "old"
	stubInputs(t, "alice", []byte("wrong"))

	err := a.Login(context.Background())
	assert.ErrorIs(t, err, client.ErrUnauthorized)
	assert.Equal(t, "bob", a.userName)
	assert.Equal(t, "old", a.sessionID)
}

func TestLogoutAndWhoAmI(t *testing.T) {
	f := &fakeAuth{}
	a, out := newTestApp(f)
	a.userName, a.sessionID = "alice", "tok"

	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "alice, session id: tok")

	require.NoError(t, a.Logout(context.Background()))
	assert.True(t, f.loggedOut)
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "", a.getStatus())

	out.Reset()
	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Equal(t, "Not logged in\n", out.String())
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "user not found", describe(fmt.Errorf("x: %w", client.ErrUserNotFound)))
	assert.Equal(t, "challenge expired or already used", describe(client.ErrChallengeNotFound))
	assert.Equal(t, "wrong password", describe(client.ErrUnauthorized))
	assert.Equal(t, "server unavailable", describe(client.ErrUnavailable))
	assert.Equal(t, "boom", describe(errors.New("boom")))
}
