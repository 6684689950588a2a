package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/common"
	"github.com/YOUSSEF-MOKNIA/EduHupApp/internal/session"
)

func TestLogin_PassesCredentialsToController(t *testing.T) {
	sess := &fakeSession{state: session.StateAnonymous}
	a, _ := newTestApp(sess, &fakeClient{}, "", "")

	stubTextInputs(t, "alice@example.com")
	stubPasswords(t, "s3cret")

	err := a.Login(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", sess.loginIdentifier)
	assert.Equal(t, "s3cret", sess.loginPassword)
}

func TestLogin_RejectedPrintsFixedMessage(t *testing.T) {
	sess := &fakeSession{state: session.StateAnonymous, loginErr: common.ErrInvalidCredentials}
	a, out := newTestApp(sess, &fakeClient{}, "", "")

	stubTextInputs(t, "alice")
	stubPasswords(t, "wrong")

	err := a.Login(context.Background())

	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Contains(t, out.String(), "Incorrect Email/Username or Password")
}

func TestRegister_CollectsForm(t *testing.T) {
	sess := &fakeSession{state: session.StateAnonymous, registerMsg: "User registered successfully"}
	a, out := newTestApp(sess, &fakeClient{}, "", "")

	stubTextInputs(t, "Alice", "Smith", "alice", "alice@example.com", "")
	stubPasswords(t, "s3cret", "s3cret")

	err := a.Register(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Alice", sess.registerData.FirstName)
	assert.Equal(t, "Smith", sess.registerData.LastName)
	assert.Equal(t, "alice", sess.registerData.Username)
	assert.Equal(t, "alice@example.com", sess.registerData.Email)
	assert.Equal(t, "s3cret", sess.registerData.Password)
	assert.Nil(t, sess.registerData.ProfilePicture)
	assert.Contains(t, out.String(), "User registered successfully")
}

func TestRegister_AttachesProfilePicture(t *testing.T) {
	sess := &fakeSession{state: session.StateAnonymous, registerMsg: "User registered successfully"}
	a, _ := newTestApp(sess, &fakeClient{}, "", "")

	stubTextInputs(t, "Alice", "Smith", "alice", "alice@example.com", "/tmp/avatars/me.png")
	stubPasswords(t, "s3cret", "s3cret")

	orig := readFile
	readFile = func(path string) ([]byte, error) {
		assert.Equal(t, "/tmp/avatars/me.png", path)
		return []byte("png-bytes"), nil
	}
	t.Cleanup(func() { readFile = orig })

	err := a.Register(context.Background())

	require.NoError(t, err)
	require.NotNil(t, sess.registerData.ProfilePicture)
	assert.Equal(t, "me.png", sess.registerData.ProfilePicture.Filename)
	assert.Equal(t, []byte("png-bytes"), sess.registerData.ProfilePicture.Data)
}

func TestRegister_MismatchPrintsValidationMessage(t *testing.T) {
	sess := &fakeSession{state: session.StateAnonymous, registerErr: common.ErrPasswordMismatch}
	a, out := newTestApp(sess, &fakeClient{}, "", "")

	stubTextInputs(t, "Alice", "Smith", "alice", "alice@example.com", "")
	stubPasswords(t, "s3cret", "different")

	err := a.Register(context.Background())

	require.ErrorIs(t, err, common.ErrPasswordMismatch)
	assert.Contains(t, out.String(), "Passwords do not match")
}

func TestRegister_UnreadablePictureAborts(t *testing.T) {
	sess := &fakeSession{state: session.StateAnonymous}
	a, out := newTestApp(sess, &fakeClient{}, "", "")

	stubTextInputs(t, "Alice", "Smith", "alice", "alice@example.com", "/nope/missing.png")
	stubPasswords(t, "s3cret", "s3cret")

	orig := readFile
	readFile = func(string) ([]byte, error) { return nil, errors.New("no such file") }
	t.Cleanup(func() { readFile = orig })

	err := a.Register(context.Background())

	require.Error(t, err)
	assert.Empty(t, sess.registerData.Username, "controller must not be reached")
	assert.Contains(t, out.String(), "Could not read /nope/missing.png")
}

func TestLogout_ConfirmedPassesTrue(t *testing.T) {
	sess := &fakeSession{state: session.StateAuthenticated}
	a, _ := newTestApp(sess, &fakeClient{}, "abc", "y\n")

	err := a.Logout(context.Background())

	require.NoError(t, err)
	assert.True(t, sess.logoutCalled)
	assert.True(t, sess.confirmResult)
}

func TestLogout_DeclinedPassesFalse(t *testing.T) {
	sess := &fakeSession{state: session.StateAuthenticated}
	a, _ := newTestApp(sess, &fakeClient{}, "abc", "n\n")

	err := a.Logout(context.Background())

	require.NoError(t, err)
	assert.True(t, sess.logoutCalled)
	assert.False(t, sess.confirmResult)
}

func TestLogout_NotLoggedIn(t *testing.T) {
	sess := &fakeSession{state: session.StateAnonymous}
	a, out := newTestApp(sess, &fakeClient{}, "", "")

	err := a.Logout(context.Background())

	require.NoError(t, err)
	assert.False(t, sess.logoutCalled)
	assert.Contains(t, out.String(), "Not logged in.")
}
