package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	svc := &AuthService{Repo: newTestRepo(t)}
	ctx := context.Background()

	uid, err := svc.Register(ctx, "Alice", "alice@example.com", "secret")
	require.NoError(t, err)

	// duplicate email refused
	_, err = svc.Register(ctx, "Alice again", "alice@example.com", "secret")
	require.ErrorIs(t, err, ErrValidation)

	user, err := svc.Login(ctx, uid, "secret")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, "customer", user.Role)

	user, err = svc.Login(ctx, uid, "wrong")
	require.NoError(t, err)
	require.Nil(t, user)

	user, err = svc.Login(ctx, 424242, "secret")
	require.NoError(t, err)
	require.Nil(t, user)
}

func TestSessionLifecycle(t *testing.T) {
	svc := &AuthService{Repo: newTestRepo(t)}
	ctx := context.Background()

	uid, err := svc.Register(ctx, "Alice", "alice@example.com", "secret")
	require.NoError(t, err)

	sessionNo, err := svc.StartSession(ctx, uid, time.Now())
	require.NoError(t, err)
	require.NotZero(t, sessionNo)
	require.NoError(t, svc.EndSession(ctx, uid, sessionNo, time.Now()))
}
