package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	fc := newFakeClient()
	svc := NewAuthService(fc)

	require.ErrorIs(t, svc.Login(context.Background(), ""), ErrEmptyAPIKey)
	assert.False(t, svc.LoggedIn())

	require.NoError(t, svc.Login(context.Background(), "secret"))
	assert.True(t, svc.LoggedIn())
}

func TestAuthService_LoginError(t *testing.T) {
	fc := newFakeClient()
	fc.loginErr = errBoom

	err := NewAuthService(fc).Login(context.Background(), "k")
	require.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "login error")
}

func TestAuthService_PingAndClose(t *testing.T) {
	fc := newFakeClient()
	svc := NewAuthService(fc)

	require.NoError(t, svc.Ping(context.Background()))
	fc.pingErr = errBoom
	require.ErrorIs(t, svc.Ping(context.Background()), errBoom)

	require.NoError(t, svc.Close(context.Background()))
	assert.True(t, fc.closed)
}
