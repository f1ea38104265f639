package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"research-agent/client/internal/interfaces/mocks"
	"research-agent/client/internal/model"
	"research-agent/client/internal/store"
)

func TestSessionStore_CheckAuth(t *testing.T) {
	ctx := context.Background()

	t.Run("authenticated session", func(t *testing.T) {
		backend := mocks.NewMockAuthAPI(t)
		backend.On("PrimeCSRF", ctx).Return(nil).Once()
		backend.On("CurrentUser", ctx).
			Return(&model.User{ID: 1, Username: "ada", HasAPIKey: true}, nil).Once()
		s := store.NewSessionStore(backend)

		s.CheckAuth(ctx)

		user := s.User()
		require.NotNil(t, user)
		assert.Equal(t, "ada", user.Username)
		assert.False(t, s.IsLoading())
	})

	t.Run("anonymous session", func(t *testing.T) {
		backend := mocks.NewMockAuthAPI(t)
		backend.On("PrimeCSRF", ctx).Return(nil).Once()
		backend.On("CurrentUser", ctx).Return(nil, nil).Once()
		s := store.NewSessionStore(backend)

		s.CheckAuth(ctx)

		assert.Nil(t, s.User())
	})

	t.Run("failures leave the session anonymous", func(t *testing.T) {
		backend := mocks.NewMockAuthAPI(t)
		backend.On("PrimeCSRF", ctx).Return(errors.New("connection refused")).Once()
		s := store.NewSessionStore(backend)

		s.CheckAuth(ctx)

		assert.Nil(t, s.User())
		backend.AssertNotCalled(t, "CurrentUser", mock.Anything)
	})
}

func TestSessionStore_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		backend := mocks.NewMockAuthAPI(t)
		backend.On("Login", ctx, "ada", "correct horse").
			Return(&model.User{ID: 1, Username: "ada"}, nil).Once()
		s := store.NewSessionStore(backend)

		require.NoError(t, s.Login(ctx, "ada", "correct horse"))

		require.NotNil(t, s.User())
		assert.Equal(t, "ada", s.User().Username)
		assert.NoError(t, s.Err())
	})

	t.Run("failure records the error", func(t *testing.T) {
		backend := mocks.NewMockAuthAPI(t)
		backend.On("Login", ctx, "ada", "wrong").
			Return(nil, errors.New("invalid credentials")).Once()
		s := store.NewSessionStore(backend)

		err := s.Login(ctx, "ada", "wrong")

		assert.Error(t, err)
		assert.Error(t, s.Err())
		assert.Nil(t, s.User())
	})
}

func TestSessionStore_Logout(t *testing.T) {
	ctx := context.Background()
	backend := mocks.NewMockAuthAPI(t)
	backend.On("Login", ctx, "ada", "pw").
		Return(&model.User{ID: 1, Username: "ada"}, nil).Once()
	backend.On("Logout", ctx).Return(nil).Once()
	s := store.NewSessionStore(backend)
	require.NoError(t, s.Login(ctx, "ada", "pw"))

	fired := 0
	s.OnLogout(func() { fired++ })

	require.NoError(t, s.Logout(ctx))

	assert.Nil(t, s.User())
	assert.Equal(t, 1, fired)
}

func TestSessionStore_APIKey(t *testing.T) {
	ctx := context.Background()
	backend := mocks.NewMockAuthAPI(t)
	backend.On("Login", ctx, "ada", "pw").
		Return(&model.User{ID: 1, Username: "ada"}, nil).Once()
	backend.On("SaveAPIKey", ctx, "sk-secret").Return("sk-...ret", nil).Once()
	backend.On("DeleteAPIKey", ctx).Return(nil).Once()
	s := store.NewSessionStore(backend)
	require.NoError(t, s.Login(ctx, "ada", "pw"))

	require.NoError(t, s.SaveAPIKey(ctx, "sk-secret"))
	user := s.User()
	require.NotNil(t, user)
	assert.True(t, user.HasAPIKey)
	assert.Equal(t, "sk-...ret", user.APIKeyPreview)

	require.NoError(t, s.DeleteAPIKey(ctx))
	user = s.User()
	require.NotNil(t, user)
	assert.False(t, user.HasAPIKey)
	assert.Empty(t, user.APIKeyPreview)
}

func TestSessionStore_UserReturnsCopy(t *testing.T) {
	ctx := context.Background()
	backend := mocks.NewMockAuthAPI(t)
	backend.On("Login", ctx, "ada", "pw").
		Return(&model.User{ID: 1, Username: "ada"}, nil).Once()
	s := store.NewSessionStore(backend)
	require.NoError(t, s.Login(ctx, "ada", "pw"))

	s.User().Username = "mallory"

	assert.Equal(t, "ada", s.User().Username)
}
