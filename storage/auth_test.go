package storage_test

import (
	"context"
	"testing"

	"github.com/fixitquick/fixitquick"
	"github.com/fixitquick/fixitquick/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	t.Parallel()

	t.Run("creates the account and logs it in", func(t *testing.T) {
		t.Parallel()

		a, _ := mustOpenAccessor(t)
		s := storage.NewAuthService(a, storage.NewBroker())
		ctx := context.Background()

		user, err := s.Register(ctx, fixitquick.Registration{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret",
		})

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.NotEmpty(t, user.ID)
		assert.False(t, user.DateJoined.IsZero())

		current, err := s.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, user.ID, current.ID)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		t.Parallel()

		a, _ := mustOpenAccessor(t)
		s := storage.NewAuthService(a, storage.NewBroker())

		_, err := s.Register(context.Background(), fixitquick.Registration{Username: "alice"})

		require.Error(t, err)
		assert.Equal(t, fixitquick.EINVALID, fixitquick.ErrorCode(err))
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		t.Parallel()

		a, _ := mustOpenAccessor(t)
		s := storage.NewAuthService(a, storage.NewBroker())

		_, err := s.Register(context.Background(), fixitquick.Registration{
			Username: "alice",
			Email:    "not-an-email",
			Password: "secret",
		})

		require.Error(t, err)
		assert.Equal(t, fixitquick.EINVALID, fixitquick.ErrorCode(err))
	})

	t.Run("rejects duplicate email case-insensitively", func(t *testing.T) {
		t.Parallel()

		a, _ := mustOpenAccessor(t)
		s := storage.NewAuthService(a, storage.NewBroker())
		ctx := context.Background()

		_, err := s.Register(ctx, fixitquick.Registration{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret",
		})
		require.NoError(t, err)

		_, err = s.Register(ctx, fixitquick.Registration{
			Username: "other",
			Email:    "ALICE@Example.COM",
			Password: "different",
		})

		require.Error(t, err)
		assert.Equal(t, fixitquick.ECONFLICT, fixitquick.ErrorCode(err))
	})

	t.Run("obfuscates the stored password", func(t *testing.T) {
		t.Parallel()

		a, kv := mustOpenAccessor(t)
		s := storage.NewAuthService(a, storage.NewBroker())
		ctx := context.Background()

		_, err := s.Register(ctx, fixitquick.Registration{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret",
		})
		require.NoError(t, err)

		raw, ok, err := kv.Get(ctx, storage.KeyUsers)
		require.NoError(t, err)
		require.True(t, ok)
		assert.NotContains(t, raw, `"secret"`)
		assert.Contains(t, raw, storage.Obfuscate("secret"))
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	register := func(t *testing.T) (*storage.AuthService, context.Context) {
		t.Helper()
		a, _ := mustOpenAccessor(t)
		s := storage.NewAuthService(a, storage.NewBroker())
		ctx := context.Background()
		_, err := s.Register(ctx, fixitquick.Registration{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret",
		})
		require.NoError(t, err)
		require.NoError(t, s.Logout(ctx))
		return s, ctx
	}

	t.Run("accepts valid credentials", func(t *testing.T) {
		t.Parallel()

		s, ctx := register(t)

		user, err := s.Login(ctx, "alice@example.com", "secret")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)

		current, err := s.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, user.ID, current.ID)
	})

	t.Run("matches email case-insensitively", func(t *testing.T) {
		t.Parallel()

		s, ctx := register(t)

		_, err := s.Login(ctx, "Alice@EXAMPLE.com", "secret")
		require.NoError(t, err)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		t.Parallel()

		s, ctx := register(t)

		_, err := s.Login(ctx, "alice@example.com", "wrong")

		require.Error(t, err)
		assert.Equal(t, fixitquick.EUNAUTHORIZED, fixitquick.ErrorCode(err))
	})

	t.Run("rejects an unknown email", func(t *testing.T) {
		t.Parallel()

		s, ctx := register(t)

		_, err := s.Login(ctx, "bob@example.com", "secret")

		require.Error(t, err)
		assert.Equal(t, fixitquick.EUNAUTHORIZED, fixitquick.ErrorCode(err))
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Parallel()

	a, _ := mustOpenAccessor(t)
	s := storage.NewAuthService(a, storage.NewBroker())
	ctx := context.Background()

	_, err := s.Register(ctx, fixitquick.Registration{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret",
	})
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx))

	_, err = s.CurrentUser(ctx)
	require.Error(t, err)
	assert.Equal(t, fixitquick.EUNAUTHORIZED, fixitquick.ErrorCode(err))

	// The account survives logout.
	_, err = s.Login(ctx, "alice@example.com", "secret")
	require.NoError(t, err)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	t.Parallel()

	t.Run("merges into session and account list", func(t *testing.T) {
		t.Parallel()

		a, _ := mustOpenAccessor(t)
		s := storage.NewAuthService(a, storage.NewBroker())
		ctx := context.Background()

		_, err := s.Register(ctx, fixitquick.Registration{
			Username: "alice",
			Email:    "alice@example.com",
			Password: "secret",
		})
		require.NoError(t, err)

		username := "alicia"
		updated, err := s.UpdateProfile(ctx, fixitquick.UserUpdate{Username: &username})
		require.NoError(t, err)
		assert.Equal(t, "alicia", updated.Username)
		assert.Equal(t, "alice@example.com", updated.Email)

		// The all-users copy was updated too: log out and back in.
		require.NoError(t, s.Logout(ctx))
		user, err := s.Login(ctx, "alice@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, "alicia", user.Username)
	})

	t.Run("requires a session", func(t *testing.T) {
		t.Parallel()

		a, _ := mustOpenAccessor(t)
		s := storage.NewAuthService(a, storage.NewBroker())

		username := "alicia"
		_, err := s.UpdateProfile(context.Background(), fixitquick.UserUpdate{Username: &username})

		require.Error(t, err)
		assert.Equal(t, fixitquick.EUNAUTHORIZED, fixitquick.ErrorCode(err))
	})
}
