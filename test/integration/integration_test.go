package integration

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelbase-go/modelbase/pkg/collect"
	"github.com/modelbase-go/modelbase/pkg/modelbase"
	"github.com/modelbase-go/modelbase/pkg/sqlerr"
	"github.com/modelbase-go/modelbase/pkg/store"
	gormstore "github.com/modelbase-go/modelbase/pkg/store/gorm"
)

func TestStores(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()

	tc, err := NewTestContext(ctx)
	require.NoError(t, err)
	defer tc.Close(ctx)

	log := zerolog.Nop()
	users := gormstore.NewUsersStore(tc.DB, log)
	sessions := gormstore.NewSessionsStore(tc.DB, log)

	birthDate := modelbase.NewDate(1990, time.June, 15)
	alice := store.User{
		Email:        "alice@example.com",
		PasswordHash: modelbase.SecretString("bcrypt$alice"),
		Balance:      decimal.RequireFromString("120.50"),
		BirthDate:    &birthDate,
		IsActive:     true,
	}

	t.Run("create and fetch user", func(t *testing.T) {
		created, err := users.CreateUser(ctx, alice)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, created.ID)
		alice = created

		fetched, err := users.FetchUser(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, "alice@example.com", fetched.Email)
		assert.Equal(t, "bcrypt$alice", fetched.PasswordHash.Reveal())
		assert.True(t, fetched.Balance.Equal(decimal.RequireFromString("120.50")))
		require.NotNil(t, fetched.BirthDate)
		assert.Equal(t, "1990-06-15", fetched.BirthDate.String())
	})

	t.Run("fetch unknown user is nil", func(t *testing.T) {
		fetched, err := users.FetchUser(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, fetched)
	})

	t.Run("get user by email", func(t *testing.T) {
		found, err := users.GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, found.ID)

		_, err = users.GetUserByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, collect.ErrEmptyResult)
	})

	t.Run("duplicate email is a unique violation", func(t *testing.T) {
		dup := alice
		dup.ID = uuid.Nil

		_, err := users.CreateUser(ctx, dup)
		require.Error(t, err)
		assert.ErrorIs(t, err, sqlerr.ErrUniqueViolation)

		var driverErr *sqlerr.DriverError
		require.ErrorAs(t, err, &driverErr)
		assert.Equal(t, "users_email_key", driverErr.Constraint)
	})

	t.Run("list users", func(t *testing.T) {
		bob := store.User{
			Email:        "bob@example.com",
			PasswordHash: modelbase.SecretString("bcrypt$bob"),
			IsActive:     true,
		}
		_, err := users.CreateUser(ctx, bob)
		require.NoError(t, err)

		all, err := users.ListUsers(ctx, 10, 0)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("update balance", func(t *testing.T) {
		err := users.UpdateBalance(ctx, alice.ID, decimal.RequireFromString("-20.50"))
		require.NoError(t, err)

		fetched, err := users.FetchUser(ctx, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.True(t, fetched.Balance.Equal(decimal.RequireFromString("100")))
	})

	t.Run("sessions", func(t *testing.T) {
		created, err := sessions.CreateSession(ctx, store.Session{
			UserID:    alice.ID,
			Token:     modelbase.SecretString("tok-alice-1"),
			ExpiresAt: time.Now().Add(time.Hour),
		})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, created.ID)

		fetched, err := sessions.FetchSession(ctx, "tok-alice-1")
		require.NoError(t, err)
		require.NotNil(t, fetched)
		assert.Equal(t, alice.ID, fetched.UserID)

		live, err := sessions.ListUserSessions(ctx, alice.ID)
		require.NoError(t, err)
		assert.Len(t, live, 1)
	})

	t.Run("purge expired sessions", func(t *testing.T) {
		_, err := sessions.CreateSession(ctx, store.Session{
			UserID:    alice.ID,
			Token:     modelbase.SecretString("tok-alice-stale"),
			ExpiresAt: time.Now().Add(-time.Hour),
		})
		require.NoError(t, err)

		// Expired tokens are invisible to fetch even before the purge.
		fetched, err := sessions.FetchSession(ctx, "tok-alice-stale")
		require.NoError(t, err)
		assert.Nil(t, fetched)

		require.NoError(t, sessions.PurgeExpired(ctx))

		live, err := sessions.ListUserSessions(ctx, alice.ID)
		require.NoError(t, err)
		assert.Len(t, live, 1)
	})

	t.Run("delete user cascades to sessions", func(t *testing.T) {
		require.NoError(t, users.DeleteUser(ctx, alice.ID))

		fetched, err := users.FetchUser(ctx, alice.ID)
		require.NoError(t, err)
		assert.Nil(t, fetched)

		live, err := sessions.ListUserSessions(ctx, alice.ID)
		require.NoError(t, err)
		assert.Empty(t, live)
	})
}
