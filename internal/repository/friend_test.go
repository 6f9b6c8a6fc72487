package repository

import (
	"context"
	"testing"

	"mosaic/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedUsers(t *testing.T, db *gorm.DB, names ...string) []models.User {
	t.Helper()
	users := make([]models.User, 0, len(names))
	for _, name := range names {
		users = append(users, models.User{
			Username: name,
			Email:    name + "@e.com",
			Password: "hash",
		})
	}
	require.NoError(t, db.Create(&users).Error)
	return users
}

func TestFriendRepositoryRequests(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()
	users := seedUsers(t, db, "fr1", "fr2", "fr3")

	request := &models.FriendRequest{
		FromID: users[0].ID,
		ToID:   users[1].ID,
		Status: models.FriendRequestStatusPending,
	}
	require.NoError(t, repo.Create(ctx, request))

	t.Run("GetByID preloads both users", func(t *testing.T) {
		got, err := repo.GetByID(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, "fr1", got.From.Username)
		assert.Equal(t, "fr2", got.To.Username)
	})

	t.Run("GetPendingBetweenUsers either direction", func(t *testing.T) {
		got, err := repo.GetPendingBetweenUsers(ctx, users[0].ID, users[1].ID)
		require.NoError(t, err)
		require.NotNil(t, got)

		reversed, err := repo.GetPendingBetweenUsers(ctx, users[1].ID, users[0].ID)
		require.NoError(t, err)
		require.NotNil(t, reversed)
		assert.Equal(t, got.ID, reversed.ID)
	})

	t.Run("GetPendingBetweenUsers unrelated pair", func(t *testing.T) {
		got, err := repo.GetPendingBetweenUsers(ctx, users[0].ID, users[2].ID)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("GetIncoming only for recipient", func(t *testing.T) {
		incoming, err := repo.GetIncoming(ctx, users[1].ID)
		require.NoError(t, err)
		require.Len(t, incoming, 1)
		assert.Equal(t, "fr1", incoming[0].From.Username)

		none, err := repo.GetIncoming(ctx, users[0].ID)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("UpdateStatus ends pending visibility", func(t *testing.T) {
		require.NoError(t, repo.UpdateStatus(ctx, request.ID, models.FriendRequestStatusDeclined))

		got, err := repo.GetByID(ctx, request.ID)
		require.NoError(t, err)
		assert.Equal(t, models.FriendRequestStatusDeclined, got.Status)

		pending, err := repo.GetPendingBetweenUsers(ctx, users[0].ID, users[1].ID)
		require.NoError(t, err)
		assert.Nil(t, pending)

		incoming, err := repo.GetIncoming(ctx, users[1].ID)
		require.NoError(t, err)
		assert.Empty(t, incoming)
	})

	t.Run("Declined row is retained", func(t *testing.T) {
		var count int64
		require.NoError(t, db.Model(&models.FriendRequest{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestFriendRepositoryFriendSet(t *testing.T) {
	db := newTestDB(t)
	repo := NewFriendRepository(db)
	ctx := context.Background()
	users := seedUsers(t, db, "fs1", "fs2", "fs3")

	t.Run("AddFriends writes both directions", func(t *testing.T) {
		require.NoError(t, repo.AddFriends(ctx, users[0].ID, users[1].ID))

		forward, err := repo.AreFriends(ctx, users[0].ID, users[1].ID)
		require.NoError(t, err)
		assert.True(t, forward)

		backward, err := repo.AreFriends(ctx, users[1].ID, users[0].ID)
		require.NoError(t, err)
		assert.True(t, backward)
	})

	t.Run("AddFriends is idempotent", func(t *testing.T) {
		require.NoError(t, repo.AddFriends(ctx, users[0].ID, users[1].ID))

		var count int64
		require.NoError(t, db.Model(&models.UserFriend{}).Count(&count).Error)
		assert.Equal(t, int64(2), count)
	})

	t.Run("GetFriends projects summaries", func(t *testing.T) {
		require.NoError(t, repo.AddFriends(ctx, users[0].ID, users[2].ID))

		friends, err := repo.GetFriends(ctx, users[0].ID)
		require.NoError(t, err)
		require.Len(t, friends, 2)

		names := []string{friends[0].Username, friends[1].Username}
		assert.ElementsMatch(t, []string{"fs2", "fs3"}, names)
	})

	t.Run("Non-friends are not friends", func(t *testing.T) {
		ok, err := repo.AreFriends(ctx, users[1].ID, users[2].ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
