package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thedevhaider/dating-network/internal/models"
)

func newProfileFixture(t *testing.T) (*MemoryProfileService, *models.User) {
	t.Helper()
	users := NewMemoryUserService(nil)
	user, err := users.Register(context.Background(), "Test User", "test@example.com")
	require.NoError(t, err)
	return NewMemoryProfileService(users, nil), user
}

func TestMemoryProfileServiceUpsertCreatesThenUpdates(t *testing.T) {
	s, user := newProfileFixture(t)
	ctx := context.Background()

	first, created, err := s.Upsert(ctx, &models.Profile{
		User:        user.ID,
		Name:        "Test Profile",
		Description: "Test description",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.False(t, first.ID.IsZero())

	second, created, err := s.Upsert(ctx, &models.Profile{
		User:        user.ID,
		Name:        "Test Profile",
		Description: "Changed description",
	})
	require.NoError(t, err)
	assert.False(t, created, "second upsert for the same user must update")
	assert.Equal(t, first.ID, second.ID, "upsert must not create a second profile")
	assert.Equal(t, "Changed description", second.Description)
}

func TestMemoryProfileServiceUpsertKeepsOmittedOptionalFields(t *testing.T) {
	s, user := newProfileFixture(t)
	ctx := context.Background()

	_, _, err := s.Upsert(ctx, &models.Profile{
		User:        user.ID,
		Name:        "Test Profile",
		Description: "Test description",
		Mbti:        "ESTJ",
	})
	require.NoError(t, err)

	// An update that omits mbti leaves the stored value alone, the
	// way a $set of only the provided fields would.
	saved, _, err := s.Upsert(ctx, &models.Profile{
		User:        user.ID,
		Name:        "Test Profile",
		Description: "New description",
	})
	require.NoError(t, err)
	assert.Equal(t, "ESTJ", saved.Mbti)
}

func TestMemoryProfileServiceGetByIDJoinsOwner(t *testing.T) {
	s, user := newProfileFixture(t)
	ctx := context.Background()

	saved, _, err := s.Upsert(ctx, &models.Profile{
		User:        user.ID,
		Name:        "Test Profile",
		Description: "Test description",
	})
	require.NoError(t, err)

	joined, err := s.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, joined.User.ID)
	assert.Equal(t, "Test User", joined.User.Name)
	assert.Equal(t, "test@example.com", joined.User.Email)
}

func TestMemoryProfileServiceGetByIDNotFound(t *testing.T) {
	s, _ := newProfileFixture(t)

	_, err := s.GetByID(context.Background(), primitive.NewObjectID())
	assert.Equal(t, ErrProfileNotFound, err)
}

func TestMemoryProfileServiceExists(t *testing.T) {
	s, user := newProfileFixture(t)
	ctx := context.Background()

	saved, _, err := s.Upsert(ctx, &models.Profile{
		User:        user.ID,
		Name:        "Test Profile",
		Description: "Test description",
	})
	require.NoError(t, err)

	exists, err := s.Exists(ctx, saved.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.Exists(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryProfileServiceListAll(t *testing.T) {
	users := NewMemoryUserService(nil)
	s := NewMemoryProfileService(users, nil)
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com"} {
		user, err := users.Register(ctx, "Test User", email)
		require.NoError(t, err)
		_, _, err = s.Upsert(ctx, &models.Profile{
			User:        user.ID,
			Name:        "Test Profile",
			Description: "Test description",
		})
		require.NoError(t, err)
	}

	all, err := s.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "a@example.com", all[0].User.Email)
	assert.Equal(t, "b@example.com", all[1].User.Email)
}
