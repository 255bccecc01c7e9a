package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thedevhaider/dating-network/internal/models"
)

func newVote(user, profile primitive.ObjectID) *models.Vote {
	return &models.Vote{
		User:        user,
		Profile:     profile,
		Title:       "Vote Title",
		Description: "Vote Description",
		Mbti:        "ESTJ",
		Enneagram:   "1w2",
		Zodiac:      "Aries",
	}
}

func TestMemoryVoteServiceCreate(t *testing.T) {
	s := NewMemoryVoteService(nil)
	ctx := context.Background()

	created, err := s.Create(ctx, newVote(primitive.NewObjectID(), primitive.NewObjectID()))
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.NotNil(t, created.Likes)
	assert.Empty(t, created.Likes)
	assert.False(t, created.Date.IsZero())
}

func TestMemoryVoteServiceCreateOncePerUserProfilePair(t *testing.T) {
	s := NewMemoryVoteService(nil)
	ctx := context.Background()
	user := primitive.NewObjectID()
	profile := primitive.NewObjectID()

	_, err := s.Create(ctx, newVote(user, profile))
	require.NoError(t, err)

	_, err = s.Create(ctx, newVote(user, profile))
	assert.Equal(t, ErrVoteExists, err)

	// A different profile is fine.
	_, err = s.Create(ctx, newVote(user, primitive.NewObjectID()))
	assert.NoError(t, err)
}

func TestMemoryVoteServiceLikeUnlike(t *testing.T) {
	s := NewMemoryVoteService(nil)
	ctx := context.Background()

	vote, err := s.Create(ctx, newVote(primitive.NewObjectID(), primitive.NewObjectID()))
	require.NoError(t, err)

	alice := primitive.NewObjectID()
	bob := primitive.NewObjectID()

	liked, err := s.Like(ctx, vote.ID, alice)
	require.NoError(t, err)
	require.Len(t, liked.Likes, 1)
	assert.Equal(t, alice, liked.Likes[0].User)

	// Newest like goes to the front.
	liked, err = s.Like(ctx, vote.ID, bob)
	require.NoError(t, err)
	require.Len(t, liked.Likes, 2)
	assert.Equal(t, bob, liked.Likes[0].User)
	assert.Equal(t, alice, liked.Likes[1].User)

	_, err = s.Like(ctx, vote.ID, alice)
	assert.Equal(t, ErrAlreadyLiked, err)

	unliked, err := s.Unlike(ctx, vote.ID, alice)
	require.NoError(t, err)
	require.Len(t, unliked.Likes, 1)
	assert.Equal(t, bob, unliked.Likes[0].User)

	_, err = s.Unlike(ctx, vote.ID, alice)
	assert.Equal(t, ErrNotLiked, err)
}

func TestMemoryVoteServiceLikeVoteNotFound(t *testing.T) {
	s := NewMemoryVoteService(nil)

	_, err := s.Like(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	assert.Equal(t, ErrVoteNotFound, err)
}

func seedVotes(t *testing.T, s *MemoryVoteService, n int) []*models.Vote {
	t.Helper()
	ctx := context.Background()
	profile := primitive.NewObjectID()
	base := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)

	votes := make([]*models.Vote, 0, n)
	for i := 0; i < n; i++ {
		v := newVote(primitive.NewObjectID(), profile)
		v.Mbti = models.MbtiTypes[i%len(models.MbtiTypes)]
		v.Date = base.Add(time.Duration(i) * time.Hour)
		created, err := s.Create(ctx, v)
		require.NoError(t, err)
		votes = append(votes, created)
	}
	return votes
}

func TestMemoryVoteServiceQueryRecent(t *testing.T) {
	s := NewMemoryVoteService(nil)
	seedVotes(t, s, 5)

	out, err := s.Query(context.Background(), &VoteListQuery{SortBy: SortByRecent, Skip: 0, Limit: 10})
	require.NoError(t, err)
	require.Len(t, out, 5)
	for i := 1; i < len(out); i++ {
		assert.True(t, out[i].Date.Before(out[i-1].Date), "recent must sort by date descending")
	}
}

func TestMemoryVoteServiceQueryBest(t *testing.T) {
	s := NewMemoryVoteService(nil)
	ctx := context.Background()
	votes := seedVotes(t, s, 3)

	// Give the middle vote two likes and the last one.
	_, err := s.Like(ctx, votes[1].ID, primitive.NewObjectID())
	require.NoError(t, err)
	_, err = s.Like(ctx, votes[1].ID, primitive.NewObjectID())
	require.NoError(t, err)
	_, err = s.Like(ctx, votes[2].ID, primitive.NewObjectID())
	require.NoError(t, err)

	out, err := s.Query(ctx, &VoteListQuery{SortBy: SortByBest, Skip: 0, Limit: 10})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, 2, out[0].LikesCount)
	assert.Equal(t, 1, out[1].LikesCount)
	assert.Equal(t, 0, out[2].LikesCount)
}

func TestMemoryVoteServiceQueryFilters(t *testing.T) {
	s := NewMemoryVoteService(nil)
	ctx := context.Background()
	profile := primitive.NewObjectID()

	estj := newVote(primitive.NewObjectID(), profile)
	estj.Mbti = "ESTJ"
	_, err := s.Create(ctx, estj)
	require.NoError(t, err)

	infp := newVote(primitive.NewObjectID(), profile)
	infp.Mbti = "INFP"
	infp.Zodiac = "Leo"
	_, err = s.Create(ctx, infp)
	require.NoError(t, err)

	out, err := s.Query(ctx, &VoteListQuery{SortBy: SortByRecent, Mbti: "INFP", Skip: 0, Limit: 10})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "INFP", out[0].Mbti)

	out, err = s.Query(ctx, &VoteListQuery{SortBy: SortByRecent, Zodiac: "Leo", Skip: 0, Limit: 10})
	require.NoError(t, err)
	require.Len(t, out, 1)

	other := primitive.NewObjectID()
	out, err = s.Query(ctx, &VoteListQuery{SortBy: SortByRecent, Profile: &other, Skip: 0, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestMemoryVoteServiceQueryPagination(t *testing.T) {
	s := NewMemoryVoteService(nil)
	seedVotes(t, s, 7)
	ctx := context.Background()

	page1, err := s.Query(ctx, &VoteListQuery{SortBy: SortByRecent, Skip: 0, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, page1, 3)

	page3, err := s.Query(ctx, &VoteListQuery{SortBy: SortByRecent, Skip: 6, Limit: 3})
	require.NoError(t, err)
	assert.Len(t, page3, 1)

	beyond, err := s.Query(ctx, &VoteListQuery{SortBy: SortByRecent, Skip: 9, Limit: 3})
	require.NoError(t, err)
	assert.Empty(t, beyond)

	// No page overlap.
	page2, err := s.Query(ctx, &VoteListQuery{SortBy: SortByRecent, Skip: 3, Limit: 3})
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, v := range append(page1, page2...) {
		key := v.ID.Hex()
		assert.False(t, seen[key], fmt.Sprintf("vote %s appears on two pages", key))
		seen[key] = true
	}
}

func TestMemoryVoteServiceQueryRejectsBadWindow(t *testing.T) {
	s := NewMemoryVoteService(nil)
	seedVotes(t, s, 2)
	ctx := context.Background()

	// A non-positive page yields a negative skip; the store rejects it
	// at execution time just like the aggregation pipeline would.
	_, err := s.Query(ctx, &VoteListQuery{SortBy: SortByRecent, Skip: -10, Limit: 10})
	assert.Error(t, err)

	_, err = s.Query(ctx, &VoteListQuery{SortBy: SortByRecent, Skip: 0, Limit: 0})
	assert.Error(t, err)
}

func TestMemoryVoteServiceQueryUnknownSortPassesThrough(t *testing.T) {
	s := NewMemoryVoteService(nil)
	votes := seedVotes(t, s, 3)

	out, err := s.Query(context.Background(), &VoteListQuery{SortBy: "oldest", Skip: 0, Limit: 10})
	require.NoError(t, err)
	require.Len(t, out, 3)
	// Natural (insertion) order, not date order.
	for i, v := range votes {
		assert.Equal(t, v.ID, out[i].ID)
	}
}
