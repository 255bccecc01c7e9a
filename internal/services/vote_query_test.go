package services

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func stageKeys(p mongo.Pipeline) []string {
	keys := make([]string, 0, len(p))
	for _, stage := range p {
		keys = append(keys, stage[0].Key)
	}
	return keys
}

func TestParseVoteListQueryDefaults(t *testing.T) {
	q, err := ParseVoteListQuery(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, SortByRecent, q.SortBy)
	assert.Equal(t, int64(0), q.Skip)
	assert.Equal(t, int64(10), q.Limit)
	assert.Nil(t, q.Profile)
	assert.Empty(t, q.Mbti)
	assert.Empty(t, q.Enneagram)
	assert.Empty(t, q.Zodiac)
}

func TestParseVoteListQueryPagination(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		perPage string
		skip    int64
		limit   int64
	}{
		{"page and perPage", "3", "5", 10, 5},
		{"first page", "1", "10", 0, 10},
		{"zero page gives negative skip", "0", "10", -10, 10},
		{"negative page gives negative skip", "-2", "10", -30, 10},
		{"non-numeric page falls back to default", "abc", "10", 0, 10},
		{"non-numeric perPage falls back to default", "2", "abc", 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			values.Set("page", tt.page)
			values.Set("perPage", tt.perPage)

			q, err := ParseVoteListQuery(values)
			require.NoError(t, err)
			assert.Equal(t, tt.skip, q.Skip)
			assert.Equal(t, tt.limit, q.Limit)
		})
	}
}

func TestParseVoteListQueryProfile(t *testing.T) {
	oid := primitive.NewObjectID()

	values := url.Values{}
	values.Set("profile", oid.Hex())
	q, err := ParseVoteListQuery(values)
	require.NoError(t, err)
	require.NotNil(t, q.Profile)
	assert.Equal(t, oid, *q.Profile)

	values.Set("profile", "not-a-valid-object-id")
	_, err = ParseVoteListQuery(values)
	require.Error(t, err)
	fieldErr, ok := err.(*FieldError)
	require.True(t, ok)
	assert.Equal(t, "profile", fieldErr.Field)
	assert.Equal(t, "profile should have exact 24 characters", fieldErr.Message)
}

func TestVoteListQueryMatch(t *testing.T) {
	oid := primitive.NewObjectID()

	q := &VoteListQuery{Mbti: "ESTJ", Zodiac: "Aries", Profile: &oid}
	match := q.Match()
	assert.Equal(t, bson.M{"profile": oid, "mbti": "ESTJ", "zodiac": "Aries"}, match)

	// Absent filters are omitted, not matched as empty strings.
	empty := (&VoteListQuery{}).Match()
	assert.Equal(t, bson.M{}, empty)
}

func TestVoteListQueryPipeline(t *testing.T) {
	t.Run("recent sorts by date descending", func(t *testing.T) {
		q := &VoteListQuery{SortBy: SortByRecent, Skip: 0, Limit: 10}
		p := q.Pipeline()
		assert.Equal(t, []string{"$match", "$addFields", "$sort", "$skip", "$limit"}, stageKeys(p))
		assert.Equal(t, bson.D{{Key: "date", Value: -1}}, p[2][0].Value)
	})

	t.Run("best sorts by like count descending", func(t *testing.T) {
		q := &VoteListQuery{SortBy: SortByBest, Skip: 0, Limit: 10}
		p := q.Pipeline()
		assert.Equal(t, []string{"$match", "$addFields", "$sort", "$skip", "$limit"}, stageKeys(p))
		assert.Equal(t, bson.D{{Key: "likesCount", Value: -1}}, p[2][0].Value)
	})

	t.Run("unknown sortBy adds no sort stage", func(t *testing.T) {
		q := &VoteListQuery{SortBy: "oldest", Skip: 0, Limit: 10}
		p := q.Pipeline()
		assert.Equal(t, []string{"$match", "$addFields", "$skip", "$limit"}, stageKeys(p))
	})

	t.Run("skip and limit pass through unchecked", func(t *testing.T) {
		q := &VoteListQuery{SortBy: SortByRecent, Skip: -10, Limit: 10}
		p := q.Pipeline()
		assert.Equal(t, int64(-10), p[3][0].Value)
		assert.Equal(t, int64(10), p[4][0].Value)
	})

	t.Run("likes count is derived from the likes array", func(t *testing.T) {
		q := &VoteListQuery{SortBy: SortByRecent, Skip: 0, Limit: 10}
		p := q.Pipeline()
		assert.Equal(t, bson.M{"likesCount": bson.M{"$size": "$likes"}}, p[1][0].Value)
	})
}
