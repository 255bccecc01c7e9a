package services

import (
	"net/url"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	SortByRecent = "recent"
	SortByBest   = "best"

	defaultPage    = 1
	defaultPerPage = 10
)

// FieldError is a validation failure on a single query parameter,
// reported before any storage access.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// VoteListQuery is the parsed form of the GET /api/votes parameters.
type VoteListQuery struct {
	SortBy    string
	Mbti      string
	Enneagram string
	Zodiac    string
	Profile   *primitive.ObjectID
	Skip      int64
	Limit     int64
}

// ParseVoteListQuery builds a VoteListQuery from raw query parameters.
// sortBy defaults to "recent", page to 1 and perPage to 10. A profile
// parameter that is not a well-formed object id fails with a
// FieldError. Page and perPage are not bounds-checked: a non-positive
// page yields a negative skip, which the store rejects at execution
// time and is surfaced as a storage error.
func ParseVoteListQuery(values url.Values) (*VoteListQuery, error) {
	q := &VoteListQuery{SortBy: SortByRecent}

	if v := values.Get("sortBy"); v != "" {
		q.SortBy = v
	}
	q.Mbti = values.Get("filterByMbti")
	q.Enneagram = values.Get("filterByEnneagram")
	q.Zodiac = values.Get("filterByZodiac")

	page := defaultPage
	perPage := defaultPerPage
	if v := values.Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			page = n
		}
	}
	if v := values.Get("perPage"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			perPage = n
		}
	}
	q.Skip = int64((page - 1) * perPage)
	q.Limit = int64(perPage)

	if v := values.Get("profile"); v != "" {
		oid, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return nil, &FieldError{Field: "profile", Message: "profile should have exact 24 characters"}
		}
		q.Profile = &oid
	}

	return q, nil
}

// Match returns the equality filter for the query. Absent filters are
// omitted entirely rather than matched as empty strings.
func (q *VoteListQuery) Match() bson.M {
	match := bson.M{}
	if q.Profile != nil {
		match["profile"] = *q.Profile
	}
	if q.Mbti != "" {
		match["mbti"] = q.Mbti
	}
	if q.Enneagram != "" {
		match["enneagram"] = q.Enneagram
	}
	if q.Zodiac != "" {
		match["zodiac"] = q.Zodiac
	}
	return match
}

// Pipeline translates the query into an aggregation pipeline: match,
// derived likesCount, sort, skip and limit. An unrecognized sortBy
// adds no sort stage at all, leaving the results in natural order.
func (q *VoteListQuery) Pipeline() mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: q.Match()}},
		{{Key: "$addFields", Value: bson.M{"likesCount": bson.M{"$size": "$likes"}}}},
	}

	switch q.SortBy {
	case SortByRecent:
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}}}})
	case SortByBest:
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: bson.D{{Key: "likesCount", Value: -1}}}})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$skip", Value: q.Skip}},
		bson.D{{Key: "$limit", Value: q.Limit}},
	)
	return pipeline
}
