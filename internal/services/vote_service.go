package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thedevhaider/dating-network/internal/models"
)

var (
	ErrVoteNotFound = errors.New("vote not found")
	ErrVoteExists   = errors.New("vote already exists for this user and profile")
	ErrAlreadyLiked = errors.New("vote already liked by this user")
	ErrNotLiked     = errors.New("vote not liked by this user")
)

// VoteService manages personality-type votes and their likes. A vote
// is created at most once per (user, profile) pair and is never
// deleted; only its likes change afterwards.
//
// Like and Unlike are read-modify-write sequences without any locking
// around the vote document, so two concurrent mutations of the same
// vote can lose one of the updates. This matches the behavior the API
// has always had; a single conditional update keyed on likes
// membership would close the race if it ever matters.
type VoteService interface {
	Create(ctx context.Context, v *models.Vote) (*models.Vote, error)
	// Like prepends the user to the vote's likes. ErrAlreadyLiked when
	// the user is already present.
	Like(ctx context.Context, voteID, userID primitive.ObjectID) (*models.Vote, error)
	// Unlike removes the first matching like. ErrNotLiked when the
	// user is not present.
	Unlike(ctx context.Context, voteID, userID primitive.ObjectID) (*models.Vote, error)
	// Query runs the listing pipeline: filter, derived like count,
	// sort, skip/limit.
	Query(ctx context.Context, q *VoteListQuery) ([]*models.VoteWithLikes, error)
}
