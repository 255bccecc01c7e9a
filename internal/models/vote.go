package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeEntry is one user's like on a vote. Likes are kept newest-first
// and a user appears at most once.
type LikeEntry struct {
	User primitive.ObjectID `json:"user" bson:"user"`
}

// Vote is a personality-type guess on a profile, attributed to a user.
type Vote struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	User        primitive.ObjectID `json:"user" bson:"user"`
	Profile     primitive.ObjectID `json:"profile" bson:"profile"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Mbti        string             `json:"mbti" bson:"mbti"`
	Enneagram   string             `json:"enneagram" bson:"enneagram"`
	Zodiac      string             `json:"zodiac" bson:"zodiac"`
	Likes       []LikeEntry        `json:"likes" bson:"likes"`
	Date        time.Time          `json:"date" bson:"date"`
}

// VoteWithLikes is a vote as returned by the listing pipeline, with
// the derived like count.
type VoteWithLikes struct {
	Vote       `bson:",inline"`
	LikesCount int `json:"likesCount" bson:"likesCount"`
}

// VoteRequest is the POST /api/votes body.
type VoteRequest struct {
	User        string `json:"user"`
	Profile     string `json:"profile"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Mbti        string `json:"mbti"`
	Enneagram   string `json:"enneagram"`
	Zodiac      string `json:"zodiac"`
	Image       string `json:"image"`
}

// LikeRequest is the POST /api/votes/like/:id and unlike body.
type LikeRequest struct {
	User string `json:"user"`
}
