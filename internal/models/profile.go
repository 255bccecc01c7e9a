package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Profile is a personality profile owned by a user. The typing
// attributes are all optional; tritype is a pointer so an absent value
// can be told apart from zero.
type Profile struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	User         primitive.ObjectID `json:"user" bson:"user"`
	Name         string             `json:"name" bson:"name"`
	Description  string             `json:"description" bson:"description"`
	Mbti         string             `json:"mbti,omitempty" bson:"mbti,omitempty"`
	Enneagram    string             `json:"enneagram,omitempty" bson:"enneagram,omitempty"`
	Variant      string             `json:"variant,omitempty" bson:"variant,omitempty"`
	Tritype      *int               `json:"tritype,omitempty" bson:"tritype,omitempty"`
	Socionics    string             `json:"socionics,omitempty" bson:"socionics,omitempty"`
	Sloan        string             `json:"sloan,omitempty" bson:"sloan,omitempty"`
	Psyche       string             `json:"psyche,omitempty" bson:"psyche,omitempty"`
	Temperaments string             `json:"temperaments,omitempty" bson:"temperaments,omitempty"`
	Image        string             `json:"image,omitempty" bson:"image,omitempty"`
}

// ProfileOwner is the user fragment joined onto profile reads
// (name and email only).
type ProfileOwner struct {
	ID    primitive.ObjectID `json:"_id" bson:"_id"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
}

// ProfileWithUser is a profile with its owning user joined in place of
// the bare user reference.
type ProfileWithUser struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id"`
	User         ProfileOwner       `json:"user" bson:"user"`
	Name         string             `json:"name" bson:"name"`
	Description  string             `json:"description" bson:"description"`
	Mbti         string             `json:"mbti,omitempty" bson:"mbti,omitempty"`
	Enneagram    string             `json:"enneagram,omitempty" bson:"enneagram,omitempty"`
	Variant      string             `json:"variant,omitempty" bson:"variant,omitempty"`
	Tritype      *int               `json:"tritype,omitempty" bson:"tritype,omitempty"`
	Socionics    string             `json:"socionics,omitempty" bson:"socionics,omitempty"`
	Sloan        string             `json:"sloan,omitempty" bson:"sloan,omitempty"`
	Psyche       string             `json:"psyche,omitempty" bson:"psyche,omitempty"`
	Temperaments string             `json:"temperaments,omitempty" bson:"temperaments,omitempty"`
	Image        string             `json:"image,omitempty" bson:"image,omitempty"`
}

// JoinProfileUser attaches the owner's name/email to a profile.
func JoinProfileUser(p *Profile, u *User) *ProfileWithUser {
	joined := &ProfileWithUser{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Mbti:         p.Mbti,
		Enneagram:    p.Enneagram,
		Variant:      p.Variant,
		Tritype:      p.Tritype,
		Socionics:    p.Socionics,
		Sloan:        p.Sloan,
		Psyche:       p.Psyche,
		Temperaments: p.Temperaments,
		Image:        p.Image,
	}
	if u != nil {
		joined.User = ProfileOwner{ID: u.ID, Name: u.Name, Email: u.Email}
	}
	return joined
}

// ProfileRequest is the POST /api/profile body.
type ProfileRequest struct {
	User         string `json:"user"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Mbti         string `json:"mbti"`
	Enneagram    string `json:"enneagram"`
	Variant      string `json:"variant"`
	Tritype      *int   `json:"tritype"`
	Socionics    string `json:"socionics"`
	Sloan        string `json:"sloan"`
	Psyche       string `json:"psyche"`
	Temperaments string `json:"temperaments"`
	Image        string `json:"image"`
}
