package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID    primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Email string             `json:"email" bson:"email"`
	Date  time.Time          `json:"date" bson:"date"`
}

// RegisterRequest is the POST /api/users/register body.
type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
