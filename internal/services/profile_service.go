package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thedevhaider/dating-network/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileService manages personality profiles. Writes go through
// Upsert, keyed by the owning user, so at most one profile exists per
// user.
type ProfileService interface {
	// GetByID returns the profile joined with its owner's name/email.
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.ProfileWithUser, error)
	// Exists reports whether a profile document exists.
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	ListAll(ctx context.Context) ([]*models.ProfileWithUser, error)
	// Upsert creates or updates the profile for p.User. Only the
	// fields set on p are written; previously stored optional fields
	// survive an update that omits them. The returned flag is true
	// when a new document was created.
	Upsert(ctx context.Context, p *models.Profile) (*models.Profile, bool, error)
}
