package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thedevhaider/dating-network/internal/models"
)

type MongoProfileService struct {
	client      *mongo.Client
	db          *mongo.Database
	profilesCol *mongo.Collection
	usersCol    *mongo.Collection
}

func NewMongoProfileService(ctx context.Context, mongoURI, dbName string) (*MongoProfileService, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	col := db.Collection("profiles")

	// One profile per user is an upsert-level invariant, not a storage
	// constraint, so the index stays non-unique.
	_, _ = col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}},
	})

	log.Info().Str("db", dbName).Msg("mongodb connected (profiles)")
	return &MongoProfileService{
		client:      client,
		db:          db,
		profilesCol: col,
		usersCol:    db.Collection("users"),
	}, nil
}

func (s *MongoProfileService) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoProfileService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ProfileWithUser, error) {
	var prof models.Profile
	if err := s.profilesCol.FindOne(ctx, bson.M{"_id": id}).Decode(&prof); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	owners, err := s.getOwners(ctx, []primitive.ObjectID{prof.User})
	if err != nil {
		return nil, err
	}
	return models.JoinProfileUser(&prof, owners[prof.User]), nil
}

func (s *MongoProfileService) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	err := s.profilesCol.FindOne(ctx, bson.M{"_id": id}).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, err
}

func (s *MongoProfileService) ListAll(ctx context.Context) ([]*models.ProfileWithUser, error) {
	cur, err := s.profilesCol.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	profiles := make([]*models.Profile, 0)
	userIDs := make([]primitive.ObjectID, 0)
	for cur.Next(ctx) {
		var prof models.Profile
		if err := cur.Decode(&prof); err != nil {
			return nil, err
		}
		profiles = append(profiles, &prof)
		userIDs = append(userIDs, prof.User)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	owners, err := s.getOwners(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	out := make([]*models.ProfileWithUser, 0, len(profiles))
	for _, prof := range profiles {
		out = append(out, models.JoinProfileUser(prof, owners[prof.User]))
	}
	return out, nil
}

func (s *MongoProfileService) Upsert(ctx context.Context, p *models.Profile) (*models.Profile, bool, error) {
	// The omitempty bson tags make $set carry only the fields the
	// caller provided, so an update leaves previously stored optional
	// attributes in place.
	res, err := s.profilesCol.UpdateOne(
		ctx,
		bson.M{"user": p.User},
		bson.M{"$set": p},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return nil, false, err
	}
	created := res.UpsertedCount > 0

	var saved models.Profile
	if err := s.profilesCol.FindOne(ctx, bson.M{"user": p.User}).Decode(&saved); err != nil {
		return nil, false, err
	}
	return &saved, created, nil
}

// getOwners fetches the referenced users in one query and maps them by
// id, the same shape the listing join consumes.
func (s *MongoProfileService) getOwners(ctx context.Context, userIDs []primitive.ObjectID) (map[primitive.ObjectID]*models.User, error) {
	out := make(map[primitive.ObjectID]*models.User)
	if len(userIDs) == 0 {
		return out, nil
	}

	cur, err := s.usersCol.Find(ctx, bson.M{"_id": bson.M{"$in": userIDs}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var user models.User
		if err := cur.Decode(&user); err != nil {
			return nil, err
		}
		u := user
		out[u.ID] = &u
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
