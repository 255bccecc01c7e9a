package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/thedevhaider/dating-network/internal/models"
)

type MongoVoteService struct {
	client   *mongo.Client
	db       *mongo.Database
	votesCol *mongo.Collection
}

func NewMongoVoteService(ctx context.Context, mongoURI, dbName string) (*MongoVoteService, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	col := db.Collection("votes")

	// Best-effort indexes. (user, profile) stays non-unique: the
	// at-most-one-vote rule is checked before the insert.
	_, _ = col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "profile", Value: 1}}},
		{Keys: bson.D{{Key: "profile", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: -1}}},
	})

	log.Info().Str("db", dbName).Msg("mongodb connected (votes)")
	return &MongoVoteService{
		client:   client,
		db:       db,
		votesCol: col,
	}, nil
}

func (s *MongoVoteService) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func (s *MongoVoteService) Create(ctx context.Context, v *models.Vote) (*models.Vote, error) {
	err := s.votesCol.FindOne(ctx, bson.M{"user": v.User, "profile": v.Profile}).Err()
	if err == nil {
		return nil, ErrVoteExists
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	vote := *v
	vote.ID = primitive.NewObjectID()
	if vote.Likes == nil {
		vote.Likes = []models.LikeEntry{}
	}
	if vote.Date.IsZero() {
		vote.Date = time.Now().UTC()
	}

	if _, err := s.votesCol.InsertOne(ctx, &vote); err != nil {
		return nil, err
	}
	return &vote, nil
}

func (s *MongoVoteService) Like(ctx context.Context, voteID, userID primitive.ObjectID) (*models.Vote, error) {
	vote, err := s.getByID(ctx, voteID)
	if err != nil {
		return nil, err
	}

	for _, like := range vote.Likes {
		if like.User == userID {
			return nil, ErrAlreadyLiked
		}
	}

	// Newest like goes to the front.
	vote.Likes = append([]models.LikeEntry{{User: userID}}, vote.Likes...)
	return s.saveLikes(ctx, vote)
}

func (s *MongoVoteService) Unlike(ctx context.Context, voteID, userID primitive.ObjectID) (*models.Vote, error) {
	vote, err := s.getByID(ctx, voteID)
	if err != nil {
		return nil, err
	}

	removeIndex := -1
	for i, like := range vote.Likes {
		if like.User == userID {
			removeIndex = i
			break
		}
	}
	if removeIndex < 0 {
		return nil, ErrNotLiked
	}

	vote.Likes = append(vote.Likes[:removeIndex], vote.Likes[removeIndex+1:]...)
	return s.saveLikes(ctx, vote)
}

func (s *MongoVoteService) Query(ctx context.Context, q *VoteListQuery) ([]*models.VoteWithLikes, error) {
	cur, err := s.votesCol.Aggregate(ctx, q.Pipeline())
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]*models.VoteWithLikes, 0)
	for cur.Next(ctx) {
		var vote models.VoteWithLikes
		if err := cur.Decode(&vote); err != nil {
			return nil, err
		}
		out = append(out, &vote)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoVoteService) getByID(ctx context.Context, id primitive.ObjectID) (*models.Vote, error) {
	var vote models.Vote
	if err := s.votesCol.FindOne(ctx, bson.M{"_id": id}).Decode(&vote); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrVoteNotFound
		}
		return nil, err
	}
	return &vote, nil
}

// saveLikes writes back the whole likes array. Read-check-write on
// purpose: see the VoteService doc comment about the lost-update race.
func (s *MongoVoteService) saveLikes(ctx context.Context, vote *models.Vote) (*models.Vote, error) {
	_, err := s.votesCol.UpdateOne(
		ctx,
		bson.M{"_id": vote.ID},
		bson.M{"$set": bson.M{"likes": vote.Likes}},
	)
	if err != nil {
		return nil, err
	}
	return vote, nil
}
