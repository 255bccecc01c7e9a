package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thedevhaider/dating-network/internal/models"
	"github.com/thedevhaider/dating-network/internal/storage"
)

// MemoryVoteService keeps votes in process memory and evaluates the
// listing query with the same semantics the aggregation pipeline has,
// including the rejection of negative skip and non-positive limit at
// execution time.
type MemoryVoteService struct {
	mu            sync.RWMutex
	votes         map[string]*models.Vote // id hex -> vote
	byUserProfile map[string]string       // user:profile -> id hex
	order         []string
	store         *storage.JSONStore
}

func NewMemoryVoteService(store *storage.JSONStore) *MemoryVoteService {
	s := &MemoryVoteService{
		votes:         make(map[string]*models.Vote),
		byUserProfile: make(map[string]string),
		store:         store,
	}
	if store != nil {
		var snapshot []*models.Vote
		if err := store.Load(&snapshot); err != nil {
			log.Warn().Err(err).Msg("could not load votes snapshot")
		}
		for _, vote := range snapshot {
			id := vote.ID.Hex()
			s.votes[id] = vote
			s.byUserProfile[pairKey(vote.User, vote.Profile)] = id
			s.order = append(s.order, id)
		}
	}
	return s
}

func pairKey(user, profile primitive.ObjectID) string {
	return user.Hex() + ":" + profile.Hex()
}

func (s *MemoryVoteService) Create(ctx context.Context, v *models.Vote) (*models.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey(v.User, v.Profile)
	if _, exists := s.byUserProfile[key]; exists {
		return nil, ErrVoteExists
	}

	vote := *v
	vote.ID = primitive.NewObjectID()
	if vote.Likes == nil {
		vote.Likes = []models.LikeEntry{}
	}
	if vote.Date.IsZero() {
		vote.Date = time.Now().UTC()
	}

	id := vote.ID.Hex()
	s.votes[id] = &vote
	s.byUserProfile[key] = id
	s.order = append(s.order, id)
	s.persistLocked()

	return copyVote(&vote), nil
}

func (s *MemoryVoteService) Like(ctx context.Context, voteID, userID primitive.ObjectID) (*models.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vote, exists := s.votes[voteID.Hex()]
	if !exists {
		return nil, ErrVoteNotFound
	}

	for _, like := range vote.Likes {
		if like.User == userID {
			return nil, ErrAlreadyLiked
		}
	}

	vote.Likes = append([]models.LikeEntry{{User: userID}}, vote.Likes...)
	s.persistLocked()
	return copyVote(vote), nil
}

func (s *MemoryVoteService) Unlike(ctx context.Context, voteID, userID primitive.ObjectID) (*models.Vote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vote, exists := s.votes[voteID.Hex()]
	if !exists {
		return nil, ErrVoteNotFound
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
	s.persistLocked()
	return copyVote(vote), nil
}

func (s *MemoryVoteService) Query(ctx context.Context, q *VoteListQuery) ([]*models.VoteWithLikes, error) {
	if q.Skip < 0 {
		return nil, fmt.Errorf("invalid skip stage value: %d", q.Skip)
	}
	if q.Limit <= 0 {
		return nil, fmt.Errorf("invalid limit stage value: %d", q.Limit)
	}

	s.mu.RLock()
	matched := make([]*models.VoteWithLikes, 0)
	for _, id := range s.order {
		vote := s.votes[id]
		if q.Profile != nil && vote.Profile != *q.Profile {
			continue
		}
		if q.Mbti != "" && vote.Mbti != q.Mbti {
			continue
		}
		if q.Enneagram != "" && vote.Enneagram != q.Enneagram {
			continue
		}
		if q.Zodiac != "" && vote.Zodiac != q.Zodiac {
			continue
		}
		matched = append(matched, &models.VoteWithLikes{
			Vote:       *copyVote(vote),
			LikesCount: len(vote.Likes),
		})
	}
	s.mu.RUnlock()

	switch q.SortBy {
	case SortByRecent:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Date.After(matched[j].Date)
		})
	case SortByBest:
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].LikesCount > matched[j].LikesCount
		})
	}
	// Anything else passes through in natural order.

	if q.Skip >= int64(len(matched)) {
		return []*models.VoteWithLikes{}, nil
	}
	matched = matched[q.Skip:]
	if q.Limit < int64(len(matched)) {
		matched = matched[:q.Limit]
	}
	return matched, nil
}

func copyVote(v *models.Vote) *models.Vote {
	vote := *v
	vote.Likes = append([]models.LikeEntry{}, v.Likes...)
	return &vote
}

func (s *MemoryVoteService) persistLocked() {
	if s.store == nil {
		return
	}
	snapshot := make([]*models.Vote, 0, len(s.order))
	for _, id := range s.order {
		snapshot = append(snapshot, s.votes[id])
	}
	if err := s.store.Save(snapshot); err != nil {
		log.Warn().Err(err).Msg("could not save votes snapshot")
	}
}
