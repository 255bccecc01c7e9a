package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thedevhaider/dating-network/internal/models"
	"github.com/thedevhaider/dating-network/internal/storage"
)

// MemoryUserService keeps users in process memory, optionally snapshot
// to a JSON file. It backs tests and the storeless dev mode.
type MemoryUserService struct {
	mu      sync.RWMutex
	users   map[string]*models.User // id hex -> user
	byEmail map[string]string       // email -> id hex
	order   []string                // insertion order
	store   *storage.JSONStore
}

// NewMemoryUserService loads any existing snapshot from store. A nil
// store means purely in-memory (tests).
func NewMemoryUserService(store *storage.JSONStore) *MemoryUserService {
	s := &MemoryUserService{
		users:   make(map[string]*models.User),
		byEmail: make(map[string]string),
		store:   store,
	}
	if store != nil {
		var snapshot []*models.User
		if err := store.Load(&snapshot); err != nil {
			log.Warn().Err(err).Msg("could not load users snapshot")
		}
		for _, user := range snapshot {
			id := user.ID.Hex()
			s.users[id] = user
			s.byEmail[user.Email] = id
			s.order = append(s.order, id)
		}
	}
	return s
}

func (s *MemoryUserService) Register(ctx context.Context, name, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return nil, ErrEmailExists
	}

	user := &models.User{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Email: email,
		Date:  time.Now().UTC(),
	}
	id := user.ID.Hex()
	s.users[id] = user
	s.byEmail[email] = id
	s.order = append(s.order, id)
	s.persistLocked()

	u := *user
	return &u, nil
}

func (s *MemoryUserService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[id.Hex()]
	if !exists {
		return nil, ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (s *MemoryUserService) List(ctx context.Context) ([]*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.User, 0, len(s.order))
	for _, id := range s.order {
		u := *s.users[id]
		out = append(out, &u)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (s *MemoryUserService) persistLocked() {
	if s.store == nil {
		return
	}
	snapshot := make([]*models.User, 0, len(s.order))
	for _, id := range s.order {
		snapshot = append(snapshot, s.users[id])
	}
	if err := s.store.Save(snapshot); err != nil {
		log.Warn().Err(err).Msg("could not save users snapshot")
	}
}
