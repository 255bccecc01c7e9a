package services

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/thedevhaider/dating-network/internal/models"
	"github.com/thedevhaider/dating-network/internal/storage"
)

// MemoryProfileService keeps profiles in process memory. Owner
// name/email joins go through the injected UserService, the same
// collaboration the Mongo implementation has with the users
// collection.
type MemoryProfileService struct {
	mu       sync.RWMutex
	profiles map[string]*models.Profile // id hex -> profile
	byUser   map[string]string          // user id hex -> profile id hex
	order    []string
	users    UserService
	store    *storage.JSONStore
}

func NewMemoryProfileService(users UserService, store *storage.JSONStore) *MemoryProfileService {
	s := &MemoryProfileService{
		profiles: make(map[string]*models.Profile),
		byUser:   make(map[string]string),
		users:    users,
		store:    store,
	}
	if store != nil {
		var snapshot []*models.Profile
		if err := store.Load(&snapshot); err != nil {
			log.Warn().Err(err).Msg("could not load profiles snapshot")
		}
		for _, prof := range snapshot {
			id := prof.ID.Hex()
			s.profiles[id] = prof
			s.byUser[prof.User.Hex()] = id
			s.order = append(s.order, id)
		}
	}
	return s
}

func (s *MemoryProfileService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ProfileWithUser, error) {
	s.mu.RLock()
	prof, exists := s.profiles[id.Hex()]
	if exists {
		p := *prof
		prof = &p
	}
	s.mu.RUnlock()

	if !exists {
		return nil, ErrProfileNotFound
	}
	return models.JoinProfileUser(prof, s.owner(ctx, prof.User)), nil
}

func (s *MemoryProfileService) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.profiles[id.Hex()]
	return exists, nil
}

func (s *MemoryProfileService) ListAll(ctx context.Context) ([]*models.ProfileWithUser, error) {
	s.mu.RLock()
	profiles := make([]*models.Profile, 0, len(s.order))
	for _, id := range s.order {
		p := *s.profiles[id]
		profiles = append(profiles, &p)
	}
	s.mu.RUnlock()

	out := make([]*models.ProfileWithUser, 0, len(profiles))
	for _, prof := range profiles {
		out = append(out, models.JoinProfileUser(prof, s.owner(ctx, prof.User)))
	}
	return out, nil
}

func (s *MemoryProfileService) Upsert(ctx context.Context, p *models.Profile) (*models.Profile, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	userKey := p.User.Hex()
	if id, exists := s.byUser[userKey]; exists {
		// Update in place: required fields always, optional fields
		// only when provided, matching a $set of the assembled fields.
		existing := s.profiles[id]
		existing.Name = p.Name
		existing.Description = p.Description
		if p.Mbti != "" {
			existing.Mbti = p.Mbti
		}
		if p.Enneagram != "" {
			existing.Enneagram = p.Enneagram
		}
		if p.Variant != "" {
			existing.Variant = p.Variant
		}
		if p.Tritype != nil {
			existing.Tritype = p.Tritype
		}
		if p.Socionics != "" {
			existing.Socionics = p.Socionics
		}
		if p.Sloan != "" {
			existing.Sloan = p.Sloan
		}
		if p.Psyche != "" {
			existing.Psyche = p.Psyche
		}
		if p.Temperaments != "" {
			existing.Temperaments = p.Temperaments
		}
		if p.Image != "" {
			existing.Image = p.Image
		}
		s.persistLocked()
		saved := *existing
		return &saved, false, nil
	}

	prof := *p
	prof.ID = primitive.NewObjectID()
	id := prof.ID.Hex()
	s.profiles[id] = &prof
	s.byUser[userKey] = id
	s.order = append(s.order, id)
	s.persistLocked()

	saved := prof
	return &saved, true, nil
}

func (s *MemoryProfileService) owner(ctx context.Context, userID primitive.ObjectID) *models.User {
	if s.users == nil {
		return nil
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil
	}
	return user
}

func (s *MemoryProfileService) persistLocked() {
	if s.store == nil {
		return
	}
	snapshot := make([]*models.Profile, 0, len(s.order))
	for _, id := range s.order {
		snapshot = append(snapshot, s.profiles[id])
	}
	if err := s.store.Save(snapshot); err != nil {
		log.Warn().Err(err).Msg("could not save profiles snapshot")
	}
}
