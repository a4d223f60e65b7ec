package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"dailydiet/models"
	"dailydiet/stores"

	"github.com/google/uuid"
)

// Store is an in-memory implementation of stores.UserStore and stores.MealStore. It is
// safe for concurrent use and is primarily intended for tests and local development.
type Store struct {
	mu          sync.RWMutex
	users       map[string]models.User
	byEmail     map[string]string
	bySession   map[string]string
	meals       map[string]mealRecord
	nextMealSeq int64
}

type mealRecord struct {
	meal models.Meal
	seq  int64
}

var _ stores.UserStore = (*Store)(nil)
var _ stores.MealStore = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{
		users:     make(map[string]models.User),
		byEmail:   make(map[string]string),
		bySession: make(map[string]string),
		meals:     make(map[string]mealRecord),
	}
}

func (s *Store) CreateUser(_ context.Context, name, email, sessionToken string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[email]; ok {
		return nil, stores.ErrDuplicateEmail
	}
	if _, ok := s.bySession[sessionToken]; ok {
		return nil, stores.ErrDuplicateSession
	}

	now := time.Now().UTC()
	user := models.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		SessionID: sessionToken,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users[user.ID] = user
	s.byEmail[email] = user.ID
	s.bySession[sessionToken] = user.ID
	return &user, nil
}

func (s *Store) FindByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userLocked(s.byEmail[email])
}

func (s *Store) FindBySessionToken(_ context.Context, token string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userLocked(s.bySession[token])
}

func (s *Store) userLocked(id string) (*models.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, stores.ErrNotFound
	}
	return &user, nil
}

func (s *Store) Create(_ context.Context, meal *models.Meal) (*models.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[meal.UserID]; !ok {
		return nil, stores.ErrUnknownOwner
	}

	now := time.Now().UTC()
	meal.ID = uuid.NewString()
	meal.CreatedAt = now
	meal.UpdatedAt = now

	s.nextMealSeq++
	s.meals[meal.ID] = mealRecord{meal: *meal, seq: s.nextMealSeq}
	return meal, nil
}

func (s *Store) Update(_ context.Context, ownerID, mealID string, fields models.MealFields) (*models.Meal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.meals[mealID]
	if !ok || rec.meal.UserID != ownerID {
		return nil, stores.ErrNotFound
	}
	rec.meal.Name = fields.Name
	rec.meal.Description = fields.Description
	rec.meal.DateTime = fields.DateTime
	rec.meal.IsInTheDiet = fields.IsInTheDiet
	rec.meal.UpdatedAt = time.Now().UTC()
	s.meals[mealID] = rec

	meal := rec.meal
	return &meal, nil
}

func (s *Store) Delete(_ context.Context, ownerID, mealID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.meals[mealID]
	if !ok || rec.meal.UserID != ownerID {
		return stores.ErrNotFound
	}
	delete(s.meals, mealID)
	return nil
}

func (s *Store) ListByOwner(_ context.Context, ownerID string) ([]models.Meal, error) {
	s.mu.RLock()
	recs := make([]mealRecord, 0)
	for _, rec := range s.meals {
		if rec.meal.UserID == ownerID {
			recs = append(recs, rec)
		}
	}
	s.mu.RUnlock()

	sort.Slice(recs, func(i, j int) bool {
		a, b := recs[i].meal.DateTime, recs[j].meal.DateTime
		if !a.Equal(b) {
			return a.After(b)
		}
		return recs[i].seq < recs[j].seq
	})

	meals := make([]models.Meal, len(recs))
	for i, rec := range recs {
		meals[i] = rec.meal
	}
	return meals, nil
}

func (s *Store) GetOne(_ context.Context, ownerID, mealID string) (*models.Meal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.meals[mealID]
	if !ok || rec.meal.UserID != ownerID {
		return nil, nil
	}
	meal := rec.meal
	return &meal, nil
}
