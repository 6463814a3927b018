package repository

import (
	"context"
	"sync"

	"go-calc-api/internal/model"
)

// MemoryUserStore keeps users in process memory. The check-and-insert
// in Create happens under one lock, so the duplicate-email invariant
// holds across concurrent registrations. Used by tests and DB-less runs.
type MemoryUserStore struct {
	mu      sync.Mutex
	byEmail map[string]model.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{byEmail: map[string]model.User{}}
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, exists := s.byEmail[email]
	if !exists {
		return model.User{}, model.ErrUserNotFound
	}
	return user, nil
}

func (s *MemoryUserStore) Create(_ context.Context, u model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[u.Email]; exists {
		return model.ErrDuplicateEmail
	}
	s.byEmail[u.Email] = u
	return nil
}

// MemoryScenarioStore is the in-memory counterpart of ScenarioRepository.
type MemoryScenarioStore struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]model.Scenario
}

func NewMemoryScenarioStore() *MemoryScenarioStore {
	return &MemoryScenarioStore{byID: map[int64]model.Scenario{}}
}

func (s *MemoryScenarioStore) Create(_ context.Context, scenario model.Scenario) (model.Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	scenario.ID = s.nextID
	s.byID[scenario.ID] = scenario
	return scenario, nil
}

func (s *MemoryScenarioStore) FindByID(_ context.Context, id int64) (model.Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scenario, exists := s.byID[id]
	if !exists {
		return model.Scenario{}, model.ErrScenarioNotFound
	}
	return scenario, nil
}

func (s *MemoryScenarioStore) List(_ context.Context) ([]model.Scenario, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scenarios := make([]model.Scenario, 0, len(s.byID))
	for id := int64(1); id <= s.nextID; id++ {
		if scenario, exists := s.byID[id]; exists {
			scenarios = append(scenarios, scenario)
		}
	}
	return scenarios, nil
}

func (s *MemoryScenarioStore) ListByOwner(ctx context.Context, userID string) ([]model.Scenario, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]model.Scenario, 0, len(all))
	for _, scenario := range all {
		if scenario.UserID == userID {
			owned = append(owned, scenario)
		}
	}
	return owned, nil
}

func (s *MemoryScenarioStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[id]; !exists {
		return model.ErrScenarioNotFound
	}
	delete(s.byID, id)
	return nil
}
