package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"dealergate/internal/company/models"
)

// MemoryTermStore keeps term versions in memory for tests and the local
// profile.
type MemoryTermStore struct {
	mu    sync.RWMutex
	terms []models.Term
}

func NewMemoryTermStore(terms ...models.Term) *MemoryTermStore {
	return &MemoryTermStore{terms: terms}
}

// Put adds a term version.
func (s *MemoryTermStore) Put(term models.Term) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.terms = append(s.terms, term)
}

func (s *MemoryTermStore) ActiveTerm(_ context.Context) (*models.Term, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var active *models.Term
	for i := range s.terms {
		t := s.terms[i]
		if active == nil || t.EffectiveFrom.After(active.EffectiveFrom) {
			active = &t
		}
	}
	if active == nil {
		return nil, ErrNotFound
	}
	found := *active
	return &found, nil
}

// MemoryCompanyStore keeps tenant records in memory and records every
// onboarding payload it is asked to run, so tests can assert the transaction
// was or was not invoked.
type MemoryCompanyStore struct {
	mu        sync.RWMutex
	byOwner   map[uuid.UUID]models.Company
	onboarded []models.OnboardingPayload
	txErr     error
}

func NewMemoryCompanyStore() *MemoryCompanyStore {
	return &MemoryCompanyStore{byOwner: make(map[uuid.UUID]models.Company)}
}

// CreateForOwner provisions a company row, the in-memory analog of the
// registration trigger in the external schema.
func (s *MemoryCompanyStore) CreateForOwner(_ context.Context, ownerID uuid.UUID) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := models.Company{ID: uuid.New(), OwnerID: ownerID}
	s.byOwner[ownerID] = c
	return &c, nil
}

func (s *MemoryCompanyStore) FindByOwner(_ context.Context, ownerID uuid.UUID) (*models.Company, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.byOwner[ownerID]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemoryCompanyStore) RunOnboardingTx(_ context.Context, payload models.OnboardingPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.txErr != nil {
		return s.txErr
	}
	s.onboarded = append(s.onboarded, payload)
	return nil
}

// FailOnboardingWith makes subsequent RunOnboardingTx calls fail.
func (s *MemoryCompanyStore) FailOnboardingWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txErr = err
}

// OnboardingRuns returns a copy of the recorded payloads.
func (s *MemoryCompanyStore) OnboardingRuns() []models.OnboardingPayload {
	s.mu.RLock()
	defer s.mu.RUnlock()
	runs := make([]models.OnboardingPayload, len(s.onboarded))
	copy(runs, s.onboarded)
	return runs
}
