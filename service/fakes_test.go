package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/beka-birhanu/mazegen/identity"
	"github.com/beka-birhanu/mazegen/placement"
	"github.com/beka-birhanu/mazegen/service/i"
	"github.com/beka-birhanu/mazegen/settings"
	"github.com/google/uuid"
)

type memoryPlanStore struct {
	plans      map[uuid.UUID]*placement.Plan
	saveErr    error
	beforeSave func()
	sync.Mutex
}

func newMemoryPlanStore() *memoryPlanStore {
	return &memoryPlanStore{plans: make(map[uuid.UUID]*placement.Plan)}
}

func (s *memoryPlanStore) Save(_ context.Context, plan *placement.Plan) error {
	s.Lock()
	defer s.Unlock()
	if s.beforeSave != nil {
		s.beforeSave()
	}
	if s.saveErr != nil {
		return s.saveErr
	}
	s.plans[plan.ID] = plan
	return nil
}

func (s *memoryPlanStore) ByID(_ context.Context, id uuid.UUID) (*placement.Plan, error) {
	s.Lock()
	defer s.Unlock()
	plan, ok := s.plans[id]
	if !ok {
		return nil, i.ErrNotFound
	}
	return plan, nil
}

type memorySettingsRepo struct {
	records    map[uuid.UUID][]byte
	saveErr    error
	loadErr    error
	beforeSave func()
	sync.Mutex
}

func newMemorySettingsRepo() *memorySettingsRepo {
	return &memorySettingsRepo{records: make(map[uuid.UUID][]byte)}
}

func (r *memorySettingsRepo) Save(_ context.Context, ownerID uuid.UUID, s settings.Settings) error {
	r.Lock()
	defer r.Unlock()
	if r.beforeSave != nil {
		r.beforeSave()
	}
	if r.saveErr != nil {
		return r.saveErr
	}
	record, err := s.MarshalBinary()
	if err != nil {
		return err
	}
	r.records[ownerID] = record
	return nil
}

func (r *memorySettingsRepo) ByOwner(_ context.Context, ownerID uuid.UUID) (settings.Settings, error) {
	r.Lock()
	defer r.Unlock()
	if r.loadErr != nil {
		return settings.Settings{}, r.loadErr
	}
	record, ok := r.records[ownerID]
	if !ok {
		return settings.Settings{}, i.ErrNotFound
	}
	var s settings.Settings
	err := s.UnmarshalBinary(record)
	return s, err
}

type memoryAccountRepo struct {
	accounts map[uuid.UUID]*identity.Account
	saveErr  error
	sync.Mutex
}

func newMemoryAccountRepo() *memoryAccountRepo {
	return &memoryAccountRepo{accounts: make(map[uuid.UUID]*identity.Account)}
}

func (r *memoryAccountRepo) Save(account *identity.Account) error {
	r.Lock()
	defer r.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.accounts[account.ID] = account
	return nil
}

func (r *memoryAccountRepo) ByID(id uuid.UUID) (*identity.Account, error) {
	r.Lock()
	defer r.Unlock()
	account, ok := r.accounts[id]
	if !ok {
		return nil, i.ErrNotFound
	}
	return account, nil
}

func (r *memoryAccountRepo) ByUsername(username string) (*identity.Account, error) {
	r.Lock()
	defer r.Unlock()
	for _, account := range r.accounts {
		if account.Username == username {
			return account, nil
		}
	}
	return nil, i.ErrNotFound
}

// recordingLocker counts acquisitions and releases per key.
type recordingLocker struct {
	lockErr  error
	held     map[string]bool
	acquired []string
	released []string
	mu       sync.Mutex
}

func newRecordingLocker() *recordingLocker {
	return &recordingLocker{held: make(map[string]bool)}
}

func (l *recordingLocker) Lock(_ context.Context, key string) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.lockErr != nil {
		return nil, l.lockErr
	}
	if l.held[key] {
		return nil, fmt.Errorf("%s already held", key)
	}
	l.held[key] = true
	l.acquired = append(l.acquired, key)
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.held[key] = false
		l.released = append(l.released, key)
	}, nil
}

func (l *recordingLocker) isHeld(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.held[key]
}

// stubTokenizer encodes the claims it was given so tests can inspect them.
type stubTokenizer struct {
	lastClaims map[string]interface{}
	lastExp    time.Duration
}

func (t *stubTokenizer) Generate(claims map[string]interface{}, exp time.Duration) (string, error) {
	t.lastClaims = claims
	t.lastExp = exp
	return fmt.Sprintf("token-for-%v", claims[i.ClaimAccountID]), nil
}

func (t *stubTokenizer) Decode(token string) (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
