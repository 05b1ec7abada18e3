package application

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/travelog/backend/internal/domain/entity"
	"github.com/travelog/backend/internal/domain/repository"
)

// memUserRepo is an in-memory UserRepository honoring the same contract as
// the Postgres implementation (unique email, ErrNotFound).
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return repository.ErrEmailTaken
		}
	}
	u.ID = uuid.NewString()
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) UpdateProfile(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return repository.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

// memJournalRepo is an in-memory JournalRepository with the same ownership
// collapse as the Postgres implementation: a row owned by someone else is
// indistinguishable from a missing row.
type memJournalRepo struct {
	mu      sync.Mutex
	entries map[int64]*entity.JournalEntry
	nextID  int64
}

func newMemJournalRepo() *memJournalRepo {
	return &memJournalRepo{entries: map[int64]*entity.JournalEntry{}, nextID: 1}
}

func (r *memJournalRepo) ListByUser(_ context.Context, userID string) ([]*entity.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.JournalEntry, 0)
	for _, e := range r.entries {
		if e.UserID == userID {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].VisitedDate.Equal(out[j].VisitedDate) {
			return out[i].VisitedDate.After(out[j].VisitedDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *memJournalRepo) Create(_ context.Context, e *entity.JournalEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e.ID = r.nextID
	r.nextID++
	now := time.Now()
	e.CreatedAt = now
	e.UpdatedAt = now
	cp := *e
	r.entries[e.ID] = &cp
	return nil
}

func (r *memJournalRepo) Update(_ context.Context, userID string, id int64, patch entity.JournalEntryPatch) (*entity.JournalEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return nil, repository.ErrNotFound
	}
	if patch.City != nil {
		e.City = *patch.City
	}
	if patch.Country != nil {
		e.Country = *patch.Country
	}
	if patch.Latitude != nil {
		e.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		e.Longitude = *patch.Longitude
	}
	if patch.VisitedDate != nil {
		e.VisitedDate = *patch.VisitedDate
	}
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Description != nil {
		e.Description = patch.Description
	}
	if patch.Companions != nil {
		e.Companions = patch.Companions
	}
	if patch.Rating != nil {
		e.Rating = patch.Rating
	}
	e.UpdatedAt = time.Now()
	cp := *e
	return &cp, nil
}

func (r *memJournalRepo) Delete(_ context.Context, userID string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok || e.UserID != userID {
		return repository.ErrNotFound
	}
	delete(r.entries, id)
	return nil
}

var (
	_ repository.UserRepository    = (*memUserRepo)(nil)
	_ repository.JournalRepository = (*memJournalRepo)(nil)
)
