package application

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/travelog/backend/internal/domain/entity"
	"github.com/travelog/backend/internal/domain/repository"
)

// JournalService performs ownership-scoped journal operations. The owner is
// always the authenticated caller; a client-supplied user id is never trusted.
type JournalService struct {
	Repo   repository.JournalRepository
	Logger *logrus.Logger
}

func NewJournalService(repo repository.JournalRepository, logger *logrus.Logger) *JournalService {
	return &JournalService{Repo: repo, Logger: logger}
}

// List returns the owner's entries newest visit first, plus the distinct
// countries present, sorted alphabetically.
func (s *JournalService) List(ctx context.Context, userID string) ([]*entity.JournalEntry, []string, error) {
	entries, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return entries, DistinctCountries(entries), nil
}

type CreateEntryInput struct {
	City        string
	Country     string
	Latitude    float64
	Longitude   float64
	VisitedDate time.Time
	Title       string
	Description *string
	Companions  *string
	Rating      *string
}

func (s *JournalService) Create(ctx context.Context, userID string, in CreateEntryInput) (*entity.JournalEntry, error) {
	e := &entity.JournalEntry{
		UserID:      userID,
		City:        in.City,
		Country:     in.Country,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		VisitedDate: in.VisitedDate,
		Title:       in.Title,
		Description: in.Description,
		Companions:  in.Companions,
		Rating:      in.Rating,
	}
	if err := s.Repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *JournalService) Update(ctx context.Context, userID string, id int64, patch entity.JournalEntryPatch) (*entity.JournalEntry, error) {
	return s.Repo.Update(ctx, userID, id, patch)
}

func (s *JournalService) Delete(ctx context.Context, userID string, id int64) error {
	return s.Repo.Delete(ctx, userID, id)
}

// DistinctCountries derives the sorted distinct country list from a set of
// entries. Shared with the client state mirror.
func DistinctCountries(entries []*entity.JournalEntry) []string {
	seen := make(map[string]struct{}, len(entries))
	countries := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Country]; ok {
			continue
		}
		seen[e.Country] = struct{}{}
		countries = append(countries, e.Country)
	}
	sort.Strings(countries)
	return countries
}
