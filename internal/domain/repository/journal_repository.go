package repository

import (
	"context"

	"github.com/travelog/backend/internal/domain/entity"
)

// JournalRepository defines the interface for journal entry persistence.
// Every operation is scoped to an owner; a row that exists under a different
// owner behaves exactly like a row that does not exist.
type JournalRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*entity.JournalEntry, error)
	Create(ctx context.Context, e *entity.JournalEntry) error
	Update(ctx context.Context, userID string, id int64, patch entity.JournalEntryPatch) (*entity.JournalEntry, error)
	Delete(ctx context.Context, userID string, id int64) error
}
