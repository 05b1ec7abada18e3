package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/travelog/backend/internal/domain/entity"
	"github.com/travelog/backend/internal/domain/repository"
)

const entryColumns = `id, user_id, city, country, latitude, longitude, visited_date,
	title, description, companions, rating, created_at, updated_at`

type JournalRepository struct {
	pool *pgxpool.Pool
}

func NewJournalRepository(pool *pgxpool.Pool) *JournalRepository {
	return &JournalRepository{pool: pool}
}

func (r *JournalRepository) ListByUser(ctx context.Context, userID string) ([]*entity.JournalEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+entryColumns+`
		FROM journal_entries
		WHERE user_id = $1
		ORDER BY visited_date DESC, id DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*entity.JournalEntry, 0)
	for rows.Next() {
		e := &entity.JournalEntry{}
		if err := scanEntry(rows, e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *JournalRepository) Create(ctx context.Context, e *entity.JournalEntry) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO journal_entries
			(user_id, city, country, latitude, longitude, visited_date,
			 title, description, companions, rating)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, e.UserID, e.City, e.Country, e.Latitude, e.Longitude, e.VisitedDate,
		e.Title, e.Description, e.Companions, e.Rating)

	return row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

// Update merges the patch into the row under a row lock so concurrent updates
// of the same entry serialize (last write wins). A row owned by another user
// surfaces as ErrNotFound, same as a missing row.
func (r *JournalRepository) Update(ctx context.Context, userID string, id int64, patch entity.JournalEntryPatch) (*entity.JournalEntry, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	e := &entity.JournalEntry{}
	row := tx.QueryRow(ctx, `
		SELECT `+entryColumns+`
		FROM journal_entries
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`, id, userID)
	if err := scanEntry(row, e); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	applyPatch(e, patch)
	e.UpdatedAt = time.Now()

	_, err = tx.Exec(ctx, `
		UPDATE journal_entries
		SET city = $1, country = $2, latitude = $3, longitude = $4,
			visited_date = $5, title = $6, description = $7, companions = $8,
			rating = $9, updated_at = $10
		WHERE id = $11
	`, e.City, e.Country, e.Latitude, e.Longitude, e.VisitedDate, e.Title,
		e.Description, e.Companions, e.Rating, e.UpdatedAt, e.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *JournalRepository) Delete(ctx context.Context, userID string, id int64) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM journal_entries
		WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func applyPatch(e *entity.JournalEntry, p entity.JournalEntryPatch) {
	if p.City != nil {
		e.City = *p.City
	}
	if p.Country != nil {
		e.Country = *p.Country
	}
	if p.Latitude != nil {
		e.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		e.Longitude = *p.Longitude
	}
	if p.VisitedDate != nil {
		e.VisitedDate = *p.VisitedDate
	}
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = p.Description
	}
	if p.Companions != nil {
		e.Companions = p.Companions
	}
	if p.Rating != nil {
		e.Rating = p.Rating
	}
}

func scanEntry(row pgx.Row, e *entity.JournalEntry) error {
	return row.Scan(&e.ID, &e.UserID, &e.City, &e.Country, &e.Latitude,
		&e.Longitude, &e.VisitedDate, &e.Title, &e.Description, &e.Companions,
		&e.Rating, &e.CreatedAt, &e.UpdatedAt)
}

var _ repository.JournalRepository = (*JournalRepository)(nil)
