package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/tastelog/internal/db"
	"github.com/erazemk/tastelog/internal/model"
)

// Filters manages brewing filters.
type Filters struct {
	db *db.DB
}

func NewFilters(d *db.DB) *Filters {
	return &Filters{db: d}
}

const filterColumns = `f.id, f.name, f.type, f.notes, f.url, f.image_path,
	(SELECT COUNT(*) FROM tastings t WHERE t.filter_id = f.id), f.created_at`

func scanFilter(row interface{ Scan(...any) error }) (*model.Filter, error) {
	f := &model.Filter{}
	err := row.Scan(&f.ID, &f.Name, &f.Type, &f.Notes, &f.URL, &f.ImagePath,
		&f.UsageCount, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// List returns all filters in creation order, with their usage counts.
func (s *Filters) List(ctx context.Context) ([]model.Filter, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+filterColumns+` FROM filters f ORDER BY f.created_at ASC, f.id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing filters: %w", err)
	}
	defer rows.Close()

	filters := []model.Filter{}
	for rows.Next() {
		f, err := scanFilter(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning filter: %w", err)
		}
		filters = append(filters, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing filters: %w", err)
	}
	return filters, nil
}

// Get returns a filter by ID.
func (s *Filters) Get(ctx context.Context, id int64) (*model.Filter, error) {
	f, err := scanFilter(s.db.QueryRowContext(ctx,
		`SELECT `+filterColumns+` FROM filters f WHERE f.id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting filter: %w", err)
	}
	return f, nil
}

// Create inserts a new filter.
func (s *Filters) Create(ctx context.Context, in model.FilterInput) (*model.Filter, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO filters (name, type, notes, url, image_path)
		 VALUES (?, ?, ?, ?, ?) RETURNING id`,
		in.Name, in.Type, in.Notes, in.URL, in.ImagePath,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("creating filter: %w", err)
	}
	return s.Get(ctx, id)
}
