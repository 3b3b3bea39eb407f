package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/tastelog/internal/db"
	"github.com/erazemk/tastelog/internal/model"
)

// Origins manages producing countries and regions. Names are unique.
type Origins struct {
	db *db.DB
}

func NewOrigins(d *db.DB) *Origins {
	return &Origins{db: d}
}

const originColumns = `id, name, notes, created_at`

func scanOrigin(row interface{ Scan(...any) error }) (*model.Origin, error) {
	o := &model.Origin{}
	if err := row.Scan(&o.ID, &o.Name, &o.Notes, &o.CreatedAt); err != nil {
		return nil, err
	}
	return o, nil
}

// List returns all origins ordered by name.
func (s *Origins) List(ctx context.Context) ([]model.Origin, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+originColumns+` FROM origins ORDER BY name ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing origins: %w", err)
	}
	defer rows.Close()

	origins := []model.Origin{}
	for rows.Next() {
		o, err := scanOrigin(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning origin: %w", err)
		}
		origins = append(origins, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing origins: %w", err)
	}
	return origins, nil
}

// Get returns an origin by ID.
func (s *Origins) Get(ctx context.Context, id int64) (*model.Origin, error) {
	o, err := scanOrigin(s.db.QueryRowContext(ctx,
		`SELECT `+originColumns+` FROM origins WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting origin: %w", err)
	}
	return o, nil
}

// FindByName returns the origin with exactly this name.
func (s *Origins) FindByName(ctx context.Context, name string) (*model.Origin, error) {
	o, err := scanOrigin(s.db.QueryRowContext(ctx,
		`SELECT `+originColumns+` FROM origins WHERE name = ?`, name,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("finding origin: %w", err)
	}
	return o, nil
}

// Create inserts a new origin. It returns ErrDuplicate if the name is taken,
// either by the lookup or by the unique index when two writers race.
func (s *Origins) Create(ctx context.Context, in model.OriginInput) (*model.Origin, error) {
	_, err := s.FindByName(ctx, in.Name)
	if err == nil {
		return nil, fmt.Errorf("origin %q: %w", in.Name, ErrDuplicate)
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	var id int64
	err = s.db.QueryRowContext(ctx,
		`INSERT INTO origins (name, notes) VALUES (?, ?) RETURNING id`,
		in.Name, in.Notes,
	).Scan(&id)
	if db.IsUniqueViolation(err) {
		return nil, fmt.Errorf("origin %q: %w", in.Name, ErrDuplicate)
	}
	if err != nil {
		return nil, fmt.Errorf("creating origin: %w", err)
	}

	return s.Get(ctx, id)
}
