package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/tastelog/internal/db"
	"github.com/erazemk/tastelog/internal/model"
)

// Tastings records brews. Its references to beans, drippers and filters are
// what the usage counts are derived from.
type Tastings struct {
	db *db.DB
}

func NewTastings(d *db.DB) *Tastings {
	return &Tastings{db: d}
}

const tastingQuery = `SELECT t.id, t.bean_id, t.dripper_id, t.filter_id, t.notes, t.image_path, t.created_at,
	COALESCE(b.name, ''), COALESCE(d.name, ''), COALESCE(f.name, '')
	FROM tastings t
	LEFT JOIN bean_masters b ON b.id = t.bean_id
	LEFT JOIN drippers d ON d.id = t.dripper_id
	LEFT JOIN filters f ON f.id = t.filter_id`

func scanTasting(row interface{ Scan(...any) error }) (*model.Tasting, error) {
	t := &model.Tasting{}
	err := row.Scan(&t.ID, &t.BeanID, &t.DripperID, &t.FilterID, &t.Notes, &t.ImagePath, &t.CreatedAt,
		&t.BeanName, &t.DripperName, &t.FilterName)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// List returns all tastings, newest first.
func (s *Tastings) List(ctx context.Context) ([]model.Tasting, error) {
	rows, err := s.db.QueryContext(ctx, tastingQuery+` ORDER BY t.created_at DESC, t.id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing tastings: %w", err)
	}
	defer rows.Close()

	tastings := []model.Tasting{}
	for rows.Next() {
		t, err := scanTasting(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning tasting: %w", err)
		}
		tastings = append(tastings, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing tastings: %w", err)
	}
	return tastings, nil
}

// Get returns a tasting by ID.
func (s *Tastings) Get(ctx context.Context, id int64) (*model.Tasting, error) {
	t, err := scanTasting(s.db.QueryRowContext(ctx, tastingQuery+` WHERE t.id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting tasting: %w", err)
	}
	return t, nil
}

// Create inserts a new tasting. A reference to a missing bean, dripper or
// filter yields ErrInvalidReference.
func (s *Tastings) Create(ctx context.Context, in model.TastingInput) (*model.Tasting, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO tastings (bean_id, dripper_id, filter_id, notes, image_path)
		 VALUES (?, ?, ?, ?, ?) RETURNING id`,
		in.BeanID, in.DripperID, in.FilterID, in.Notes, in.ImagePath,
	).Scan(&id)
	if db.IsForeignKeyViolation(err) {
		return nil, fmt.Errorf("creating tasting: %w", ErrInvalidReference)
	}
	if err != nil {
		return nil, fmt.Errorf("creating tasting: %w", err)
	}
	return s.Get(ctx, id)
}
