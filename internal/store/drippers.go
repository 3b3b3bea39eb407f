package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/tastelog/internal/db"
	"github.com/erazemk/tastelog/internal/model"
)

// Drippers manages pour-over brewers.
type Drippers struct {
	db *db.DB
}

func NewDrippers(d *db.DB) *Drippers {
	return &Drippers{db: d}
}

const dripperColumns = `d.id, d.name, d.manufacturer, d.size, d.notes, d.url, d.image_path,
	(SELECT COUNT(*) FROM tastings t WHERE t.dripper_id = d.id), d.created_at`

func scanDripper(row interface{ Scan(...any) error }) (*model.Dripper, error) {
	d := &model.Dripper{}
	err := row.Scan(&d.ID, &d.Name, &d.Manufacturer, &d.Size, &d.Notes, &d.URL, &d.ImagePath,
		&d.UsageCount, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// List returns all drippers in creation order, with their usage counts.
func (s *Drippers) List(ctx context.Context) ([]model.Dripper, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+dripperColumns+` FROM drippers d ORDER BY d.created_at ASC, d.id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing drippers: %w", err)
	}
	defer rows.Close()

	drippers := []model.Dripper{}
	for rows.Next() {
		d, err := scanDripper(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning dripper: %w", err)
		}
		drippers = append(drippers, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing drippers: %w", err)
	}
	return drippers, nil
}

// Get returns a dripper by ID.
func (s *Drippers) Get(ctx context.Context, id int64) (*model.Dripper, error) {
	d, err := scanDripper(s.db.QueryRowContext(ctx,
		`SELECT `+dripperColumns+` FROM drippers d WHERE d.id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting dripper: %w", err)
	}
	return d, nil
}

// Create inserts a new dripper.
func (s *Drippers) Create(ctx context.Context, in model.DripperInput) (*model.Dripper, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO drippers (name, manufacturer, size, notes, url, image_path)
		 VALUES (?, ?, ?, ?, ?, ?) RETURNING id`,
		in.Name, in.Manufacturer, in.Size, in.Notes, in.URL, in.ImagePath,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("creating dripper: %w", err)
	}
	return s.Get(ctx, id)
}

// Delete removes a dripper. Tastings that used it keep their row with the
// reference cleared. The dripper's image file is left in place.
func (s *Drippers) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM drippers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting dripper: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting dripper: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
