package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/tastelog/internal/db"
	"github.com/erazemk/tastelog/internal/model"
)

// Beans manages bean masters.
type Beans struct {
	db *db.DB
}

func NewBeans(d *db.DB) *Beans {
	return &Beans{db: d}
}

const beanColumns = `b.id, b.name, b.origin, b.roast_level, b.process, b.notes,
	(SELECT COUNT(*) FROM tastings t WHERE t.bean_id = b.id), b.created_at`

func scanBean(row interface{ Scan(...any) error }) (*model.BeanMaster, error) {
	b := &model.BeanMaster{}
	err := row.Scan(&b.ID, &b.Name, &b.Origin, &b.RoastLevel, &b.Process, &b.Notes,
		&b.UsageCount, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// List returns all beans ordered by name, with their usage counts.
func (s *Beans) List(ctx context.Context) ([]model.BeanMaster, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+beanColumns+` FROM bean_masters b ORDER BY b.name ASC, b.id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing beans: %w", err)
	}
	defer rows.Close()

	beans := []model.BeanMaster{}
	for rows.Next() {
		b, err := scanBean(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bean: %w", err)
		}
		beans = append(beans, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing beans: %w", err)
	}
	return beans, nil
}

// Get returns a bean by ID.
func (s *Beans) Get(ctx context.Context, id int64) (*model.BeanMaster, error) {
	b, err := scanBean(s.db.QueryRowContext(ctx,
		`SELECT `+beanColumns+` FROM bean_masters b WHERE b.id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting bean: %w", err)
	}
	return b, nil
}

// Create inserts a new bean.
func (s *Beans) Create(ctx context.Context, in model.BeanMasterInput) (*model.BeanMaster, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO bean_masters (name, origin, roast_level, process, notes)
		 VALUES (?, ?, ?, ?, ?) RETURNING id`,
		in.Name, in.Origin, in.RoastLevel, in.Process, in.Notes,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("creating bean: %w", err)
	}
	return s.Get(ctx, id)
}
