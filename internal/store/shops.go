package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/erazemk/tastelog/internal/db"
	"github.com/erazemk/tastelog/internal/model"
)

// Shops manages the shops beans were bought from.
type Shops struct {
	db *db.DB
}

func NewShops(d *db.DB) *Shops {
	return &Shops{db: d}
}

const shopColumns = `id, name, address, url, notes, created_at`

func scanShop(row interface{ Scan(...any) error }) (*model.Shop, error) {
	sh := &model.Shop{}
	if err := row.Scan(&sh.ID, &sh.Name, &sh.Address, &sh.URL, &sh.Notes, &sh.CreatedAt); err != nil {
		return nil, err
	}
	return sh, nil
}

// List returns all shops in creation order.
func (s *Shops) List(ctx context.Context) ([]model.Shop, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+shopColumns+` FROM shops ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing shops: %w", err)
	}
	defer rows.Close()

	shops := []model.Shop{}
	for rows.Next() {
		sh, err := scanShop(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning shop: %w", err)
		}
		shops = append(shops, *sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing shops: %w", err)
	}
	return shops, nil
}

// Get returns a shop by ID.
func (s *Shops) Get(ctx context.Context, id int64) (*model.Shop, error) {
	sh, err := scanShop(s.db.QueryRowContext(ctx,
		`SELECT `+shopColumns+` FROM shops WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting shop: %w", err)
	}
	return sh, nil
}

// Create inserts a new shop. Shop names are not unique.
func (s *Shops) Create(ctx context.Context, in model.ShopInput) (*model.Shop, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO shops (name, address, url, notes) VALUES (?, ?, ?, ?) RETURNING id`,
		in.Name, in.Address, in.URL, in.Notes,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("creating shop: %w", err)
	}
	return s.Get(ctx, id)
}
