package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrItemNotFound = errors.New("menu item not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// LIST CATALOG
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]MenuItem, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, name, category, price_r, price_l, available, has_size_option
		FROM menu_items
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []MenuItem

	for rows.Next() {
		var m MenuItem
		if err := rows.Scan(
			&m.ID,
			&m.Name,
			&m.Category,
			&m.PriceR,
			&m.PriceL,
			&m.Available,
			&m.HasSizeOption,
		); err != nil {
			return nil, err
		}
		items = append(items, m)
	}

	return items, rows.Err()
}

// --------------------------------------------------
// GET BY ID
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*MenuItem, error) {

	var m MenuItem

	err := r.db.QueryRow(ctx, `
		SELECT id, name, category, price_r, price_l, available, has_size_option
		FROM menu_items
		WHERE id = $1
	`, id).Scan(
		&m.ID,
		&m.Name,
		&m.Category,
		&m.PriceR,
		&m.PriceL,
		&m.Available,
		&m.HasSizeOption,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	return &m, nil
}

// --------------------------------------------------
// UPSERT (CREATE OR REPLACE)
// --------------------------------------------------
func (r *PostgresRepository) Upsert(ctx context.Context, item *MenuItem) error {

	_, err := r.db.Exec(ctx, `
		INSERT INTO menu_items (
			id, name, category, price_r, price_l, available, has_size_option, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (id) DO UPDATE
		SET name = $2,
		    category = $3,
		    price_r = $4,
		    price_l = $5,
		    available = $6,
		    has_size_option = $7,
		    updated_at = now()
	`,
		item.ID,
		item.Name,
		item.Category,
		item.PriceR,
		item.PriceL,
		item.Available,
		item.HasSizeOption,
	)

	return err
}

// --------------------------------------------------
// DELETE
// --------------------------------------------------
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {

	cmd, err := r.db.Exec(ctx, `
		DELETE FROM menu_items
		WHERE id = $1
	`, id)

	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrItemNotFound
	}

	return nil
}

// --------------------------------------------------
// COUNT (FIRST-RUN SEEDING)
// --------------------------------------------------
func (r *PostgresRepository) Count(ctx context.Context) (int, error) {

	var n int
	err := r.db.QueryRow(ctx, `SELECT count(*) FROM menu_items`).Scan(&n)
	return n, err
}
