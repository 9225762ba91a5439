package order

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"oceanbrew/internal/pricing"
)

var ErrOrderNotFound = errors.New("order not found")

// retentionDays is how long order history is kept.
const retentionDays = 30

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// GET ALL (PRUNES OLD ROWS FIRST)
// --------------------------------------------------
func (r *PostgresRepository) GetAll(ctx context.Context) ([]Order, error) {

	if err := r.prune(ctx); err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, order_number, items, subtotal, discount, total, status, created_at
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

// --------------------------------------------------
// GET BY ID
// --------------------------------------------------
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Order, error) {

	var (
		o     Order
		items []byte
	)

	err := r.db.QueryRow(ctx, `
		SELECT id, order_number, items, subtotal, discount, total, status, created_at
		FROM orders
		WHERE id = $1
	`, id).Scan(
		&o.ID,
		&o.OrderNumber,
		&items,
		&o.Subtotal,
		&o.Discount,
		&o.Total,
		&o.Status,
		&o.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}

	return &o, nil
}

// --------------------------------------------------
// GET BY DATE RANGE
// --------------------------------------------------
func (r *PostgresRepository) GetByDateRange(ctx context.Context, from, to time.Time) ([]Order, error) {

	rows, err := r.db.Query(ctx, `
		SELECT id, order_number, items, subtotal, discount, total, status, created_at
		FROM orders
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at DESC
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}

// --------------------------------------------------
// CREATE (NUMBER + INSERT IN ONE TRANSACTION)
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, o *Order, day string) (int, error) {

	items, err := json.Marshal(o.Items)
	if err != nil {
		return 0, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	// The stored day is compared at generation time: a row for a new
	// day starts the counter at 1, same-day rows increment it. A
	// failed insert rolls the increment back, keeping the per-day
	// sequence gapless.
	var n int
	err = tx.QueryRow(ctx, `
		INSERT INTO order_counters (day, counter)
		VALUES ($1, 1)
		ON CONFLICT (day) DO UPDATE
		SET counter = order_counters.counter + 1
		RETURNING counter
	`, day).Scan(&n)
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (
			id, order_number, items, subtotal, discount, total, status, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		o.ID,
		n,
		items,
		o.Subtotal,
		o.Discount,
		o.Total,
		o.Status,
		o.CreatedAt,
	)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}

	return n, nil
}

// --------------------------------------------------
// UPDATE STATUS
// --------------------------------------------------
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status Status) error {

	cmd, err := r.db.Exec(ctx, `
		UPDATE orders
		SET status = $1
		WHERE id = $2
	`, status, id)

	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// --------------------------------------------------
// RETENTION PRUNE
// --------------------------------------------------
func (r *PostgresRepository) prune(ctx context.Context) error {

	_, err := r.db.Exec(ctx, `
		DELETE FROM orders
		WHERE created_at < now() - ($1 * interval '1 day')
	`, retentionDays)

	return err
}

func scanOrders(rows pgx.Rows) ([]Order, error) {

	var orders []Order

	for rows.Next() {
		var (
			o     Order
			items []byte
		)
		if err := rows.Scan(
			&o.ID,
			&o.OrderNumber,
			&items,
			&o.Subtotal,
			&o.Discount,
			&o.Total,
			&o.Status,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, err
		}
		if o.Items == nil {
			o.Items = []pricing.OrderLine{}
		}

		orders = append(orders, o)
	}

	return orders, rows.Err()
}
