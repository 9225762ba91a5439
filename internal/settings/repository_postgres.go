package settings

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// GET (DEFAULTS WHEN UNSET)
// --------------------------------------------------
func (r *PostgresRepository) Get(ctx context.Context) (*StoreSettings, error) {

	var s StoreSettings

	err := r.db.QueryRow(ctx, `
		SELECT store_name, store_address, store_phone, store_email,
		       wifi_ssid, wifi_password, receipt_footer
		FROM store_settings
		WHERE id = 1
	`).Scan(
		&s.StoreName,
		&s.StoreAddress,
		&s.StorePhone,
		&s.StoreEmail,
		&s.WifiSSID,
		&s.WifiPassword,
		&s.ReceiptFooter,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			d := Defaults()
			return &d, nil
		}
		return nil, err
	}

	return &s, nil
}

// --------------------------------------------------
// SAVE (SINGLE ROW UPSERT)
// --------------------------------------------------
func (r *PostgresRepository) Save(ctx context.Context, s *StoreSettings) error {

	_, err := r.db.Exec(ctx, `
		INSERT INTO store_settings (
			id, store_name, store_address, store_phone, store_email,
			wifi_ssid, wifi_password, receipt_footer, updated_at
		)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, now())
		ON CONFLICT (id) DO UPDATE
		SET store_name = $1,
		    store_address = $2,
		    store_phone = $3,
		    store_email = $4,
		    wifi_ssid = $5,
		    wifi_password = $6,
		    receipt_footer = $7,
		    updated_at = now()
	`,
		s.StoreName,
		s.StoreAddress,
		s.StorePhone,
		s.StoreEmail,
		s.WifiSSID,
		s.WifiPassword,
		s.ReceiptFooter,
	)

	return err
}
