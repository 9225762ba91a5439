package db

import (
	"context"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		logrus.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logrus.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		logrus.Fatal("Postgres connection failed: ", err)
	}

	logrus.Info("connected to PostgreSQL")

	if err := initSchema(db); err != nil {
		logrus.Fatal("Failed to initialize schema: ", err)
	}

	return db
}

// initSchema creates or updates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// MENU ITEMS
	// -------------------------------
	menuItemsSQL := `
		CREATE TABLE IF NOT EXISTS menu_items (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(64) NOT NULL,
			price_r NUMERIC(10,2) NOT NULL,
			price_l NUMERIC(10,2) NULL,
			available BOOLEAN NOT NULL DEFAULT TRUE,
			has_size_option BOOLEAN NOT NULL DEFAULT FALSE,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, menuItemsSQL); err != nil {
		return err
	}

	// -------------------------------
	// ORDERS
	// -------------------------------
	ordersSQL := `
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			order_number INT NOT NULL,
			items JSONB NOT NULL,
			subtotal NUMERIC(12,2) NOT NULL,
			discount NUMERIC(12,2) NOT NULL DEFAULT 0,
			total NUMERIC(12,2) NOT NULL,
			status VARCHAR(16) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
	if _, err := db.Exec(ctx, ordersSQL); err != nil {
		return err
	}

	// -------------------------------
	// PER-DAY ORDER COUNTER
	// -------------------------------
	countersSQL := `
		CREATE TABLE IF NOT EXISTS order_counters (
			day VARCHAR(10) PRIMARY KEY,
			counter INT NOT NULL
		)
	`
	if _, err := db.Exec(ctx, countersSQL); err != nil {
		return err
	}

	// -------------------------------
	// STORE SETTINGS (SINGLE ROW)
	// -------------------------------
	settingsSQL := `
		CREATE TABLE IF NOT EXISTS store_settings (
			id INT PRIMARY KEY,
			store_name VARCHAR(255) NOT NULL,
			store_address VARCHAR(500) NOT NULL DEFAULT '',
			store_phone VARCHAR(64) NOT NULL DEFAULT '',
			store_email VARCHAR(255) NOT NULL DEFAULT '',
			wifi_ssid VARCHAR(255) NOT NULL DEFAULT '',
			wifi_password VARCHAR(255) NOT NULL DEFAULT '',
			receipt_footer VARCHAR(500) NOT NULL DEFAULT '',
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, settingsSQL); err != nil {
		return err
	}

	logrus.Info("schema initialized")
	return nil
}
