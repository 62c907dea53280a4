// Package store owns the Postgres pool and the schema the repositories
// expect.
package store

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		delivery_address TEXT NOT NULL,
		mobile_number TEXT NOT NULL,
		alt_mobile_number TEXT NOT NULL DEFAULT '',
		payment_method TEXT NOT NULL,
		total_price NUMERIC(10,2) NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		delivered_at TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_id TEXT NOT NULL REFERENCES orders(id),
		item_id TEXT NOT NULL,
		name TEXT NOT NULL,
		price NUMERIC(10,2) NOT NULL,
		quantity INT NOT NULL,
		image TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS referrals (
		id TEXT PRIMARY KEY,
		referrer_id TEXT NOT NULL,
		referral_code TEXT NOT NULL,
		referred_email TEXT NOT NULL,
		status TEXT NOT NULL,
		reward TEXT NOT NULL,
		discount_code TEXT NOT NULL DEFAULT '',
		claimed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Connect opens the pool, verifies the connection and ensures the
// schema exists. The caller owns the returned pool and closes it on
// shutdown.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			pool.Close()
			return nil, err
		}
	}
	return pool, nil
}
