// Package db provides PostgreSQL connection utilities for the autoslug
// storage adapters.
//
// The package wraps [github.com/jackc/pgx/v5/pgxpool] with connection
// pooling, startup retries, and environment-based configuration.
//
// # Configuration
//
// All settings are loaded from environment variables:
//
//	DATABASE_CONN_URL           - PostgreSQL connection URL (required)
//	DATABASE_MAX_OPEN_CONNS     - Maximum open connections (default: 10)
//	DATABASE_MIN_CONNS          - Minimum idle connections (default: 2)
//	DATABASE_HEALTHCHECK_PERIOD - Health check interval (default: 1m)
//	DATABASE_MAX_CONN_IDLE_TIME - Maximum connection idle time (default: 10m)
//	DATABASE_MAX_CONN_LIFETIME  - Maximum connection lifetime (default: 30m)
//	DATABASE_RETRY_ATTEMPTS     - Connection retry attempts (default: 3)
//	DATABASE_RETRY_INTERVAL     - Base retry interval (default: 5s)
//
// # Usage
//
//	cfg, err := db.NewConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//	pool, err := db.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer pool.Close()
//
//	store, err := pgstore.New(pool, "articles")
//
// Or with a bare URL and options:
//
//	pool, err := db.Open(ctx, os.Getenv("DATABASE_CONN_URL"),
//		db.WithMaxConns(5),
//	)
//
// # Transactions
//
// [WithTx] runs a function inside a transaction with automatic rollback on
// error or panic:
//
//	err := db.WithTx(ctx, pool, func(tx pgx.Tx) error {
//		return tx.QueryRow(ctx, "SELECT 1").Scan(&n)
//	})
//
// Errors are wrapped with [errors.Join] so sentinel checks with
// [errors.Is] keep working.
package db
