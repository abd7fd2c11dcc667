package db

import "time"

// ConnectOption overrides a single Config field for Open.
type ConnectOption func(*Config)

// WithMaxConns sets the maximum number of open connections.
// Default: 10.
func WithMaxConns(n int32) ConnectOption {
	return func(cfg *Config) {
		cfg.MaxOpenConns = n
	}
}

// WithMinConns sets the minimum number of idle connections kept open.
// Default: 2.
func WithMinConns(n int32) ConnectOption {
	return func(cfg *Config) {
		cfg.MinConns = n
	}
}

// WithRetry sets the connection retry budget and base interval.
// Default: 3 attempts, 5s interval.
func WithRetry(attempts int, interval time.Duration) ConnectOption {
	return func(cfg *Config) {
		cfg.RetryAttempts = attempts
		cfg.RetryInterval = interval
	}
}
