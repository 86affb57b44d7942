package circuitbreaker

import (
	"context"
	"database/sql"
	"time"

	"github.com/sony/gobreaker"
)

// DBCircuitBreaker wraps the article database connection with circuit breaker
// protection. Every repository query runs through it, so when the database
// goes away requests fail fast instead of stacking up behind dead connections.
// It satisfies the postgres adapter's Querier interface.
type DBCircuitBreaker struct {
	cb *CircuitBreaker
	db *sql.DB
}

// DBConfig returns configuration optimized for database circuit breakers.
// Opens after 5 consecutive failures, 30 second timeout.
func DBConfig() Config {
	return Config{
		Name:             "database",
		MaxRequests:      3, // Allow 3 test requests in half-open state
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 1.0, // Open on 100% failure (5+ consecutive failures)
		MinRequests:      5,   // Require 5 failures before tripping
	}
}

// NewDBCircuitBreaker wraps db with the default database breaker config.
func NewDBCircuitBreaker(db *sql.DB) *DBCircuitBreaker {
	return &DBCircuitBreaker{
		cb: New(DBConfig()),
		db: db,
	}
}

// NewDBCircuitBreakerWithConfig wraps db with a custom breaker config.
func NewDBCircuitBreakerWithConfig(db *sql.DB, cfg Config) *DBCircuitBreaker {
	return &DBCircuitBreaker{
		cb: New(cfg),
		db: db,
	}
}

// QueryContext executes a query with circuit breaker protection.
// If the circuit is open, it returns ErrOpenState immediately without hitting the database.
func (dcb *DBCircuitBreaker) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.db.QueryContext(ctx, query, args...)
	})

	if err != nil {
		return nil, err
	}

	return result.(*sql.Rows), nil
}

// ExecContext executes a statement with circuit breaker protection.
// If the circuit is open, it returns ErrOpenState immediately without hitting the database.
func (dcb *DBCircuitBreaker) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	result, err := dcb.cb.Execute(func() (interface{}, error) {
		return dcb.db.ExecContext(ctx, query, args...)
	})

	if err != nil {
		return nil, err
	}

	return result.(sql.Result), nil
}

// QueryRowContext executes a single-row query, used by the by-id and by-slug
// lookups. sql.Row defers its error to Scan, so the breaker cannot observe
// the outcome and the call passes through unprotected.
func (dcb *DBCircuitBreaker) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return dcb.db.QueryRowContext(ctx, query, args...)
}

// State returns the current state of the circuit breaker.
func (dcb *DBCircuitBreaker) State() gobreaker.State {
	return dcb.cb.State()
}

// IsOpen returns true if the circuit breaker is in the open state.
func (dcb *DBCircuitBreaker) IsOpen() bool {
	return dcb.cb.IsOpen()
}

// DB returns the underlying database connection, for callers like the health
// probes that must observe the real connection state even when the circuit
// is open.
func (dcb *DBCircuitBreaker) DB() *sql.DB {
	return dcb.db
}
