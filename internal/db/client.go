// Copyright 2026 Kanbanly Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/kanbanly/workspace-service/internal/logging"
	"github.com/kanbanly/workspace-service/internal/monitoring"
	"github.com/kanbanly/workspace-service/internal/tracing"
)

const (
	defaultPage     uint64 = 1
	defaultPageSize uint64 = 50
	txTimeout              = time.Second * 60
)

type txContextKey struct{}

type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

// Offset calculates the pagination offset for the given 1-based page.
func Offset(pageParam int64, pageSize uint64) uint64 {
	if pageParam <= 0 {
		return (defaultPage - 1) * pageSize
	}
	return uint64(pageParam-1) * pageSize
}

// PageSize clamps the requested page size to the default when unset.
func PageSize(sizeParam int64) uint64 {
	if sizeParam <= 0 {
		return defaultPageSize
	}
	return uint64(sizeParam)
}

// scopedTx is the transaction holder carried through the context by
// WithTx. The transaction itself is opened lazily on the first statement
// so that operations which end up performing no writes never touch the
// transaction machinery.
type scopedTx struct {
	db        *sql.DB
	tx        TxInterface
	beginErr  error
	committed bool
	cancel    context.CancelFunc
}

func (st *scopedTx) get() (TxInterface, error) {
	if st.beginErr != nil {
		return nil, st.beginErr
	}
	if st.tx != nil {
		return st.tx, nil
	}

	// The transaction gets its own deadline, detached from the request
	// context: a caller-side cancellation mid-unit must not tear down a
	// half-applied mutation+audit pair, the commit/rollback decision does.
	ctx, cancel := context.WithTimeout(context.Background(), txTimeout)
	tx, err := st.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		cancel()
		// The scope is poisoned: every later statement in this unit must
		// fail rather than run on the pool outside the transaction.
		st.beginErr = err
		return nil, err
	}

	st.tx = tx
	st.cancel = cancel
	return tx, nil
}

func (st *scopedTx) started() bool {
	return st.tx != nil
}

type DBClient struct {
	// pool is the native pgx pool, held so Close can release it
	pool *pgxpool.Pool
	// db is the database/sql adapter used for transactions
	db *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Statement returns a squirrel builder bound to the transaction carried
// by ctx when one exists, and to the pool otherwise. Every storage method
// builds its statements through here, which is what lets a service
// compose several storage calls plus an audit write into one atomic unit
// simply by running them under WithTx.
//
// Inside a WithTx scope there is no pool fallback: if the transaction
// cannot be opened, the returned builder fails on execution, so no
// statement of the unit can autocommit on its own.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	if st := txFromContext(ctx); st != nil {
		tx, err := st.get()
		if err != nil {
			d.logger.Errorf("failed to open scoped transaction: %v", err)
			return sq.StatementBuilder.
				PlaceholderFormat(sq.Dollar).
				RunWith(failedRunner{err: err})
		}

		return sq.StatementBuilder.
			PlaceholderFormat(sq.Dollar).
			RunWith(tx)
	}

	return sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		RunWith(d.db)
}

// failedRunner backs statements of a poisoned transaction scope. Every
// execution path reports the original BeginTx error.
type failedRunner struct {
	err error
}

func (r failedRunner) Exec(string, ...interface{}) (sql.Result, error) { return nil, r.err }
func (r failedRunner) Query(string, ...interface{}) (*sql.Rows, error) { return nil, r.err }
func (r failedRunner) QueryRow(string, ...interface{}) sq.RowScanner   { return errRow{err: r.err} }

func (r failedRunner) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, r.err
}

func (r failedRunner) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, r.err
}

func (r failedRunner) QueryRowContext(context.Context, string, ...interface{}) sq.RowScanner {
	return errRow{err: r.err}
}

type errRow struct {
	err error
}

func (r errRow) Scan(...interface{}) error { return r.err }

func txFromContext(ctx context.Context) *scopedTx {
	if st, ok := ctx.Value(txContextKey{}).(*scopedTx); ok {
		return st
	}
	return nil
}

// WithTx runs fn with a transaction-scoped context. All statements built
// from that context share one transaction, committed when fn returns nil
// and rolled back otherwise. If fn never touches the database no
// transaction is opened at all. A nested call joins the enclosing scope;
// the outermost caller owns the commit/rollback decision.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	st := &scopedTx{db: d.db}
	txCtx := context.WithValue(ctx, txContextKey{}, st)

	defer func() {
		if st.started() && !st.committed {
			if err := st.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
				d.logger.Errorf("failed to rollback transaction: %v", err)
			}
		}
		if st.cancel != nil {
			st.cancel()
		}
	}()

	if err := fn(txCtx); err != nil {
		return err
	}

	// A swallowed statement error cannot turn a poisoned unit into a
	// success.
	if st.beginErr != nil {
		return fmt.Errorf("failed to open transaction: %w", st.beginErr)
	}

	if st.started() {
		if err := st.tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %v", err)
		}
		st.committed = true
	}

	return nil
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

// NewDBClient creates a DBClient for the given DSN and pool settings.
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	config, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Fatalf("DSN validation failed, shutting down, err: %v", err)
	}

	if cfg.TracingEnabled {
		// otelpgx uses the global TracerProvider, same as our tracer
		config.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	config.MaxConns = cfg.MaxConns
	config.MinConns = cfg.MinConns
	config.MaxConnLifetime = cfg.MaxConnLifetime
	config.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	config.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %v", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			return nil, fmt.Errorf("failed to start metrics collection for database: %v", err)
		}
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %v", err)
	}

	d := new(DBClient)
	d.pool = pool
	d.db = db

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d, nil
}
