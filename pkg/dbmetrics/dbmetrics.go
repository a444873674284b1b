// Package dbmetrics wraps *sql.DB so that every query is timed and
// counted, and connection-pool stats are exported periodically.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/velalaser/VLL-SchedulingService/pkg/metrics"
)

// DBExecutor is the query surface repositories depend on.
// Satisfied by *sql.DB and by *dbmetrics.DB.
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// DB is a metrics-recording wrapper around *sql.DB
type DB struct {
	inner   *sql.DB
	metrics *metrics.Metrics
	dbLabel string
}

// DefaultPoolStatsInterval is how often pool stats are exported
const DefaultPoolStatsInterval = 15 * time.Second

// WrapWithDefault wraps db and starts the pool-stats exporter with the
// default interval. The exporter stops when stopCh is closed.
func WrapWithDefault(db *sql.DB, m *metrics.Metrics, dbLabel string, stopCh <-chan struct{}) *DB {
	wrapped := &DB{inner: db, metrics: m, dbLabel: dbLabel}
	go wrapped.collectPoolStats(DefaultPoolStatsInterval, stopCh)
	return wrapped
}

// QueryContext times and counts a multi-row query
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.inner.QueryContext(ctx, query, args...)
	d.record("query", start, err)
	return rows, err
}

// QueryRowContext times a single-row query. The error is observed at
// Scan time, so only duration is recorded here.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.inner.QueryRowContext(ctx, query, args...)
	d.record("query_row", start, nil)
	return row
}

// ExecContext times and counts a statement execution
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.inner.ExecContext(ctx, query, args...)
	d.record("exec", start, err)
	return res, err
}

func (d *DB) record(op string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	d.metrics.DBQueriesTotal.WithLabelValues(op, status).Inc()
	d.metrics.DBQueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.inner.Stats()
			d.metrics.DBPoolOpenConnections.WithLabelValues(d.dbLabel).Set(float64(stats.OpenConnections))
			d.metrics.DBPoolIdleConnections.WithLabelValues(d.dbLabel).Set(float64(stats.Idle))
			d.metrics.DBPoolInUse.WithLabelValues(d.dbLabel).Set(float64(stats.InUse))
		}
	}
}
