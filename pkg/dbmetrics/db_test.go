package dbmetrics

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingCollector struct {
	mu     sync.Mutex
	ops    []string
	failed []string
	open   int
}

func (c *recordingCollector) ObserveQuery(operation string, _ time.Duration, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ops = append(c.ops, operation)
	if err != nil {
		c.failed = append(c.failed, operation)
	}
}

func (c *recordingCollector) SetConnections(open, _, _ int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = open
}

func TestGetExecutorPrefersTransaction(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db := Wrap(sqlDB, nil)
	ctx := context.Background()

	assert.False(t, IsInTransaction(ctx))
	assert.Same(t, db, GetExecutor(ctx, db))

	mock.ExpectBegin()
	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, tx, GetExecutor(txCtx, db))

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWrappedDBObservesQueries(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	collector := &recordingCollector{}
	db := Wrap(sqlDB, collector)
	ctx := context.Background()

	mock.ExpectExec("DELETE FROM queue_entries").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id FROM queue_entries").WillReturnError(errors.New("boom"))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE queue_entries").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	_, err = db.ExecContext(ctx, "DELETE FROM queue_entries")
	require.NoError(t, err)

	_, err = db.QueryContext(ctx, "SELECT id FROM queue_entries")
	require.Error(t, err)

	tx, err := db.BeginTx(ctx, nil)
	require.NoError(t, err)
	_, err = tx.ExecContext(ctx, "UPDATE queue_entries SET position = 1")
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	require.NoError(t, mock.ExpectationsWereMet())
	assert.Equal(t, []string{"exec", "query", "begin", "tx_exec", "commit"}, collector.ops)
	assert.Equal(t, []string{"query"}, collector.failed)
}

func TestWrapWithDefaultPublishesPoolStats(t *testing.T) {
	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	collector := &recordingCollector{open: -1}
	stop := make(chan struct{})
	WrapWithDefault(sqlDB, collector, stop)
	defer close(stop)

	assert.Eventually(t, func() bool {
		collector.mu.Lock()
		defer collector.mu.Unlock()
		return collector.open >= 0
	}, time.Second, 10*time.Millisecond)
}
