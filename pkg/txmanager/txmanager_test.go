package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harbourline/yacht-booking-service/pkg/dbmetrics"
)

// Fakes

type fakeTx struct {
	commitErr error

	committed  bool
	rolledBack bool
}

func (f *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (f *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (f *fakeTx) Commit() error {
	f.committed = true
	return f.commitErr
}

func (f *fakeTx) Rollback() error {
	f.rolledBack = true
	return nil
}

type fakeTxBeginner struct {
	tx       *fakeTx
	beginErr error

	lastOpts *sql.TxOptions
}

func (f *fakeTxBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	f.lastOpts = opts
	if f.beginErr != nil {
		return nil, f.beginErr
	}
	return f.tx, nil
}

// Tests

func TestDoSerializable_SetsIsolationLevel(t *testing.T) {
	db := &fakeTxBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})
	require.NoError(t, err)

	require.NotNil(t, db.lastOpts)
	assert.Equal(t, sql.LevelSerializable, db.lastOpts.Isolation)
	assert.True(t, db.tx.committed)
}

func TestDoSerializable_CommitConflictMapsToSerialization(t *testing.T) {
	// Postgres сообщает о проигрыше сериализуемой транзакции на COMMIT
	db := &fakeTxBeginner{tx: &fakeTx{commitErr: &pq.Error{Code: "40001"}}}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSerialization)
	assert.ErrorIs(t, err, ErrCommitTx)
}

func TestDoSerializable_ExclusionViolationMapsToSerialization(t *testing.T) {
	// Конкурентная вставка упирается в exclusion-ограничение БД (23P01)
	// еще до коммита; ошибка приходит из fn с сохраненной цепочкой
	db := &fakeTxBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(db)

	insertErr := fmt.Errorf("execute insert: %w", &pq.Error{Code: "23P01"})

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return insertErr
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSerialization)
	assert.True(t, db.tx.rolledBack)
	assert.False(t, db.tx.committed)
}

func TestDoSerializable_PlainCommitErrorNotConflict(t *testing.T) {
	db := &fakeTxBeginner{tx: &fakeTx{commitErr: errors.New("connection reset")}}
	m := NewTransactionManager(db)

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCommitTx)
	assert.NotErrorIs(t, err, ErrSerialization)
}

func TestDo_FnErrorRollsBack(t *testing.T) {
	db := &fakeTxBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(db)

	wantErr := errors.New("domain failure")

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return wantErr
	})

	require.ErrorIs(t, err, wantErr)
	assert.NotErrorIs(t, err, ErrSerialization)
	assert.True(t, db.tx.rolledBack)
}

func TestDo_BeginError(t *testing.T) {
	db := &fakeTxBeginner{beginErr: errors.New("pool exhausted")}
	m := NewTransactionManager(db)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn must not run when BeginTx fails")
		return nil
	})

	require.ErrorIs(t, err, ErrBeginTx)
}

func TestDo_PassesTxThroughContext(t *testing.T) {
	db := &fakeTxBeginner{tx: &fakeTx{}}
	m := NewTransactionManager(db)

	err := m.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})
	require.NoError(t, err)
}
