package simpletxmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/harbourline/yacht-booking-service/pkg/dbmetrics"
	"github.com/harbourline/yacht-booking-service/pkg/txmanager"
)

var (
	// ErrBeginTx возвращается при ошибке старта транзакции
	ErrBeginTx = errors.New("simpletxmanager: failed to begin transaction")

	// ErrCommitTx возвращается при ошибке коммита
	ErrCommitTx = errors.New("simpletxmanager: failed to commit transaction")

	// ErrSerialization общий sentinel конфликта сериализации:
	// usecase'ы различают конфликт независимо от выбранного manager'а
	ErrSerialization = txmanager.ErrSerialization
)

const (
	pqSerializationFailure = "40001"
	pqExclusionViolation   = "23P01"
)

// TransactionManager вариант без метрик, работает напрямую с *sql.DB
// Используется, когда метрики выключены в конфигурации
type TransactionManager struct {
	db *sql.DB
}

// NewTransactionManager создает transaction manager поверх *sql.DB
func NewTransactionManager(db *sql.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в SERIALIZABLE транзакции
func (m *TransactionManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

// DoReadOnly выполняет fn в read-only транзакции
func (m *TransactionManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{ReadOnly: true}, fn)
}

func (m *TransactionManager) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginTx, err)
	}

	if err := fn(dbmetrics.WithTx(ctx, tx)); err != nil {
		_ = tx.Rollback()
		return wrapSerialization(err)
	}

	if err := tx.Commit(); err != nil {
		return wrapSerialization(fmt.Errorf("%w: %w", ErrCommitTx, err))
	}

	return nil
}

// wrapSerialization помечает ошибки конфликта (SQLSTATE 40001 и 23P01)
// общим sentinel'ом; цепочка ошибки драйвера должна быть сохранена через %w
func wrapSerialization(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqSerializationFailure, pqExclusionViolation:
			return fmt.Errorf("%w: %w", ErrSerialization, err)
		}
	}
	return err
}
