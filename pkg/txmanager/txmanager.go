package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/harbourline/yacht-booking-service/pkg/dbmetrics"
)

var (
	// ErrBeginTx возвращается при ошибке старта транзакции
	ErrBeginTx = errors.New("txmanager: failed to begin transaction")

	// ErrCommitTx возвращается при ошибке коммита
	ErrCommitTx = errors.New("txmanager: failed to commit transaction")

	// ErrSerialization возвращается, когда Postgres прервал транзакцию
	// из-за конфликта с конкурентной: ошибка сериализации (SQLSTATE 40001)
	// или нарушение exclusion-ограничения (SQLSTATE 23P01)
	ErrSerialization = errors.New("txmanager: serialization conflict")
)

const (
	pqSerializationFailure = "40001"
	pqExclusionViolation   = "23P01"
)

// TxBeginner интерфейс для начала транзакций
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error)
}

// TransactionManager выполняет функции внутри транзакции,
// передавая executor через контекст (dbmetrics.WithTx)
type TransactionManager struct {
	db TxBeginner
}

// NewTransactionManager создает transaction manager поверх *dbmetrics.DB
func NewTransactionManager(db TxBeginner) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do выполняет fn в транзакции с уровнем изоляции по умолчанию
func (m *TransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.run(ctx, &sql.TxOptions{}, fn)
}

// DoSerializable выполняет fn в SERIALIZABLE транзакции
// Используется для check-then-insert последовательностей (защита от гонок)
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

// wrapSerialization помечает ошибки конфликта sentinel'ом,
// чтобы вызывающий код мог отличить конфликт от прочих сбоев.
// Ошибка драйвера должна быть обернута через %w на всей цепочке,
// иначе errors.As до нее не доберется
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
