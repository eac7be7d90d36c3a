package simpletxmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harbourline/yacht-booking-service/pkg/txmanager"
)

func TestWrapSerialization_CommitFailure(t *testing.T) {
	// Форма ошибки из run(): sentinel коммита оборачивает ошибку драйвера
	// через %w, чтобы errors.As добрался до SQLSTATE
	err := wrapSerialization(fmt.Errorf("%w: %w", ErrCommitTx, &pq.Error{Code: "40001"}))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSerialization)
	assert.ErrorIs(t, err, ErrCommitTx)
}

func TestWrapSerialization_ExclusionViolation(t *testing.T) {
	err := wrapSerialization(fmt.Errorf("execute insert: %w", &pq.Error{Code: "23P01"}))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSerialization)
}

func TestWrapSerialization_OtherErrorsUntouched(t *testing.T) {
	plain := errors.New("connection reset")
	assert.Equal(t, plain, wrapSerialization(plain))

	otherPq := fmt.Errorf("execute insert: %w", &pq.Error{Code: "23505"})
	assert.Equal(t, otherPq, wrapSerialization(otherPq))
	assert.NotErrorIs(t, wrapSerialization(otherPq), ErrSerialization)
}

func TestErrSerialization_SharedSentinel(t *testing.T) {
	// Usecase'ы проверяют только txmanager.ErrSerialization,
	// независимо от выбранного manager'а
	assert.ErrorIs(t, ErrSerialization, txmanager.ErrSerialization)
}
