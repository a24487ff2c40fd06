package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CleanHome-BookingService/pkg/dbmetrics"
)

func newManager(t *testing.T) (*TransactionManager, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewTransactionManager(dbmetrics.Wrap(db, nil)), mock
}

func TestDo_Commits(t *testing.T) {
	mgr, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := mgr.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_RollsBackOnError(t *testing.T) {
	mgr, mock := newManager(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := mgr.Do(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RetriesSerializationFailure(t *testing.T) {
	mgr, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return &pq.Error{Code: "40001"}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_RetriesWrappedSerializationFailure(t *testing.T) {
	mgr, mock := newManager(t)
	storageErr := errors.New("repository: failed to execute query")

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	calls := 0
	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		if calls == 1 {
			return fmt.Errorf("%w: insert: %w", storageErr, &pq.Error{Code: "40001"})
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDoSerializable_GivesUpAfterMaxAttempts(t *testing.T) {
	mgr, mock := newManager(t)

	for i := 0; i < maxSerializableAttempts; i++ {
		mock.ExpectBegin()
		mock.ExpectRollback()
	}

	err := mgr.DoSerializable(context.Background(), func(ctx context.Context) error {
		return &pq.Error{Code: "40001"}
	})

	assert.True(t, IsSerializationFailure(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_NestedReusesTransaction(t *testing.T) {
	mgr, mock := newManager(t)

	mock.ExpectBegin()
	mock.ExpectCommit()

	err := mgr.Do(context.Background(), func(ctx context.Context) error {
		return mgr.DoSerializable(ctx, func(inner context.Context) error {
			return nil
		})
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDo_BeginFailure(t *testing.T) {
	mgr, mock := newManager(t)

	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	err := mgr.Do(context.Background(), func(ctx context.Context) error { return nil })
	assert.ErrorIs(t, err, ErrBeginTx)
}
