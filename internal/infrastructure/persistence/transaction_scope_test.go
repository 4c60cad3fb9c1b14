package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/agreements/backend/internal/application/uow"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGormTransactionScope_Execute(t *testing.T) {
	t.Run("commits when fn succeeds", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		scope := NewGormTransactionScope(gormDB)

		agreementID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "agreements" WHERE id = \$1`).
			WithArgs(agreementID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := scope.Execute(context.Background(), func(repos uow.Repositories) error {
			return repos.Agreements().Delete(context.Background(), agreementID)
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when fn fails", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		scope := NewGormTransactionScope(gormDB)

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := scope.Execute(context.Background(), func(repos uow.Repositories) error {
			return assert.AnError
		})

		assert.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("binds every repository to the transaction", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		scope := NewGormTransactionScope(gormDB)

		mock.ExpectBegin()
		mock.ExpectCommit()

		err := scope.Execute(context.Background(), func(repos uow.Repositories) error {
			assert.NotNil(t, repos.Agreements())
			assert.NotNil(t, repos.Plans())
			assert.NotNil(t, repos.Services())
			assert.NotNil(t, repos.UserLists())
			assert.NotNil(t, repos.Systems())
			assert.NotNil(t, repos.Users())
			return nil
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
