package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/agreements/backend/internal/domain/billing"
	"github.com/agreements/backend/internal/domain/shared"
	"github.com/agreements/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newMockServiceRepository(t *testing.T) (*GormServiceRepository, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockDB(t)
	return NewGormServiceRepository(gormDB), mock, mockDB
}

func newPersistedService(allocations int) *billing.Service {
	service := billing.NewService(
		uuid.New(),
		"Application Hosting",
		"Hosting and operations",
		valueobject.EUR,
		decimal.RequireFromString("80.00"),
		decimal.RequireFromString("20.00"),
	)
	service.ChangeResponsible("hosting@example.com")
	for i := 0; i < allocations; i++ {
		service.AddAllocation(uuid.New(), valueobject.NewPercent(decimal.NewFromInt(50)))
	}
	service.RecalculateActivation()
	return service
}

func TestGormServiceRepository_Insert(t *testing.T) {
	t.Run("inserts parent and allocation rows in one transaction", func(t *testing.T) {
		repo, mock, mockDB := newMockServiceRepository(t)
		defer mockDB.Close()

		service := newPersistedService(2)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "services"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "service_systems"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "service_systems"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Insert(context.Background(), service)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back when a child insert fails", func(t *testing.T) {
		repo, mock, mockDB := newMockServiceRepository(t)
		defer mockDB.Close()

		service := newPersistedService(1)

		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "services"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "service_systems"`).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		err := repo.Insert(context.Background(), service)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormServiceRepository_Update(t *testing.T) {
	t.Run("rewrites parent and replaces allocation set", func(t *testing.T) {
		repo, mock, mockDB := newMockServiceRepository(t)
		defer mockDB.Close()

		service := newPersistedService(1)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "services" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM "service_systems" WHERE service_id = \$1`).
			WithArgs(service.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`INSERT INTO "service_systems"`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Update(context.Background(), service)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("vanished parent surfaces as concurrency conflict", func(t *testing.T) {
		repo, mock, mockDB := newMockServiceRepository(t)
		defer mockDB.Close()

		service := newPersistedService(1)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "services" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Update(context.Background(), service)

		assert.Error(t, err)
		assert.Equal(t, shared.ErrConcurrencyConflict, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormServiceRepository_Delete(t *testing.T) {
	t.Run("deletes allocation rows before the parent", func(t *testing.T) {
		repo, mock, mockDB := newMockServiceRepository(t)
		defer mockDB.Close()

		serviceID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "service_systems" WHERE service_id = \$1`).
			WithArgs(serviceID).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectExec(`DELETE FROM "services" WHERE id = \$1`).
			WithArgs(serviceID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Delete(context.Background(), serviceID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error for non-existent service", func(t *testing.T) {
		repo, mock, mockDB := newMockServiceRepository(t)
		defer mockDB.Close()

		serviceID := uuid.New()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM "service_systems" WHERE service_id = \$1`).
			WithArgs(serviceID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM "services" WHERE id = \$1`).
			WithArgs(serviceID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Delete(context.Background(), serviceID)

		assert.Error(t, err)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormServiceRepository_FindByID(t *testing.T) {
	t.Run("hydrates the service with its allocations", func(t *testing.T) {
		repo, mock, mockDB := newMockServiceRepository(t)
		defer mockDB.Close()

		serviceID := uuid.New()
		agreementID := uuid.New()
		systemID := uuid.New()

		serviceRows := sqlmock.NewRows([]string{"id", "agreement_id", "name", "run_amount", "chg_amount", "amount", "currency", "responsible_email", "is_active", "status"}).
			AddRow(serviceID, agreementID, "Application Hosting", "80.00", "20.00", "100.00", "EUR", "hosting@example.com", true, "pending")

		allocationRows := sqlmock.NewRows([]string{"id", "service_id", "system_id", "allocation", "run_amount", "chg_amount", "amount", "currency"}).
			AddRow(uuid.New(), serviceID, systemID, "100.000000", "80.00", "20.00", "100.00", "EUR")

		mock.ExpectQuery(`SELECT \* FROM "services" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(serviceID, 1).
			WillReturnRows(serviceRows)
		mock.ExpectQuery(`SELECT \* FROM "service_systems" WHERE .*service_id.*`).
			WillReturnRows(allocationRows)

		service, err := repo.FindByID(context.Background(), serviceID)

		assert.NoError(t, err)
		assert.NotNil(t, service)
		assert.Equal(t, serviceID, service.ID)
		assert.Equal(t, "100.00", service.Amount.StringFixed(2))
		assert.True(t, service.IsActive)
		assert.Len(t, service.Allocations, 1)
		assert.Equal(t, systemID, service.Allocations[0].SystemID)
		assert.True(t, service.Allocations[0].Allocation.IsFull())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns error for non-existent service", func(t *testing.T) {
		repo, mock, mockDB := newMockServiceRepository(t)
		defer mockDB.Close()

		serviceID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "services" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(serviceID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		service, err := repo.FindByID(context.Background(), serviceID)

		assert.Error(t, err)
		assert.Nil(t, service)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
