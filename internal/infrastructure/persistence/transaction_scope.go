package persistence

import (
	"context"

	"github.com/agreements/backend/internal/application/uow"
	"github.com/agreements/backend/internal/domain/billing"
	"github.com/agreements/backend/internal/domain/contract"
	"github.com/agreements/backend/internal/domain/identity"
	"github.com/agreements/backend/internal/domain/landscape"
	"gorm.io/gorm"
)

// GormTransactionScope implements uow.TransactionScope using GORM
// transactions. Every repository handed to the callback is bound to the same
// transaction; fn returning an error rolls back all of its writes.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs fn within a database transaction
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos uow.Repositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositories{tx: tx})
	})
}

// gormRepositories binds every repository to one transaction
type gormRepositories struct {
	tx *gorm.DB
}

func (r *gormRepositories) Agreements() contract.AgreementRepository {
	return NewGormAgreementRepository(r.tx)
}

func (r *gormRepositories) Plans() contract.PlanRepository {
	return NewGormPlanRepository(r.tx)
}

func (r *gormRepositories) Services() billing.ServiceRepository {
	return NewGormServiceRepository(r.tx)
}

func (r *gormRepositories) UserLists() billing.UserListRepository {
	return NewGormUserListRepository(r.tx)
}

func (r *gormRepositories) Systems() landscape.SystemRepository {
	return NewGormSystemRepository(r.tx)
}

func (r *gormRepositories) Users() identity.UserRepository {
	return NewGormUserRepository(r.tx)
}

// Ensure the implementations satisfy the application contracts
var (
	_ uow.TransactionScope = (*GormTransactionScope)(nil)
	_ uow.Repositories     = (*gormRepositories)(nil)
)
