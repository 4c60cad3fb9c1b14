// Package uow defines the transaction boundary use cases run multi-aggregate
// writes in.
package uow

import (
	"context"

	"github.com/agreements/backend/internal/domain/billing"
	"github.com/agreements/backend/internal/domain/contract"
	"github.com/agreements/backend/internal/domain/identity"
	"github.com/agreements/backend/internal/domain/landscape"
)

// Repositories exposes every repository bound to the same transaction. All
// writes made through them commit or roll back together.
type Repositories interface {
	Agreements() contract.AgreementRepository
	Plans() contract.PlanRepository
	Services() billing.ServiceRepository
	UserLists() billing.UserListRepository
	Systems() landscape.SystemRepository
	Users() identity.UserRepository
}

// TransactionScope executes a function within a database transaction. If fn
// returns an error the transaction is rolled back, otherwise it is committed.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos Repositories) error) error
}

// NoOpTransactionScope runs the function without any transaction. Used in
// tests where repository fakes carry their own state.
type NoOpTransactionScope struct {
	Repos Repositories
}

// NewNoOpTransactionScope creates a scope that passes the given repositories
// straight through
func NewNoOpTransactionScope(repos Repositories) *NoOpTransactionScope {
	return &NoOpTransactionScope{Repos: repos}
}

// Execute runs fn with the configured repositories, outside any transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos Repositories) error) error {
	return fn(s.Repos)
}
