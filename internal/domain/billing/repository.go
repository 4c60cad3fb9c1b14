package billing

import (
	"context"

	"github.com/agreements/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ServiceRepository is the persistence contract for the Service aggregate.
// Every write touches the parent row and the full allocation set inside one
// transaction; FindByID always returns a fully hydrated aggregate or
// shared.ErrNotFound, never a parent without its children.
type ServiceRepository interface {
	Insert(ctx context.Context, service *Service) error
	Update(ctx context.Context, service *Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Service, error)
	FindByAgreementID(ctx context.Context, agreementID uuid.UUID, filter shared.Filter) ([]Service, error)
}

// UserListRepository is the persistence contract for service user-list
// snapshots. Replace removes whatever snapshot the service had (parent and
// items) and inserts the given one, inside one transaction.
type UserListRepository interface {
	Replace(ctx context.Context, list *UserList) error
	DeleteByServiceID(ctx context.Context, serviceID uuid.UUID) error
	FindByServiceID(ctx context.Context, serviceID uuid.UUID) (*UserList, error)
}
