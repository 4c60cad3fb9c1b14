package billing

import (
	"time"

	"github.com/agreements/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ServiceSystem is one row of a service's cost allocation: the share of the
// service's amounts a system carries. Rows are created only through
// Service.AddAllocation and have no identity outside their parent; updates
// replace the full set rather than diffing rows.
type ServiceSystem struct {
	ID         uuid.UUID
	ServiceID  uuid.UUID
	SystemID   uuid.UUID
	Allocation valueobject.Percent
	RunAmount  valueobject.Money
	ChgAmount  valueobject.Money
	Amount     valueobject.Money
	Currency   valueobject.Currency
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// newServiceSystem derives an allocation row from the parent's current
// amounts. All arithmetic is exact decimal; derived amounts carry banker's
// rounding to two decimals.
func newServiceSystem(parent *Service, systemID uuid.UUID, allocation valueobject.Percent) *ServiceSystem {
	now := time.Now()
	entry := &ServiceSystem{
		ID:         uuid.New(),
		ServiceID:  parent.ID,
		SystemID:   systemID,
		Allocation: allocation,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	entry.rederive(parent)
	return entry
}

// rederive recomputes the derived amounts from the parent's current state.
// The currency is always the parent's.
func (ss *ServiceSystem) rederive(parent *Service) {
	ss.RunAmount = ss.Allocation.Of(parent.RunAmount)
	ss.ChgAmount = ss.Allocation.Of(parent.ChgAmount)
	ss.Amount = ss.Allocation.Of(parent.Amount)
	ss.Currency = parent.Currency
	ss.UpdatedAt = time.Now()
}
