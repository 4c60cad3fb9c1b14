package contract

import (
	"context"

	"github.com/agreements/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AgreementRepository is the persistence contract for Agreement aggregates.
// FindByID on a missing id returns shared.ErrNotFound; Update surfaces
// shared.ErrConcurrencyConflict when the row vanished between load and save.
type AgreementRepository interface {
	Insert(ctx context.Context, agreement *Agreement) error
	Update(ctx context.Context, agreement *Agreement) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Agreement, error)
	FindByYear(ctx context.Context, year int, filter shared.Filter) ([]Agreement, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Agreement, error)
}

// PlanRepository is the persistence contract for Plan aggregates
type PlanRepository interface {
	Insert(ctx context.Context, plan *Plan) error
	Update(ctx context.Context, plan *Plan) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Plan, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Plan, error)
}
