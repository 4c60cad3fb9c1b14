package contract

import (
	"context"
	"errors"

	"github.com/agreements/backend/internal/domain/contract"
	"github.com/agreements/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PlanService handles plan-related business operations
type PlanService struct {
	planRepo contract.PlanRepository
}

// NewPlanService creates a new PlanService
func NewPlanService(planRepo contract.PlanRepository) *PlanService {
	return &PlanService{planRepo: planRepo}
}

// Create registers a new plan
func (s *PlanService) Create(ctx context.Context, req CreatePlanRequest) (*PlanResponse, error) {
	plan := contract.NewPlan(req.Year, req.Name, contract.PlanScope(req.Scope), req.Description)
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	if err := s.planRepo.Insert(ctx, plan); err != nil {
		return nil, err
	}

	response := ToPlanResponse(plan)
	return &response, nil
}

// GetByID retrieves a plan by id
func (s *PlanService) GetByID(ctx context.Context, id uuid.UUID) (*PlanResponse, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("plan", id)
		}
		return nil, err
	}

	response := ToPlanResponse(plan)
	return &response, nil
}

// List retrieves plans with pagination
func (s *PlanService) List(ctx context.Context, filter shared.Filter) ([]PlanResponse, error) {
	plans, err := s.planRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToPlanResponses(plans), nil
}

// Update changes the mutable fields of a plan
func (s *PlanService) Update(ctx context.Context, id uuid.UUID, req UpdatePlanRequest) (*PlanResponse, error) {
	plan, err := s.planRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("plan", id)
		}
		return nil, err
	}

	if req.Name != nil {
		plan.Rename(*req.Name)
	}
	if req.Description != nil {
		plan.ChangeDescription(*req.Description)
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, err
	}

	response := ToPlanResponse(plan)
	return &response, nil
}

// Delete removes a plan
func (s *PlanService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.planRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewNotFoundError("plan", id)
		}
		return err
	}
	return s.planRepo.Delete(ctx, id)
}
