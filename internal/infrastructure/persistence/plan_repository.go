package persistence

import (
	"context"
	"errors"

	"github.com/agreements/backend/internal/domain/contract"
	"github.com/agreements/backend/internal/domain/shared"
	"github.com/agreements/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var planSortFields = sortFields("year", "name", "scope")

// GormPlanRepository implements PlanRepository using GORM
type GormPlanRepository struct {
	db *gorm.DB
}

// NewGormPlanRepository creates a new GormPlanRepository
func NewGormPlanRepository(db *gorm.DB) *GormPlanRepository {
	return &GormPlanRepository{db: db}
}

// Insert stores a new plan
func (r *GormPlanRepository) Insert(ctx context.Context, plan *contract.Plan) error {
	model := models.PlanModelFromDomain(plan)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update rewrites the full state of an existing plan
func (r *GormPlanRepository) Update(ctx context.Context, plan *contract.Plan) error {
	model := models.PlanModelFromDomain(plan)
	result := r.db.WithContext(ctx).Model(&models.PlanModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"year":        model.Year,
			"name":        model.Name,
			"scope":       model.Scope,
			"description": model.Description,
			"updated_at":  model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a plan
func (r *GormPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PlanModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a plan by its id
func (r *GormPlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*contract.Plan, error) {
	var model models.PlanModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds plans matching the filter
func (r *GormPlanRepository) FindAll(ctx context.Context, filter shared.Filter) ([]contract.Plan, error) {
	var planModels []models.PlanModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.PlanModel{}), filter, planSortFields)
	if err := query.Find(&planModels).Error; err != nil {
		return nil, err
	}

	plans := make([]contract.Plan, len(planModels))
	for i, model := range planModels {
		plans[i] = *model.ToDomain()
	}
	return plans, nil
}

// Ensure GormPlanRepository implements PlanRepository
var _ contract.PlanRepository = (*GormPlanRepository)(nil)
