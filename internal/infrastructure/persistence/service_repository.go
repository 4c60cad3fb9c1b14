package persistence

import (
	"context"
	"errors"

	"github.com/agreements/backend/internal/domain/billing"
	"github.com/agreements/backend/internal/domain/shared"
	"github.com/agreements/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var serviceSortFields = sortFields("name", "amount", "status", "is_active")

// GormServiceRepository implements ServiceRepository using GORM.
// The allocation rows are owned by the service: every write rewrites the
// full set inside one transaction, so the parent and its children can never
// be observed out of step.
type GormServiceRepository struct {
	db *gorm.DB
}

// NewGormServiceRepository creates a new GormServiceRepository
func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

// Insert stores a new service and its allocation rows
func (r *GormServiceRepository) Insert(ctx context.Context, service *billing.Service) error {
	model := models.ServiceModelFromDomain(service)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Allocations").Create(model).Error; err != nil {
			return err
		}
		for i := range model.Allocations {
			model.Allocations[i].ServiceID = model.ID
			if err := tx.Create(&model.Allocations[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Update rewrites the parent row and replaces the allocation set wholesale.
// A vanished parent row surfaces as a concurrency conflict rather than a
// silent no-op.
func (r *GormServiceRepository) Update(ctx context.Context, service *billing.Service) error {
	model := models.ServiceModelFromDomain(service)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ServiceModel{}).
			Where("id = ?", model.ID).
			Updates(map[string]any{
				"agreement_id":        model.AgreementID,
				"name":                model.Name,
				"description":         model.Description,
				"run_amount":          model.RunAmount,
				"chg_amount":          model.ChgAmount,
				"amount":              model.Amount,
				"currency":            model.Currency,
				"responsible_email":   model.ResponsibleEmail,
				"is_active":           model.IsActive,
				"provider_allocation": model.ProviderAllocation,
				"local_allocation":    model.LocalAllocation,
				"status":              model.Status,
				"validator_email":     model.ValidatorEmail,
				"document_url":        model.DocumentURL,
				"updated_at":          model.UpdatedAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}

		if err := tx.Where("service_id = ?", model.ID).
			Delete(&models.ServiceSystemModel{}).Error; err != nil {
			return err
		}
		for i := range model.Allocations {
			model.Allocations[i].ServiceID = model.ID
			if err := tx.Create(&model.Allocations[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a service and its allocation rows
func (r *GormServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("service_id = ?", id).
			Delete(&models.ServiceSystemModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.ServiceModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// FindByID finds a service with its allocation rows
func (r *GormServiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Service, error) {
	var model models.ServiceModel
	if err := r.db.WithContext(ctx).
		Preload("Allocations").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByAgreementID finds all services under an agreement
func (r *GormServiceRepository) FindByAgreementID(ctx context.Context, agreementID uuid.UUID, filter shared.Filter) ([]billing.Service, error) {
	var serviceModels []models.ServiceModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.ServiceModel{}).
			Preload("Allocations").
			Where("agreement_id = ?", agreementID),
		filter, serviceSortFields,
	)
	if err := query.Find(&serviceModels).Error; err != nil {
		return nil, err
	}

	services := make([]billing.Service, len(serviceModels))
	for i, model := range serviceModels {
		services[i] = *model.ToDomain()
	}
	return services, nil
}

// Ensure GormServiceRepository implements ServiceRepository
var _ billing.ServiceRepository = (*GormServiceRepository)(nil)
