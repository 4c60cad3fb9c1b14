package persistence

import (
	"context"
	"errors"

	"github.com/agreements/backend/internal/domain/landscape"
	"github.com/agreements/backend/internal/domain/shared"
	"github.com/agreements/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var systemSortFields = sortFields("name", "application_id", "user_count")

// GormSystemRepository implements SystemRepository using GORM
type GormSystemRepository struct {
	db *gorm.DB
}

// NewGormSystemRepository creates a new GormSystemRepository
func NewGormSystemRepository(db *gorm.DB) *GormSystemRepository {
	return &GormSystemRepository{db: db}
}

// Insert stores a new system
func (r *GormSystemRepository) Insert(ctx context.Context, system *landscape.System) error {
	model := models.SystemModelFromDomain(system)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update rewrites the full state of an existing system
func (r *GormSystemRepository) Update(ctx context.Context, system *landscape.System) error {
	model := models.SystemModelFromDomain(system)
	result := r.db.WithContext(ctx).Model(&models.SystemModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":              model.Name,
			"description":       model.Description,
			"application_id":    model.ApplicationID,
			"responsible_email": model.ResponsibleEmail,
			"user_count":        model.UserCount,
			"updated_at":        model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a system
func (r *GormSystemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SystemModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a system by its id
func (r *GormSystemRepository) FindByID(ctx context.Context, id uuid.UUID) (*landscape.System, error) {
	var model models.SystemModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds systems matching the filter
func (r *GormSystemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]landscape.System, error) {
	var systemModels []models.SystemModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.SystemModel{}), filter, systemSortFields)
	if err := query.Find(&systemModels).Error; err != nil {
		return nil, err
	}

	systems := make([]landscape.System, len(systemModels))
	for i, model := range systemModels {
		systems[i] = *model.ToDomain()
	}
	return systems, nil
}

// Ensure GormSystemRepository implements SystemRepository
var _ landscape.SystemRepository = (*GormSystemRepository)(nil)
