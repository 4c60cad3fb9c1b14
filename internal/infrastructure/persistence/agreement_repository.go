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

var agreementSortFields = sortFields("year", "code", "revision", "revision_date", "name")

// GormAgreementRepository implements AgreementRepository using GORM
type GormAgreementRepository struct {
	db *gorm.DB
}

// NewGormAgreementRepository creates a new GormAgreementRepository
func NewGormAgreementRepository(db *gorm.DB) *GormAgreementRepository {
	return &GormAgreementRepository{db: db}
}

// Insert stores a new agreement revision
func (r *GormAgreementRepository) Insert(ctx context.Context, agreement *contract.Agreement) error {
	model := models.AgreementModelFromDomain(agreement)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update rewrites the full state of an existing agreement revision
func (r *GormAgreementRepository) Update(ctx context.Context, agreement *contract.Agreement) error {
	model := models.AgreementModelFromDomain(agreement)
	result := r.db.WithContext(ctx).Model(&models.AgreementModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"year":             model.Year,
			"code":             model.Code,
			"revision":         model.Revision,
			"revision_date":    model.RevisionDate,
			"provider_plan_id": model.ProviderPlanID,
			"local_plan_id":    model.LocalPlanID,
			"name":             model.Name,
			"description":      model.Description,
			"contact_email":    model.ContactEmail,
			"comment":          model.Comment,
			"document_url":     model.DocumentURL,
			"is_revised":       model.IsRevised,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes an agreement revision
func (r *GormAgreementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AgreementModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an agreement revision by its id
func (r *GormAgreementRepository) FindByID(ctx context.Context, id uuid.UUID) (*contract.Agreement, error) {
	var model models.AgreementModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByYear finds all agreement revisions for a contract year
func (r *GormAgreementRepository) FindByYear(ctx context.Context, year int, filter shared.Filter) ([]contract.Agreement, error) {
	var agreementModels []models.AgreementModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.AgreementModel{}).Where("year = ?", year),
		filter, agreementSortFields,
	)
	if err := query.Find(&agreementModels).Error; err != nil {
		return nil, err
	}

	agreements := make([]contract.Agreement, len(agreementModels))
	for i, model := range agreementModels {
		agreements[i] = *model.ToDomain()
	}
	return agreements, nil
}

// FindAll finds agreements matching the filter
func (r *GormAgreementRepository) FindAll(ctx context.Context, filter shared.Filter) ([]contract.Agreement, error) {
	var agreementModels []models.AgreementModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.AgreementModel{}), filter, agreementSortFields)
	if err := query.Find(&agreementModels).Error; err != nil {
		return nil, err
	}

	agreements := make([]contract.Agreement, len(agreementModels))
	for i, model := range agreementModels {
		agreements[i] = *model.ToDomain()
	}
	return agreements, nil
}

// Ensure GormAgreementRepository implements AgreementRepository
var _ contract.AgreementRepository = (*GormAgreementRepository)(nil)
