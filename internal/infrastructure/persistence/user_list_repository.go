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

// GormUserListRepository implements UserListRepository using GORM.
// A snapshot is replaced wholesale: the previous list and its items are
// deleted and the new list inserted under a fresh id, inside one transaction.
type GormUserListRepository struct {
	db *gorm.DB
}

// NewGormUserListRepository creates a new GormUserListRepository
func NewGormUserListRepository(db *gorm.DB) *GormUserListRepository {
	return &GormUserListRepository{db: db}
}

// Replace discards the service's current snapshot and stores the given one
func (r *GormUserListRepository) Replace(ctx context.Context, list *billing.UserList) error {
	model := models.UserListModelFromDomain(list)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteListsByServiceID(tx, model.ServiceID); err != nil {
			return err
		}

		if err := tx.Omit("Items").Create(model).Error; err != nil {
			return err
		}
		for i := range model.Items {
			model.Items[i].ListID = model.ID
			if err := tx.Create(&model.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteByServiceID removes the service's snapshot, if any. Deleting an
// absent snapshot is not an error.
func (r *GormUserListRepository) DeleteByServiceID(ctx context.Context, serviceID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteListsByServiceID(tx, serviceID)
	})
}

// FindByServiceID finds the current snapshot for a service
func (r *GormUserListRepository) FindByServiceID(ctx context.Context, serviceID uuid.UUID) (*billing.UserList, error) {
	var model models.UserListModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "service_id = ?", serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// deleteListsByServiceID removes every snapshot a service has, items first.
// Items are matched through their list ids so orphans cannot survive.
func deleteListsByServiceID(tx *gorm.DB, serviceID uuid.UUID) error {
	if err := tx.Where("list_id IN (?)",
		tx.Session(&gorm.Session{NewDB: true}).
			Model(&models.UserListModel{}).
			Select("id").
			Where("service_id = ?", serviceID),
	).Delete(&models.UserListItemModel{}).Error; err != nil {
		return err
	}
	return tx.Where("service_id = ?", serviceID).
		Delete(&models.UserListModel{}).Error
}

// Ensure GormUserListRepository implements UserListRepository
var _ billing.UserListRepository = (*GormUserListRepository)(nil)
