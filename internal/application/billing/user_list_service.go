package billing

import (
	"context"
	"errors"

	"github.com/agreements/backend/internal/domain/billing"
	"github.com/agreements/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserListService handles user list snapshot operations
type UserListService struct {
	serviceRepo  billing.ServiceRepository
	userListRepo billing.UserListRepository
}

// NewUserListService creates a new UserListService
func NewUserListService(serviceRepo billing.ServiceRepository, userListRepo billing.UserListRepository) *UserListService {
	return &UserListService{
		serviceRepo:  serviceRepo,
		userListRepo: userListRepo,
	}
}

// Save replaces the service's user list snapshot wholesale. The previous
// snapshot, if any, is discarded together with its items; the new list always
// carries a fresh id.
func (s *UserListService) Save(ctx context.Context, serviceID uuid.UUID, req SaveUserListRequest) (*UserListResponse, error) {
	if _, err := s.serviceRepo.FindByID(ctx, serviceID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("service", serviceID)
		}
		return nil, err
	}

	items := make([]billing.UserListItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = billing.NewUserListItem(item.Name, item.Email, item.ExternalUserID, item.Area, item.CostCenter)
	}
	list := billing.NewUserList(serviceID, items)

	if err := list.Validate(); err != nil {
		return nil, err
	}

	if err := s.userListRepo.Replace(ctx, list); err != nil {
		return nil, err
	}

	response := ToUserListResponse(list)
	return &response, nil
}

// GetByServiceID retrieves the current snapshot for a service
func (s *UserListService) GetByServiceID(ctx context.Context, serviceID uuid.UUID) (*UserListResponse, error) {
	list, err := s.userListRepo.FindByServiceID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("user list", serviceID)
		}
		return nil, err
	}

	response := ToUserListResponse(list)
	return &response, nil
}

// Delete removes the service's snapshot
func (s *UserListService) Delete(ctx context.Context, serviceID uuid.UUID) error {
	return s.userListRepo.DeleteByServiceID(ctx, serviceID)
}
