package billing

import (
	"context"
	"testing"

	"github.com/agreements/backend/internal/domain/billing"
	"github.com/agreements/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserListService_Save_Success(t *testing.T) {
	mockServiceRepo := new(MockServiceRepository)
	mockUserListRepo := new(MockUserListRepository)
	service := NewUserListService(mockServiceRepo, mockUserListRepo)

	ctx := context.Background()
	existing := createTestService(uuid.New())

	req := SaveUserListRequest{
		Items: []UserListItemRequest{
			{Name: "Ada Lovelace", Email: "Ada@Example.COM", ExternalUserID: "u-001", Area: "Engineering", CostCenter: "CC-100"},
			{Name: "Grace Hopper", Email: "grace@example.com"},
		},
	}

	mockServiceRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)
	mockUserListRepo.On("Replace", ctx, mock.AnythingOfType("*billing.UserList")).Return(nil)

	result, err := service.Save(ctx, existing.ID, req)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, existing.ID, result.ServiceID)
	assert.Equal(t, 2, result.UsersNumber)
	assert.Len(t, result.Items, 2)
	assert.Equal(t, "ada@example.com", result.Items[0].Email)
	mockServiceRepo.AssertExpectations(t)
	mockUserListRepo.AssertExpectations(t)
}

func TestUserListService_Save_ServiceNotFound(t *testing.T) {
	mockServiceRepo := new(MockServiceRepository)
	mockUserListRepo := new(MockUserListRepository)
	service := NewUserListService(mockServiceRepo, mockUserListRepo)

	ctx := context.Background()
	serviceID := uuid.New()

	mockServiceRepo.On("FindByID", ctx, serviceID).Return(nil, shared.ErrNotFound)

	result, err := service.Save(ctx, serviceID, SaveUserListRequest{})

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	mockUserListRepo.AssertNotCalled(t, "Replace")
}

func TestUserListService_Save_InvalidItem(t *testing.T) {
	mockServiceRepo := new(MockServiceRepository)
	mockUserListRepo := new(MockUserListRepository)
	service := NewUserListService(mockServiceRepo, mockUserListRepo)

	ctx := context.Background()
	existing := createTestService(uuid.New())

	req := SaveUserListRequest{
		Items: []UserListItemRequest{
			{Name: "Ada Lovelace", Email: "not-an-email"},
		},
	}

	mockServiceRepo.On("FindByID", ctx, existing.ID).Return(existing, nil)

	result, err := service.Save(ctx, existing.ID, req)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "items[0].email must be a valid email address")
	mockUserListRepo.AssertNotCalled(t, "Replace")
}

func TestUserListService_GetByServiceID_Success(t *testing.T) {
	mockServiceRepo := new(MockServiceRepository)
	mockUserListRepo := new(MockUserListRepository)
	service := NewUserListService(mockServiceRepo, mockUserListRepo)

	ctx := context.Background()
	serviceID := uuid.New()
	list := billing.NewUserList(serviceID, []billing.UserListItem{
		billing.NewUserListItem("Ada Lovelace", "ada@example.com", "u-001", "Engineering", "CC-100"),
	})

	mockUserListRepo.On("FindByServiceID", ctx, serviceID).Return(list, nil)

	result, err := service.GetByServiceID(ctx, serviceID)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, 1, result.UsersNumber)
	mockUserListRepo.AssertExpectations(t)
}

func TestUserListService_GetByServiceID_NotFound(t *testing.T) {
	mockServiceRepo := new(MockServiceRepository)
	mockUserListRepo := new(MockUserListRepository)
	service := NewUserListService(mockServiceRepo, mockUserListRepo)

	ctx := context.Background()
	serviceID := uuid.New()

	mockUserListRepo.On("FindByServiceID", ctx, serviceID).Return(nil, shared.ErrNotFound)

	result, err := service.GetByServiceID(ctx, serviceID)

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	mockUserListRepo.AssertExpectations(t)
}

func TestUserListService_Delete_Success(t *testing.T) {
	mockServiceRepo := new(MockServiceRepository)
	mockUserListRepo := new(MockUserListRepository)
	service := NewUserListService(mockServiceRepo, mockUserListRepo)

	ctx := context.Background()
	serviceID := uuid.New()

	mockUserListRepo.On("DeleteByServiceID", ctx, serviceID).Return(nil)

	err := service.Delete(ctx, serviceID)

	assert.NoError(t, err)
	mockUserListRepo.AssertExpectations(t)
}
