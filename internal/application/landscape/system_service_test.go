package landscape

import (
	"context"
	"testing"

	"github.com/agreements/backend/internal/domain/landscape"
	"github.com/agreements/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockSystemRepository is a mock implementation of SystemRepository
type MockSystemRepository struct {
	mock.Mock
}

func (m *MockSystemRepository) Insert(ctx context.Context, system *landscape.System) error {
	args := m.Called(ctx, system)
	return args.Error(0)
}

func (m *MockSystemRepository) Update(ctx context.Context, system *landscape.System) error {
	args := m.Called(ctx, system)
	return args.Error(0)
}

func (m *MockSystemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSystemRepository) FindByID(ctx context.Context, id uuid.UUID) (*landscape.System, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*landscape.System), args.Error(1)
}

func (m *MockSystemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]landscape.System, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]landscape.System), args.Error(1)
}

var _ landscape.SystemRepository = (*MockSystemRepository)(nil)

func TestSystemService_Create_Success(t *testing.T) {
	mockRepo := new(MockSystemRepository)
	service := NewSystemService(mockRepo)

	ctx := context.Background()
	email := "Ops@Example.COM"
	req := CreateSystemRequest{
		Name:             "ERP Core",
		Description:      "Central ERP instance",
		ApplicationID:    "APP-001",
		ResponsibleEmail: &email,
		UserCount:        42,
	}

	mockRepo.On("Insert", ctx, mock.AnythingOfType("*landscape.System")).Return(nil)

	result, err := service.Create(ctx, req)

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Equal(t, "ERP Core", result.Name)
	assert.Equal(t, "ops@example.com", *result.ResponsibleEmail)
	assert.Equal(t, 42, result.UserCount)
	mockRepo.AssertExpectations(t)
}

func TestSystemService_Create_InvalidInput(t *testing.T) {
	mockRepo := new(MockSystemRepository)
	service := NewSystemService(mockRepo)

	ctx := context.Background()
	req := CreateSystemRequest{Name: "", ApplicationID: ""}

	result, err := service.Create(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, result)
	mockRepo.AssertNotCalled(t, "Insert")
}

func TestSystemService_Update_ClearsResponsible(t *testing.T) {
	mockRepo := new(MockSystemRepository)
	service := NewSystemService(mockRepo)

	ctx := context.Background()
	system := landscape.NewSystem("ERP Core", "", "APP-001")
	system.ChangeResponsible("ops@example.com")
	empty := ""

	mockRepo.On("FindByID", ctx, system.ID).Return(system, nil)
	mockRepo.On("Update", ctx, mock.AnythingOfType("*landscape.System")).Return(nil)

	result, err := service.Update(ctx, system.ID, UpdateSystemRequest{ResponsibleEmail: &empty})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	assert.Nil(t, result.ResponsibleEmail)
	mockRepo.AssertExpectations(t)
}

func TestSystemService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockSystemRepository)
	service := NewSystemService(mockRepo)

	ctx := context.Background()
	systemID := uuid.New()

	mockRepo.On("FindByID", ctx, systemID).Return(nil, shared.ErrNotFound)

	err := service.Delete(ctx, systemID)

	assert.Error(t, err)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NOT_FOUND", domainErr.Code)
	mockRepo.AssertNotCalled(t, "Delete")
}
