// Package landscape implements the system catalog use cases.
package landscape

import (
	"context"
	"errors"
	"time"

	"github.com/agreements/backend/internal/domain/landscape"
	"github.com/agreements/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateSystemRequest represents a request to register a new system
type CreateSystemRequest struct {
	Name             string  `json:"name" binding:"required,max=120"`
	Description      string  `json:"description"`
	ApplicationID    string  `json:"application_id" binding:"required,max=60"`
	ResponsibleEmail *string `json:"responsible_email" binding:"omitempty,email"`
	UserCount        int     `json:"user_count" binding:"min=0"`
}

// UpdateSystemRequest represents a request to update a system
type UpdateSystemRequest struct {
	Name             *string `json:"name" binding:"omitempty,max=120"`
	Description      *string `json:"description"`
	ResponsibleEmail *string `json:"responsible_email" binding:"omitempty,email"`
	UserCount        *int    `json:"user_count" binding:"omitempty,min=0"`
}

// SystemResponse represents a system in API responses
type SystemResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	ApplicationID    string    `json:"application_id"`
	ResponsibleEmail *string   `json:"responsible_email"`
	UserCount        int       `json:"user_count"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ToSystemResponse maps an aggregate to its response shape
func ToSystemResponse(sys *landscape.System) SystemResponse {
	return SystemResponse{
		ID:               sys.ID,
		Name:             sys.Name,
		Description:      sys.Description,
		ApplicationID:    sys.ApplicationID,
		ResponsibleEmail: sys.ResponsibleEmail,
		UserCount:        sys.UserCount,
		CreatedAt:        sys.CreatedAt,
		UpdatedAt:        sys.UpdatedAt,
	}
}

// ToSystemResponses maps a slice of aggregates to response shapes
func ToSystemResponses(systems []landscape.System) []SystemResponse {
	responses := make([]SystemResponse, len(systems))
	for i := range systems {
		responses[i] = ToSystemResponse(&systems[i])
	}
	return responses
}

// SystemService handles system-related business operations
type SystemService struct {
	systemRepo landscape.SystemRepository
}

// NewSystemService creates a new SystemService
func NewSystemService(systemRepo landscape.SystemRepository) *SystemService {
	return &SystemService{systemRepo: systemRepo}
}

// Create registers a new system
func (s *SystemService) Create(ctx context.Context, req CreateSystemRequest) (*SystemResponse, error) {
	system := landscape.NewSystem(req.Name, req.Description, req.ApplicationID)
	if req.ResponsibleEmail != nil {
		system.ChangeResponsible(*req.ResponsibleEmail)
	}
	system.SetUserCount(req.UserCount)

	if err := system.Validate(); err != nil {
		return nil, err
	}

	if err := s.systemRepo.Insert(ctx, system); err != nil {
		return nil, err
	}

	response := ToSystemResponse(system)
	return &response, nil
}

// GetByID retrieves a system by id
func (s *SystemService) GetByID(ctx context.Context, id uuid.UUID) (*SystemResponse, error) {
	system, err := s.systemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("system", id)
		}
		return nil, err
	}

	response := ToSystemResponse(system)
	return &response, nil
}

// List retrieves systems with pagination
func (s *SystemService) List(ctx context.Context, filter shared.Filter) ([]SystemResponse, error) {
	systems, err := s.systemRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToSystemResponses(systems), nil
}

// Update changes the mutable fields of a system
func (s *SystemService) Update(ctx context.Context, id uuid.UUID, req UpdateSystemRequest) (*SystemResponse, error) {
	system, err := s.systemRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("system", id)
		}
		return nil, err
	}

	if req.Name != nil {
		system.Rename(*req.Name)
	}
	if req.Description != nil {
		system.ChangeDescription(*req.Description)
	}
	if req.ResponsibleEmail != nil {
		system.ChangeResponsible(*req.ResponsibleEmail)
	}
	if req.UserCount != nil {
		system.SetUserCount(*req.UserCount)
	}

	if err := system.Validate(); err != nil {
		return nil, err
	}

	if err := s.systemRepo.Update(ctx, system); err != nil {
		return nil, err
	}

	response := ToSystemResponse(system)
	return &response, nil
}

// Delete removes a system
func (s *SystemService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.systemRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewNotFoundError("system", id)
		}
		return err
	}
	return s.systemRepo.Delete(ctx, id)
}
