package billing

import (
	"time"

	"github.com/agreements/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AllocationRequest represents one cost allocation row in a request
type AllocationRequest struct {
	SystemID uuid.UUID       `json:"system_id" binding:"required"`
	Percent  decimal.Decimal `json:"percent" binding:"required"`
}

// CreateServiceRequest represents a request to register a new service
type CreateServiceRequest struct {
	AgreementID        uuid.UUID           `json:"agreement_id" binding:"required"`
	Name               string              `json:"name" binding:"required,max=120"`
	Description        string              `json:"description"`
	Currency           string              `json:"currency" binding:"required,oneof=EUR USD"`
	RunAmount          decimal.Decimal     `json:"run_amount"`
	ChgAmount          decimal.Decimal     `json:"chg_amount"`
	ResponsibleEmail   string              `json:"responsible_email" binding:"required,email"`
	ProviderAllocation string              `json:"provider_allocation"`
	LocalAllocation    string              `json:"local_allocation"`
	DocumentURL        *string             `json:"document_url"`
	Allocations        []AllocationRequest `json:"allocations"`
}

// UpdateServiceRequest represents a request to update a service. Nil fields
// are left untouched; a non-nil Allocations slice replaces the whole set.
type UpdateServiceRequest struct {
	Name               *string              `json:"name" binding:"omitempty,max=120"`
	Description        *string              `json:"description"`
	Currency           *string              `json:"currency" binding:"omitempty,oneof=EUR USD"`
	RunAmount          *decimal.Decimal     `json:"run_amount"`
	ChgAmount          *decimal.Decimal     `json:"chg_amount"`
	ResponsibleEmail   *string              `json:"responsible_email" binding:"omitempty,email"`
	ProviderAllocation *string              `json:"provider_allocation"`
	LocalAllocation    *string              `json:"local_allocation"`
	DocumentURL        *string              `json:"document_url"`
	Allocations        *[]AllocationRequest `json:"allocations"`
}

// ReviewServiceRequest records the outcome of a service review
type ReviewServiceRequest struct {
	ValidatorEmail string `json:"validator_email" binding:"required,email"`
}

// AllocationResponse represents one cost allocation row in API responses
type AllocationResponse struct {
	ID        uuid.UUID       `json:"id"`
	SystemID  uuid.UUID       `json:"system_id"`
	Percent   decimal.Decimal `json:"percent"`
	RunAmount decimal.Decimal `json:"run_amount"`
	ChgAmount decimal.Decimal `json:"chg_amount"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
}

// ServiceResponse represents a service in API responses
type ServiceResponse struct {
	ID                 uuid.UUID            `json:"id"`
	AgreementID        uuid.UUID            `json:"agreement_id"`
	Name               string               `json:"name"`
	Description        string               `json:"description"`
	RunAmount          decimal.Decimal      `json:"run_amount"`
	ChgAmount          decimal.Decimal      `json:"chg_amount"`
	Amount             decimal.Decimal      `json:"amount"`
	Currency           string               `json:"currency"`
	ResponsibleEmail   string               `json:"responsible_email"`
	IsActive           bool                 `json:"is_active"`
	ProviderAllocation string               `json:"provider_allocation"`
	LocalAllocation    string               `json:"local_allocation"`
	Status             string               `json:"status"`
	ValidatorEmail     string               `json:"validator_email"`
	DocumentURL        *string              `json:"document_url"`
	Allocations        []AllocationResponse `json:"allocations"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

// ToServiceResponse maps an aggregate to its response shape
func ToServiceResponse(s *billing.Service) ServiceResponse {
	allocations := make([]AllocationResponse, len(s.Allocations))
	for i, a := range s.Allocations {
		allocations[i] = AllocationResponse{
			ID:        a.ID,
			SystemID:  a.SystemID,
			Percent:   a.Allocation.Decimal(),
			RunAmount: a.RunAmount.Amount(),
			ChgAmount: a.ChgAmount.Amount(),
			Amount:    a.Amount.Amount(),
			Currency:  string(a.Currency),
		}
	}
	return ServiceResponse{
		ID:                 s.ID,
		AgreementID:        s.AgreementID,
		Name:               s.Name,
		Description:        s.Description,
		RunAmount:          s.RunAmount.Amount(),
		ChgAmount:          s.ChgAmount.Amount(),
		Amount:             s.Amount.Amount(),
		Currency:           string(s.Currency),
		ResponsibleEmail:   s.ResponsibleEmail,
		IsActive:           s.IsActive,
		ProviderAllocation: s.ProviderAllocation,
		LocalAllocation:    s.LocalAllocation,
		Status:             string(s.Status),
		ValidatorEmail:     s.ValidatorEmail,
		DocumentURL:        s.DocumentURL,
		Allocations:        allocations,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

// ToServiceResponses maps a slice of aggregates to response shapes
func ToServiceResponses(services []billing.Service) []ServiceResponse {
	responses := make([]ServiceResponse, len(services))
	for i := range services {
		responses[i] = ToServiceResponse(&services[i])
	}
	return responses
}

// UserListItemRequest represents one user row in a snapshot request
type UserListItemRequest struct {
	Name           string `json:"name" binding:"required,max=120"`
	Email          string `json:"email" binding:"required,email"`
	ExternalUserID string `json:"external_user_id" binding:"max=60"`
	Area           string `json:"area" binding:"max=120"`
	CostCenter     string `json:"cost_center" binding:"max=60"`
}

// SaveUserListRequest replaces a service's user list snapshot wholesale
type SaveUserListRequest struct {
	Items []UserListItemRequest `json:"items"`
}

// UserListItemResponse represents one user row in API responses
type UserListItemResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	ExternalUserID string    `json:"external_user_id"`
	Area           string    `json:"area"`
	CostCenter     string    `json:"cost_center"`
}

// UserListResponse represents a user list snapshot in API responses
type UserListResponse struct {
	ID          uuid.UUID              `json:"id"`
	ServiceID   uuid.UUID              `json:"service_id"`
	UsersNumber int                    `json:"users_number"`
	Items       []UserListItemResponse `json:"items"`
	CreatedAt   time.Time              `json:"created_at"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// ToUserListResponse maps a snapshot to its response shape
func ToUserListResponse(l *billing.UserList) UserListResponse {
	items := make([]UserListItemResponse, len(l.Items))
	for i, item := range l.Items {
		items[i] = UserListItemResponse{
			ID:             item.ID,
			Name:           item.Name,
			Email:          item.Email,
			ExternalUserID: item.ExternalUserID,
			Area:           item.Area,
			CostCenter:     item.CostCenter,
		}
	}
	return UserListResponse{
		ID:          l.ID,
		ServiceID:   l.ServiceID,
		UsersNumber: l.UsersNumber,
		Items:       items,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
