package contract

import (
	"time"

	"github.com/agreements/backend/internal/domain/contract"
	"github.com/google/uuid"
)

// CreateAgreementRequest represents a request to register a new agreement
type CreateAgreementRequest struct {
	Year           int       `json:"year" binding:"required"`
	Code           string    `json:"code" binding:"required,max=20"`
	RevisionDate   time.Time `json:"revision_date" binding:"required"`
	ProviderPlanID uuid.UUID `json:"provider_plan_id" binding:"required"`
	LocalPlanID    uuid.UUID `json:"local_plan_id" binding:"required"`
	Name           string    `json:"name" binding:"required,max=120"`
	Description    string    `json:"description"`
	ContactEmail   string    `json:"contact_email" binding:"required,email"`
	Comment        *string   `json:"comment"`
	DocumentURL    *string   `json:"document_url"`
}

// UpdateAgreementRequest represents a request to update an agreement
type UpdateAgreementRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=120"`
	Description  *string `json:"description"`
	ContactEmail *string `json:"contact_email" binding:"omitempty,email"`
	Comment      *string `json:"comment"`
	DocumentURL  *string `json:"document_url"`
}

// ReviseAgreementRequest represents a request to open a new revision
type ReviseAgreementRequest struct {
	RevisionDate time.Time `json:"revision_date" binding:"required"`
}

// AgreementResponse represents an agreement in API responses
type AgreementResponse struct {
	ID             uuid.UUID `json:"id"`
	Year           int       `json:"year"`
	Code           string    `json:"code"`
	Revision       int       `json:"revision"`
	RevisionDate   time.Time `json:"revision_date"`
	ProviderPlanID uuid.UUID `json:"provider_plan_id"`
	LocalPlanID    uuid.UUID `json:"local_plan_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	ContactEmail   string    `json:"contact_email"`
	Comment        *string   `json:"comment"`
	DocumentURL    *string   `json:"document_url"`
	IsRevised      bool      `json:"is_revised"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ToAgreementResponse maps an aggregate to its response shape
func ToAgreementResponse(a *contract.Agreement) AgreementResponse {
	return AgreementResponse{
		ID:             a.ID,
		Year:           a.Year,
		Code:           a.Code,
		Revision:       a.Revision,
		RevisionDate:   a.RevisionDate,
		ProviderPlanID: a.ProviderPlanID,
		LocalPlanID:    a.LocalPlanID,
		Name:           a.Name,
		Description:    a.Description,
		ContactEmail:   a.ContactEmail,
		Comment:        a.Comment,
		DocumentURL:    a.DocumentURL,
		IsRevised:      a.IsRevised,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

// ToAgreementResponses maps a slice of aggregates to response shapes
func ToAgreementResponses(agreements []contract.Agreement) []AgreementResponse {
	responses := make([]AgreementResponse, len(agreements))
	for i := range agreements {
		responses[i] = ToAgreementResponse(&agreements[i])
	}
	return responses
}

// CreatePlanRequest represents a request to register a new plan
type CreatePlanRequest struct {
	Year        int    `json:"year" binding:"required"`
	Name        string `json:"name" binding:"required,max=120"`
	Scope       string `json:"scope" binding:"required,oneof=provider local"`
	Description string `json:"description"`
}

// UpdatePlanRequest represents a request to update a plan
type UpdatePlanRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=120"`
	Description *string `json:"description"`
}

// PlanResponse represents a plan in API responses
type PlanResponse struct {
	ID          uuid.UUID `json:"id"`
	Year        int       `json:"year"`
	Name        string    `json:"name"`
	Scope       string    `json:"scope"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToPlanResponse maps an aggregate to its response shape
func ToPlanResponse(p *contract.Plan) PlanResponse {
	return PlanResponse{
		ID:          p.ID,
		Year:        p.Year,
		Name:        p.Name,
		Scope:       string(p.Scope),
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ToPlanResponses maps a slice of aggregates to response shapes
func ToPlanResponses(plans []contract.Plan) []PlanResponse {
	responses := make([]PlanResponse, len(plans))
	for i := range plans {
		responses[i] = ToPlanResponse(&plans[i])
	}
	return responses
}
