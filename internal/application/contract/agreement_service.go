// Package contract implements the agreement and plan use cases.
package contract

import (
	"context"
	"errors"

	"github.com/agreements/backend/internal/application/uow"
	"github.com/agreements/backend/internal/domain/contract"
	"github.com/agreements/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AgreementService handles agreement-related business operations
type AgreementService struct {
	agreementRepo contract.AgreementRepository
	planRepo      contract.PlanRepository
	txScope       uow.TransactionScope
}

// NewAgreementService creates a new AgreementService
func NewAgreementService(agreementRepo contract.AgreementRepository, planRepo contract.PlanRepository, txScope uow.TransactionScope) *AgreementService {
	return &AgreementService{
		agreementRepo: agreementRepo,
		planRepo:      planRepo,
		txScope:       txScope,
	}
}

// Create registers the first revision of a new agreement. Both referenced
// plans must exist before anything is written.
func (s *AgreementService) Create(ctx context.Context, req CreateAgreementRequest) (*AgreementResponse, error) {
	if _, err := s.planRepo.FindByID(ctx, req.ProviderPlanID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("plan", req.ProviderPlanID)
		}
		return nil, err
	}
	if _, err := s.planRepo.FindByID(ctx, req.LocalPlanID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("plan", req.LocalPlanID)
		}
		return nil, err
	}

	agreement := contract.NewAgreement(
		req.Year,
		req.Code,
		req.RevisionDate,
		req.ProviderPlanID,
		req.LocalPlanID,
		req.Name,
		req.Description,
		req.ContactEmail,
	)
	agreement.SetComment(req.Comment)
	if req.DocumentURL != nil {
		agreement.AttachDocument(*req.DocumentURL)
	}

	if err := agreement.Validate(); err != nil {
		return nil, err
	}

	if err := s.agreementRepo.Insert(ctx, agreement); err != nil {
		return nil, err
	}

	response := ToAgreementResponse(agreement)
	return &response, nil
}

// GetByID retrieves an agreement by id
func (s *AgreementService) GetByID(ctx context.Context, id uuid.UUID) (*AgreementResponse, error) {
	agreement, err := s.agreementRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("agreement", id)
		}
		return nil, err
	}

	response := ToAgreementResponse(agreement)
	return &response, nil
}

// ListByYear retrieves all agreement revisions for a contract year
func (s *AgreementService) ListByYear(ctx context.Context, year int, filter shared.Filter) ([]AgreementResponse, error) {
	agreements, err := s.agreementRepo.FindByYear(ctx, year, filter)
	if err != nil {
		return nil, err
	}
	return ToAgreementResponses(agreements), nil
}

// List retrieves agreements with pagination
func (s *AgreementService) List(ctx context.Context, filter shared.Filter) ([]AgreementResponse, error) {
	agreements, err := s.agreementRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	return ToAgreementResponses(agreements), nil
}

// Update changes the mutable fields of an agreement
func (s *AgreementService) Update(ctx context.Context, id uuid.UUID, req UpdateAgreementRequest) (*AgreementResponse, error) {
	agreement, err := s.agreementRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("agreement", id)
		}
		return nil, err
	}

	if req.Name != nil {
		agreement.Rename(*req.Name)
	}
	if req.Description != nil {
		agreement.ChangeDescription(*req.Description)
	}
	if req.ContactEmail != nil {
		agreement.ChangeContactEmail(*req.ContactEmail)
	}
	if req.Comment != nil {
		agreement.SetComment(req.Comment)
	}
	if req.DocumentURL != nil {
		agreement.AttachDocument(*req.DocumentURL)
	}

	if err := agreement.Validate(); err != nil {
		return nil, err
	}

	if err := s.agreementRepo.Update(ctx, agreement); err != nil {
		return nil, err
	}

	response := ToAgreementResponse(agreement)
	return &response, nil
}

// Revise opens the next revision of an agreement. The superseded row is
// flagged and the new revision inserted in one transaction, so readers never
// observe a lineage with a dangling head.
func (s *AgreementService) Revise(ctx context.Context, id uuid.UUID, req ReviseAgreementRequest) (*AgreementResponse, error) {
	agreement, err := s.agreementRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("agreement", id)
		}
		return nil, err
	}

	if agreement.IsRevised {
		return nil, shared.NewDomainError("ALREADY_REVISED", "Agreement revision has already been superseded")
	}

	next := agreement.Revise(req.RevisionDate)
	if err := next.Validate(); err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos uow.Repositories) error {
		if err := repos.Agreements().Update(ctx, agreement); err != nil {
			return err
		}
		return repos.Agreements().Insert(ctx, next)
	})
	if err != nil {
		return nil, err
	}

	response := ToAgreementResponse(next)
	return &response, nil
}

// Delete removes an agreement revision
func (s *AgreementService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.agreementRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewNotFoundError("agreement", id)
		}
		return err
	}
	return s.agreementRepo.Delete(ctx, id)
}
