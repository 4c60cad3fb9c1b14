// Package billing implements the service and user list use cases.
package billing

import (
	"context"
	"errors"

	"github.com/agreements/backend/internal/application/uow"
	"github.com/agreements/backend/internal/domain/billing"
	"github.com/agreements/backend/internal/domain/contract"
	"github.com/agreements/backend/internal/domain/landscape"
	"github.com/agreements/backend/internal/domain/shared"
	"github.com/agreements/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ServiceService handles service-related business operations
type ServiceService struct {
	serviceRepo   billing.ServiceRepository
	agreementRepo contract.AgreementRepository
	systemRepo    landscape.SystemRepository
	txScope       uow.TransactionScope
}

// NewServiceService creates a new ServiceService
func NewServiceService(
	serviceRepo billing.ServiceRepository,
	agreementRepo contract.AgreementRepository,
	systemRepo landscape.SystemRepository,
	txScope uow.TransactionScope,
) *ServiceService {
	return &ServiceService{
		serviceRepo:   serviceRepo,
		agreementRepo: agreementRepo,
		systemRepo:    systemRepo,
		txScope:       txScope,
	}
}

// Create registers a new service under an agreement. The agreement and every
// referenced system must exist before anything is written.
func (s *ServiceService) Create(ctx context.Context, req CreateServiceRequest) (*ServiceResponse, error) {
	if _, err := s.agreementRepo.FindByID(ctx, req.AgreementID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("agreement", req.AgreementID)
		}
		return nil, err
	}
	if err := s.verifySystemsExist(ctx, req.Allocations); err != nil {
		return nil, err
	}

	service := billing.NewService(
		req.AgreementID,
		req.Name,
		req.Description,
		valueobject.Currency(req.Currency),
		req.RunAmount,
		req.ChgAmount,
	)
	service.ChangeResponsible(req.ResponsibleEmail)
	service.ChangeAllocationDescriptors(req.ProviderAllocation, req.LocalAllocation)
	if req.DocumentURL != nil {
		service.AttachDocument(*req.DocumentURL)
	}
	applyAllocations(service, req.Allocations)
	service.RecalculateActivation()

	if err := service.Validate(); err != nil {
		return nil, err
	}

	if err := s.serviceRepo.Insert(ctx, service); err != nil {
		return nil, err
	}

	response := ToServiceResponse(service)
	return &response, nil
}

// GetByID retrieves a service with its allocations
func (s *ServiceService) GetByID(ctx context.Context, id uuid.UUID) (*ServiceResponse, error) {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("service", id)
		}
		return nil, err
	}

	response := ToServiceResponse(service)
	return &response, nil
}

// ListByAgreement retrieves all services under an agreement
func (s *ServiceService) ListByAgreement(ctx context.Context, agreementID uuid.UUID, filter shared.Filter) ([]ServiceResponse, error) {
	services, err := s.serviceRepo.FindByAgreementID(ctx, agreementID, filter)
	if err != nil {
		return nil, err
	}
	return ToServiceResponses(services), nil
}

// Update changes the mutable fields of a service. Amount or currency changes
// re-derive every allocation row, and a non-nil allocation set replaces the
// current one wholesale; activation is always re-derived before saving.
func (s *ServiceService) Update(ctx context.Context, id uuid.UUID, req UpdateServiceRequest) (*ServiceResponse, error) {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("service", id)
		}
		return nil, err
	}

	if req.Name != nil {
		service.Rename(*req.Name)
	}
	if req.Description != nil {
		service.ChangeDescription(*req.Description)
	}
	if req.ResponsibleEmail != nil {
		service.ChangeResponsible(*req.ResponsibleEmail)
	}
	if req.ProviderAllocation != nil || req.LocalAllocation != nil {
		provider := service.ProviderAllocation
		local := service.LocalAllocation
		if req.ProviderAllocation != nil {
			provider = *req.ProviderAllocation
		}
		if req.LocalAllocation != nil {
			local = *req.LocalAllocation
		}
		service.ChangeAllocationDescriptors(provider, local)
	}
	if req.RunAmount != nil || req.ChgAmount != nil {
		run := service.RunAmount.Amount()
		chg := service.ChgAmount.Amount()
		if req.RunAmount != nil {
			run = *req.RunAmount
		}
		if req.ChgAmount != nil {
			chg = *req.ChgAmount
		}
		service.ChangeAmounts(run, chg)
	}
	if req.Currency != nil {
		service.ChangeCurrency(valueobject.Currency(*req.Currency))
	}
	if req.DocumentURL != nil {
		service.AttachDocument(*req.DocumentURL)
	}
	if req.Allocations != nil {
		if err := s.verifySystemsExist(ctx, *req.Allocations); err != nil {
			return nil, err
		}
		service.ClearAllocations()
		applyAllocations(service, *req.Allocations)
	}
	service.RecalculateActivation()

	if err := service.Validate(); err != nil {
		return nil, err
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		return nil, err
	}

	response := ToServiceResponse(service)
	return &response, nil
}

// SetAllocations replaces a service's allocation set wholesale
func (s *ServiceService) SetAllocations(ctx context.Context, id uuid.UUID, allocations []AllocationRequest) (*ServiceResponse, error) {
	req := UpdateServiceRequest{Allocations: &allocations}
	return s.Update(ctx, id, req)
}

// MarkValidated records a successful review of the service
func (s *ServiceService) MarkValidated(ctx context.Context, id uuid.UUID, req ReviewServiceRequest) (*ServiceResponse, error) {
	return s.review(ctx, id, req.ValidatorEmail, true)
}

// MarkRejected records a rejected review of the service
func (s *ServiceService) MarkRejected(ctx context.Context, id uuid.UUID, req ReviewServiceRequest) (*ServiceResponse, error) {
	return s.review(ctx, id, req.ValidatorEmail, false)
}

func (s *ServiceService) review(ctx context.Context, id uuid.UUID, validatorEmail string, approved bool) (*ServiceResponse, error) {
	service, err := s.serviceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewNotFoundError("service", id)
		}
		return nil, err
	}

	if approved {
		service.MarkValidated(validatorEmail)
	} else {
		service.MarkRejected(validatorEmail)
	}

	if err := service.Validate(); err != nil {
		return nil, err
	}

	if err := s.serviceRepo.Update(ctx, service); err != nil {
		return nil, err
	}

	response := ToServiceResponse(service)
	return &response, nil
}

// Delete removes a service together with its allocations and user list
// snapshot in one transaction
func (s *ServiceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.serviceRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewNotFoundError("service", id)
		}
		return err
	}

	return s.txScope.Execute(ctx, func(repos uow.Repositories) error {
		if err := repos.UserLists().DeleteByServiceID(ctx, id); err != nil {
			return err
		}
		return repos.Services().Delete(ctx, id)
	})
}

func (s *ServiceService) verifySystemsExist(ctx context.Context, allocations []AllocationRequest) error {
	for _, a := range allocations {
		if _, err := s.systemRepo.FindByID(ctx, a.SystemID); err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return shared.NewNotFoundError("system", a.SystemID)
			}
			return err
		}
	}
	return nil
}

func applyAllocations(service *billing.Service, allocations []AllocationRequest) {
	for _, a := range allocations {
		service.AddAllocation(a.SystemID, valueobject.NewPercent(a.Percent))
	}
}
