// Package billing holds the billable-service aggregate and its owned cost
// allocations, plus the per-service user list snapshot.
package billing

import (
	"fmt"
	"strings"

	"github.com/agreements/backend/internal/domain/shared"
	"github.com/agreements/backend/internal/domain/shared/valueobject"
	"github.com/agreements/backend/internal/domain/validation"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ValidationStatus represents the review state of a service
type ValidationStatus string

const (
	ValidationStatusPending   ValidationStatus = "pending"
	ValidationStatusValidated ValidationStatus = "validated"
	ValidationStatusRejected  ValidationStatus = "rejected"
)

// IsValid checks if the status belongs to the closed set
func (s ValidationStatus) IsValid() bool {
	switch s {
	case ValidationStatusPending, ValidationStatusValidated, ValidationStatusRejected:
		return true
	}
	return false
}

// Service is a billable item under one agreement. It owns its ServiceSystem
// allocations as a composition: child rows never outlive the parent and the
// full set is rewritten as a whole on every update.
type Service struct {
	shared.BaseEntity
	AgreementID        uuid.UUID
	Name               string
	Description        string
	RunAmount          valueobject.Money
	ChgAmount          valueobject.Money
	Amount             valueobject.Money
	Currency           valueobject.Currency
	ResponsibleEmail   string
	IsActive           bool
	ProviderAllocation string
	LocalAllocation    string
	Status             ValidationStatus
	ValidatorEmail     string
	DocumentURL        *string
	Allocations        []ServiceSystem
}

// NewService creates a new service with a generated id. The total amount is
// derived from the run and change components. Construction never validates;
// call Validate before persisting.
func NewService(agreementID uuid.UUID, name, description string, currency valueobject.Currency, runAmount, chgAmount decimal.Decimal) *Service {
	run := valueobject.MoneyOf(runAmount, currency)
	chg := valueobject.MoneyOf(chgAmount, currency)
	return &Service{
		BaseEntity:  shared.NewBaseEntity(),
		AgreementID: agreementID,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		RunAmount:   run,
		ChgAmount:   chg,
		Amount:      run.MustAdd(chg),
		Currency:    currency,
		Status:      ValidationStatusPending,
		Allocations: make([]ServiceSystem, 0),
	}
}

// Rename changes the service name
func (s *Service) Rename(name string) {
	s.Name = strings.TrimSpace(name)
	s.Touch()
}

// ChangeDescription changes the service description
func (s *Service) ChangeDescription(description string) {
	s.Description = strings.TrimSpace(description)
	s.Touch()
}

// ChangeResponsible changes the responsible email address
func (s *Service) ChangeResponsible(email string) {
	s.ResponsibleEmail = normalizeEmail(email)
	s.Touch()
}

// ChangeAllocationDescriptors changes the provider and local allocation
// descriptors shown on reports
func (s *Service) ChangeAllocationDescriptors(provider, local string) {
	s.ProviderAllocation = strings.TrimSpace(provider)
	s.LocalAllocation = strings.TrimSpace(local)
	s.Touch()
}

// ChangeAmounts replaces the run and change amounts and re-derives the total
// and every allocation's amounts, so child rows can never disagree with the
// parent.
func (s *Service) ChangeAmounts(runAmount, chgAmount decimal.Decimal) {
	s.RunAmount = valueobject.MoneyOf(runAmount, s.Currency)
	s.ChgAmount = valueobject.MoneyOf(chgAmount, s.Currency)
	s.Amount = s.RunAmount.MustAdd(s.ChgAmount)
	s.rederiveAllocations()
	s.Touch()
}

// ChangeCurrency re-labels every amount on the service and its allocations.
// No conversion is performed.
func (s *Service) ChangeCurrency(currency valueobject.Currency) {
	s.Currency = currency
	s.RunAmount = s.RunAmount.WithCurrency(currency)
	s.ChgAmount = s.ChgAmount.WithCurrency(currency)
	s.Amount = s.Amount.WithCurrency(currency)
	s.rederiveAllocations()
	s.Touch()
}

// AttachDocument records the supporting document URL
func (s *Service) AttachDocument(url string) {
	s.DocumentURL = &url
	s.Touch()
}

// MarkValidated records a successful review by the given validator
func (s *Service) MarkValidated(validatorEmail string) {
	s.Status = ValidationStatusValidated
	s.ValidatorEmail = normalizeEmail(validatorEmail)
	s.Touch()
}

// MarkRejected records a rejected review by the given validator
func (s *Service) MarkRejected(validatorEmail string) {
	s.Status = ValidationStatusRejected
	s.ValidatorEmail = normalizeEmail(validatorEmail)
	s.Touch()
}

// AddAllocation appends a ServiceSystem computed from the service's current
// amounts and the given percentage. It does not cap the running total at
// 100%; coverage only feeds the activation status, which the caller refreshes
// through RecalculateActivation once the set is complete.
func (s *Service) AddAllocation(systemID uuid.UUID, allocation valueobject.Percent) *ServiceSystem {
	entry := newServiceSystem(s, systemID, allocation)
	s.Allocations = append(s.Allocations, *entry)
	s.Touch()
	return entry
}

// ClearAllocations drops the whole allocation set. The persisted rows are
// replaced wholesale on the next update.
func (s *Service) ClearAllocations() {
	s.Allocations = make([]ServiceSystem, 0)
	s.Touch()
}

// AllocationCoverage returns the sum of all allocation percentages
func (s *Service) AllocationCoverage() valueobject.Percent {
	coverage := valueobject.ZeroPercent()
	for _, a := range s.Allocations {
		coverage = coverage.Add(a.Allocation)
	}
	return coverage
}

// RecalculateActivation derives IsActive from the current allocation set:
// active only when the percentages cover the amount exactly. A service with
// no allocations, partial coverage or over-allocation resolves to inactive.
// Call it after any allocation mutation and before Validate/persistence; it
// is the only sanctioned way to change IsActive.
func (s *Service) RecalculateActivation() {
	s.IsActive = len(s.Allocations) > 0 && s.AllocationCoverage().IsFull()
	s.Touch()
}

// rederiveAllocations recomputes every allocation's derived amounts from the
// service's current amounts and currency.
func (s *Service) rederiveAllocations() {
	for i := range s.Allocations {
		s.Allocations[i].rederive(s)
	}
}

// Validate checks the aggregate's current state against its field rules and
// returns one aggregated error listing every violation.
func (s *Service) Validate() error {
	rules := []*validation.FieldRule{
		validation.Field("agreementId", validation.ID(s.AgreementID)).Required().UUID(),
		validation.Field("name", validation.String(s.Name)).Required().MaxLength(120),
		validation.Field("description", validation.String(s.Description)).MaxLength(1000),
		validation.Field("currency", validation.String(string(s.Currency))).Required().
			OneOf(valueobject.Currencies()...),
		validation.Field("runAmount", validation.String(s.RunAmount.Amount().String())).Decimal().NonNegative(),
		validation.Field("chgAmount", validation.String(s.ChgAmount.Amount().String())).Decimal().NonNegative(),
		validation.Field("amount", validation.String(s.Amount.Amount().String())).Decimal().NonNegative(),
		validation.Field("responsibleEmail", validation.String(s.ResponsibleEmail)).Required().Email(),
		validation.Field("status", validation.String(string(s.Status))).Required().OneOf(
			string(ValidationStatusPending),
			string(ValidationStatusValidated),
			string(ValidationStatusRejected),
		),
		validation.Field("validatorEmail", optional(s.ValidatorEmail)).Email(),
		validation.Field("documentUrl", s.DocumentURL).URL().MaxLength(500),
	}
	for i, a := range s.Allocations {
		field := fmt.Sprintf("allocations[%d].allocation", i)
		rules = append(rules,
			validation.Field(field, validation.String(a.Allocation.Decimal().String())).Decimal().NonNegative(),
			validation.Field(fmt.Sprintf("allocations[%d].systemId", i), validation.ID(a.SystemID)).Required().UUID(),
		)
	}
	return validation.Validate(rules...)
}

// optional maps an empty string to an absent value so optional rules skip it
func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
