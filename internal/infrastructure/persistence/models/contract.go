package models

import (
	"time"

	"github.com/agreements/backend/internal/domain/contract"
	"github.com/google/uuid"
)

// AgreementModel is the persistence model for the Agreement aggregate.
// Every revision is its own row; (code, revision) identifies one version
// inside a lineage.
type AgreementModel struct {
	BaseModel
	Year           int       `gorm:"not null;uniqueIndex:idx_agreements_year_code_revision,priority:1"`
	Code           string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_agreements_year_code_revision,priority:2"`
	Revision       int       `gorm:"not null;default:1;uniqueIndex:idx_agreements_year_code_revision,priority:3"`
	RevisionDate   time.Time `gorm:"not null"`
	ProviderPlanID uuid.UUID `gorm:"type:uuid;not null;index"`
	LocalPlanID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(120);not null"`
	Description    string    `gorm:"type:text"`
	ContactEmail   string    `gorm:"type:varchar(254);not null"`
	Comment        *string   `gorm:"type:text"`
	DocumentURL    *string   `gorm:"type:varchar(500)"`
	IsRevised      bool      `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (AgreementModel) TableName() string {
	return "agreements"
}

// ToDomain converts the persistence model to a domain Agreement
func (m *AgreementModel) ToDomain() *contract.Agreement {
	return &contract.Agreement{
		BaseEntity:     m.BaseModel.ToDomain(),
		Year:           m.Year,
		Code:           m.Code,
		Revision:       m.Revision,
		RevisionDate:   m.RevisionDate,
		ProviderPlanID: m.ProviderPlanID,
		LocalPlanID:    m.LocalPlanID,
		Name:           m.Name,
		Description:    m.Description,
		ContactEmail:   m.ContactEmail,
		Comment:        m.Comment,
		DocumentURL:    m.DocumentURL,
		IsRevised:      m.IsRevised,
	}
}

// FromDomain populates the persistence model from a domain Agreement
func (m *AgreementModel) FromDomain(a *contract.Agreement) {
	m.FromDomainBaseEntity(a.BaseEntity)
	m.Year = a.Year
	m.Code = a.Code
	m.Revision = a.Revision
	m.RevisionDate = a.RevisionDate
	m.ProviderPlanID = a.ProviderPlanID
	m.LocalPlanID = a.LocalPlanID
	m.Name = a.Name
	m.Description = a.Description
	m.ContactEmail = a.ContactEmail
	m.Comment = a.Comment
	m.DocumentURL = a.DocumentURL
	m.IsRevised = a.IsRevised
}

// AgreementModelFromDomain creates a new persistence model from a domain Agreement
func AgreementModelFromDomain(a *contract.Agreement) *AgreementModel {
	m := &AgreementModel{}
	m.FromDomain(a)
	return m
}

// PlanModel is the persistence model for the Plan aggregate
type PlanModel struct {
	BaseModel
	Year        int    `gorm:"not null;index"`
	Name        string `gorm:"type:varchar(120);not null"`
	Scope       string `gorm:"type:varchar(20);not null;index"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (PlanModel) TableName() string {
	return "plans"
}

// ToDomain converts the persistence model to a domain Plan
func (m *PlanModel) ToDomain() *contract.Plan {
	return &contract.Plan{
		BaseEntity:  m.BaseModel.ToDomain(),
		Year:        m.Year,
		Name:        m.Name,
		Scope:       contract.PlanScope(m.Scope),
		Description: m.Description,
	}
}

// FromDomain populates the persistence model from a domain Plan
func (m *PlanModel) FromDomain(p *contract.Plan) {
	m.FromDomainBaseEntity(p.BaseEntity)
	m.Year = p.Year
	m.Name = p.Name
	m.Scope = string(p.Scope)
	m.Description = p.Description
}

// PlanModelFromDomain creates a new persistence model from a domain Plan
func PlanModelFromDomain(p *contract.Plan) *PlanModel {
	m := &PlanModel{}
	m.FromDomain(p)
	return m
}
