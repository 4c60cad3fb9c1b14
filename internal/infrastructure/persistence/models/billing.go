package models

import (
	"time"

	"github.com/agreements/backend/internal/domain/billing"
	"github.com/agreements/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ServiceModel is the persistence model for the Service aggregate.
// Amounts are stored as exact decimals; derived allocation amounts live on
// the child rows and are rewritten together with the parent.
type ServiceModel struct {
	BaseModel
	AgreementID        uuid.UUID            `gorm:"type:uuid;not null;index"`
	Name               string               `gorm:"type:varchar(120);not null"`
	Description        string               `gorm:"type:text"`
	RunAmount          decimal.Decimal      `gorm:"type:decimal(18,2);not null;default:0"`
	ChgAmount          decimal.Decimal      `gorm:"type:decimal(18,2);not null;default:0"`
	Amount             decimal.Decimal      `gorm:"type:decimal(18,2);not null;default:0"`
	Currency           string               `gorm:"type:varchar(3);not null;default:'EUR'"`
	ResponsibleEmail   string               `gorm:"type:varchar(254);not null"`
	IsActive           bool                 `gorm:"not null;default:false"`
	ProviderAllocation string               `gorm:"type:varchar(120)"`
	LocalAllocation    string               `gorm:"type:varchar(120)"`
	Status             string               `gorm:"type:varchar(20);not null;default:'pending'"`
	ValidatorEmail     string               `gorm:"type:varchar(254)"`
	DocumentURL        *string              `gorm:"type:varchar(500)"`
	Allocations        []ServiceSystemModel `gorm:"foreignKey:ServiceID;references:ID"`
}

// TableName returns the table name for GORM
func (ServiceModel) TableName() string {
	return "services"
}

// ToDomain converts the persistence model to a domain Service
func (m *ServiceModel) ToDomain() *billing.Service {
	currency := valueobject.Currency(m.Currency)
	service := &billing.Service{
		BaseEntity:         m.BaseModel.ToDomain(),
		AgreementID:        m.AgreementID,
		Name:               m.Name,
		Description:        m.Description,
		RunAmount:          valueobject.MoneyOf(m.RunAmount, currency),
		ChgAmount:          valueobject.MoneyOf(m.ChgAmount, currency),
		Amount:             valueobject.MoneyOf(m.Amount, currency),
		Currency:           currency,
		ResponsibleEmail:   m.ResponsibleEmail,
		IsActive:           m.IsActive,
		ProviderAllocation: m.ProviderAllocation,
		LocalAllocation:    m.LocalAllocation,
		Status:             billing.ValidationStatus(m.Status),
		ValidatorEmail:     m.ValidatorEmail,
		DocumentURL:        m.DocumentURL,
		Allocations:        make([]billing.ServiceSystem, len(m.Allocations)),
	}
	for i, allocation := range m.Allocations {
		service.Allocations[i] = *allocation.ToDomain()
	}
	return service
}

// FromDomain populates the persistence model from a domain Service
func (m *ServiceModel) FromDomain(s *billing.Service) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.AgreementID = s.AgreementID
	m.Name = s.Name
	m.Description = s.Description
	m.RunAmount = s.RunAmount.Amount()
	m.ChgAmount = s.ChgAmount.Amount()
	m.Amount = s.Amount.Amount()
	m.Currency = string(s.Currency)
	m.ResponsibleEmail = s.ResponsibleEmail
	m.IsActive = s.IsActive
	m.ProviderAllocation = s.ProviderAllocation
	m.LocalAllocation = s.LocalAllocation
	m.Status = string(s.Status)
	m.ValidatorEmail = s.ValidatorEmail
	m.DocumentURL = s.DocumentURL
	m.Allocations = make([]ServiceSystemModel, len(s.Allocations))
	for i, allocation := range s.Allocations {
		m.Allocations[i] = *ServiceSystemModelFromDomain(&allocation)
	}
}

// ServiceModelFromDomain creates a new persistence model from a domain Service
func ServiceModelFromDomain(s *billing.Service) *ServiceModel {
	m := &ServiceModel{}
	m.FromDomain(s)
	return m
}

// ServiceSystemModel is the persistence model for one cost allocation row
type ServiceSystemModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key"`
	ServiceID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	SystemID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Allocation decimal.Decimal `gorm:"type:decimal(18,6);not null;default:0"`
	RunAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ChgAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Currency   string          `gorm:"type:varchar(3);not null;default:'EUR'"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ServiceSystemModel) TableName() string {
	return "service_systems"
}

// ToDomain converts the persistence model to a domain ServiceSystem
func (m *ServiceSystemModel) ToDomain() *billing.ServiceSystem {
	currency := valueobject.Currency(m.Currency)
	return &billing.ServiceSystem{
		ID:         m.ID,
		ServiceID:  m.ServiceID,
		SystemID:   m.SystemID,
		Allocation: valueobject.NewPercent(m.Allocation),
		RunAmount:  valueobject.MoneyOf(m.RunAmount, currency),
		ChgAmount:  valueobject.MoneyOf(m.ChgAmount, currency),
		Amount:     valueobject.MoneyOf(m.Amount, currency),
		Currency:   currency,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ServiceSystemModelFromDomain creates a new persistence model from a domain ServiceSystem
func ServiceSystemModelFromDomain(ss *billing.ServiceSystem) *ServiceSystemModel {
	return &ServiceSystemModel{
		ID:         ss.ID,
		ServiceID:  ss.ServiceID,
		SystemID:   ss.SystemID,
		Allocation: ss.Allocation.Decimal(),
		RunAmount:  ss.RunAmount.Amount(),
		ChgAmount:  ss.ChgAmount.Amount(),
		Amount:     ss.Amount.Amount(),
		Currency:   string(ss.Currency),
		CreatedAt:  ss.CreatedAt,
		UpdatedAt:  ss.UpdatedAt,
	}
}

// UserListModel is the persistence model for a service's user list snapshot
type UserListModel struct {
	BaseModel
	ServiceID   uuid.UUID           `gorm:"type:uuid;not null;index"`
	UsersNumber int                 `gorm:"not null;default:0"`
	Items       []UserListItemModel `gorm:"foreignKey:ListID;references:ID"`
}

// TableName returns the table name for GORM
func (UserListModel) TableName() string {
	return "user_lists"
}

// ToDomain converts the persistence model to a domain UserList
func (m *UserListModel) ToDomain() *billing.UserList {
	list := &billing.UserList{
		BaseEntity:  m.BaseModel.ToDomain(),
		ServiceID:   m.ServiceID,
		UsersNumber: m.UsersNumber,
		Items:       make([]billing.UserListItem, len(m.Items)),
	}
	for i, item := range m.Items {
		list.Items[i] = *item.ToDomain()
	}
	return list
}

// UserListModelFromDomain creates a new persistence model from a domain UserList
func UserListModelFromDomain(l *billing.UserList) *UserListModel {
	m := &UserListModel{
		ServiceID:   l.ServiceID,
		UsersNumber: l.UsersNumber,
		Items:       make([]UserListItemModel, len(l.Items)),
	}
	m.FromDomainBaseEntity(l.BaseEntity)
	for i, item := range l.Items {
		m.Items[i] = *UserListItemModelFromDomain(&item)
	}
	return m
}

// UserListItemModel is the persistence model for one user row of a snapshot
type UserListItemModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	ListID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(120);not null"`
	Email          string    `gorm:"type:varchar(254);not null"`
	ExternalUserID string    `gorm:"type:varchar(60)"`
	Area           string    `gorm:"type:varchar(120)"`
	CostCenter     string    `gorm:"type:varchar(60)"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (UserListItemModel) TableName() string {
	return "user_list_items"
}

// ToDomain converts the persistence model to a domain UserListItem
func (m *UserListItemModel) ToDomain() *billing.UserListItem {
	return &billing.UserListItem{
		ID:             m.ID,
		ListID:         m.ListID,
		Name:           m.Name,
		Email:          m.Email,
		ExternalUserID: m.ExternalUserID,
		Area:           m.Area,
		CostCenter:     m.CostCenter,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

// UserListItemModelFromDomain creates a new persistence model from a domain UserListItem
func UserListItemModelFromDomain(item *billing.UserListItem) *UserListItemModel {
	return &UserListItemModel{
		ID:             item.ID,
		ListID:         item.ListID,
		Name:           item.Name,
		Email:          item.Email,
		ExternalUserID: item.ExternalUserID,
		Area:           item.Area,
		CostCenter:     item.CostCenter,
		CreatedAt:      item.CreatedAt,
		UpdatedAt:      item.UpdatedAt,
	}
}
