package models

import (
	"github.com/agreements/backend/internal/domain/landscape"
)

// SystemModel is the persistence model for the System aggregate
type SystemModel struct {
	BaseModel
	Name             string  `gorm:"type:varchar(120);not null"`
	Description      string  `gorm:"type:text"`
	ApplicationID    string  `gorm:"type:varchar(60);not null;index"`
	ResponsibleEmail *string `gorm:"type:varchar(254)"`
	UserCount        int     `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (SystemModel) TableName() string {
	return "systems"
}

// ToDomain converts the persistence model to a domain System
func (m *SystemModel) ToDomain() *landscape.System {
	return &landscape.System{
		BaseEntity:       m.BaseModel.ToDomain(),
		Name:             m.Name,
		Description:      m.Description,
		ApplicationID:    m.ApplicationID,
		ResponsibleEmail: m.ResponsibleEmail,
		UserCount:        m.UserCount,
	}
}

// FromDomain populates the persistence model from a domain System
func (m *SystemModel) FromDomain(s *landscape.System) {
	m.FromDomainBaseEntity(s.BaseEntity)
	m.Name = s.Name
	m.Description = s.Description
	m.ApplicationID = s.ApplicationID
	m.ResponsibleEmail = s.ResponsibleEmail
	m.UserCount = s.UserCount
}

// SystemModelFromDomain creates a new persistence model from a domain System
func SystemModelFromDomain(s *landscape.System) *SystemModel {
	m := &SystemModel{}
	m.FromDomain(s)
	return m
}
