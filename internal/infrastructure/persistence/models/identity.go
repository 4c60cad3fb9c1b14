package models

import (
	"github.com/agreements/backend/internal/domain/identity"
)

// UserModel is the persistence model for the User aggregate.
// Email is stored normalized and unique.
type UserModel struct {
	BaseModel
	Name  string `gorm:"type:varchar(120);not null"`
	Email string `gorm:"type:varchar(254);not null;uniqueIndex"`
	Role  string `gorm:"type:varchar(20);not null"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity: m.BaseModel.ToDomain(),
		Name:       m.Name,
		Email:      m.Email,
		Role:       identity.Role(m.Role),
	}
}

// FromDomain populates the persistence model from a domain User
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Name = u.Name
	m.Email = u.Email
	m.Role = string(u.Role)
}

// UserModelFromDomain creates a new persistence model from a domain User
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
