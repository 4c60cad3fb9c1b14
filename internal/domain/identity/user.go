// Package identity holds the application user accounts.
package identity

import (
	"context"
	"strings"

	"github.com/agreements/backend/internal/domain/shared"
	"github.com/agreements/backend/internal/domain/validation"
	"github.com/google/uuid"
)

// Role determines what a user is allowed to do
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleValidator Role = "validator"
	RoleViewer    Role = "viewer"
)

// Roles returns every valid role as a string slice
func Roles() []string {
	return []string{string(RoleAdmin), string(RoleValidator), string(RoleViewer)}
}

// IsValid checks if the role belongs to the closed set
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleValidator, RoleViewer:
		return true
	}
	return false
}

// User is an application account. Email is the natural key: it is normalized
// to lower case on every write path so uniqueness checks never depend on the
// caller's casing.
type User struct {
	shared.BaseEntity
	Name  string
	Email string
	Role  Role
}

// NewUser creates a new user with a generated id and a normalized email
func NewUser(name, email string, role Role) *User {
	return &User{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Email:      normalizeEmail(email),
		Role:       role,
	}
}

// Rename changes the user's display name
func (u *User) Rename(name string) {
	u.Name = strings.TrimSpace(name)
	u.Touch()
}

// ChangeEmail replaces the email address, normalized
func (u *User) ChangeEmail(email string) {
	u.Email = normalizeEmail(email)
	u.Touch()
}

// ChangeRole assigns a different role
func (u *User) ChangeRole(role Role) {
	u.Role = role
	u.Touch()
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanValidate reports whether the user may review services
func (u *User) CanValidate() bool {
	return u.Role == RoleAdmin || u.Role == RoleValidator
}

// Validate checks the aggregate's current state against its field rules
func (u *User) Validate() error {
	return validation.Validate(
		validation.Field("name", validation.String(u.Name)).Required().MaxLength(120),
		validation.Field("email", validation.String(u.Email)).Required().Email().MaxLength(254),
		validation.Field("role", validation.String(string(u.Role))).Required().OneOf(Roles()...),
	)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// UserRepository is the persistence contract for User aggregates. FindByEmail
// expects a normalized address and returns shared.ErrNotFound when no account
// matches.
type UserRepository interface {
	Insert(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]User, error)
}
