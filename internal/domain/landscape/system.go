// Package landscape holds the cost-bearing systems services allocate their
// amounts to.
package landscape

import (
	"context"
	"strings"

	"github.com/agreements/backend/internal/domain/shared"
	"github.com/agreements/backend/internal/domain/validation"
	"github.com/google/uuid"
)

// System is a cost-bearing unit referenced by service allocations. It has an
// independent lifecycle; deleting a system is a use-case decision, not a
// cascade from any service.
type System struct {
	shared.BaseEntity
	Name             string
	Description      string
	ApplicationID    string
	ResponsibleEmail *string
	UserCount        int
}

// NewSystem creates a new system with a generated id
func NewSystem(name, description, applicationID string) *System {
	return &System{
		BaseEntity:    shared.NewBaseEntity(),
		Name:          strings.TrimSpace(name),
		Description:   strings.TrimSpace(description),
		ApplicationID: strings.TrimSpace(applicationID),
	}
}

// Rename changes the system name
func (s *System) Rename(name string) {
	s.Name = strings.TrimSpace(name)
	s.Touch()
}

// ChangeDescription changes the system description
func (s *System) ChangeDescription(description string) {
	s.Description = strings.TrimSpace(description)
	s.Touch()
}

// ChangeResponsible sets or clears the responsible email address
func (s *System) ChangeResponsible(email string) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		s.ResponsibleEmail = nil
	} else {
		s.ResponsibleEmail = &normalized
	}
	s.Touch()
}

// SetUserCount records the number of users on the system
func (s *System) SetUserCount(count int) {
	s.UserCount = count
	s.Touch()
}

// Validate checks the aggregate's current state against its field rules
func (s *System) Validate() error {
	return validation.Validate(
		validation.Field("name", validation.String(s.Name)).Required().MaxLength(120),
		validation.Field("description", validation.String(s.Description)).MaxLength(1000),
		validation.Field("applicationId", validation.String(s.ApplicationID)).Required().MaxLength(60),
		validation.Field("responsibleEmail", s.ResponsibleEmail).Email(),
		validation.Int("userCount", s.UserCount).Min(0),
	)
}

// SystemRepository is the persistence contract for System aggregates
type SystemRepository interface {
	Insert(ctx context.Context, system *System) error
	Update(ctx context.Context, system *System) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*System, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]System, error)
}
