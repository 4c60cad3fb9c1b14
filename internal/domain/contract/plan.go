package contract

import (
	"strings"

	"github.com/agreements/backend/internal/domain/shared"
	"github.com/agreements/backend/internal/domain/validation"
)

// PlanScope distinguishes provider-side and local plans
type PlanScope string

const (
	PlanScopeProvider PlanScope = "provider"
	PlanScopeLocal    PlanScope = "local"
)

// IsValid checks if the scope belongs to the closed set
func (s PlanScope) IsValid() bool {
	return s == PlanScopeProvider || s == PlanScopeLocal
}

// Plan is a yearly budget plan an agreement points at through its provider
// and local plan references. It is a peer aggregate of Agreement and follows
// the same construct-then-validate pattern.
type Plan struct {
	shared.BaseEntity
	Year        int
	Name        string
	Scope       PlanScope
	Description string
}

// NewPlan creates a new plan with a generated id
func NewPlan(year int, name string, scope PlanScope, description string) *Plan {
	return &Plan{
		BaseEntity:  shared.NewBaseEntity(),
		Year:        year,
		Name:        strings.TrimSpace(name),
		Scope:       scope,
		Description: strings.TrimSpace(description),
	}
}

// Rename changes the plan name
func (p *Plan) Rename(name string) {
	p.Name = strings.TrimSpace(name)
	p.Touch()
}

// ChangeDescription changes the plan description
func (p *Plan) ChangeDescription(description string) {
	p.Description = strings.TrimSpace(description)
	p.Touch()
}

// Validate checks the aggregate's current state against its field rules
func (p *Plan) Validate() error {
	return validation.Validate(
		validation.Int("year", p.Year).Required().Min(1990).Max(2100),
		validation.Field("name", validation.String(p.Name)).Required().MaxLength(120),
		validation.Field("scope", validation.String(string(p.Scope))).Required().
			OneOf(string(PlanScopeProvider), string(PlanScopeLocal)),
		validation.Field("description", validation.String(p.Description)).MaxLength(1000),
	)
}
