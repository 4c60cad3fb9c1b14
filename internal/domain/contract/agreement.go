package contract

import (
	"strings"
	"time"

	"github.com/agreements/backend/internal/domain/shared"
	"github.com/agreements/backend/internal/domain/validation"
	"github.com/google/uuid"
)

// Agreement represents one version of a contract. A revision produces a new
// Agreement row with a fresh id and an incremented revision number; the
// superseded version stays behind flagged IsRevised.
type Agreement struct {
	shared.BaseEntity
	Year           int
	Code           string
	Revision       int
	RevisionDate   time.Time
	ProviderPlanID uuid.UUID
	LocalPlanID    uuid.UUID
	Name           string
	Description    string
	ContactEmail   string
	Comment        *string
	DocumentURL    *string
	IsRevised      bool
}

// NewAgreement creates the first revision of an agreement with a generated id.
// Construction never validates; callers admit the aggregate into the system
// by calling Validate explicitly before persisting.
func NewAgreement(year int, code string, revisionDate time.Time, providerPlanID, localPlanID uuid.UUID, name, description, contactEmail string) *Agreement {
	return &Agreement{
		BaseEntity:     shared.NewBaseEntity(),
		Year:           year,
		Code:           strings.TrimSpace(code),
		Revision:       1,
		RevisionDate:   revisionDate,
		ProviderPlanID: providerPlanID,
		LocalPlanID:    localPlanID,
		Name:           strings.TrimSpace(name),
		Description:    strings.TrimSpace(description),
		ContactEmail:   normalizeEmail(contactEmail),
	}
}

// Rename changes the agreement name
func (a *Agreement) Rename(name string) {
	a.Name = strings.TrimSpace(name)
	a.Touch()
}

// ChangeDescription changes the agreement description
func (a *Agreement) ChangeDescription(description string) {
	a.Description = strings.TrimSpace(description)
	a.Touch()
}

// ChangeContactEmail changes the contact email address
func (a *Agreement) ChangeContactEmail(email string) {
	a.ContactEmail = normalizeEmail(email)
	a.Touch()
}

// SetComment attaches or clears the free-form comment
func (a *Agreement) SetComment(comment *string) {
	a.Comment = comment
	a.Touch()
}

// AttachDocument records the supporting document URL
func (a *Agreement) AttachDocument(url string) {
	a.DocumentURL = &url
	a.Touch()
}

// Revise produces the next revision of this agreement: a new aggregate with a
// fresh id, revision number +1 and the given revision date, carrying the same
// contract lineage fields. The receiver is flagged as revised; persisting
// both rows atomically is the caller's responsibility.
func (a *Agreement) Revise(revisionDate time.Time) *Agreement {
	next := &Agreement{
		BaseEntity:     shared.NewBaseEntity(),
		Year:           a.Year,
		Code:           a.Code,
		Revision:       a.Revision + 1,
		RevisionDate:   revisionDate,
		ProviderPlanID: a.ProviderPlanID,
		LocalPlanID:    a.LocalPlanID,
		Name:           a.Name,
		Description:    a.Description,
		ContactEmail:   a.ContactEmail,
		Comment:        a.Comment,
		DocumentURL:    a.DocumentURL,
	}

	a.IsRevised = true
	a.Touch()

	return next
}

// Validate checks the aggregate's current state against its field rules and
// returns one aggregated error listing every violation.
func (a *Agreement) Validate() error {
	return validation.Validate(
		validation.Int("year", a.Year).Required().Min(1990).Max(2100),
		validation.Field("code", validation.String(a.Code)).Required().MaxLength(20),
		validation.Int("revision", a.Revision).Required().Min(1),
		validation.Field("providerPlanId", validation.ID(a.ProviderPlanID)).Required().UUID(),
		validation.Field("localPlanId", validation.ID(a.LocalPlanID)).Required().UUID(),
		validation.Field("name", validation.String(a.Name)).Required().MaxLength(120),
		validation.Field("description", validation.String(a.Description)).MaxLength(1000),
		validation.Field("contactEmail", validation.String(a.ContactEmail)).Required().Email(),
		validation.Field("comment", a.Comment).MaxLength(1000),
		validation.Field("documentUrl", a.DocumentURL).URL().MaxLength(500),
	)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
