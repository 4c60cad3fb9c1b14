package contract

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAgreement() *Agreement {
	return NewAgreement(
		2026,
		"AGR-0001",
		time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		uuid.New(),
		uuid.New(),
		"Managed Hosting",
		"Hosting and operations",
		"Contracts@Example.COM ",
	)
}

func TestNewAgreement(t *testing.T) {
	t.Run("creates first revision with normalized fields", func(t *testing.T) {
		a := newTestAgreement()

		assert.NotEqual(t, uuid.Nil, a.ID)
		assert.Equal(t, 1, a.Revision)
		assert.False(t, a.IsRevised)
		assert.Equal(t, "contracts@example.com", a.ContactEmail)
		assert.NoError(t, a.Validate())
	})

	t.Run("construction never validates", func(t *testing.T) {
		a := NewAgreement(0, "", time.Time{}, uuid.Nil, uuid.Nil, "", "", "")
		assert.NotNil(t, a)
		assert.Error(t, a.Validate())
	})
}

func TestAgreement_Mutators(t *testing.T) {
	a := newTestAgreement()

	a.Rename("  Renamed Agreement  ")
	assert.Equal(t, "Renamed Agreement", a.Name)

	a.ChangeContactEmail(" New.Contact@Example.com")
	assert.Equal(t, "new.contact@example.com", a.ContactEmail)

	comment := "negotiated in Q1"
	a.SetComment(&comment)
	require.NotNil(t, a.Comment)
	assert.Equal(t, "negotiated in Q1", *a.Comment)

	a.SetComment(nil)
	assert.Nil(t, a.Comment)

	a.AttachDocument("https://docs.example.com/agr-0001.pdf")
	require.NotNil(t, a.DocumentURL)
	assert.NoError(t, a.Validate())
}

func TestAgreement_Revise(t *testing.T) {
	t.Run("produces next revision and flags the old one", func(t *testing.T) {
		a := newTestAgreement()
		revisionDate := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

		next := a.Revise(revisionDate)

		assert.True(t, a.IsRevised)
		assert.False(t, next.IsRevised)
		assert.NotEqual(t, a.ID, next.ID)
		assert.Equal(t, a.Revision+1, next.Revision)
		assert.Equal(t, revisionDate, next.RevisionDate)
		assert.Equal(t, a.Code, next.Code)
		assert.Equal(t, a.Year, next.Year)
		assert.Equal(t, a.ProviderPlanID, next.ProviderPlanID)
		assert.Equal(t, a.LocalPlanID, next.LocalPlanID)
		assert.Equal(t, a.ContactEmail, next.ContactEmail)
		assert.NoError(t, next.Validate())
	})

	t.Run("revisions chain", func(t *testing.T) {
		a := newTestAgreement()
		second := a.Revise(time.Now())
		third := second.Revise(time.Now())

		assert.Equal(t, 3, third.Revision)
		assert.True(t, second.IsRevised)
		assert.False(t, third.IsRevised)
	})
}

func TestAgreement_Validate(t *testing.T) {
	t.Run("aggregates every violation", func(t *testing.T) {
		a := newTestAgreement()
		a.Year = 1900
		a.Name = ""
		a.ContactEmail = "nope"

		err := a.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "year must be at least 1990")
		assert.Contains(t, err.Error(), "name must not be blank")
		assert.Contains(t, err.Error(), "contactEmail must be a valid email address")
	})

	t.Run("rejects malformed optional document url", func(t *testing.T) {
		a := newTestAgreement()
		a.AttachDocument("not-a-url")
		assert.Error(t, a.Validate())
	})

	t.Run("rejects missing plan references", func(t *testing.T) {
		a := newTestAgreement()
		a.ProviderPlanID = uuid.Nil

		err := a.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "providerPlanId is required")
	})
}

func TestPlan(t *testing.T) {
	t.Run("creates valid plan", func(t *testing.T) {
		p := NewPlan(2026, " Provider Plan 2026 ", PlanScopeProvider, "yearly budget")
		assert.Equal(t, "Provider Plan 2026", p.Name)
		assert.NoError(t, p.Validate())
	})

	t.Run("rejects unknown scope", func(t *testing.T) {
		p := NewPlan(2026, "Plan", PlanScope("global"), "")
		err := p.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "scope must be one of: provider, local")
		assert.False(t, PlanScope("global").IsValid())
		assert.True(t, PlanScopeLocal.IsValid())
	})
}
