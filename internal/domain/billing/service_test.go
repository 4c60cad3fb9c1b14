package billing

import (
	"testing"

	"github.com/agreements/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	s := NewService(
		uuid.New(),
		"Application Hosting",
		"Hosting and operations",
		valueobject.EUR,
		decimal.RequireFromString("80.00"),
		decimal.RequireFromString("20.00"),
	)
	s.ChangeResponsible("Hosting@Example.com ")
	return s
}

func percent(s string) valueobject.Percent {
	return valueobject.NewPercent(decimal.RequireFromString(s))
}

func TestNewService(t *testing.T) {
	s := newTestService()

	assert.NotEqual(t, uuid.Nil, s.ID)
	assert.Equal(t, "100.00", s.Amount.StringFixed(2))
	assert.Equal(t, ValidationStatusPending, s.Status)
	assert.False(t, s.IsActive)
	assert.Equal(t, "hosting@example.com", s.ResponsibleEmail)
	assert.Empty(t, s.Allocations)
	assert.NoError(t, s.Validate())
}

func TestService_AddAllocation(t *testing.T) {
	t.Run("derives allocation amounts with banker's rounding", func(t *testing.T) {
		s := newTestService()
		systemID := uuid.New()

		entry := s.AddAllocation(systemID, percent("33.333333"))

		require.Len(t, s.Allocations, 1)
		assert.Equal(t, s.ID, entry.ServiceID)
		assert.Equal(t, systemID, entry.SystemID)
		// 33.333333% of 100.00 rounds to 33.33, of 80.00 to 26.67, of 20.00 to 6.67
		assert.Equal(t, "33.33", entry.Amount.StringFixed(2))
		assert.Equal(t, "26.67", entry.RunAmount.StringFixed(2))
		assert.Equal(t, "6.67", entry.ChgAmount.StringFixed(2))
		assert.Equal(t, valueobject.EUR, entry.Currency)
	})

	t.Run("does not cap the running total", func(t *testing.T) {
		s := newTestService()
		s.AddAllocation(uuid.New(), percent("80"))
		s.AddAllocation(uuid.New(), percent("80"))

		assert.Equal(t, "160.000000", s.AllocationCoverage().String())
	})
}

func TestService_RecalculateActivation(t *testing.T) {
	t.Run("inactive without allocations", func(t *testing.T) {
		s := newTestService()
		s.RecalculateActivation()
		assert.False(t, s.IsActive)
	})

	t.Run("active only at exactly full coverage", func(t *testing.T) {
		s := newTestService()
		s.AddAllocation(uuid.New(), percent("66.666667"))
		s.AddAllocation(uuid.New(), percent("33.333333"))
		s.RecalculateActivation()
		assert.True(t, s.IsActive)
	})

	t.Run("inactive at partial coverage", func(t *testing.T) {
		s := newTestService()
		s.AddAllocation(uuid.New(), percent("99.999999"))
		s.RecalculateActivation()
		assert.False(t, s.IsActive)
	})

	t.Run("inactive when over-allocated", func(t *testing.T) {
		s := newTestService()
		s.AddAllocation(uuid.New(), percent("60"))
		s.AddAllocation(uuid.New(), percent("60"))
		s.RecalculateActivation()
		assert.False(t, s.IsActive)
	})

	t.Run("clearing allocations deactivates", func(t *testing.T) {
		s := newTestService()
		s.AddAllocation(uuid.New(), percent("100"))
		s.RecalculateActivation()
		require.True(t, s.IsActive)

		s.ClearAllocations()
		s.RecalculateActivation()
		assert.False(t, s.IsActive)
	})
}

func TestService_ChangeAmounts(t *testing.T) {
	t.Run("re-derives every allocation", func(t *testing.T) {
		s := newTestService()
		s.AddAllocation(uuid.New(), percent("50"))

		s.ChangeAmounts(decimal.RequireFromString("200.00"), decimal.RequireFromString("100.00"))

		assert.Equal(t, "300.00", s.Amount.StringFixed(2))
		require.Len(t, s.Allocations, 1)
		assert.Equal(t, "150.00", s.Allocations[0].Amount.StringFixed(2))
		assert.Equal(t, "100.00", s.Allocations[0].RunAmount.StringFixed(2))
		assert.Equal(t, "50.00", s.Allocations[0].ChgAmount.StringFixed(2))
	})
}

func TestService_ChangeCurrency(t *testing.T) {
	t.Run("relabels parent and children without conversion", func(t *testing.T) {
		s := newTestService()
		s.AddAllocation(uuid.New(), percent("100"))

		s.ChangeCurrency(valueobject.USD)

		assert.Equal(t, valueobject.USD, s.Currency)
		assert.Equal(t, "100.00", s.Amount.StringFixed(2))
		assert.Equal(t, valueobject.USD, s.Amount.Currency())
		require.Len(t, s.Allocations, 1)
		assert.Equal(t, valueobject.USD, s.Allocations[0].Currency)
		assert.Equal(t, "100.00", s.Allocations[0].Amount.StringFixed(2))
	})
}

func TestService_Review(t *testing.T) {
	s := newTestService()

	s.MarkValidated(" Reviewer@Example.com")
	assert.Equal(t, ValidationStatusValidated, s.Status)
	assert.Equal(t, "reviewer@example.com", s.ValidatorEmail)

	s.MarkRejected("other@example.com")
	assert.Equal(t, ValidationStatusRejected, s.Status)
	assert.Equal(t, "other@example.com", s.ValidatorEmail)
}

func TestService_Validate(t *testing.T) {
	t.Run("aggregates violations across fields and allocations", func(t *testing.T) {
		s := newTestService()
		s.Name = ""
		s.ResponsibleEmail = "nope"
		s.Allocations = []ServiceSystem{{ID: uuid.New(), ServiceID: s.ID, SystemID: uuid.Nil, Allocation: percent("10")}}

		err := s.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name must not be blank")
		assert.Contains(t, err.Error(), "responsibleEmail must be a valid email address")
		assert.Contains(t, err.Error(), "allocations[0].systemId is required")
	})

	t.Run("rejects unsupported currency", func(t *testing.T) {
		s := newTestService()
		s.Currency = valueobject.Currency("GBP")

		err := s.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "currency must be one of: EUR, USD")
	})
}

func TestValidationStatus_IsValid(t *testing.T) {
	assert.True(t, ValidationStatusPending.IsValid())
	assert.True(t, ValidationStatusValidated.IsValid())
	assert.True(t, ValidationStatusRejected.IsValid())
	assert.False(t, ValidationStatus("draft").IsValid())
}
