package landscape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSystem(t *testing.T) {
	s := NewSystem(" ERP Core ", " Central ERP instance ", " APP-001 ")

	assert.Equal(t, "ERP Core", s.Name)
	assert.Equal(t, "Central ERP instance", s.Description)
	assert.Equal(t, "APP-001", s.ApplicationID)
	assert.Nil(t, s.ResponsibleEmail)
	assert.Equal(t, 0, s.UserCount)
	assert.NoError(t, s.Validate())
}

func TestSystem_ChangeResponsible(t *testing.T) {
	s := NewSystem("ERP Core", "", "APP-001")

	s.ChangeResponsible(" Ops@Example.COM ")
	require.NotNil(t, s.ResponsibleEmail)
	assert.Equal(t, "ops@example.com", *s.ResponsibleEmail)

	s.ChangeResponsible("   ")
	assert.Nil(t, s.ResponsibleEmail)
}

func TestSystem_SetUserCount(t *testing.T) {
	s := NewSystem("ERP Core", "", "APP-001")

	s.SetUserCount(42)
	assert.Equal(t, 42, s.UserCount)
	assert.NoError(t, s.Validate())

	s.SetUserCount(-1)
	assert.Error(t, s.Validate())
}

func TestSystem_Validate(t *testing.T) {
	t.Run("aggregates violations", func(t *testing.T) {
		s := NewSystem("", "", "")
		bad := "nope"
		s.ResponsibleEmail = &bad

		err := s.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name must not be blank")
		assert.Contains(t, err.Error(), "applicationId must not be blank")
		assert.Contains(t, err.Error(), "responsibleEmail must be a valid email address")
	})
}
