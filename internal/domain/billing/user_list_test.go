package billing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItems() []UserListItem {
	return []UserListItem{
		NewUserListItem(" Ada Lovelace ", "Ada@Example.COM", "u-001", "Engineering", "CC-100"),
		NewUserListItem("Grace Hopper", "grace@example.com", "u-002", "Engineering", "CC-100"),
	}
}

func TestNewUserList(t *testing.T) {
	t.Run("derives users number and assigns list id to items", func(t *testing.T) {
		serviceID := uuid.New()
		list := NewUserList(serviceID, newTestItems())

		assert.NotEqual(t, uuid.Nil, list.ID)
		assert.Equal(t, serviceID, list.ServiceID)
		assert.Equal(t, 2, list.UsersNumber)
		for _, item := range list.Items {
			assert.Equal(t, list.ID, item.ListID)
		}
		assert.NoError(t, list.Validate())
	})

	t.Run("every snapshot gets a fresh identity", func(t *testing.T) {
		serviceID := uuid.New()
		items := newTestItems()

		first := NewUserList(serviceID, items)
		second := NewUserList(serviceID, items)

		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("empty snapshot is valid", func(t *testing.T) {
		list := NewUserList(uuid.New(), nil)
		assert.Equal(t, 0, list.UsersNumber)
		assert.NoError(t, list.Validate())
	})
}

func TestNewUserListItem(t *testing.T) {
	item := NewUserListItem(" Ada Lovelace ", " Ada@Example.COM ", " u-001 ", " Engineering ", " CC-100 ")

	assert.NotEqual(t, uuid.Nil, item.ID)
	assert.Equal(t, uuid.Nil, item.ListID)
	assert.Equal(t, "Ada Lovelace", item.Name)
	assert.Equal(t, "ada@example.com", item.Email)
	assert.Equal(t, "u-001", item.ExternalUserID)
	assert.Equal(t, "Engineering", item.Area)
	assert.Equal(t, "CC-100", item.CostCenter)
}

func TestUserList_Validate(t *testing.T) {
	t.Run("prefixes item violations with their index", func(t *testing.T) {
		items := newTestItems()
		items[1].Email = "not-an-email"
		items[1].Name = ""
		list := NewUserList(uuid.New(), items)

		err := list.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "items[1].name must not be blank")
		assert.Contains(t, err.Error(), "items[1].email must be a valid email address")
		assert.NotContains(t, err.Error(), "items[0]")
	})

	t.Run("requires a service reference", func(t *testing.T) {
		list := NewUserList(uuid.Nil, newTestItems())

		err := list.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "serviceId is required")
	})
}
