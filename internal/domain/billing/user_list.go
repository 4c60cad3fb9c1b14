package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/agreements/backend/internal/domain/shared"
	"github.com/agreements/backend/internal/domain/validation"
	"github.com/google/uuid"
)

// UserList is the headcount snapshot attached 1:1 to a service. A save is a
// full snapshot replacement: every factory call generates a fresh list id,
// and persisting it discards whatever snapshot the service had before. List
// identity is deliberately not preserved across saves; that removes all
// diff/merge logic for a low-churn entity.
type UserList struct {
	shared.BaseEntity
	ServiceID   uuid.UUID
	UsersNumber int
	Items       []UserListItem
}

// UserListItem is one user row inside a snapshot
type UserListItem struct {
	ID             uuid.UUID
	ListID         uuid.UUID
	Name           string
	Email          string
	ExternalUserID string
	Area           string
	CostCenter     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// NewUserListItem creates a snapshot row. The list id is assigned when the
// item is attached to a list.
func NewUserListItem(name, email, externalUserID, area, costCenter string) UserListItem {
	now := time.Now()
	return UserListItem{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(name),
		Email:          normalizeEmail(email),
		ExternalUserID: strings.TrimSpace(externalUserID),
		Area:           strings.TrimSpace(area),
		CostCenter:     strings.TrimSpace(costCenter),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// NewUserList creates a snapshot for the given service with a fresh list id,
// even if the content matches a previously saved snapshot. UsersNumber is
// derived from the item count.
func NewUserList(serviceID uuid.UUID, items []UserListItem) *UserList {
	list := &UserList{
		BaseEntity:  shared.NewBaseEntity(),
		ServiceID:   serviceID,
		UsersNumber: len(items),
		Items:       make([]UserListItem, len(items)),
	}
	for i, item := range items {
		item.ListID = list.ID
		list.Items[i] = item
	}
	return list
}

// Validate checks the snapshot's current state against its field rules
func (l *UserList) Validate() error {
	rules := []*validation.FieldRule{
		validation.Field("serviceId", validation.ID(l.ServiceID)).Required().UUID(),
		validation.Int("usersNumber", l.UsersNumber).Required().Min(0),
	}
	for i, item := range l.Items {
		prefix := fmt.Sprintf("items[%d]", i)
		rules = append(rules,
			validation.Field(prefix+".name", validation.String(item.Name)).Required().MaxLength(120),
			validation.Field(prefix+".email", validation.String(item.Email)).Required().Email(),
			validation.Field(prefix+".externalUserId", validation.String(item.ExternalUserID)).MaxLength(60),
			validation.Field(prefix+".area", validation.String(item.Area)).MaxLength(120),
			validation.Field(prefix+".costCenter", validation.String(item.CostCenter)).MaxLength(60),
		)
	}
	return validation.Validate(rules...)
}
