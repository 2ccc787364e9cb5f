package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	UserRoleActive   = "ACTIVE"
	UserRoleInactive = "INACTIVE"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName string    `gorm:"size:255;not null" json:"first_name"`
	LastName  string    `gorm:"size:255;not null" json:"last_name"`
	UserName  string    `gorm:"size:50;uniqueIndex;not null" json:"user_name"`
	Email     string    `gorm:"size:50;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`

	Roles []*UserRole `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Timestamp
}

type UserRole struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	RoleID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"role_id"`
	ActiveStatus string    `gorm:"size:20;not null" json:"active_status"`
	CreatedAt    time.Time `gorm:"type:timestamp" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamp" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID"`
	Role *Role `gorm:"foreignKey:RoleID"`
}

// ActiveRoleNames returns the names of the roles currently active for the user.
// Roles must be preloaded with their Role.
func (u *User) ActiveRoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, ur := range u.Roles {
		if ur.Role == nil || ur.ActiveStatus != UserRoleActive {
			continue
		}
		names = append(names, ur.Role.Name)
	}
	return names
}
