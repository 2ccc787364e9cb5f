package entities

import "github.com/google/uuid"

type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"size:500" json:"description"`

	Users []*UserRole `gorm:"foreignKey:RoleID"`
	Timestamp
}
