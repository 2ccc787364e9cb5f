package entities

import "github.com/google/uuid"

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:500;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"size:500" json:"description"`

	Recipes []*Recipe `gorm:"foreignKey:CategoryID"`
	Timestamp
}
