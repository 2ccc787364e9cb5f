package entities

import "github.com/google/uuid"

type Ingredient struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:255;uniqueIndex;not null" json:"name"`

	Recipes []*RecipeIngredient `gorm:"foreignKey:IngredientID"`
	Timestamp
}
