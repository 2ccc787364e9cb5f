package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title           string     `gorm:"size:255;uniqueIndex;not null" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	Image           string     `json:"image,omitempty"`
	PreparationTime float64    `gorm:"not null;default:0" json:"preparation_time"`
	CookTime        float64    `gorm:"not null;default:0" json:"cook_time"`
	Serving         int        `gorm:"not null;default:0" json:"serving"`
	CategoryID      *uuid.UUID `gorm:"type:uuid;index" json:"category_id,omitempty"`

	Category    *Category           `gorm:"foreignKey:CategoryID"`
	Ingredients []*RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
	Timestamp
}

// RecipeIngredient is the (recipe, ingredient) association row. The pair is the
// primary key, so writing the same pair again replaces the amount.
type RecipeIngredient struct {
	RecipeID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"recipe_id"`
	IngredientID uuid.UUID `gorm:"type:uuid;primaryKey" json:"ingredient_id"`
	Amount       string    `gorm:"size:255;not null" json:"amount"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}
