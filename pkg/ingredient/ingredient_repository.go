package ingredient

import (
	"context"

	"recipe-api/entities"
	"recipe-api/pkg/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var Columns = query.Columns{
	"id":   "id",
	"name": "name",
}

var SearchFields = []string{"name"}

type (
	IngredientRepository interface {
		Transaction(ctx context.Context, fn func(repo IngredientRepository) error) error
		FindAll(ctx context.Context, f query.Filter) ([]*entities.Ingredient, error)
		FindPage(ctx context.Context, f query.Filter, req query.PageRequest) (query.Page[entities.Ingredient], error)
		FindByID(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error)
		FindIDsByName(ctx context.Context, name string) ([]uuid.UUID, error)
		Create(ctx context.Context, ingredient *entities.Ingredient) error
		Update(ctx context.Context, ingredient *entities.Ingredient) error
		Delete(ctx context.Context, id uuid.UUID) error
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) Transaction(ctx context.Context, fn func(repo IngredientRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ingredientRepository{db: tx})
	})
}

func (r *ingredientRepository) FindAll(ctx context.Context, f query.Filter) ([]*entities.Ingredient, error) {
	return query.FindAll[entities.Ingredient](r.db.WithContext(ctx).Order("name ASC, id ASC"), f, Columns)
}

func (r *ingredientRepository) FindPage(ctx context.Context, f query.Filter, req query.PageRequest) (query.Page[entities.Ingredient], error) {
	return query.FindPage[entities.Ingredient](r.db.WithContext(ctx), f, Columns, "id", req)
}

func (r *ingredientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) FindIDsByName(ctx context.Context, name string) ([]uuid.UUID, error) {
	return query.IDsWhere[entities.Ingredient](r.db.WithContext(ctx), "name = ?", name)
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) Update(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Omit("Recipes").Save(ingredient).Error
}

// Delete removes the ingredient together with every recipe pairing that uses it.
func (r *ingredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("ingredient_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&entities.Ingredient{}).Error
}
