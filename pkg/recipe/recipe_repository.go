package recipe

import (
	"context"

	"recipe-api/entities"
	"recipe-api/pkg/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Columns whitelists recipe search and sort fields. "category.name" resolves
// through the recipe's category.
var Columns = query.Columns{
	"id":               "id",
	"title":            "title",
	"description":      "description",
	"preparation_time": "preparation_time",
	"cook_time":        "cook_time",
	"serving":          "serving",
	"created_at":       "created_at",
	"category.name":    "(SELECT categories.name FROM categories WHERE categories.id = recipes.category_id)",
}

var SearchFields = []string{"title", "description"}

var preloads = []string{"Category", "Ingredients.Ingredient"}

type (
	RecipeRepository interface {
		Transaction(ctx context.Context, fn func(repo RecipeRepository) error) error
		FindAll(ctx context.Context, f query.Filter) ([]*entities.Recipe, error)
		FindPage(ctx context.Context, f query.Filter, req query.PageRequest) (query.Page[entities.Recipe], error)
		FindByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error)
		FindIDsByTitle(ctx context.Context, title string) ([]uuid.UUID, error)
		Create(ctx context.Context, recipe *entities.Recipe) error
		Update(ctx context.Context, recipe *entities.Recipe) error
		UpdateImage(ctx context.Context, id uuid.UUID, image string) error
		Delete(ctx context.Context, id uuid.UUID) error

		FindCategoryByID(ctx context.Context, id uuid.UUID) (*entities.Category, error)
		FindIngredientByID(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error)
		UpsertIngredient(ctx context.Context, ri *entities.RecipeIngredient) error
		DeleteIngredients(ctx context.Context, recipeID uuid.UUID) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) Transaction(ctx context.Context, fn func(repo RecipeRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&recipeRepository{db: tx})
	})
}

func (r *recipeRepository) FindAll(ctx context.Context, f query.Filter) ([]*entities.Recipe, error) {
	return query.FindAll[entities.Recipe](r.db.WithContext(ctx).Order("title ASC, id ASC"), f, Columns, preloads...)
}

func (r *recipeRepository) FindPage(ctx context.Context, f query.Filter, req query.PageRequest) (query.Page[entities.Recipe], error) {
	return query.FindPage[entities.Recipe](r.db.WithContext(ctx), f, Columns, "id", req, preloads...)
}

func (r *recipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Recipe, error) {
	var recipe entities.Recipe
	db := r.db.WithContext(ctx)
	for _, p := range preloads {
		db = db.Preload(p)
	}
	if err := db.Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) FindIDsByTitle(ctx context.Context, title string) ([]uuid.UUID, error) {
	return query.IDsWhere[entities.Recipe](r.db.WithContext(ctx), "title = ?", title)
}

func (r *recipeRepository) Create(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(recipe).Error
}

func (r *recipeRepository) Update(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(recipe).Error
}

func (r *recipeRepository) UpdateImage(ctx context.Context, id uuid.UUID, image string) error {
	return r.db.WithContext(ctx).Model(&entities.Recipe{}).Where("id = ?", id).Update("image", image).Error
}

// Delete removes the recipe and the ingredient pairings it owns.
func (r *recipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.DeleteIngredients(ctx, id); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}

func (r *recipeRepository) FindCategoryByID(ctx context.Context, id uuid.UUID) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *recipeRepository) FindIngredientByID(ctx context.Context, id uuid.UUID) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// UpsertIngredient inserts the pairing or overwrites the amount of an existing one.
func (r *recipeRepository) UpsertIngredient(ctx context.Context, ri *entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "recipe_id"}, {Name: "ingredient_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"amount"}),
		}).
		Create(ri).Error
}

func (r *recipeRepository) DeleteIngredients(ctx context.Context, recipeID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).Delete(&entities.RecipeIngredient{}).Error
}
