package category

import (
	"context"

	"recipe-api/entities"
	"recipe-api/pkg/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Columns whitelists the fields categories can be searched and sorted on.
var Columns = query.Columns{
	"id":          "id",
	"name":        "name",
	"description": "description",
}

var SearchFields = []string{"name", "description"}

type (
	CategoryRepository interface {
		Transaction(ctx context.Context, fn func(repo CategoryRepository) error) error
		FindAll(ctx context.Context, f query.Filter) ([]*entities.Category, error)
		FindPage(ctx context.Context, f query.Filter, req query.PageRequest) (query.Page[entities.Category], error)
		FindByID(ctx context.Context, id uuid.UUID) (*entities.Category, error)
		FindIDsByName(ctx context.Context, name string) ([]uuid.UUID, error)
		Create(ctx context.Context, category *entities.Category) error
		Update(ctx context.Context, category *entities.Category) error
		Delete(ctx context.Context, id uuid.UUID) error
	}

	categoryRepository struct {
		db *gorm.DB
	}
)

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Transaction(ctx context.Context, fn func(repo CategoryRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&categoryRepository{db: tx})
	})
}

func (r *categoryRepository) FindAll(ctx context.Context, f query.Filter) ([]*entities.Category, error) {
	return query.FindAll[entities.Category](r.db.WithContext(ctx).Order("name ASC, id ASC"), f, Columns)
}

func (r *categoryRepository) FindPage(ctx context.Context, f query.Filter, req query.PageRequest) (query.Page[entities.Category], error) {
	return query.FindPage[entities.Category](r.db.WithContext(ctx), f, Columns, "id", req)
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Category, error) {
	var category entities.Category
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindIDsByName(ctx context.Context, name string) ([]uuid.UUID, error) {
	return query.IDsWhere[entities.Category](r.db.WithContext(ctx), "name = ?", name)
}

func (r *categoryRepository) Create(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepository) Update(ctx context.Context, category *entities.Category) error {
	return r.db.WithContext(ctx).Omit("Recipes").Save(category).Error
}

// Delete detaches the category from its recipes before removing it.
func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Model(&entities.Recipe{}).Where("category_id = ?", id).Update("category_id", nil).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&entities.Category{}).Error
}
