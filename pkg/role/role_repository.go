package role

import (
	"context"

	"recipe-api/entities"
	"recipe-api/pkg/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var Columns = query.Columns{
	"id":          "id",
	"name":        "name",
	"description": "description",
}

var SearchFields = []string{"name", "description"}

type (
	RoleRepository interface {
		Transaction(ctx context.Context, fn func(repo RoleRepository) error) error
		FindAll(ctx context.Context, f query.Filter) ([]*entities.Role, error)
		FindPage(ctx context.Context, f query.Filter, req query.PageRequest) (query.Page[entities.Role], error)
		FindByID(ctx context.Context, id uuid.UUID) (*entities.Role, error)
		FindIDsByName(ctx context.Context, name string) ([]uuid.UUID, error)
		Create(ctx context.Context, role *entities.Role) error
		Update(ctx context.Context, role *entities.Role) error
		Delete(ctx context.Context, id uuid.UUID) error
	}

	roleRepository struct {
		db *gorm.DB
	}
)

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Transaction(ctx context.Context, fn func(repo RoleRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&roleRepository{db: tx})
	})
}

func (r *roleRepository) FindAll(ctx context.Context, f query.Filter) ([]*entities.Role, error) {
	return query.FindAll[entities.Role](r.db.WithContext(ctx).Order("name ASC, id ASC"), f, Columns)
}

func (r *roleRepository) FindPage(ctx context.Context, f query.Filter, req query.PageRequest) (query.Page[entities.Role], error) {
	return query.FindPage[entities.Role](r.db.WithContext(ctx), f, Columns, "id", req)
}

func (r *roleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Role, error) {
	var role entities.Role
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepository) FindIDsByName(ctx context.Context, name string) ([]uuid.UUID, error) {
	return query.IDsWhere[entities.Role](r.db.WithContext(ctx), "name = ?", name)
}

func (r *roleRepository) Create(ctx context.Context, role *entities.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *roleRepository) Update(ctx context.Context, role *entities.Role) error {
	return r.db.WithContext(ctx).Omit("Users").Save(role).Error
}

// Delete revokes the role from every user before removing it.
func (r *roleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("role_id = ?", id).Delete(&entities.UserRole{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&entities.Role{}).Error
}
