package user

import (
	"context"

	"recipe-api/entities"
	"recipe-api/pkg/query"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var Columns = query.Columns{
	"id":         "id",
	"first_name": "first_name",
	"last_name":  "last_name",
	"user_name":  "user_name",
	"email":      "email",
}

var SearchFields = []string{"first_name", "last_name", "user_name", "email"}

const rolePreload = "Roles.Role"

type (
	UserRepository interface {
		Transaction(ctx context.Context, fn func(repo UserRepository) error) error
		FindAll(ctx context.Context, f query.Filter) ([]*entities.User, error)
		FindPage(ctx context.Context, f query.Filter, req query.PageRequest) (query.Page[entities.User], error)
		FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
		FindByUserName(ctx context.Context, userName string) (*entities.User, error)
		FindIDsByUserNameOrEmail(ctx context.Context, userName, email string) ([]uuid.UUID, error)
		Create(ctx context.Context, user *entities.User) error
		Update(ctx context.Context, user *entities.User) error
		Delete(ctx context.Context, id uuid.UUID) error

		FindRoleByID(ctx context.Context, id uuid.UUID) (*entities.Role, error)
		FindRoleByName(ctx context.Context, name string) (*entities.Role, error)
		FindUserRole(ctx context.Context, userID, roleID uuid.UUID) (*entities.UserRole, error)
		CreateUserRole(ctx context.Context, userRole *entities.UserRole) error
		SaveUserRole(ctx context.Context, userRole *entities.UserRole) error
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Transaction(ctx context.Context, fn func(repo UserRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&userRepository{db: tx})
	})
}

func (r *userRepository) FindAll(ctx context.Context, f query.Filter) ([]*entities.User, error) {
	return query.FindAll[entities.User](r.db.WithContext(ctx).Order("user_name ASC, id ASC"), f, Columns, rolePreload)
}

func (r *userRepository) FindPage(ctx context.Context, f query.Filter, req query.PageRequest) (query.Page[entities.User], error) {
	return query.FindPage[entities.User](r.db.WithContext(ctx), f, Columns, "id", req, rolePreload)
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Preload(rolePreload).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByUserName(ctx context.Context, userName string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Preload(rolePreload).Where("user_name = ?", userName).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindIDsByUserNameOrEmail(ctx context.Context, userName, email string) ([]uuid.UUID, error) {
	return query.IDsWhere[entities.User](r.db.WithContext(ctx), "user_name = ? OR email = ?", userName, email)
}

func (r *userRepository) Create(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error
}

func (r *userRepository) Update(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(user).Error
}

// Delete removes the user and its role assignments.
func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("user_id = ?", id).Delete(&entities.UserRole{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", id).Delete(&entities.User{}).Error
}

func (r *userRepository) FindRoleByID(ctx context.Context, id uuid.UUID) (*entities.Role, error) {
	var role entities.Role
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *userRepository) FindRoleByName(ctx context.Context, name string) (*entities.Role, error) {
	var role entities.Role
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *userRepository) FindUserRole(ctx context.Context, userID, roleID uuid.UUID) (*entities.UserRole, error) {
	var userRole entities.UserRole
	if err := r.db.WithContext(ctx).Where("user_id = ? AND role_id = ?", userID, roleID).First(&userRole).Error; err != nil {
		return nil, err
	}
	return &userRole, nil
}

func (r *userRepository) CreateUserRole(ctx context.Context, userRole *entities.UserRole) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(userRole).Error
}

func (r *userRepository) SaveUserRole(ctx context.Context, userRole *entities.UserRole) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(userRole).Error
}
