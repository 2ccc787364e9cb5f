package migration

import (
	"errors"
	"time"

	"recipe-api/domain"
	"recipe-api/entities"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SeedConfig struct {
	AdminUserName string
	AdminEmail    string
	AdminPassword string
}

// Seed creates the ADMIN and USER roles and, when credentials are configured,
// an admin user holding the ADMIN role. Existing rows are left untouched.
func Seed(db *gorm.DB, cfg SeedConfig) error {
	return db.Transaction(func(tx *gorm.DB) error {
		admin, err := ensureRole(tx, domain.RoleAdmin, "Full access to every resource")
		if err != nil {
			return err
		}
		if _, err := ensureRole(tx, domain.RoleUser, "Registered user"); err != nil {
			return err
		}

		if cfg.AdminUserName == "" || cfg.AdminPassword == "" {
			return nil
		}

		var user entities.User
		err = tx.Where("user_name = ?", cfg.AdminUserName).First(&user).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user = entities.User{
			ID:        uuid.New(),
			FirstName: "Admin",
			LastName:  "Admin",
			UserName:  cfg.AdminUserName,
			Email:     cfg.AdminEmail,
			Password:  string(hash),
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		now := time.Now()
		log.Infow("seeded admin user", "user_name", user.UserName)
		return tx.Create(&entities.UserRole{
			UserID:       user.ID,
			RoleID:       admin.ID,
			ActiveStatus: entities.UserRoleActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}).Error
	})
}

func ensureRole(tx *gorm.DB, name, description string) (*entities.Role, error) {
	var role entities.Role
	err := tx.Where("name = ?", name).First(&role).Error
	if err == nil {
		return &role, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role = entities.Role{ID: uuid.New(), Name: name, Description: description}
	if err := tx.Create(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}
