package migration

import (
	"recipe-api/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

// Models lists every persisted entity in dependency order.
func Models() []any {
	return []any{
		&entities.Category{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.Role{},
		&entities.User{},
		&entities.UserRole{},
	}
}

func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	}

	for _, model := range Models() {
		if err := db.AutoMigrate(model); err != nil {
			log.Errorw("error migrating database", "model", model, "error", err)
			return err
		}
	}

	log.Info("Database migration complete")
	return nil
}
