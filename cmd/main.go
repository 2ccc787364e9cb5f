package main

import (
	"os"

	"recipe-api/cmd/config"
	migration "recipe-api/cmd/database/migrate"
	"recipe-api/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		os.Exit(1)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}
	if err := migration.Seed(db, migration.SeedConfig{
		AdminUserName: utils.GetConfig("ADMIN_USERNAME"),
		AdminEmail:    utils.GetConfig("ADMIN_EMAIL"),
		AdminPassword: utils.GetConfig("ADMIN_PASSWORD"),
	}); err != nil {
		log.Fatalf("error seeding database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
