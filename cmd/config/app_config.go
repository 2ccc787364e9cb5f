package config

import (
	"os"
	"time"

	"recipe-api/internal/api/handlers"
	"recipe-api/internal/api/routes"
	"recipe-api/internal/middleware"
	"recipe-api/internal/utils"
	"recipe-api/internal/utils/mailing"
	"recipe-api/internal/utils/storage"
	"recipe-api/pkg/category"
	"recipe-api/pkg/ingredient"
	"recipe-api/pkg/jwt"
	"recipe-api/pkg/recipe"
	"recipe-api/pkg/role"
	"recipe-api/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// Dependencies are the outside services the app talks to. Nil fields are
// built from configuration.
type Dependencies struct {
	JWTService jwt.JWTService
	S3         storage.AwsS3
	Mailer     mailing.Mailer
}

func NewApp(db *gorm.DB) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Errorw("error creating logs directory", "error", err)
		return nil, err
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Errorw("error opening log file", "error", err)
		return nil, err
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	RegisterRoutes(app, db, Dependencies{})
	return app, nil
}

// RegisterRoutes wires repositories, services and handlers onto app.
func RegisterRoutes(app *fiber.App, db *gorm.DB, deps Dependencies) {
	utils.InitValidator()
	validator := utils.Validate
	middlewares := middleware.NewMiddleware()

	// utils
	if deps.JWTService == nil {
		deps.JWTService = jwt.NewJWTService(
			utils.GetConfig("JWT_SECRET"),
			utils.GetConfig("JWT_ISSUER"),
			time.Duration(utils.GetConfigInt("JWT_TTL_MINUTES", 120))*time.Minute,
		)
	}
	if deps.S3 == nil {
		deps.S3 = storage.NewAwsS3()
	}
	if deps.Mailer == nil {
		if mailConfig := mailing.LoadMailConfig(); mailConfig.Configured() {
			deps.Mailer = mailing.NewMailer(mailConfig)
		} else {
			log.Info("SMTP not configured, welcome mails disabled")
		}
	}

	// Repository
	categoryRepository := category.NewCategoryRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	roleRepository := role.NewRoleRepository(db)
	userRepository := user.NewUserRepository(db)

	// Service
	categoryService := category.NewCategoryService(categoryRepository)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, deps.S3)
	roleService := role.NewRoleService(roleRepository)
	userService := user.NewUserService(userRepository, deps.JWTService, deps.Mailer, utils.GetConfig("APP_URL"))

	// Handler
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       handlers.NewUserHandler(userService, validator),
		CategoryHandler:   handlers.NewCategoryHandler(categoryService, validator),
		IngredientHandler: handlers.NewIngredientHandler(ingredientService, validator),
		RecipeHandler:     handlers.NewRecipeHandler(recipeService, validator),
		RoleHandler:       handlers.NewRoleHandler(roleService, validator),
		Middleware:        middlewares,
		JWTService:        deps.JWTService,
	}
	routesConfig.Setup()
}
