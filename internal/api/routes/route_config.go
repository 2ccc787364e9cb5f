package routes

import (
	"recipe-api/domain"
	"recipe-api/internal/api/handlers"
	"recipe-api/internal/middleware"
	"recipe-api/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	CategoryHandler   handlers.CategoryHandler
	IngredientHandler handlers.IngredientHandler
	RecipeHandler     handlers.RecipeHandler
	RoleHandler       handlers.RoleHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Auth()
	c.Categories()
	c.Ingredients()
	c.Recipes()
	c.Roles()
	c.Users()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/auth")
	{
		auth.Post("/register", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/v1/categories")
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	categories.Get("", c.CategoryHandler.GetPage)
	categories.Get("/all", c.CategoryHandler.GetAll)
	categories.Post("/search", c.CategoryHandler.GetPage)
	categories.Get("/:id", c.CategoryHandler.GetByID)
	categories.Post("", auth, c.CategoryHandler.Create)
	categories.Put("/:id", auth, c.CategoryHandler.Update)
	categories.Delete("/:id", auth, c.CategoryHandler.Delete)
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients")
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	ingredients.Get("", c.IngredientHandler.GetPage)
	ingredients.Get("/all", c.IngredientHandler.GetAll)
	ingredients.Post("/search", c.IngredientHandler.GetPage)
	ingredients.Get("/:id", c.IngredientHandler.GetByID)
	ingredients.Post("", auth, c.IngredientHandler.Create)
	ingredients.Post("/create-batch", auth, c.IngredientHandler.CreateBatch)
	ingredients.Put("/:id", auth, c.IngredientHandler.Update)
	ingredients.Delete("/:id", auth, c.IngredientHandler.Delete)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	recipes.Get("", c.RecipeHandler.GetPage)
	recipes.Get("/all", c.RecipeHandler.GetAll)
	recipes.Post("/search", c.RecipeHandler.GetPage)
	recipes.Get("/:id", c.RecipeHandler.GetByID)
	recipes.Post("", auth, c.RecipeHandler.Create)
	recipes.Put("/:id", auth, c.RecipeHandler.Update)
	recipes.Delete("/:id", auth, c.RecipeHandler.Delete)

	// ingredient pairings
	recipes.Post("/:id/ingredients", auth, c.RecipeHandler.AddIngredients)
	recipes.Post("/:id/ingredients/:ingredientId", auth, c.RecipeHandler.AddIngredient)
	recipes.Post("/:id/image", auth, c.RecipeHandler.UploadImage)
}

func (c *Config) Roles() {
	roles := c.App.Group("/api/v1/roles",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RequireRole(domain.RoleAdmin),
	)

	roles.Get("", c.RoleHandler.GetPage)
	roles.Get("/all", c.RoleHandler.GetAll)
	roles.Post("/search", c.RoleHandler.GetPage)
	roles.Get("/:id", c.RoleHandler.GetByID)
	roles.Post("", c.RoleHandler.Create)
	roles.Put("/:id", c.RoleHandler.Update)
	roles.Delete("/:id", c.RoleHandler.Delete)
}

func (c *Config) Users() {
	users := c.App.Group("/api/v1/users",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RequireRole(domain.RoleAdmin),
	)

	users.Get("", c.UserHandler.GetPage)
	users.Get("/all", c.UserHandler.GetAll)
	users.Post("/search", c.UserHandler.GetPage)
	users.Get("/:id", c.UserHandler.GetByID)
	users.Post("", c.UserHandler.Create)
	users.Put("/:id", c.UserHandler.Update)
	users.Delete("/:id", c.UserHandler.Delete)
	users.Post("/:id/roles/:roleId", c.UserHandler.AssignRole)
	users.Delete("/:id/roles/:roleId", c.UserHandler.RevokeRole)
}
