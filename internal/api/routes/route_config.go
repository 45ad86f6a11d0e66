package routes

import (
	"Recipeat/internal/api/handlers"
	"Recipeat/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App           *fiber.App
	RecipeHandler handlers.RecipeHandler
	ScreenHandler handlers.ScreenHandler
	Middleware    middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.RecoverMiddleware())
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Recipes()
	c.Screens()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
}

func (c *Config) Screens() {
	screens := c.App.Group("/api/v1/screens")
	screens.Post("", c.ScreenHandler.OpenScreen)
	screens.Get("/:id", c.ScreenHandler.GetScreen)
	screens.Delete("/:id", c.ScreenHandler.CloseScreen)

	// Collection-level operations
	screens.Post("/:id/collections/:name/viewport", c.ScreenHandler.UpdateViewport)
	screens.Post("/:id/collections/:name/add", c.ScreenHandler.AddToCollection)
}
