package config

import (
	"Recipeat/internal/api/handlers"
	"Recipeat/internal/api/routes"
	"Recipeat/internal/middleware"
	"Recipeat/internal/utils"
	"Recipeat/internal/utils/storage"
	"Recipeat/pkg/recipe"
	"Recipeat/pkg/screen"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// NewApp wires the HTTP application. A nil db serves the built-in sample
// catalog instead of the recipes table.
func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	maxPerSecond, err := strconv.Atoi(utils.GetConfig("RATE_LIMIT_PER_SECOND"))
	if err != nil {
		return nil, err
	}
	app.Use(limiter.New(limiter.Config{
		Max:        maxPerSecond,
		Expiration: 1 * time.Second,
	}))

	// utils
	images := storage.NewAwsS3()

	// Repository
	var recipeRepository recipe.RecipeRepository
	source := recipe.NewStaticSource()
	if db != nil {
		recipeRepository = recipe.NewRecipeRepository(db)
		source = recipe.NewRepositorySource(recipeRepository)
	}
	log.Infof("serving recipes from %s source", utils.GetConfig("DATA_SOURCE"))

	// Service
	recipeService := recipe.NewRecipeService(source, recipeRepository)
	screenService := screen.NewScreenService(recipeService, images, sessionTTL())

	// Handler
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	screenHandler := handlers.NewScreenHandler(screenService, validator)

	// routes
	routesConfig := routes.Config{
		App:           app,
		RecipeHandler: recipeHandler,
		ScreenHandler: screenHandler,
		Middleware:    middlewares,
	}
	routesConfig.Setup()
	return app, nil
}

// sessionTTL reads SCREEN_SESSION_TTL_MINUTES; zero lets the screen service
// apply its default.
func sessionTTL() time.Duration {
	minutes, err := strconv.Atoi(utils.GetConfig("SCREEN_SESSION_TTL_MINUTES"))
	if err != nil || minutes <= 0 {
		return 0
	}
	return time.Duration(minutes) * time.Minute
}
