package main

import (
	"Recipeat/cmd/config"
	migration "Recipeat/cmd/database/migrate"
	"Recipeat/cmd/database/seed"
	"Recipeat/internal/utils"
	"context"
	"flag"
	"fmt"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func main() {
	migrate := flag.Bool("migrate", false, "run database migrations before starting")
	seedDB := flag.Bool("seed", false, "seed the recipes table with the sample catalog")
	serve := flag.Bool("serve", true, "start the HTTP server")
	flag.Parse()

	utils.LoadConfig()

	var db *gorm.DB
	if *migrate || *seedDB || utils.GetConfig("DATA_SOURCE") == "database" {
		var err error
		db, err = config.ConnectDB()
		if err != nil {
			log.Fatalf("failed to connect database: %v", err)
		}
	}

	if *migrate {
		if err := migration.Migrate(db); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
	}
	if *seedDB {
		if err := seed.Seed(context.Background(), db); err != nil {
			log.Fatalf("failed to seed database: %v", err)
		}
	}
	if !*serve {
		return
	}

	var source *gorm.DB
	if utils.GetConfig("DATA_SOURCE") == "database" {
		source = db
	}
	app, err := config.NewApp(source)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	if err := app.Listen(fmt.Sprintf(":%s", utils.GetConfig("APP_PORT"))); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
