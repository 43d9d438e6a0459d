package main

import (
	"fmt"
	"log"

	"ortho-app/config"
	"ortho-app/controllers/idgen"
	"ortho-app/database"
	"ortho-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()

	app := fiber.New()

	db, err := database.Open()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, db)
	routes.SetupCaseRoutes(app, db)
	routes.SetupOrderRoutes(app, db)
	routes.SetupInvoiceRoutes(app, db)
	routes.SetupWarehouseRoutes(app, db)
	routes.SetupDictionaryRoutes(app, db)
	routes.SetupUserRoutes(app, db)

	port := config.APP_PORT
	fmt.Println("Server listening on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
