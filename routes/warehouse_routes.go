package routes

import (
	"ortho-app/config"
	"ortho-app/controllers"
	"ortho-app/middleware"
	"ortho-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupWarehouseRoutes(app *fiber.App, db *gorm.DB) {
	warehouseController := controllers.NewWarehouseController(db)
	issueController := controllers.NewIssueController(db)
	reportController := controllers.NewReportController(db)

	entries := app.Group(config.MAIN_ROUTES+"/warehouse/entries",
		middleware.AuthMiddleware(db),
		middleware.RequireRole(db, models.RoleWarehouse))

	entries.Get("/export", reportController.ExportWarehouse)
	entries.Post("/", warehouseController.CreateEntry)
	entries.Get("/", warehouseController.GetAllEntries)
	entries.Get("/:id", warehouseController.GetEntryByID)
	entries.Patch("/:id/reserve", warehouseController.ReserveEntry)

	issues := app.Group(config.MAIN_ROUTES+"/warehouse/issues",
		middleware.AuthMiddleware(db),
		middleware.RequireRole(db, models.RoleWarehouse))

	issues.Post("/", issueController.CreateIssue)
	issues.Get("/", issueController.GetAllIssues)
	issues.Get("/:id", issueController.GetIssueByID)
}
