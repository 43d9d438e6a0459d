package routes

import (
	"ortho-app/config"
	"ortho-app/controllers"
	"ortho-app/middleware"
	"ortho-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupOrderRoutes(app *fiber.App, db *gorm.DB) {
	orderController := controllers.NewOrderController(db)
	reportController := controllers.NewReportController(db)

	api := app.Group(config.MAIN_ROUTES+"/orders",
		middleware.AuthMiddleware(db),
		middleware.RequireRole(db, models.RoleRegistry, models.RoleMed, models.RoleWorkshop))

	api.Get("/export", reportController.ExportOrders)
	api.Post("/", orderController.CreateOrder)
	api.Get("/", orderController.GetAllOrders)
	api.Get("/:id", orderController.GetOrderByID)
	api.Put("/:id", orderController.UpdateOrder)
	api.Patch("/:id/status", orderController.UpdateOrderStatus)
	api.Delete("/:id", orderController.DeleteOrder)
}
