package routes

import (
	"ortho-app/config"
	"ortho-app/controllers"
	"ortho-app/middleware"
	"ortho-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupInvoiceRoutes(app *fiber.App, db *gorm.DB) {
	invoiceController := controllers.NewInvoiceController(db)

	api := app.Group(config.MAIN_ROUTES+"/invoices",
		middleware.AuthMiddleware(db),
		middleware.RequireRole(db, models.RoleWorkshop, models.RoleWarehouse))

	api.Post("/", invoiceController.CreateInvoice)
	api.Get("/", invoiceController.GetAllInvoices)
	api.Get("/:id", invoiceController.GetInvoiceByID)
}
