package routes

import (
	"ortho-app/config"
	"ortho-app/controllers"
	"ortho-app/middleware"
	"ortho-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDictionaryRoutes(app *fiber.App, db *gorm.DB) {
	dictionaryController := controllers.NewDictionaryController(db)

	// Reads are open to any authenticated user; writes are admin-only.
	read := app.Group(config.MAIN_ROUTES+"/dictionaries", middleware.AuthMiddleware(db))
	read.Get("/tsr-categories", dictionaryController.GetTSRCategories)
	read.Get("/workshops", dictionaryController.GetWorkshops)
	read.Get("/order-statuses", dictionaryController.GetOrderStatuses)

	write := app.Group(config.MAIN_ROUTES+"/dictionaries",
		middleware.AuthMiddleware(db),
		middleware.RequireRole(db, models.RoleAdmin))
	write.Post("/tsr-categories", dictionaryController.CreateTSRCategory)
	write.Put("/tsr-categories/:id", dictionaryController.UpdateTSRCategory)
	write.Delete("/tsr-categories/:id", dictionaryController.DeleteTSRCategory)
	write.Post("/workshops", dictionaryController.CreateWorkshop)
	write.Put("/workshops/:id", dictionaryController.UpdateWorkshop)
	write.Delete("/workshops/:id", dictionaryController.DeleteWorkshop)
	write.Post("/order-statuses", dictionaryController.CreateOrderStatus)
	write.Put("/order-statuses/:id", dictionaryController.UpdateOrderStatus)
	write.Delete("/order-statuses/:id", dictionaryController.DeleteOrderStatus)
}
