package routes

import (
	"ortho-app/config"
	"ortho-app/controllers"
	"ortho-app/middleware"
	"ortho-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupCaseRoutes(app *fiber.App, db *gorm.DB) {
	caseController := controllers.NewCaseController(db)

	api := app.Group(config.MAIN_ROUTES+"/cases",
		middleware.AuthMiddleware(db),
		middleware.RequireRole(db, models.RoleRegistry, models.RoleMed))

	api.Post("/", caseController.CreateCase)
	api.Get("/", caseController.GetAllCases)
	api.Get("/:id", caseController.GetCaseByID)
	api.Put("/:id", caseController.UpdateCase)
}
