package routes

import (
	"ortho-app/config"
	"ortho-app/controllers"
	"ortho-app/middleware"
	"ortho-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	userController := controllers.NewUserController(db)

	api := app.Group(config.MAIN_ROUTES+"/users",
		middleware.AuthMiddleware(db),
		middleware.RequireRole(db, models.RoleAdmin))

	api.Post("/", userController.CreateUser)
	api.Get("/", userController.GetAllUsers)
	api.Get("/:id", userController.GetUserByID)
	api.Put("/:id", userController.UpdateUser)
	api.Delete("/:id", userController.DeleteUser)
}
