package routes

import (
	"ortho-app/config"
	"ortho-app/controllers"
	"ortho-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controllers.NewAuthController(db)

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", authController.Login)

	apiLogout := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware(db))
	apiLogout.Get("/logout", authController.Logout)
}
