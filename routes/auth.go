package routes

import (
	"oakwoods-backend/controllers"
	"oakwoods-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes настраивает маршруты для аутентификации
func SetupAuthRoutes(app *fiber.App, authController *controllers.AuthController, rateLimit fiber.Handler) {
	// Группа маршрутов для аутентификации с ограничением частоты запросов
	auth := app.Group("/auth", rateLimit)

	// POST /auth/register - регистрация пользователя
	auth.Post("/register", authController.Register)

	// POST /auth/login - вход пользователя
	auth.Post("/login", authController.Login)

	// POST /auth/update - изменение email и пароля текущего пользователя
	auth.Post("/update", utils.AuthMiddleware, authController.UpdateAccount)
}
