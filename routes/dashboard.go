package routes

import (
	"oakwoods-backend/controllers"
	"oakwoods-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes настраивает маршруты сводки
func SetupDashboardRoutes(app *fiber.App, dashboardController *controllers.DashboardController) {
	api := app.Group("/api/dashboard", utils.AuthMiddleware)

	// Получение сводных показателей магазина
	api.Get("/", dashboardController.GetSummary)
}
