package routes

import (
	"oakwoods-backend/controllers"
	"oakwoods-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupExpenseRoutes настраивает маршруты расходов
func SetupExpenseRoutes(app *fiber.App, expenseController *controllers.ExpenseController) {
	expenses := app.Group("/expenses", utils.AuthMiddleware)

	// GET /expenses - список расходов
	expenses.Get("/", expenseController.List)

	// POST /expenses - добавление расхода
	expenses.Post("/", expenseController.Create)
}
