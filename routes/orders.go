package routes

import (
	"oakwoods-backend/controllers"
	"oakwoods-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupOrderRoutes настраивает маршруты заказов
func SetupOrderRoutes(app *fiber.App, orderController *controllers.OrderController) {
	orders := app.Group("/orders", utils.AuthMiddleware)

	// GET /orders - список заказов
	orders.Get("/", orderController.List)

	// POST /orders - запись заказа с корректировкой остатка
	orders.Post("/", orderController.Create)
}
