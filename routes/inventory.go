package routes

import (
	"oakwoods-backend/controllers"
	"oakwoods-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupInventoryRoutes настраивает маршруты склада
func SetupInventoryRoutes(app *fiber.App, inventoryController *controllers.InventoryController) {
	inventory := app.Group("/inventory", utils.AuthMiddleware)

	// GET /inventory - список позиций склада
	inventory.Get("/", inventoryController.List)

	// POST /inventory - добавление позиции
	inventory.Post("/", inventoryController.Create)

	// PUT /inventory/:id - обновление позиции
	inventory.Put("/:id", inventoryController.Update)

	// DELETE /inventory/:id - удаление позиции
	inventory.Delete("/:id", inventoryController.Delete)
}
