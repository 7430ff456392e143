package routes

import (
	"oakwoods-backend/controllers"
	"oakwoods-backend/utils"

	"github.com/gofiber/fiber/v2"
)

// SetupLaborRoutes настраивает маршруты работников
func SetupLaborRoutes(app *fiber.App, laborController *controllers.LaborController) {
	laborers := app.Group("/laborers", utils.AuthMiddleware)

	// GET /laborers - список работников
	laborers.Get("/", laborController.List)

	// POST /laborers - добавление работника
	laborers.Post("/", laborController.Create)

	// PUT /laborers/:id - обновление работника
	laborers.Put("/:id", laborController.Update)

	// DELETE /laborers/:id - удаление работника
	laborers.Delete("/:id", laborController.Delete)
}
